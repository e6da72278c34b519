package tambola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketsPartitionThePool(t *testing.T) {
	buckets := Buckets()

	assert.Equal(t, Bucket{Low: 1, High: 9}, buckets[0])
	assert.Equal(t, 9, buckets[0].Size())
	assert.Equal(t, Bucket{Low: 80, High: 90}, buckets[8])
	assert.Equal(t, 11, buckets[8].Size())
	for c := 1; c < Cols-1; c++ {
		assert.Equalf(t, 10, buckets[c].Size(), "column %d", c)
	}

	// disjoint and ordered, union exactly 1..90
	covered := make(map[int]int)
	for c, b := range buckets {
		if c > 0 {
			assert.Greater(t, b.Low, buckets[c-1].High)
		}
		for n := b.Low; n <= b.High; n++ {
			covered[n]++
		}
	}
	require.Len(t, covered, PoolSize)
	for n := 1; n <= PoolSize; n++ {
		assert.Equalf(t, 1, covered[n], "number %d", n)
	}
}

func TestColumnForMatchesBuckets(t *testing.T) {
	buckets := Buckets()
	for n := 1; n <= PoolSize; n++ {
		c := ColumnFor(n)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, Cols)
		assert.Truef(t, buckets[c].Contains(n), "number %d mapped to column %d (%d..%d)",
			n, c, buckets[c].Low, buckets[c].High)
	}
}
