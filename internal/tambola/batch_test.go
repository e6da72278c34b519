package tambola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatchAllSizes(t *testing.T) {
	for count := 1; count <= 6; count++ {
		for seed := int64(0); seed < 20; seed++ {
			g := NewSeededGenerator(seed)

			tickets, err := g.GenerateBatch(count)
			require.NoErrorf(t, err, "count %d seed %d", count, seed)
			require.Lenf(t, tickets, count, "count %d seed %d", count, seed)

			seen := make(map[int]bool)
			for i, tk := range tickets {
				require.NoErrorf(t, tk.Validate(), "count %d seed %d ticket %d", count, seed, i)
				for _, n := range tk.Numbers() {
					assert.Falsef(t, seen[n], "count %d seed %d: number %d repeated across batch", count, seed, n)
					seen[n] = true
				}
			}
			assert.Len(t, seen, count*TicketNumbers)
		}
	}
}

func TestGenerateBatchOfSixConsumesThePool(t *testing.T) {
	g := NewSeededGenerator(6)

	tickets, err := g.GenerateBatch(6)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, tk := range tickets {
		for _, n := range tk.Numbers() {
			seen[n] = true
		}
	}
	require.Len(t, seen, PoolSize)
	for n := 1; n <= PoolSize; n++ {
		assert.Truef(t, seen[n], "number %d never placed", n)
	}
}

func TestGenerateBatchOfSevenExhaustsThePool(t *testing.T) {
	g := NewSeededGenerator(7)

	tickets, err := g.GenerateBatch(7)
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.Nil(t, tickets, "a failed batch must not return partial results")
}

func TestGenerateBatchRejectsBadCounts(t *testing.T) {
	g := NewSeededGenerator(1)

	for _, count := range []int{0, -1, -6} {
		tickets, err := g.GenerateBatch(count)
		require.Errorf(t, err, "count %d", count)
		assert.Nil(t, tickets)
	}
}

func TestGenerateBatchIsolatedPerCall(t *testing.T) {
	g := NewSeededGenerator(55)

	// consecutive batches each start from a fresh pool
	first, err := g.GenerateBatch(6)
	require.NoError(t, err)
	second, err := g.GenerateBatch(6)
	require.NoError(t, err)
	assert.Len(t, first, 6)
	assert.Len(t, second, 6)
}
