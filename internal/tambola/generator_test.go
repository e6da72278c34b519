package tambola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesValidTickets(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewSeededGenerator(seed)
		used := make(map[int]bool)

		tk, err := g.Generate(used)
		require.NoErrorf(t, err, "seed %d", seed)
		require.NoErrorf(t, tk.Validate(), "seed %d", seed)

		// every placed number was added to the shared set
		for _, n := range tk.Numbers() {
			assert.Truef(t, used[n], "seed %d: number %d not marked used", seed, n)
		}
		assert.Len(t, used, TicketNumbers)
	}
}

func TestGenerateNeverEmitsUsedNumbers(t *testing.T) {
	g := NewSeededGenerator(17)

	used := make(map[int]bool)
	// burn the low half of every bucket
	for n := 1; n <= PoolSize; n++ {
		if n%2 == 0 {
			used[n] = true
		}
	}
	before := make(map[int]bool, len(used))
	for n := range used {
		before[n] = true
	}

	tk, err := g.Generate(used)
	require.NoError(t, err)
	require.NoError(t, tk.Validate())
	for _, n := range tk.Numbers() {
		assert.Falsef(t, before[n], "number %d was already used", n)
	}
}

func TestGenerateSingleCellColumnIsReachable(t *testing.T) {
	g := NewSeededGenerator(99)

	found := false
	for i := 0; i < 1000 && !found; i++ {
		tk, err := g.Generate(make(map[int]bool))
		require.NoError(t, err)
		for c := 0; c < Cols; c++ {
			if len(tk.ColumnValues(c)) == 1 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no ticket had a single-number column in 1000 trials")
}

func TestGenerateFailsOnDepletedPool(t *testing.T) {
	g := NewSeededGenerator(23)

	// leave fewer than 15 unused numbers
	used := make(map[int]bool)
	for n := 1; n <= PoolSize-10; n++ {
		used[n] = true
	}

	_, err := g.Generate(used)
	require.ErrorIs(t, err, ErrPoolExhausted)
}

func TestGenerateFailsWhenColumnsCannotCover(t *testing.T) {
	g := NewSeededGenerator(31)

	// plenty of numbers left, but column 0 is fully consumed
	used := make(map[int]bool)
	for n := 1; n <= 9; n++ {
		used[n] = true
	}
	for n := 10; n <= 40; n++ {
		used[n] = true
	}

	_, err := g.Generate(used)
	require.ErrorIs(t, err, ErrPoolExhausted)
}
