package tambola

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizeKeepsColumnContents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tk := validTicket()

	for i := 0; i < 200; i++ {
		out := Randomize(tk, rng)

		assert.Len(t, out.Numbers(), TicketNumbers)
		for c := 0; c < Cols; c++ {
			want := tk.ColumnValues(c)
			sort.Ints(want)
			assert.Equalf(t, want, out.ColumnValues(c), "column %d", c)
		}
	}

	// pure transform, input untouched
	assert.Equal(t, validTicket(), tk)
}

func TestRandomizeColumnsStayAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tk := validTicket()

	for i := 0; i < 200; i++ {
		out := Randomize(tk, rng)
		for c := 0; c < Cols; c++ {
			vals := out.ColumnValues(c)
			assert.Truef(t, sort.IntsAreSorted(vals), "column %d not ascending: %v", c, vals)
		}
	}
}

func TestRandomizeFullColumnIsFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// column 0 holds three numbers: no placement freedom
	tk := Ticket{
		{3, 10, 20, 0, 0, 0, 0, 70, 80},
		{5, 15, 25, 30, 40, 0, 0, 0, 0},
		{8, 0, 0, 35, 45, 50, 60, 0, 0},
	}

	for i := 0; i < 100; i++ {
		out := Randomize(tk, rng)
		assert.Equal(t, 3, out[0][0])
		assert.Equal(t, 5, out[1][0])
		assert.Equal(t, 8, out[2][0])
	}
}

func TestRandomizeReachesEveryOption(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tk := validTicket()

	// column 5 holds one number, column 0 holds two
	singleRows := make(map[int]int)
	pairRows := make(map[[2]int]int)
	for i := 0; i < 1000; i++ {
		out := Randomize(tk, rng)
		for r := 0; r < Rows; r++ {
			if out[r][5] != 0 {
				singleRows[r]++
			}
		}
		var pair []int
		for r := 0; r < Rows; r++ {
			if out[r][0] != 0 {
				pair = append(pair, r)
			}
		}
		require.Len(t, pair, 2)
		pairRows[[2]int{pair[0], pair[1]}]++
	}

	assert.Len(t, singleRows, Rows, "single-number column should reach all rows")
	assert.Len(t, pairRows, len(rowPairs), "two-number column should reach all row pairs")
}

func TestRandomizeSortsCanonicalInput(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	// incremental placement can leave a column out of order
	tk := validTicket()
	tk[0][0], tk[1][0] = tk[1][0], tk[0][0]

	out := Randomize(tk, rng)
	vals := out.ColumnValues(0)
	assert.Equal(t, []int{1, 5}, vals)
}
