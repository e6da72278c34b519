package tambola

import (
	"math/rand"
	"sort"
)

// rowPairs enumerates the possible row placements for a column holding
// exactly two numbers.
var rowPairs = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// Randomize returns a copy of t with every column's occupied rows
// re-chosen at random. The set of numbers per column is untouched and
// each column is written back in ascending top-to-bottom order:
//
//	1 number  -> a uniformly random row
//	2 numbers -> a uniformly random pair of rows, smaller value on top
//	3 numbers -> rows 0,1,2, no freedom
//
// The transform is pure; it may shift per-row totals, so callers
// validate the result before treating the ticket as final.
func Randomize(t Ticket, rng *rand.Rand) Ticket {
	var out Ticket
	for c := 0; c < Cols; c++ {
		vals := t.ColumnValues(c)
		sort.Ints(vals)
		switch len(vals) {
		case 1:
			out[rng.Intn(Rows)][c] = vals[0]
		case 2:
			pair := rowPairs[rng.Intn(len(rowPairs))]
			out[pair[0]][c] = vals[0]
			out[pair[1]][c] = vals[1]
		case 3:
			for r := 0; r < Rows; r++ {
				out[r][c] = vals[r]
			}
		}
	}
	return out
}
