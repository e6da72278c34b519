package tambola

import "fmt"

const (
	// Rows and Cols give the ticket grid shape.
	Rows = 3
	Cols = 9

	// TicketNumbers is how many cells of a ticket hold a number.
	TicketNumbers = 15

	// PerRow is the exact number of filled cells in every row.
	PerRow = 5

	// MaxPerColumn bounds a column to one number per row.
	MaxPerColumn = 3

	// PoolSize is the size of the global number pool 1..90.
	PoolSize = 90
)

// Ticket is a 3x9 tambola grid. A zero cell is empty; every other cell
// holds a number in 1..90.
type Ticket [Rows][Cols]int

// Numbers returns all placed numbers in row-major order.
func (t Ticket) Numbers() []int {
	nums := make([]int, 0, TicketNumbers)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if t[r][c] != 0 {
				nums = append(nums, t[r][c])
			}
		}
	}
	return nums
}

// ColumnValues returns column c's numbers read top to bottom,
// skipping empty cells.
func (t Ticket) ColumnValues(c int) []int {
	vals := make([]int, 0, Rows)
	for r := 0; r < Rows; r++ {
		if t[r][c] != 0 {
			vals = append(vals, t[r][c])
		}
	}
	return vals
}

// RowCount returns how many cells of row r are filled.
func (t Ticket) RowCount(r int) int {
	n := 0
	for c := 0; c < Cols; c++ {
		if t[r][c] != 0 {
			n++
		}
	}
	return n
}

// Validate checks every ticket invariant: 15 numbers total, 5 per row,
// at least one per column, all values distinct, every value inside its
// column's bucket, and every column strictly ascending top to bottom.
// It is a pure check and never mutates the ticket.
func (t Ticket) Validate() error {
	buckets := Buckets()
	seen := make(map[int]bool, TicketNumbers)
	total := 0

	for r := 0; r < Rows; r++ {
		if got := t.RowCount(r); got != PerRow {
			return fmt.Errorf("row %d has %d numbers, want %d", r, got, PerRow)
		}
	}

	for c := 0; c < Cols; c++ {
		vals := t.ColumnValues(c)
		if len(vals) == 0 {
			return fmt.Errorf("column %d is empty", c)
		}
		prev := 0
		for _, v := range vals {
			if !buckets[c].Contains(v) {
				return fmt.Errorf("number %d is outside column %d range %d..%d", v, c, buckets[c].Low, buckets[c].High)
			}
			if seen[v] {
				return fmt.Errorf("number %d appears more than once", v)
			}
			seen[v] = true
			if v <= prev {
				return fmt.Errorf("column %d is not ascending (%d after %d)", c, v, prev)
			}
			prev = v
			total++
		}
	}

	if total != TicketNumbers {
		return fmt.Errorf("ticket has %d numbers, want %d", total, TicketNumbers)
	}

	return nil
}
