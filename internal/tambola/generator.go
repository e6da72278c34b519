package tambola

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// randomizeAttempts bounds the row-randomization re-rolls before a
// ticket falls back to its canonical layout.
const randomizeAttempts = 100

// Generator produces tambola tickets using seed-based random logic.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the wall clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with a deterministic random
// stream, used by tests to make generation reproducible.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one valid ticket. Numbers already present in used
// are never emitted; numbers placed on the ticket are added to used.
// It fails with ErrPoolExhausted when the unused pool cannot fill a
// ticket.
func (g *Generator) Generate(used map[int]bool) (Ticket, error) {
	return g.generate(used, 0)
}

// generate builds one ticket while keeping the pool viable for pending
// further tickets: every remaining ticket is guaranteed at least one
// unused number per column, and when the batch must consume the pool
// exactly the surplus is eaten early so the final ticket's leftovers
// never exceed three per column.
func (g *Generator) generate(used map[int]bool, pending int) (Ticket, error) {
	avail := availableByColumn(used)

	counts, err := g.columnCounts(avail, pending)
	if err != nil {
		return Ticket{}, err
	}

	rows := g.assignRows(counts)
	ticket := g.fillNumbers(avail, counts, rows)
	ticket = g.shuffleRows(ticket)

	markUsed(used, ticket)
	return ticket, nil
}

// availableByColumn splits the unused pool by column bucket, each
// column's numbers ascending.
func availableByColumn(used map[int]bool) [Cols][]int {
	var avail [Cols][]int
	for n := 1; n <= PoolSize; n++ {
		if !used[n] {
			c := ColumnFor(n)
			avail[c] = append(avail[c], n)
		}
	}
	return avail
}

// columnCounts decides how many cells each column gets. Counts are
// drawn at random inside per-column bounds: at least one, at most
// three, never more than the column can supply after reserving one
// number per pending ticket, and never so few that pending tickets
// would be left with more than three forced numbers in a column.
func (g *Generator) columnCounts(avail [Cols][]int, pending int) ([Cols]int, error) {
	var counts, hi [Cols]int

	total := 0
	for c := 0; c < Cols; c++ {
		total += len(avail[c])
	}
	slack := total - TicketNumbers*(pending+1)
	if slack < 0 {
		return counts, fmt.Errorf("%d tickets need %d numbers, %d unused: %w",
			pending+1, TicketNumbers*(pending+1), total, ErrPoolExhausted)
	}

	sumLo, sumHi := 0, 0
	for c := 0; c < Cols; c++ {
		n := len(avail[c])
		hi[c] = min(MaxPerColumn, n-pending)
		lo := max(1, n-MaxPerColumn*pending-slack)
		if hi[c] < lo {
			return counts, fmt.Errorf("column %d has %d unused numbers: %w", c, n, ErrPoolExhausted)
		}
		counts[c] = lo
		sumLo += lo
		sumHi += hi[c]
	}
	if sumLo > TicketNumbers || sumHi < TicketNumbers {
		return counts, fmt.Errorf("unused pool cannot shape a ticket: %w", ErrPoolExhausted)
	}

	for need := TicketNumbers - sumLo; need > 0; need-- {
		open := make([]int, 0, Cols)
		for c := 0; c < Cols; c++ {
			if counts[c] < hi[c] {
				open = append(open, c)
			}
		}
		counts[open[g.rng.Intn(len(open))]]++
	}

	return counts, nil
}

// assignRows realizes the cell layout: columns are processed in
// descending count order and each takes the rows with the most free
// cells, ties broken at random. Row capacities never drift apart by
// more than one, so every column always finds enough open rows and
// each row ends at exactly five cells.
func (g *Generator) assignRows(counts [Cols]int) [Cols][]int {
	order := g.rng.Perm(Cols)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rowLeft := [Rows]int{PerRow, PerRow, PerRow}
	var rows [Cols][]int
	for _, c := range order {
		ranked := g.rng.Perm(Rows)
		sort.SliceStable(ranked, func(i, j int) bool {
			return rowLeft[ranked[i]] > rowLeft[ranked[j]]
		})

		picks := make([]int, 0, counts[c])
		for _, r := range ranked[:counts[c]] {
			rowLeft[r]--
			picks = append(picks, r)
		}
		sort.Ints(picks)
		rows[c] = picks
	}
	return rows
}

// fillNumbers draws each column's numbers by shuffling the column's
// unused pool and taking the first count, then writes them ascending
// into the chosen rows so columns are sorted by construction.
func (g *Generator) fillNumbers(avail [Cols][]int, counts [Cols]int, rows [Cols][]int) Ticket {
	var t Ticket
	for c := 0; c < Cols; c++ {
		pool := append([]int(nil), avail[c]...)
		g.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		picked := pool[:counts[c]]
		sort.Ints(picked)
		for i, r := range rows[c] {
			t[r][c] = picked[i]
		}
	}
	return t
}

// shuffleRows applies the column-row randomization pass for layout
// variety. Reassigning rows can unbalance the 5-per-row totals, so
// draws are re-rolled until the ticket validates; the canonical
// layout is kept when no valid draw lands inside the attempt budget.
func (g *Generator) shuffleRows(t Ticket) Ticket {
	for i := 0; i < randomizeAttempts; i++ {
		cand := Randomize(t, g.rng)
		if cand.Validate() == nil {
			return cand
		}
	}
	return t
}

func markUsed(used map[int]bool, t Ticket) {
	for _, n := range t.Numbers() {
		used[n] = true
	}
}
