package tambola

import "fmt"

const (
	// maxTicketAttempts caps scrap-and-retry restarts before the
	// incremental strategy gives up.
	maxTicketAttempts = 20

	// maxDrawAttempts caps random draws within one ticket attempt so a
	// ticket that can no longer be completed gets scrapped instead of
	// looping.
	maxDrawAttempts = 500
)

// GenerateIncremental produces one valid ticket with the older
// incremental strategy: draw random unused numbers one at a time, route
// each to the row that still needs numbers and the column its value
// belongs to, and discard draws that hit an occupied cell. A ticket
// that cannot be completed or fails validation is scrapped, its numbers
// returned to the pool, and rebuilt from scratch. Hitting the restart
// cap fails with ErrRetryLimit.
//
// The batch path uses Generate instead; this strategy is kept for
// callers that exercised the incremental behavior.
func (g *Generator) GenerateIncremental(used map[int]bool) (Ticket, error) {
	if PoolSize-len(used) < TicketNumbers {
		return Ticket{}, fmt.Errorf("%d unused numbers left, a ticket needs %d: %w",
			PoolSize-len(used), TicketNumbers, ErrPoolExhausted)
	}

	for attempt := 1; attempt <= maxTicketAttempts; attempt++ {
		t, ok := g.placeIncremental(used)
		if !ok || !covered(t) {
			continue
		}

		// Row randomization doubles as the column sort for this
		// strategy: placement order ignores ordering, Randomize
		// rewrites every column ascending.
		t = g.shuffleRows(t)
		if t.Validate() != nil {
			continue
		}

		markUsed(used, t)
		return t, nil
	}

	return Ticket{}, fmt.Errorf("scrapped %d tickets in a row: %w", maxTicketAttempts, ErrRetryLimit)
}

// placeIncremental fills one ticket by random draws. The target row is
// decided by how many numbers are already placed, so rows fill 5-5-5 by
// construction. Numbers are only provisionally consumed: the picked set
// is local and merges into used solely on a validated ticket.
func (g *Generator) placeIncremental(used map[int]bool) (Ticket, bool) {
	var t Ticket
	picked := make(map[int]bool, TicketNumbers)

	placed := 0
	for draws := 0; placed < TicketNumbers; draws++ {
		if draws >= maxDrawAttempts {
			return t, false
		}

		n := g.rng.Intn(PoolSize) + 1
		if used[n] || picked[n] {
			continue
		}

		row := placed / PerRow
		col := ColumnFor(n)
		if t[row][col] != 0 {
			// cell taken, discard the draw without consuming the number
			continue
		}

		t[row][col] = n
		picked[n] = true
		placed++
	}

	return t, true
}

// covered reports whether every column holds at least one number.
func covered(t Ticket) bool {
	for c := 0; c < Cols; c++ {
		if len(t.ColumnValues(c)) == 0 {
			return false
		}
	}
	return true
}
