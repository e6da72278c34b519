package tambola

import "fmt"

// GenerateBatch produces count tickets with no number repeated anywhere
// across the batch. One used-number set is threaded through every
// ticket and discarded when the batch completes. The batch fails
// atomically: any fatal generation error aborts it with no partial
// result.
func (g *Generator) GenerateBatch(count int) ([]Ticket, error) {
	if count < 1 {
		return nil, fmt.Errorf("ticket count must be positive, got %d", count)
	}
	if count*TicketNumbers > PoolSize {
		return nil, fmt.Errorf("%d tickets need %d distinct numbers, the pool has %d: %w",
			count, count*TicketNumbers, PoolSize, ErrPoolExhausted)
	}

	used := make(map[int]bool, count*TicketNumbers)
	tickets := make([]Ticket, 0, count)
	for i := 0; i < count; i++ {
		pending := count - i - 1

		if pending == 0 && count > 1 {
			if t, ok := g.remainderTicket(used); ok {
				tickets = append(tickets, t)
				break
			}
		}

		t, err := g.generate(used, pending)
		if err != nil {
			return nil, fmt.Errorf("ticket %d of %d: %w", i+1, count, err)
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

// remainderTicket short-circuits the last ticket of a batch: when
// exactly fifteen unused numbers remain and they happen to shape a
// legal layout, they are distributed directly instead of running the
// constrained draw. Any mismatch falls back to the standard path.
func (g *Generator) remainderTicket(used map[int]bool) (Ticket, bool) {
	if PoolSize-len(used) != TicketNumbers {
		return Ticket{}, false
	}

	avail := availableByColumn(used)
	var counts [Cols]int
	for c := 0; c < Cols; c++ {
		if len(avail[c]) == 0 || len(avail[c]) > MaxPerColumn {
			return Ticket{}, false
		}
		counts[c] = len(avail[c])
	}

	rows := g.assignRows(counts)
	t := g.fillNumbers(avail, counts, rows)
	t = g.shuffleRows(t)
	if t.Validate() != nil {
		return Ticket{}, false
	}

	markUsed(used, t)
	return t, true
}
