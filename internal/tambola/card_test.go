package tambola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTicket builds a known-good ticket by hand.
func validTicket() Ticket {
	return Ticket{
		{1, 10, 20, 0, 0, 0, 0, 70, 80},
		{5, 15, 25, 30, 40, 0, 0, 0, 0},
		{0, 0, 0, 35, 45, 50, 60, 0, 85},
	}
}

func TestValidateAcceptsGoodTicket(t *testing.T) {
	tk := validTicket()
	require.NoError(t, tk.Validate())

	// pure function: repeated validation gives the same verdict
	require.NoError(t, tk.Validate())
	assert.Equal(t, validTicket(), tk)
}

func TestValidateRejectsBadTickets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Ticket)
	}{
		{"row short one number", func(tk *Ticket) { tk[0][0] = 0 }},
		{"duplicate number", func(tk *Ticket) { tk[1][0] = 1 }},
		{"column not ascending", func(tk *Ticket) { tk[0][0], tk[1][0] = tk[1][0], tk[0][0] }},
		{"value outside column bucket", func(tk *Ticket) { tk[0][0] = 12 }},
		{"empty column", func(tk *Ticket) {
			// keep row 2 at five numbers while draining column 5
			tk[2][7] = 79
			tk[2][5] = 0
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := validTicket()
			tc.mutate(&tk)
			assert.Error(t, tk.Validate())
		})
	}
}

func TestTicketAccessors(t *testing.T) {
	tk := validTicket()

	assert.Len(t, tk.Numbers(), TicketNumbers)
	for r := 0; r < Rows; r++ {
		assert.Equal(t, PerRow, tk.RowCount(r))
	}
	assert.Equal(t, []int{1, 5}, tk.ColumnValues(0))
	assert.Equal(t, []int{50}, tk.ColumnValues(5))
	assert.Equal(t, []int{80, 85}, tk.ColumnValues(8))
}
