package models

import "time"

// Ticket is one persisted tambola ticket. Data holds the 3x9 grid
// serialized as JSON; zero cells are empty.
type Ticket struct {
	ID        int64     `json:"id"`
	TicketSN  string    `json:"ticket_sn"` // unique serial number
	BatchSN   string    `json:"batch_sn"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
