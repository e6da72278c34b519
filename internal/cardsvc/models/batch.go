package models

import "time"

// Batch is one generation run: up to six tickets sharing the 1..90
// pool with no number repeated across them.
type Batch struct {
	ID        int64     `json:"id"`
	BatchSN   string    `json:"batch_sn"` // unique serial number
	UserID    int64     `json:"user_id"`
	Count     int       `json:"count"`
	Total     string    `json:"total"` // count * ticket price, fixed 2
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
