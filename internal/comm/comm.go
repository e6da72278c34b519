package comm

import (
	"encoding/json"

	"github.com/meron-g/tambola-services/internal/tambola"
)

// WSMessage is the envelope every websocket and NATS payload travels
// in. SocketId routes responses back to the owning client connection.
type WSMessage struct {
	Type     string          `json:"type"` // e.g. "generate-tickets", "tickets-response"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// BatchRequest asks the card service for a fresh batch of tickets.
type BatchRequest struct {
	UserId int64 `json:"user_id"`
	Count  int   `json:"count"`
}

// TicketData is one generated ticket as consumed by the rendering
// layer: the 3x9 grid plus its serial number.
type TicketData struct {
	TicketSN string         `json:"ticket_sn"`
	Grid     tambola.Ticket `json:"grid"`
}

// BatchResponse carries a whole generated batch back to the client.
type BatchResponse struct {
	BatchSN string       `json:"batch_sn"`
	Tickets []TicketData `json:"tickets"`
	Price   string       `json:"price"` // per ticket
	Total   string       `json:"total"`
}

// ErrorData reports a failed request to the client.
type ErrorData struct {
	Message string `json:"message"`
}

// DrawControl starts a number draw for a game round.
type DrawControl struct {
	DrawId      string `json:"draw_id"`
	IntervalSec int    `json:"interval_sec"`
}

// CallMessage announces one called number together with the full call
// history, so late joiners can catch up from a single message.
type CallMessage struct {
	DrawId  string `json:"draw_id"`
	Number  int    `json:"number"`
	History []int  `json:"history"`
}
