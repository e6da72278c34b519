package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/meron-g/tambola-services/internal/cardsvc/service"
	"github.com/meron-g/tambola-services/internal/comm"
)

// responseTopic is where the socket gateway listens for our replies.
const responseTopic = "ticket.service"

type Broker struct {
	Conn          *nats.Conn
	TicketService *service.TicketService
}

func NewBroker(nc *nats.Conn, ticketService *service.TicketService) *Broker {
	return &Broker{
		Conn:          nc,
		TicketService: ticketService,
	}
}

// handles message coming from socket
func (b *Broker) handleMessage(msgNat *nats.Msg) {
	msg := &comm.WSMessage{}
	err := json.Unmarshal(msgNat.Data, &msg)
	if err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	switch msg.Type {
	case "generate-tickets":
		req := comm.BatchRequest{}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Errorf("Error decoding batch request: %s", err)
			b.publishError("invalid batch request", msg.SocketId)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		batch, err := b.TicketService.GenerateBatch(ctx, req.UserId, req.Count)
		if err != nil {
			log.Errorf("Error [TicketService.GenerateBatch] %s", err)
			b.publishError("unable to generate tickets", msg.SocketId)
			return
		}

		b.PublishBatchResponse(batch, msg.SocketId)
	case "get-batch":
		var req struct {
			BatchSN string `json:"batch_sn"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Errorf("Error decoding batch lookup: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		doc, err := b.TicketService.GetArchivedBatch(ctx, req.BatchSN)
		if err != nil {
			log.Errorf("Error [TicketService.GetArchivedBatch] %s", err)
			return
		}
		if doc == nil {
			b.publishError("batch expired or unknown", msg.SocketId)
			return
		}

		b.PublishBatchResponse(&comm.BatchResponse{
			BatchSN: doc.BatchSN,
			Tickets: doc.Tickets,
			Total:   doc.Total,
		}, msg.SocketId)
	default:
		log.Warnf("unknown message type: %s", msg.Type)
	}
}

// SubscribeSocketService consumes ticket requests relayed by the
// socket gateway.
func (b *Broker) SubscribeSocketService(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessage)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) PublishBatchResponse(batch *comm.BatchResponse, socketId string) {
	data, err := json.Marshal(batch)
	if err != nil {
		log.Errorf("Error marshaling batch response: %s", err)
		return
	}

	b.publish(&comm.WSMessage{Type: "tickets-response", Data: data, SocketId: socketId})
}

func (b *Broker) publishError(message, socketId string) {
	data, err := json.Marshal(comm.ErrorData{Message: message})
	if err != nil {
		log.Errorf("Error marshaling error payload: %s", err)
		return
	}

	b.publish(&comm.WSMessage{Type: "tickets-error", Data: data, SocketId: socketId})
}

func (b *Broker) publish(msg *comm.WSMessage) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error marshaling WSMessage: %s", err)
		return
	}

	if err := b.Conn.Publish(responseTopic, bytes); err != nil {
		log.Errorf("Error publishing to topic %s: %s", responseTopic, err)
	}
}
