package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/meron-g/tambola-services/internal/comm"
	"github.com/meron-g/tambola-services/internal/socketsvc/broker"
)

type Ws struct {
	connMap sync.Map // to keep track of socket connection with socketId
	Broker  *broker.Broker
}

func NewWs() *Ws {
	return &Ws{}
}

// SocketMessage routes a web-client message to the owning backend
// service. The gateway holds no generation logic: it only relays.
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "generate-tickets", "get-batch":
		s.forward(socketId, message, "socket.service")
	case "start-draw":
		s.forward(socketId, message, "caller.service")
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

// forward stamps the socket id on the message and publishes it to the
// backend topic.
func (s *Ws) forward(socketId string, msg *comm.WSMessage, topic string) {
	msg.SocketId = socketId

	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Failed to marshal WSMessage for NATS: %v", err)
		return
	}

	if err := s.Broker.Publish(topic, bytes); err != nil {
		log.Errorf("Failed to publish to NATS topic %s: %v", topic, err)
		return
	}

	log.Infof("Relayed %s message from socket %s to topic %s", msg.Type, socketId, topic)
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

// EachConnection visits every live connection, for broadcast sends.
func (s *Ws) EachConnection(fn func(socketId string, conn *websocket.Conn)) {
	s.connMap.Range(func(key, value any) bool {
		fn(key.(string), value.(*websocket.Conn))
		return true
	})
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
}
