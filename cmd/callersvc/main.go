package main

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	config "github.com/meron-g/tambola-services/configs"
	"github.com/meron-g/tambola-services/internal/comm"
	natscli "github.com/meron-g/tambola-services/internal/nats"
	"github.com/meron-g/tambola-services/internal/tambola"
)

const SERVICE_NAME = "caller"

// callsTopic is where the socket gateway listens for draw broadcasts.
const callsTopic = "caller.calls"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// connect to NATS
	n, err := natscli.Connect(SERVICE_NAME + " service")
	if err != nil {
		log.Fatalf("unable to connect to NATS: %v", err)
	}
	defer n.Conn.Close()
	log.Infof("NATS connected at %s", n.Url)

	// subscribe to draw-control events
	_, err = n.Conn.Subscribe("caller.service", func(msg *nats.Msg) {
		var ws comm.WSMessage
		if err := json.Unmarshal(msg.Data, &ws); err != nil {
			log.Errorf("invalid WSMessage: %v", err)
			return
		}
		if ws.Type != "start-draw" {
			return
		}
		var ctrl comm.DrawControl
		if err := json.Unmarshal(ws.Data, &ctrl); err != nil {
			log.Errorf("invalid DrawControl payload: %v", err)
			return
		}
		log.Infof("starting caller for draw %s", ctrl.DrawId)
		go startDraw(n, ctrl)
	})
	if err != nil {
		log.Fatalf("subscribe error: %v", err)
	}

	select {} // block forever
}

// startDraw walks a shuffled 1..90 deck on a ticker and announces each
// number with the full call history.
func startDraw(n *natscli.Nats, ctrl comm.DrawControl) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	deck := rng.Perm(tambola.PoolSize)
	for i := range deck {
		deck[i]++
	}

	interval := time.Duration(ctrl.IntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	history := make([]int, 0, len(deck))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cursor := 0
	for range ticker.C {
		if cursor >= len(deck) {
			log.Infof("caller done for draw %s", ctrl.DrawId)
			return
		}
		num := deck[cursor]
		cursor++

		history = append(history, num)

		c := comm.CallMessage{
			DrawId:  ctrl.DrawId,
			Number:  num,
			History: append([]int(nil), history...), // copy to avoid mutation
		}
		PublishCall(n, c)
	}
}

// PublishCall broadcasts one called number to the socket gateway.
func PublishCall(n *natscli.Nats, c comm.CallMessage) {
	data, err := json.Marshal(c)
	if err != nil {
		log.Errorf("marshal call message: %v", err)
		return
	}

	msg := comm.WSMessage{Type: "number-call", Data: data}
	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("marshal WSMessage: %v", err)
		return
	}

	if err := n.Conn.Publish(callsTopic, bytes); err != nil {
		log.Errorf("publish call: %v", err)
	}
}
