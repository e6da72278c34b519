package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	config "github.com/meron-g/tambola-services/configs"
	"github.com/meron-g/tambola-services/internal/cardsvc/archive"
	"github.com/meron-g/tambola-services/internal/cardsvc/broker"
	svcconfig "github.com/meron-g/tambola-services/internal/cardsvc/config"
	"github.com/meron-g/tambola-services/internal/cardsvc/db"
	handlers "github.com/meron-g/tambola-services/internal/cardsvc/handlers"
	"github.com/meron-g/tambola-services/internal/cardsvc/service"
	"github.com/meron-g/tambola-services/internal/cardsvc/store"
	nats "github.com/meron-g/tambola-services/internal/nats"
)

const SERVICE_NAME = "card"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	cfg := svcconfig.Load()

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// mongo archive for short-lived batch retrieval
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	batchArchive, err := archive.Connect(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to archive: %v", err)
	}
	log.Printf("mongo archive connection established successfully")

	price, err := decimal.NewFromString(cfg.TicketPrice)
	if err != nil {
		log.Fatalf("Invalid TICKET_PRICE value: %v", err)
	}

	ticketStore := store.NewTicketStore(dbpool)
	ticketService := service.NewTicketService(ticketStore, batchArchive, price)

	// Connect to NATS
	n, err := nats.Connect(SERVICE_NAME + " service")
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// init peer message broker
	broker := broker.NewBroker(n.Conn, ticketService)

	// subscribe to socket service
	topic := "socket.service"
	sub, err := broker.SubscribeSocketService(topic)
	if err != nil {
		log.Errorf("Error: unable to subscribe to queue %v", err)
		os.Exit(0)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(ticketService, cfg.MaxBatch)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("CARD_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
