package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"

	"github.com/meron-g/tambola-services/internal/cardsvc/service"
	"github.com/meron-g/tambola-services/internal/comm"
	"github.com/meron-g/tambola-services/internal/tambola"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	tickets   *service.TicketService
	maxBatch  int
}

func NewHandler(tickets *service.TicketService, maxBatch int) *Handler {
	return &Handler{tickets: tickets, maxBatch: maxBatch}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// GenerateTicketsHandler issues a fresh batch of tickets.
func (h *Handler) GenerateTicketsHandler(w http.ResponseWriter, r *http.Request) {
	var req comm.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "malformed request body"})
		return
	}

	if req.Count < 1 || req.Count > h.maxBatch {
		h.CreateResponse(w, Response{
			Code:  http.StatusBadRequest,
			Error: fmt.Sprintf("count must be between 1 and %d", h.maxBatch),
		})
		return
	}

	batch, err := h.tickets.GenerateBatch(r.Context(), req.UserId, req.Count)
	if err != nil {
		log.Errorf("Error generating batch of %d: %v", req.Count, err)
		if errors.Is(err, tambola.ErrPoolExhausted) || errors.Is(err, tambola.ErrRetryLimit) {
			h.CreateResponse(w, Response{Code: http.StatusUnprocessableEntity, Error: "unable to generate the requested tickets"})
			return
		}
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "ticket generation failed"})
		return
	}

	h.CreateResponse(w, Response{Message: "batch generated", Code: http.StatusOK, Data: batch})
}

// TicketHandler fetches one persisted ticket by serial number.
func (h *Handler) TicketHandler(w http.ResponseWriter, r *http.Request) {
	sn := chi.URLParam(r, "sn")

	ticket, err := h.tickets.GetTicketBySN(r.Context(), sn)
	if err != nil {
		log.Errorf("Error retrieving ticket %s: %v", sn, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "ticket lookup failed"})
		return
	}
	if ticket == nil {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "ticket not found"})
		return
	}

	h.CreateResponse(w, Response{Message: "ticket", Code: http.StatusOK, Data: ticket})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "card service is running at port " + os.Getenv("CARD_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode health response: %v", err)
	}
}
