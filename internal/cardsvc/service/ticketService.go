package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/meron-g/tambola-services/internal/cardsvc/archive"
	"github.com/meron-g/tambola-services/internal/cardsvc/models"
	"github.com/meron-g/tambola-services/internal/cardsvc/store"
	"github.com/meron-g/tambola-services/internal/comm"
	"github.com/meron-g/tambola-services/internal/tambola"
)

type TicketService struct {
	store   *store.TicketStore
	archive *archive.Archive
	price   decimal.Decimal
}

// NewTicketService wires the generation service. store and archive may
// be nil, which skips persistence; generation itself needs neither.
func NewTicketService(store *store.TicketStore, archive *archive.Archive, price decimal.Decimal) *TicketService {
	return &TicketService{store: store, archive: archive, price: price}
}

// BatchTotal prices a batch: per-ticket price times ticket count.
func BatchTotal(price decimal.Decimal, count int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(count)))
}

// GenerateBatch produces count tickets with no number shared between
// them, persists the batch and returns its rendered form. Each request
// runs its own generator, so concurrent requests never share a random
// stream or a used-number set.
func (s *TicketService) GenerateBatch(ctx context.Context, userID int64, count int) (*comm.BatchResponse, error) {
	gen := tambola.NewGenerator()
	tickets, err := gen.GenerateBatch(count)
	if err != nil {
		return nil, fmt.Errorf("generate batch of %d: %w", count, err)
	}

	total := BatchTotal(s.price, count)
	resp := &comm.BatchResponse{
		BatchSN: uuid.New().String(),
		Tickets: make([]comm.TicketData, 0, len(tickets)),
		Price:   s.price.StringFixed(2),
		Total:   total.StringFixed(2),
	}
	for _, tk := range tickets {
		resp.Tickets = append(resp.Tickets, comm.TicketData{
			TicketSN: uuid.New().String(),
			Grid:     tk,
		})
	}

	if s.store != nil {
		if err := s.persistBatch(ctx, userID, resp); err != nil {
			return nil, err
		}
	}

	if s.archive != nil {
		// archive is a short-lived cache for the gateway; losing a
		// write is not worth failing the batch
		doc := &archive.BatchDoc{
			BatchSN: resp.BatchSN,
			UserID:  userID,
			Tickets: resp.Tickets,
			Total:   resp.Total,
		}
		if err := s.archive.SaveBatch(ctx, doc); err != nil {
			log.Errorf("failed to archive batch %s: %v", resp.BatchSN, err)
		}
	}

	return resp, nil
}

func (s *TicketService) persistBatch(ctx context.Context, userID int64, resp *comm.BatchResponse) error {
	batch := &models.Batch{
		BatchSN: resp.BatchSN,
		UserID:  userID,
		Count:   len(resp.Tickets),
		Total:   resp.Total,
	}
	if _, err := s.store.InsertBatch(ctx, batch); err != nil {
		return fmt.Errorf("persist batch %s: %w", resp.BatchSN, err)
	}

	for _, td := range resp.Tickets {
		data, err := json.Marshal(td.Grid)
		if err != nil {
			return fmt.Errorf("serialize ticket %s: %w", td.TicketSN, err)
		}
		ticket := &models.Ticket{
			TicketSN: td.TicketSN,
			BatchSN:  resp.BatchSN,
			Data:     string(data),
		}
		if _, err := s.store.InsertTicket(ctx, ticket); err != nil {
			return fmt.Errorf("persist ticket %s: %w", td.TicketSN, err)
		}
	}

	return nil
}

// GetTicketBySN fetches one persisted ticket.
func (s *TicketService) GetTicketBySN(ctx context.Context, sn string) (*models.Ticket, error) {
	return s.store.GetTicketBySN(ctx, sn)
}

// GetArchivedBatch fetches a batch from the short-lived archive.
func (s *TicketService) GetArchivedBatch(ctx context.Context, batchSN string) (*archive.BatchDoc, error) {
	return s.archive.GetBatch(ctx, batchSN)
}
