package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meron-g/tambola-services/internal/cardsvc/models"
)

type TicketStore struct {
	db *pgxpool.Pool
}

func NewTicketStore(db *pgxpool.Pool) *TicketStore {
	return &TicketStore{db: db}
}

// InsertBatch records one generation run and returns the stored row.
func (s *TicketStore) InsertBatch(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	query := `
		INSERT INTO batches (batch_sn, user_id, ticket_count, total, status)
		VALUES ($1, $2, $3, $4, 'issued')
		RETURNING id, batch_sn, user_id, ticket_count, total, status, created_at, updated_at
	`

	b := &models.Batch{}
	err := s.db.QueryRow(ctx, query,
		batch.BatchSN, batch.UserID, batch.Count, batch.Total,
	).Scan(
		&b.ID,
		&b.BatchSN,
		&b.UserID,
		&b.Count,
		&b.Total,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("batch %s already recorded", batch.BatchSN)
		}
		return nil, fmt.Errorf("failed to insert batch: %w", err)
	}

	return b, nil
}

// InsertTicket stores one ticket of a batch.
func (s *TicketStore) InsertTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	query := `
		INSERT INTO tickets (ticket_sn, batch_sn, data)
		VALUES ($1, $2, $3)
		RETURNING id, ticket_sn, batch_sn, data, created_at, updated_at
	`

	t := &models.Ticket{}
	err := s.db.QueryRow(ctx, query,
		ticket.TicketSN, ticket.BatchSN, ticket.Data,
	).Scan(
		&t.ID,
		&t.TicketSN,
		&t.BatchSN,
		&t.Data,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("ticket %s already recorded", ticket.TicketSN)
		}
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}

	return t, nil
}

// GetTicketBySN fetches one ticket, nil when unknown.
func (s *TicketStore) GetTicketBySN(ctx context.Context, sn string) (*models.Ticket, error) {
	query := `
		SELECT id, ticket_sn, batch_sn, data, created_at, updated_at
		FROM tickets
		WHERE ticket_sn = $1
		LIMIT 1
	`

	t := &models.Ticket{}
	err := s.db.QueryRow(ctx, query, sn).Scan(
		&t.ID,
		&t.TicketSN,
		&t.BatchSN,
		&t.Data,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket by sn: %w", err)
	}

	return t, nil
}

// GetBatchTickets returns every ticket belonging to a batch.
func (s *TicketStore) GetBatchTickets(ctx context.Context, batchSN string) ([]*models.Ticket, error) {
	query := `
		SELECT id, ticket_sn, batch_sn, data, created_at, updated_at
		FROM tickets
		WHERE batch_sn = $1
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query, batchSN)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		t := &models.Ticket{}
		if err := rows.Scan(
			&t.ID,
			&t.TicketSN,
			&t.BatchSN,
			&t.Data,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch tickets: %w", err)
	}

	return tickets, nil
}
