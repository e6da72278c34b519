package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meron-g/tambola-services/internal/tambola"
)

func TestBatchTotal(t *testing.T) {
	price := decimal.RequireFromString("10.50")

	assert.Equal(t, "10.50", BatchTotal(price, 1).StringFixed(2))
	assert.Equal(t, "63.00", BatchTotal(price, 6).StringFixed(2))
}

func TestGenerateBatchWithoutPersistence(t *testing.T) {
	svc := NewTicketService(nil, nil, decimal.RequireFromString("10.00"))

	resp, err := svc.GenerateBatch(context.Background(), 42, 3)
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 3)
	assert.NotEmpty(t, resp.BatchSN)
	assert.Equal(t, "10.00", resp.Price)
	assert.Equal(t, "30.00", resp.Total)

	seen := make(map[int]bool)
	serials := make(map[string]bool)
	for _, td := range resp.Tickets {
		require.NoError(t, td.Grid.Validate())
		assert.False(t, serials[td.TicketSN], "duplicate ticket serial")
		serials[td.TicketSN] = true
		for _, n := range td.Grid.Numbers() {
			assert.Falsef(t, seen[n], "number %d repeated across batch", n)
			seen[n] = true
		}
	}
}

func TestGenerateBatchTooLarge(t *testing.T) {
	svc := NewTicketService(nil, nil, decimal.RequireFromString("10.00"))

	_, err := svc.GenerateBatch(context.Background(), 42, 7)
	require.ErrorIs(t, err, tambola.ErrPoolExhausted)
}
