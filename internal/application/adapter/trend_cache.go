package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TrendCache stores computed trend matrices per owner and window end month.
type TrendCache interface {
	// Get returns the cached trend rows. The boolean is false on a miss.
	Get(ctx context.Context, ownerID uuid.UUID, month string) ([]entity.MonthlyTrendRow, bool, error)

	// Set stores the trend rows.
	Set(ctx context.Context, ownerID uuid.UUID, month string, rows []entity.MonthlyTrendRow) error

	// Invalidate drops every cached trend of the owner.
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
