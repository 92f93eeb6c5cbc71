package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SubCategoryRepository defines read access to the sub-category catalog.
type SubCategoryRepository interface {
	// FindByID retrieves a sub-category with its parent category.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error)
}

// PaymentTypeRepository defines read access to the payment type catalog.
type PaymentTypeRepository interface {
	// FindByCode retrieves a payment type by its code.
	FindByCode(ctx context.Context, code string) (*entity.PaymentType, error)
}
