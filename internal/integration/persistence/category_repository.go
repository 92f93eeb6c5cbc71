package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// subCategoryRepository implements the adapter.SubCategoryRepository interface.
type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository creates a new sub-category repository instance.
func NewSubCategoryRepository(db *gorm.DB) adapter.SubCategoryRepository {
	return &subCategoryRepository{
		db: db,
	}
}

// FindByID retrieves a sub-category with its parent category.
func (r *subCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	var subCategoryModel model.SubCategoryModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&subCategoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubCategoryNotFound
		}
		return nil, result.Error
	}
	return subCategoryModel.ToEntity(), nil
}

// paymentTypeRepository implements the adapter.PaymentTypeRepository interface.
type paymentTypeRepository struct {
	db *gorm.DB
}

// NewPaymentTypeRepository creates a new payment type repository instance.
func NewPaymentTypeRepository(db *gorm.DB) adapter.PaymentTypeRepository {
	return &paymentTypeRepository{
		db: db,
	}
}

// FindByCode retrieves a payment type by its code.
func (r *paymentTypeRepository) FindByCode(ctx context.Context, code string) (*entity.PaymentType, error) {
	var paymentTypeModel model.PaymentTypeModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&paymentTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentTypeNotFound
		}
		return nil, result.Error
	}
	return paymentTypeModel.ToEntity(), nil
}
