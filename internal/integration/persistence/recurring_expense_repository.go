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

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create creates a new recurring expense in the database.
func (r *recurringExpenseRepository) Create(ctx context.Context, recurring *entity.RecurringExpense) error {
	recurringModel := model.RecurringExpenseFromEntity(recurring)
	result := r.db.WithContext(ctx).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring expense by its ID.
func (r *recurringExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	var recurringModel model.RecurringExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringExpenseNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByOwner retrieves all recurring expenses of an owner, with labels.
func (r *recurringExpenseRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.RecurringExpenseDetail, error) {
	var recurringModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("PaymentType").
		Where("owner_id = ?", ownerID).
		Order("day_of_month ASC, created_at ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	details := make([]*entity.RecurringExpenseDetail, len(recurringModels))
	for i := range recurringModels {
		details[i] = recurringModels[i].ToDetail()
	}
	return details, nil
}

// FindByDayOfMonth retrieves every owner's recurring expenses scheduled on day.
func (r *recurringExpenseRepository) FindByDayOfMonth(ctx context.Context, day int) ([]*entity.RecurringExpense, error) {
	var recurringModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Where("day_of_month = ?", day).
		Order("created_at ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recurring := make([]*entity.RecurringExpense, len(recurringModels))
	for i := range recurringModels {
		recurring[i] = recurringModels[i].ToEntity()
	}
	return recurring, nil
}

// Delete removes a recurring expense from the database.
func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringExpenseNotFound
	}
	return nil
}
