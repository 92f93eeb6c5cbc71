package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DayOfMonth    int             `gorm:"type:integer;not null;index"`
	Comments      string          `gorm:"type:varchar(500)"`
	SubCategoryID uuid.UUID       `gorm:"type:uuid;not null"`
	PaymentTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID;references:ID"`
	PaymentType *PaymentTypeModel `gorm:"foreignKey:PaymentTypeID;references:ID"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Amount:        m.Amount,
		DayOfMonth:    m.DayOfMonth,
		Comments:      m.Comments,
		SubCategoryID: m.SubCategoryID,
		PaymentTypeID: m.PaymentTypeID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDetail converts a RecurringExpenseModel with preloaded relationships to a RecurringExpenseDetail.
func (m *RecurringExpenseModel) ToDetail() *entity.RecurringExpenseDetail {
	detail := &entity.RecurringExpenseDetail{RecurringExpense: m.ToEntity()}
	if m.SubCategory != nil {
		detail.SubCategoryLabel = m.SubCategory.Label
		if m.SubCategory.Category != nil {
			detail.CategoryLabel = m.SubCategory.Category.Label
		}
	}
	if m.PaymentType != nil {
		detail.PaymentTypeCode = m.PaymentType.Code
	}
	return detail
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain RecurringExpense entity.
func RecurringExpenseFromEntity(recurring *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:            recurring.ID,
		OwnerID:       recurring.OwnerID,
		Amount:        recurring.Amount,
		DayOfMonth:    recurring.DayOfMonth,
		Comments:      recurring.Comments,
		SubCategoryID: recurring.SubCategoryID,
		PaymentTypeID: recurring.PaymentTypeID,
		CreatedAt:     recurring.CreatedAt,
		UpdatedAt:     recurring.UpdatedAt,
	}
}
