package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Comments      string          `gorm:"type:varchar(500)"`
	SubCategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID;references:ID"`
	PaymentType *PaymentTypeModel `gorm:"foreignKey:PaymentTypeID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Amount:        m.Amount,
		Date:          entity.TruncateToDate(m.Date),
		Comments:      m.Comments,
		SubCategoryID: m.SubCategoryID,
		PaymentTypeID: m.PaymentTypeID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDetail converts an ExpenseModel with preloaded relationships to an ExpenseDetail.
func (m *ExpenseModel) ToDetail() *entity.ExpenseDetail {
	detail := &entity.ExpenseDetail{Expense: m.ToEntity()}
	if m.SubCategory != nil {
		detail.SubCategoryLabel = m.SubCategory.Label
		detail.CategoryID = m.SubCategory.CategoryID
		if m.SubCategory.Category != nil {
			detail.CategoryLabel = m.SubCategory.Category.Label
		}
	}
	if m.PaymentType != nil {
		detail.PaymentTypeCode = m.PaymentType.Code
	}
	return detail
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		OwnerID:       expense.OwnerID,
		Amount:        expense.Amount,
		Date:          entity.TruncateToDate(expense.Date),
		Comments:      expense.Comments,
		SubCategoryID: expense.SubCategoryID,
		PaymentTypeID: expense.PaymentTypeID,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}
