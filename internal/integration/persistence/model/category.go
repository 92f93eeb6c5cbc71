// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Label:     m.Label,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Label:     category.Label,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// SubCategoryModel represents the sub_categories table in the database.
type SubCategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label      string    `gorm:"type:varchar(100);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the SubCategoryModel.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ToEntity converts a SubCategoryModel to a domain SubCategory entity.
func (m *SubCategoryModel) ToEntity() *entity.SubCategory {
	subCategory := &entity.SubCategory{
		ID:         m.ID,
		Label:      m.Label,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		subCategory.Category = m.Category.ToEntity()
	}
	return subCategory
}

// SubCategoryFromEntity creates a SubCategoryModel from a domain SubCategory entity.
func SubCategoryFromEntity(subCategory *entity.SubCategory) *SubCategoryModel {
	return &SubCategoryModel{
		ID:         subCategory.ID,
		Label:      subCategory.Label,
		CategoryID: subCategory.CategoryID,
		CreatedAt:  subCategory.CreatedAt,
		UpdatedAt:  subCategory.UpdatedAt,
	}
}

// PaymentTypeModel represents the payment_types table in the database.
type PaymentTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Label     string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentTypeModel.
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}

// ToEntity converts a PaymentTypeModel to a domain PaymentType entity.
func (m *PaymentTypeModel) ToEntity() *entity.PaymentType {
	return &entity.PaymentType{
		ID:        m.ID,
		Code:      m.Code,
		Label:     m.Label,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PaymentTypeFromEntity creates a PaymentTypeModel from a domain PaymentType entity.
func PaymentTypeFromEntity(paymentType *entity.PaymentType) *PaymentTypeModel {
	return &PaymentTypeModel{
		ID:        paymentType.ID,
		Code:      paymentType.Code,
		Label:     paymentType.Label,
		CreatedAt: paymentType.CreatedAt,
		UpdatedAt: paymentType.UpdatedAt,
	}
}
