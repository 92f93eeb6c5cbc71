// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseSortColumns lists the columns a listing may be ordered by.
var expenseSortColumns = map[string]bool{
	"date":       true,
	"amount":     true,
	"created_at": true,
	"updated_at": true,
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates all expenses in a single transaction.
func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	models := make([]*model.ExpenseModel, len(expenses))
	for i, e := range expenses {
		models[i] = model.ExpenseFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to create expenses: %w", err)
		}
		return nil
	})
}

// FindByOwnerInRange retrieves the owner's expenses dated within [from, to], with labels.
func (r *expenseRepository) FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.ExpenseDetail, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("PaymentType").
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, entity.TruncateToDate(from), entity.TruncateToDate(to)).
		Order("date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	details := make([]*entity.ExpenseDetail, len(expenseModels))
	for i := range expenseModels {
		details[i] = expenseModels[i].ToDetail()
	}
	return details, nil
}

// GetMonthlyCategoryTotals returns the owner's spending grouped by month and category.
func (r *expenseRepository) GetMonthlyCategoryTotals(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryTotal, error) {
	monthExpr := r.monthExpression("e.date")

	var results []struct {
		Month    string          `gorm:"column:month"`
		Category string          `gorm:"column:category"`
		Amount   decimal.Decimal `gorm:"column:amount"`
	}

	err := r.db.WithContext(ctx).
		Table("expenses AS e").
		Select(monthExpr+" AS month, c.label AS category, SUM(e.amount) AS amount").
		Joins("JOIN sub_categories sc ON sc.id = e.sub_category_id").
		Joins("JOIN categories c ON c.id = sc.category_id").
		Where("e.owner_id = ?", ownerID).
		Where("e.date >= ? AND e.date <= ?", entity.TruncateToDate(from), entity.TruncateToDate(to)).
		Group(monthExpr + ", c.label").
		Order("month ASC, category ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly category totals: %w", err)
	}

	totals := make([]entity.MonthlyCategoryTotal, len(results))
	for i, row := range results {
		totals[i] = entity.MonthlyCategoryTotal{
			Month:    row.Month,
			Category: row.Category,
			Amount:   row.Amount.Round(2),
		}
	}
	return totals, nil
}

// FindByFilter retrieves one page of expenses matching the filter.
func (r *expenseRepository) FindByFilter(
	ctx context.Context,
	filter valueobject.ExpenseFilter,
	page valueobject.PageRequest,
	sort []valueobject.SortOrder,
) (*adapter.ExpensePage, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	// Apply filters
	query, err := applyExpenseCriteria(query, filter.Criteria)
	if err != nil {
		return nil, err
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Apply ordering
	for _, s := range sort {
		if !expenseSortColumns[s.Column] {
			return nil, fmt.Errorf("unsupported sort column: %s", s.Column)
		}
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Table: "expenses", Name: s.Column},
			Desc:   s.Descending,
		})
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("SubCategory.Category").
		Preload("PaymentType").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	content := make([]*entity.ExpenseDetail, len(expenseModels))
	for i := range expenseModels {
		content[i] = expenseModels[i].ToDetail()
	}

	return &adapter.ExpensePage{
		Content: content,
		Meta:    valueobject.NewPageMeta(page, total),
	}, nil
}

// SumByOwnerInRange returns the total the owner spent within [from, to].
func (r *expenseRepository) SumByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, entity.TruncateToDate(from), entity.TruncateToDate(to)).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total.Round(2), nil
}

// applyExpenseCriteria translates each filter criterion into a WHERE clause.
func applyExpenseCriteria(query *gorm.DB, criteria []valueobject.ExpenseCriterion) (*gorm.DB, error) {
	joinedSubCategories := false
	joinedPaymentTypes := false

	for _, criterion := range criteria {
		switch c := criterion.(type) {
		case valueobject.OwnerEquals:
			query = query.Where("expenses.owner_id = ?", c.OwnerID)
		case valueobject.CategoryEquals:
			if !joinedSubCategories {
				query = query.Joins("JOIN sub_categories ON sub_categories.id = expenses.sub_category_id")
				joinedSubCategories = true
			}
			query = query.Where("sub_categories.category_id = ?", c.CategoryID)
		case valueobject.SubCategoryEquals:
			query = query.Where("expenses.sub_category_id = ?", c.SubCategoryID)
		case valueobject.PaymentTypeEquals:
			if !joinedPaymentTypes {
				query = query.Joins("JOIN payment_types ON payment_types.id = expenses.payment_type_id")
				joinedPaymentTypes = true
			}
			query = query.Where("payment_types.code = ?", c.Code)
		case valueobject.DateRange:
			if c.From != nil {
				query = query.Where("expenses.date >= ?", entity.TruncateToDate(*c.From))
			}
			if c.To != nil {
				query = query.Where("expenses.date <= ?", entity.TruncateToDate(*c.To))
			}
		default:
			return nil, fmt.Errorf("unsupported expense criterion %T", criterion)
		}
	}
	return query, nil
}

// monthExpression formats a date column as YYYY-MM for the active dialect.
func (r *expenseRepository) monthExpression(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "substr(" + column + ", 1, 7)"
	}
	return "to_char(" + column + ", 'YYYY-MM')"
}
