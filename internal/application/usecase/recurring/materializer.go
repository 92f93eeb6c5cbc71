// Package recurring contains recurring expense use cases.
package recurring

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecurringCommentSuffix is appended to the template comments of materialized expenses.
const RecurringCommentSuffix = "Added by Recurring"

// MaterializeRecurring creates one expense dated today for each template,
// stamped with the caller's now as creation time.
// Templates are not filtered by day of month; that is the caller's job.
func MaterializeRecurring(templates []*entity.RecurringExpense, today, now time.Time) []*entity.Expense {
	date := entity.TruncateToDate(today)
	now = now.UTC()

	expenses := make([]*entity.Expense, 0, len(templates))
	for _, t := range templates {
		expenses = append(expenses, &entity.Expense{
			ID:            uuid.New(),
			OwnerID:       t.OwnerID,
			Amount:        t.Amount,
			Date:          date,
			Comments:      t.Comments + RecurringCommentSuffix,
			SubCategoryID: t.SubCategoryID,
			PaymentTypeID: t.PaymentTypeID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return expenses
}
