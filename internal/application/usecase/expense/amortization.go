// Package expense contains expense-related use cases.
package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Installment is one month's share of an amortized expense.
type Installment struct {
	Amount   decimal.Decimal
	Date     time.Time
	Comments string
}

// SplitAmortized spreads total over months consecutive monthly installments.
//
// Every installment but the last gets total/months truncated to two decimals;
// the last one absorbs the remainder so the installments always sum to total.
// Installment i is dated i months after start, clamped to the end of shorter
// months, and its comment gets a " (Part i/n)" suffix. A single month returns
// the expense unchanged.
func SplitAmortized(total decimal.Decimal, start time.Time, months int, comments string) ([]Installment, error) {
	if months <= 0 {
		return nil, domainerror.ErrInvalidAmortizationMonths
	}

	if months == 1 {
		return []Installment{{Amount: total, Date: start, Comments: comments}}, nil
	}

	perMonth, _ := total.QuoRem(decimal.NewFromInt(int64(months)), 2)
	last := total.Sub(perMonth.Mul(decimal.NewFromInt(int64(months - 1))))

	installments := make([]Installment, months)
	for i := 0; i < months; i++ {
		amount := perMonth
		if i == months-1 {
			amount = last
		}
		installments[i] = Installment{
			Amount:   amount,
			Date:     AddMonthsClamped(start, i),
			Comments: fmt.Sprintf("%s (Part %d/%d)", comments, i+1, months),
		}
	}

	return installments, nil
}

// AddMonthsClamped adds months to t keeping the day of month when it exists,
// otherwise using the last day of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
