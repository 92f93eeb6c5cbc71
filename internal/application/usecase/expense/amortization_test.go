package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

func TestSplitAmortized_SingleMonthUnchanged(t *testing.T) {
	start := mustDate(t, "2024-03-15")

	got, err := SplitAmortized(decimal.RequireFromString("250.75"), start, 1, "Laptop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(got))
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("250.75")) {
		t.Errorf("amount = %s, want 250.75", got[0].Amount)
	}
	if !got[0].Date.Equal(start) {
		t.Errorf("date = %s, want %s", got[0].Date, start)
	}
	if got[0].Comments != "Laptop" {
		t.Errorf("comments = %q, want %q", got[0].Comments, "Laptop")
	}
}

func TestSplitAmortized_Amounts(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		months int
		want   []string
	}{
		{"even split", "120.00", 2, []string{"60", "60"}},
		{"remainder goes last", "100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"twelve months", "1000", 12, []string{"83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.33", "83.37"}},
		{"tiny amount", "0.05", 6, []string{"0", "0", "0", "0", "0", "0.05"}},
		{"truncates instead of rounding", "99.99", 6, []string{"16.66", "16.66", "16.66", "16.66", "16.66", "16.69"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			got, err := SplitAmortized(total, mustDate(t, "2024-01-10"), tt.months, "x")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.months {
				t.Fatalf("expected %d installments, got %d", tt.months, len(got))
			}

			sum := decimal.Zero
			for i, inst := range got {
				if !inst.Amount.Equal(decimal.RequireFromString(tt.want[i])) {
					t.Errorf("installment %d amount = %s, want %s", i, inst.Amount, tt.want[i])
				}
				sum = sum.Add(inst.Amount)
			}
			if !sum.Equal(total) {
				t.Errorf("installments sum to %s, want %s", sum, total)
			}
		})
	}
}

func TestSplitAmortized_DatesClampToMonthEnd(t *testing.T) {
	got, err := SplitAmortized(decimal.NewFromInt(200), mustDate(t, "2024-01-31"), 2, "Insurance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []string{"2024-01-31", "2024-02-29"}
	for i, inst := range got {
		if inst.Date.Format("2006-01-02") != wantDates[i] {
			t.Errorf("installment %d date = %s, want %s", i, inst.Date.Format("2006-01-02"), wantDates[i])
		}
	}
}

func TestSplitAmortized_Comments(t *testing.T) {
	got, err := SplitAmortized(decimal.NewFromInt(90), mustDate(t, "2024-05-01"), 3, "Phone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Phone (Part 1/3)", "Phone (Part 2/3)", "Phone (Part 3/3)"}
	for i, inst := range got {
		if inst.Comments != want[i] {
			t.Errorf("installment %d comments = %q, want %q", i, inst.Comments, want[i])
		}
	}
}

func TestSplitAmortized_InvalidMonths(t *testing.T) {
	for _, months := range []int{0, -2} {
		_, err := SplitAmortized(decimal.NewFromInt(10), mustDate(t, "2024-05-01"), months, "")
		if !errors.Is(err, domainerror.ErrInvalidAmortizationMonths) {
			t.Errorf("months=%d: expected ErrInvalidAmortizationMonths, got %v", months, err)
		}
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", 1, "2024-04-30"},
		{"2024-01-15", 0, "2024-01-15"},
		{"2024-11-30", 3, "2025-02-28"},
		{"2024-08-31", 6, "2025-02-28"},
		{"2024-12-31", 12, "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got := AddMonthsClamped(mustDate(t, tt.start), tt.months)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s", tt.start, tt.months, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}
