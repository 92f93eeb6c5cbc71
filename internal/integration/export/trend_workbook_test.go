package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func TestWriteTrendWorkbook(t *testing.T) {
	rows := []entity.MonthlyTrendRow{
		{
			Month: "2023-01",
			CategoryAmounts: []entity.CategoryAmount{
				{Category: "A", Amount: decimal.RequireFromString("10")},
				{Category: "B", Amount: decimal.RequireFromString("20.25")},
			},
		},
		{
			Month: "2023-02",
			CategoryAmounts: []entity.CategoryAmount{
				{Category: "A", Amount: decimal.RequireFromString("30")},
				{Category: "B", Amount: decimal.Zero},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteTrendWorkbook(&buf, rows, []string{"A", "B"}); err != nil {
		t.Fatalf("WriteTrendWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != TrendSheetName {
		t.Errorf("sheet = %s, want %s", got, TrendSheetName)
	}

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Month"},
		{"B1", "A"},
		{"C1", "B"},
		{"D1", "Total"},
		{"A2", "2023-01"},
		{"B2", "10"},
		{"C2", "20.25"},
		{"D2", "30.25"},
		{"A3", "2023-02"},
		{"C3", "0"},
		{"A4", "Total"},
		{"B4", "40"},
		{"D4", "60.25"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(TrendSheetName, tt.cell, excelize.Options{RawCellValue: true})
			if err != nil {
				t.Fatalf("GetCellValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestWriteTrendWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTrendWorkbook(&buf, []entity.MonthlyTrendRow{}, []string{}); err != nil {
		t.Fatalf("WriteTrendWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(TrendSheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header and summary", len(rows))
	}
	if rows[0][0] != "Month" || rows[1][0] != "Total" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestTrendFileName(t *testing.T) {
	if got := TrendFileName("2024-03"); got != "monthly-trends-2024-03.xlsx" {
		t.Errorf("TrendFileName() = %s", got)
	}
}
