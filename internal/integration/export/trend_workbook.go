// Package export renders spending reports as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

const (
	// TrendSheetName is the name of the worksheet holding the trend matrix.
	TrendSheetName = "Monthly Trends"
	// ContentType is the MIME type of the produced workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteTrendWorkbook writes the trend matrix as an xlsx workbook.
// Row 1 holds the headers, one row per month follows, and the last row holds column totals.
func WriteTrendWorkbook(w io.Writer, rows []entity.MonthlyTrendRow, categories []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TrendSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
		Border: thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		NumFmt: 4,
		Border: thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("failed to create summary style: %w", err)
	}

	headers := make([]interface{}, 0, len(categories)+2)
	headers = append(headers, "Month")
	for _, c := range categories {
		headers = append(headers, c)
	}
	headers = append(headers, "Total")
	lastCol := len(headers)

	if err := f.SetSheetRow(TrendSheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err := setRowStyle(f, 1, lastCol, headerStyle); err != nil {
		return err
	}

	lastColName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(TrendSheetName, "A", "A", 12); err != nil {
		return err
	}
	if lastCol > 1 {
		if err := f.SetColWidth(TrendSheetName, "B", lastColName, 16); err != nil {
			return err
		}
	}

	columnTotals := make([]decimal.Decimal, len(categories))
	grandTotal := decimal.Zero

	for i, row := range rows {
		rowNum := i + 2
		values := make([]interface{}, 0, lastCol)
		values = append(values, row.Month)

		rowTotal := decimal.Zero
		for j, c := range categories {
			amount := row.AmountFor(c)
			rowTotal = rowTotal.Add(amount)
			columnTotals[j] = columnTotals[j].Add(amount)
			values = append(values, amount.InexactFloat64())
		}
		grandTotal = grandTotal.Add(rowTotal)
		values = append(values, rowTotal.InexactFloat64())

		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TrendSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %s: %w", row.Month, err)
		}
		if err := setRowStyle(f, rowNum, lastCol, dataStyle); err != nil {
			return err
		}
	}

	summaryRow := len(rows) + 2
	summary := make([]interface{}, 0, lastCol)
	summary = append(summary, "Total")
	for _, t := range columnTotals {
		summary = append(summary, t.InexactFloat64())
	}
	summary = append(summary, grandTotal.InexactFloat64())

	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(TrendSheetName, cell, &summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := setRowStyle(f, summaryRow, lastCol, summaryStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// TrendFileName returns the download name of a trend workbook for the month.
func TrendFileName(month string) string {
	return fmt.Sprintf("monthly-trends-%s.xlsx", month)
}

func setRowStyle(f *excelize.File, row, lastCol, style int) error {
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(lastCol, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(TrendSheetName, from, to, style)
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}
