package controller

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/insight"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/export"
)

// InsightController handles spending insight and trend endpoints.
type InsightController struct {
	insightUseCase *insight.GetMonthlyInsightUseCase
	trendsUseCase  *insight.GetMonthlyTrendsUseCase
	now            func() time.Time
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	insightUseCase *insight.GetMonthlyInsightUseCase,
	trendsUseCase *insight.GetMonthlyTrendsUseCase,
) *InsightController {
	return &InsightController{
		insightUseCase: insightUseCase,
		trendsUseCase:  trendsUseCase,
		now:            time.Now,
	}
}

// Insight handles GET /expenses/insight requests.
// monthly=true (default) covers the current calendar month, monthly=false the last 30 days.
func (c *InsightController) Insight(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	monthly := true
	if v := ctx.Query("monthly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "monthly must be true or false",
			})
			return
		}
		monthly = parsed
	}

	output, err := c.insightUseCase.Execute(ctx.Request.Context(), insight.GetMonthlyInsightInput{
		OwnerID: ownerID,
		Monthly: monthly,
	})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyExpenseInsightResponse(output.Insight))
}

// MonthlyTrends handles GET /insights/monthly-trends requests.
func (c *InsightController) MonthlyTrends(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), insight.GetMonthlyTrendsInput{OwnerID: ownerID})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(output.Rows))
}

// ExportMonthlyTrends handles GET /insights/monthly-trends/export requests.
// It returns the trend matrix as an xlsx download.
func (c *InsightController) ExportMonthlyTrends(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), insight.GetMonthlyTrendsInput{OwnerID: ownerID})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTrendWorkbook(&buf, output.Rows, output.Categories); err != nil {
		slog.Error("Failed to render trend workbook", "owner_id", ownerID, "error", err)
		handleExpenseError(ctx, domainerror.NewInsightError(
			domainerror.ErrCodeTrendExportFailed,
			"Failed to export monthly trends",
			domainerror.ErrTrendExportFailed,
		))
		return
	}

	fileName := export.TrendFileName(c.now().UTC().Format("2006-01"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
