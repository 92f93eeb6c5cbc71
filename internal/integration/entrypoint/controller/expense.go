// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	monthlyUseCase *expense.GetMonthlyExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	monthlyUseCase *expense.GetMonthlyExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		monthlyUseCase: monthlyUseCase,
	}
}

// Create handles POST /expenses requests.
// An amortized request returns every created installment.
func (c *ExpenseController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	subCategoryID, err := uuid.Parse(req.SubCategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sub-category ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		OwnerID:         ownerID,
		Amount:          req.Amount,
		Date:            date,
		Comments:        req.Comments,
		SubCategoryID:   subCategoryID,
		PaymentTypeCode: req.PaymentTypeCode,
		Months:          req.Months,
	})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateExpenseResponse(output))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	input, err := parseListExpensesQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Code:    string(domainerror.ErrCodeInvalidFilter),
			Details: err.Error(),
		})
		return
	}
	input.OwnerID = ownerID

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpensePageResponse(output))
}

// Monthly handles GET /expenses/monthly requests.
func (c *ExpenseController) Monthly(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), expense.GetMonthlyExpenseInput{OwnerID: ownerID})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyExpenseResponse(output))
}

func parseListExpensesQuery(ctx *gin.Context) (expense.ListExpensesInput, error) {
	var input expense.ListExpensesInput

	if v := ctx.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, err
		}
		input.CategoryID = &id
	}
	if v := ctx.Query("sub_category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, err
		}
		input.SubCategoryID = &id
	}
	if v := ctx.Query("payment_type_code"); v != "" {
		input.PaymentTypeCode = &v
	}
	if v := ctx.Query("date_from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return input, err
		}
		input.DateFrom = &d
	}
	if v := ctx.Query("date_to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return input, err
		}
		input.DateTo = &d
	}
	if v := ctx.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return input, err
		}
		input.Page = page
	}
	if v := ctx.Query("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return input, err
		}
		input.Size = size
	}

	return input, nil
}
