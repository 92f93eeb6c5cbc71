package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// RecurringExpenseController handles recurring expense template endpoints.
type RecurringExpenseController struct {
	createUseCase *recurring.CreateRecurringExpenseUseCase
	listUseCase   *recurring.ListRecurringExpensesUseCase
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase
}

// NewRecurringExpenseController creates a new recurring expense controller instance.
func NewRecurringExpenseController(
	createUseCase *recurring.CreateRecurringExpenseUseCase,
	listUseCase *recurring.ListRecurringExpensesUseCase,
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase,
) *RecurringExpenseController {
	return &RecurringExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /recurring-expenses requests.
func (c *RecurringExpenseController) Create(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	subCategoryID, err := uuid.Parse(req.SubCategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sub-category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringExpenseInput{
		OwnerID:         ownerID,
		Amount:          req.Amount,
		DayOfMonth:      req.DayOfMonth,
		Comments:        req.Comments,
		SubCategoryID:   subCategoryID,
		PaymentTypeCode: req.PaymentTypeCode,
	})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(output))
}

// List handles GET /recurring-expenses requests.
func (c *RecurringExpenseController) List(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringExpensesInput{OwnerID: ownerID})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseListResponse(output))
}

// Delete handles DELETE /recurring-expenses/:id requests.
func (c *RecurringExpenseController) Delete(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring expense ID format",
			Code:  string(domainerror.ErrCodeRecurringExpenseNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringExpenseInput{
		ID:      id,
		OwnerID: ownerID,
	}); err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
