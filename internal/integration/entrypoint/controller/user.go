package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/user"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// UserController handles owner profile endpoints.
type UserController struct {
	updateBudgetUseCase *user.UpdateBudgetUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(updateBudgetUseCase *user.UpdateBudgetUseCase) *UserController {
	return &UserController{
		updateBudgetUseCase: updateBudgetUseCase,
	}
}

// UpdateBudget handles PUT /user/budget requests.
func (c *UserController) UpdateBudget(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
			Details: err.Error(),
		})
		return
	}

	email, _ := middleware.GetOwnerEmailFromContext(ctx)

	output, err := c.updateBudgetUseCase.Execute(ctx.Request.Context(), user.UpdateBudgetInput{
		OwnerID: ownerID,
		Email:   email,
		Amount:  *req.Amount,
	})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
