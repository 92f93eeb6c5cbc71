package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// handleExpenseError maps domain errors to HTTP responses.
func handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(getStatusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var recurringErr *domainerror.RecurringError
	if errors.As(err, &recurringErr) {
		ctx.JSON(getStatusCodeForRecurringError(recurringErr.Code), dto.ErrorResponse{
			Error: recurringErr.Message,
			Code:  string(recurringErr.Code),
		})
		return
	}

	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		status := http.StatusInternalServerError
		if insightErr.Code == domainerror.ErrCodeInsightUnavailable {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeSubCategoryNotFound,
		domainerror.ErrCodePaymentTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeCommentsTooLong,
		domainerror.ErrCodeInvalidPaymentTypeCode,
		domainerror.ErrCodeInvalidAmortizationMonths,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidFilter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForRecurringError maps recurring expense error codes to HTTP status codes.
func getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringExpenseNotFound,
		domainerror.ErrCodeRecurringSubCategoryAbsent,
		domainerror.ErrCodeRecurringPaymentTypeAbsent:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedRecurring:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeInvalidRecurringAmount,
		domainerror.ErrCodeRecurringCommentsTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireOwner reads the authenticated owner or writes a 401.
func requireOwner(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return id, false
	}
	return id, true
}
