package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/insight"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/application/usecase/user"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/export"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ownerTokens accepts an owner id as the bearer token.
type ownerTokens struct{}

func (ownerTokens) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{UserID: id}, nil
}

type apiFixture struct {
	router      *gin.Engine
	db          *gorm.DB
	owner       uuid.UUID
	groceries   uuid.UUID
	paymentCode string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	now := time.Now().UTC()
	f := &apiFixture{db: db, owner: uuid.New(), groceries: uuid.New(), paymentCode: "CREDIT_CARD"}
	food := &model.CategoryModel{ID: uuid.New(), Label: "Food", CreatedAt: now, UpdatedAt: now}
	seed := []interface{}{
		food,
		&model.SubCategoryModel{ID: f.groceries, Label: "Groceries", CategoryID: food.ID, CreatedAt: now, UpdatedAt: now},
		&model.PaymentTypeModel{ID: uuid.New(), Code: f.paymentCode, Label: "Credit Card", CreatedAt: now, UpdatedAt: now},
		&model.UserModel{ID: f.owner, Email: "owner@example.com", Name: "Owner", MonthlyBudget: decimal.NewFromInt(1000), CreatedAt: now, UpdatedAt: now},
	}
	for _, m := range seed {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}

	expenseRepo := persistence.NewExpenseRepository(db)
	recurringRepo := persistence.NewRecurringExpenseRepository(db)
	subCategoryRepo := persistence.NewSubCategoryRepository(db)
	paymentTypeRepo := persistence.NewPaymentTypeRepository(db)
	userRepo := persistence.NewUserRepository(db)

	expenseController := NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo, subCategoryRepo, paymentTypeRepo, nil, nil),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewGetMonthlyExpenseUseCase(expenseRepo),
	)
	insightController := NewInsightController(
		insight.NewGetMonthlyInsightUseCase(expenseRepo, userRepo),
		insight.NewGetMonthlyTrendsUseCase(expenseRepo, nil, insight.DefaultTrendWindowMonths),
	)
	recurringController := NewRecurringExpenseController(
		recurring.NewCreateRecurringExpenseUseCase(recurringRepo, subCategoryRepo, paymentTypeRepo),
		recurring.NewListRecurringExpensesUseCase(recurringRepo),
		recurring.NewDeleteRecurringExpenseUseCase(recurringRepo),
	)

	userController := NewUserController(user.NewUpdateBudgetUseCase(userRepo))

	router := gin.New()
	api := router.Group("/api/v1", middleware.NewAuthMiddleware(ownerTokens{}).Authenticate())
	api.POST("/expenses", expenseController.Create)
	api.GET("/expenses", expenseController.List)
	api.GET("/expenses/monthly", expenseController.Monthly)
	api.GET("/expenses/insight", insightController.Insight)
	api.GET("/insights/monthly-trends", insightController.MonthlyTrends)
	api.GET("/insights/monthly-trends/export", insightController.ExportMonthlyTrends)
	api.POST("/recurring-expenses", recurringController.Create)
	api.GET("/recurring-expenses", recurringController.List)
	api.DELETE("/recurring-expenses/:id", recurringController.Delete)
	api.PUT("/user/budget", userController.UpdateBudget)
	f.router = router

	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, owner uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if owner != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+owner.String())
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) expenseBody(amount string, months int) map[string]interface{} {
	return map[string]interface{}{
		"amount":            amount,
		"date":              time.Now().UTC().Format("2006-01-02"),
		"comments":          "Weekly shop",
		"sub_category_id":   f.groceries.String(),
		"payment_type_code": f.paymentCode,
		"months":            months,
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %s: %v", w.Body.String(), err)
	}
}

func TestExpenseController_Create(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(f *apiFixture, body map[string]interface{})
		wantStatus int
		wantCode   string
		wantCount  int
	}{
		{"single", func(*apiFixture, map[string]interface{}) {}, http.StatusCreated, "", 1},
		{"amortized over three months", func(_ *apiFixture, b map[string]interface{}) { b["months"] = 3 }, http.StatusCreated, "", 3},
		{"unsupported months", func(_ *apiFixture, b map[string]interface{}) { b["months"] = 5 }, http.StatusBadRequest, "EXP-010005", 0},
		{"zero amount", func(_ *apiFixture, b map[string]interface{}) { b["amount"] = "0" }, http.StatusBadRequest, "EXP-010001", 0},
		{"bad date", func(_ *apiFixture, b map[string]interface{}) { b["date"] = "15/03/2024" }, http.StatusBadRequest, "EXP-010002", 0},
		{"missing date", func(_ *apiFixture, b map[string]interface{}) { delete(b, "date") }, http.StatusBadRequest, "EXP-010006", 0},
		{"unknown sub-category", func(_ *apiFixture, b map[string]interface{}) { b["sub_category_id"] = uuid.NewString() }, http.StatusNotFound, "EXP-020002", 0},
		{"unknown payment type", func(_ *apiFixture, b map[string]interface{}) { b["payment_type_code"] = "BARTER" }, http.StatusNotFound, "EXP-020003", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			body := f.expenseBody("100.00", 1)
			tt.mutate(f, body)

			w := f.do(t, http.MethodPost, "/api/v1/expenses", f.owner, body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				var errResp dto.ErrorResponse
				decode(t, w, &errResp)
				if errResp.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", errResp.Code, tt.wantCode)
				}
				return
			}
			var resp dto.CreateExpenseResponse
			decode(t, w, &resp)
			if len(resp.Expenses) != tt.wantCount {
				t.Errorf("created %d expenses, want %d", len(resp.Expenses), tt.wantCount)
			}
		})
	}
}

func TestExpenseController_CreateAmortizedAmounts(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/expenses", f.owner, f.expenseBody("100.00", 3))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp dto.CreateExpenseResponse
	decode(t, w, &resp)
	want := []string{"33.33", "33.33", "33.34"}
	for i, e := range resp.Expenses {
		if e.Amount != want[i] {
			t.Errorf("installment %d amount = %s, want %s", i, e.Amount, want[i])
		}
		if e.CategoryLabel != "Food" {
			t.Errorf("installment %d category = %s, want Food", i, e.CategoryLabel)
		}
	}
}

func TestExpenseController_ListAndMonthly(t *testing.T) {
	f := newAPIFixture(t)
	for _, amount := range []string{"10.00", "20.00", "30.25"} {
		if w := f.do(t, http.MethodPost, "/api/v1/expenses", f.owner, f.expenseBody(amount, 1)); w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}
	other := uuid.New()
	f.do(t, http.MethodPost, "/api/v1/expenses", other, f.expenseBody("99.00", 1))

	w := f.do(t, http.MethodGet, "/api/v1/expenses?size=2&page=0", f.owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var page dto.ExpensePageResponse
	decode(t, w, &page)
	if len(page.Content) != 2 || page.TotalElements != 3 || page.TotalPages != 2 || page.Last {
		t.Errorf("unexpected page: %+v", page)
	}

	w = f.do(t, http.MethodGet, "/api/v1/expenses/monthly", f.owner, nil)
	var monthly dto.MonthlyExpenseResponse
	decode(t, w, &monthly)
	if monthly.CurrentMonth != "60.25" || monthly.Last30Days != "60.25" {
		t.Errorf("unexpected totals: %+v", monthly)
	}
}

func TestExpenseController_ListRejectsBadQuery(t *testing.T) {
	f := newAPIFixture(t)

	tests := []string{
		"/api/v1/expenses?date_from=yesterday",
		"/api/v1/expenses?category_id=abc",
		"/api/v1/expenses?page=first",
		"/api/v1/expenses?date_from=2024-03-10&date_to=2024-03-01",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			w := f.do(t, http.MethodGet, path, f.owner, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestInsightController(t *testing.T) {
	f := newAPIFixture(t)
	if w := f.do(t, http.MethodPost, "/api/v1/expenses", f.owner, f.expenseBody("60.50", 1)); w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
	}

	t.Run("insight", func(t *testing.T) {
		for _, path := range []string{"/api/v1/expenses/insight", "/api/v1/expenses/insight?monthly=false"} {
			w := f.do(t, http.MethodGet, path, f.owner, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("%s status = %d: %s", path, w.Code, w.Body.String())
			}
			var resp dto.MonthlyExpenseInsightResponse
			decode(t, w, &resp)
			if resp.MonthlyBudget != "1000.00" || resp.TotalExpense != "60.50" {
				t.Errorf("%s unexpected totals: %+v", path, resp)
			}
			if len(resp.CategoryWiseExpenses) != 1 || resp.CategoryWiseExpenses[0].Category != "Food" {
				t.Errorf("%s unexpected breakdown: %+v", path, resp.CategoryWiseExpenses)
			}
		}
	})

	t.Run("invalid monthly flag", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/expenses/insight?monthly=sometimes", f.owner, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("trends", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/insights/monthly-trends", f.owner, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var rows []struct {
			Month           string            `json:"month"`
			CategoryAmounts map[string]string `json:"category_amounts"`
		}
		decode(t, w, &rows)
		month := time.Now().UTC().Format("2006-01")
		if len(rows) != 1 || rows[0].Month != month || rows[0].CategoryAmounts["Food"] != "60.50" {
			t.Errorf("unexpected trend rows: %+v", rows)
		}
	})

	t.Run("export", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/insights/monthly-trends/export", f.owner, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
			t.Errorf("content type = %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd == "" {
			t.Error("expected Content-Disposition header")
		}
		if w.Body.Len() == 0 {
			t.Error("expected workbook body")
		}
	})
}

func TestRecurringExpenseController(t *testing.T) {
	f := newAPIFixture(t)
	body := map[string]interface{}{
		"amount":            "15.99",
		"day_of_month":      5,
		"comments":          "Streaming",
		"sub_category_id":   f.groceries.String(),
		"payment_type_code": f.paymentCode,
	}

	t.Run("rejects day outside 1..28", func(t *testing.T) {
		bad := map[string]interface{}{}
		for k, v := range body {
			bad[k] = v
		}
		bad["day_of_month"] = 31
		w := f.do(t, http.MethodPost, "/api/v1/recurring-expenses", f.owner, bad)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	w := f.do(t, http.MethodPost, "/api/v1/recurring-expenses", f.owner, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created dto.RecurringExpenseResponse
	decode(t, w, &created)
	if created.Amount != "15.99" || created.DayOfMonth != 5 {
		t.Errorf("unexpected template: %+v", created)
	}

	w = f.do(t, http.MethodGet, "/api/v1/recurring-expenses", f.owner, nil)
	var list dto.RecurringExpenseListResponse
	decode(t, w, &list)
	if len(list.RecurringExpenses) != 1 {
		t.Fatalf("expected 1 template, got %d", len(list.RecurringExpenses))
	}

	deleteTests := []struct {
		name       string
		path       string
		owner      uuid.UUID
		wantStatus int
	}{
		{"unauthenticated", "/api/v1/recurring-expenses/" + created.ID, uuid.Nil, http.StatusUnauthorized},
		{"other owner", "/api/v1/recurring-expenses/" + created.ID, uuid.New(), http.StatusForbidden},
		{"missing", "/api/v1/recurring-expenses/" + uuid.NewString(), f.owner, http.StatusNotFound},
		{"malformed id", "/api/v1/recurring-expenses/abc", f.owner, http.StatusBadRequest},
		{"owner", "/api/v1/recurring-expenses/" + created.ID, f.owner, http.StatusNoContent},
		{"already deleted", "/api/v1/recurring-expenses/" + created.ID, f.owner, http.StatusNotFound},
	}
	for _, tt := range deleteTests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodDelete, tt.path, tt.owner, nil)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestUserController_UpdateBudget(t *testing.T) {
	f := newAPIFixture(t)
	newcomer := uuid.New()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantCode   string
	}{
		{"missing amount", map[string]interface{}{}, http.StatusBadRequest, "USR-010002"},
		{"zero amount", map[string]interface{}{"amount": "0"}, http.StatusBadRequest, "USR-010001"},
		{"three decimals", map[string]interface{}{"amount": "10.005"}, http.StatusBadRequest, "USR-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPut, "/api/v1/user/budget", newcomer, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			var resp dto.ErrorResponse
			decode(t, w, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
			}
		})
	}

	t.Run("budget flows into the insight", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/v1/user/budget", newcomer, map[string]interface{}{"amount": "2500.50"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var profile dto.UserResponse
		decode(t, w, &profile)
		if profile.ID != newcomer.String() || profile.MonthlyBudget != "2500.50" {
			t.Errorf("unexpected profile: %+v", profile)
		}

		w = f.do(t, http.MethodGet, "/api/v1/expenses/insight", newcomer, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("insight status = %d: %s", w.Code, w.Body.String())
		}
		var insight dto.MonthlyExpenseInsightResponse
		decode(t, w, &insight)
		if insight.MonthlyBudget != "2500.50" {
			t.Errorf("monthly_budget = %s, want 2500.50", insight.MonthlyBudget)
		}
	})

	t.Run("existing profile is updated", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/v1/user/budget", f.owner, map[string]interface{}{"amount": "750"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var profile dto.UserResponse
		decode(t, w, &profile)
		if profile.Email != "owner@example.com" || profile.MonthlyBudget != "750.00" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})
}
