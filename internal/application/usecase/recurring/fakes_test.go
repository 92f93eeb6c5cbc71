package recurring

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

type fakeExpenseRepository struct {
	created []*entity.Expense
	// failFor makes Create fail for expenses whose comments start with the key.
	failFor map[string]bool
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	for prefix := range r.failFor {
		if len(expense.Comments) >= len(prefix) && expense.Comments[:len(prefix)] == prefix {
			return errors.New("constraint violation")
		}
	}
	r.created = append(r.created, expense)
	return nil
}

func (r *fakeExpenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	for _, e := range expenses {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeExpenseRepository) FindByOwnerInRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.ExpenseDetail, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) GetMonthlyCategoryTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]entity.MonthlyCategoryTotal, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) FindByFilter(context.Context, valueobject.ExpenseFilter, valueobject.PageRequest, []valueobject.SortOrder) (*adapter.ExpensePage, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) SumByOwnerInRange(context.Context, uuid.UUID, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("not implemented")
}

type fakeRecurringRepository struct {
	templates []*entity.RecurringExpense
	labels    map[uuid.UUID]string
	findErr   error
	deleted   []uuid.UUID
}

func (r *fakeRecurringRepository) Create(_ context.Context, recurring *entity.RecurringExpense) error {
	r.templates = append(r.templates, recurring)
	return nil
}

func (r *fakeRecurringRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrRecurringExpenseNotFound
}

func (r *fakeRecurringRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.RecurringExpenseDetail, error) {
	var out []*entity.RecurringExpenseDetail
	for _, t := range r.templates {
		if t.OwnerID == ownerID {
			out = append(out, &entity.RecurringExpenseDetail{
				RecurringExpense: t,
				SubCategoryLabel: r.labels[t.SubCategoryID],
			})
		}
	}
	return out, nil
}

func (r *fakeRecurringRepository) FindByDayOfMonth(_ context.Context, day int) ([]*entity.RecurringExpense, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*entity.RecurringExpense
	for _, t := range r.templates {
		if t.DayOfMonth == day {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSubCategoryRepository struct {
	subCategories map[uuid.UUID]*entity.SubCategory
}

func (r *fakeSubCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	if sc, ok := r.subCategories[id]; ok {
		return sc, nil
	}
	return nil, domainerror.ErrSubCategoryNotFound
}

type fakePaymentTypeRepository struct {
	paymentTypes map[string]*entity.PaymentType
}

func (r *fakePaymentTypeRepository) FindByCode(_ context.Context, code string) (*entity.PaymentType, error) {
	if pt, ok := r.paymentTypes[code]; ok {
		return pt, nil
	}
	return nil, domainerror.ErrPaymentTypeNotFound
}

type fakeTrendCache struct {
	invalidated []uuid.UUID
}

func (c *fakeTrendCache) Get(context.Context, uuid.UUID, string) ([]entity.MonthlyTrendRow, bool, error) {
	return nil, false, nil
}

func (c *fakeTrendCache) Set(context.Context, uuid.UUID, string, []entity.MonthlyTrendRow) error {
	return nil
}

func (c *fakeTrendCache) Invalidate(_ context.Context, ownerID uuid.UUID) error {
	c.invalidated = append(c.invalidated, ownerID)
	return nil
}

type fakePublisher struct {
	events []adapter.ExpensesCreatedEvent
}

func (p *fakePublisher) PublishExpensesCreated(_ context.Context, event adapter.ExpensesCreatedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func template(owner uuid.UUID, day int, amount, comments string) *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:            uuid.New(),
		OwnerID:       owner,
		Amount:        decimal.RequireFromString(amount),
		DayOfMonth:    day,
		Comments:      comments,
		SubCategoryID: uuid.New(),
		PaymentTypeID: uuid.New(),
	}
}
