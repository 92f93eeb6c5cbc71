package expense

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

type fakeExpenseRepository struct {
	mu        sync.Mutex
	details   []*entity.ExpenseDetail
	created   []*entity.Expense
	createErr error
	sumErr    error
	lastSort  []valueobject.SortOrder
}

func (r *fakeExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.CreateBatch(ctx, []*entity.Expense{expense})
}

func (r *fakeExpenseRepository) CreateBatch(_ context.Context, expenses []*entity.Expense) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, expenses...)
	return nil
}

func (r *fakeExpenseRepository) FindByOwnerInRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.ExpenseDetail, error) {
	filter := valueobject.ComposeExpenseFilter(valueobject.ExpenseFilterInput{OwnerID: ownerID, DateFrom: &from, DateTo: &to})
	var out []*entity.ExpenseDetail
	for _, d := range r.details {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepository) GetMonthlyCategoryTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]entity.MonthlyCategoryTotal, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) FindByFilter(_ context.Context, filter valueobject.ExpenseFilter, page valueobject.PageRequest, order []valueobject.SortOrder) (*adapter.ExpensePage, error) {
	r.lastSort = order
	var matched []*entity.ExpenseDetail
	for _, d := range r.details {
		if filter.Matches(d) {
			matched = append(matched, d)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Expense.Date.After(matched[j].Expense.Date)
	})

	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}

	return &adapter.ExpensePage{
		Content: matched[start:end],
		Meta:    valueobject.NewPageMeta(page, int64(len(matched))),
	}, nil
}

func (r *fakeExpenseRepository) SumByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	if r.sumErr != nil {
		return decimal.Zero, r.sumErr
	}
	details, _ := r.FindByOwnerInRange(ctx, ownerID, from, to)
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Expense.Amount)
	}
	return total, nil
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
	err         error
}

func (c *fakeTrendCache) Get(context.Context, uuid.UUID, string) ([]entity.MonthlyTrendRow, bool, error) {
	return nil, false, nil
}

func (c *fakeTrendCache) Set(context.Context, uuid.UUID, string, []entity.MonthlyTrendRow) error {
	return nil
}

func (c *fakeTrendCache) Invalidate(_ context.Context, ownerID uuid.UUID) error {
	c.invalidated = append(c.invalidated, ownerID)
	return c.err
}

type fakePublisher struct {
	events []adapter.ExpensesCreatedEvent
	err    error
}

func (p *fakePublisher) PublishExpensesCreated(_ context.Context, event adapter.ExpensesCreatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
