package insight

import (
	"context"
	"errors"
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
	details   []*entity.ExpenseDetail
	totals    []entity.MonthlyCategoryTotal
	findErr   error
	totalsErr error

	mu          sync.Mutex
	lastFrom    time.Time
	lastTo      time.Time
	totalsCalls int
}

func (r *fakeExpenseRepository) Create(context.Context, *entity.Expense) error {
	return errors.New("not implemented")
}

func (r *fakeExpenseRepository) CreateBatch(context.Context, []*entity.Expense) error {
	return errors.New("not implemented")
}

func (r *fakeExpenseRepository) FindByOwnerInRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.ExpenseDetail, error) {
	r.mu.Lock()
	r.lastFrom, r.lastTo = from, to
	r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	filter := valueobject.ComposeExpenseFilter(valueobject.ExpenseFilterInput{OwnerID: ownerID, DateFrom: &from, DateTo: &to})
	var out []*entity.ExpenseDetail
	for _, d := range r.details {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepository) GetMonthlyCategoryTotals(_ context.Context, _ uuid.UUID, from, to time.Time) ([]entity.MonthlyCategoryTotal, error) {
	r.mu.Lock()
	r.lastFrom, r.lastTo = from, to
	r.totalsCalls++
	r.mu.Unlock()
	if r.totalsErr != nil {
		return nil, r.totalsErr
	}
	return r.totals, nil
}

func (r *fakeExpenseRepository) FindByFilter(context.Context, valueobject.ExpenseFilter, valueobject.PageRequest, []valueobject.SortOrder) (*adapter.ExpensePage, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) SumByOwnerInRange(context.Context, uuid.UUID, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("not implemented")
}

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) Save(context.Context, *entity.User) error {
	return errors.New("not implemented")
}

type fakeTrendCache struct {
	entries map[string][]entity.MonthlyTrendRow
	getErr  error
	setErr  error
}

func newFakeTrendCache() *fakeTrendCache {
	return &fakeTrendCache{entries: make(map[string][]entity.MonthlyTrendRow)}
}

func (c *fakeTrendCache) key(ownerID uuid.UUID, month string) string {
	return ownerID.String() + ":" + month
}

func (c *fakeTrendCache) Get(_ context.Context, ownerID uuid.UUID, month string) ([]entity.MonthlyTrendRow, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	rows, ok := c.entries[c.key(ownerID, month)]
	return rows, ok, nil
}

func (c *fakeTrendCache) Set(_ context.Context, ownerID uuid.UUID, month string, rows []entity.MonthlyTrendRow) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[c.key(ownerID, month)] = rows
	return nil
}

func (c *fakeTrendCache) Invalidate(context.Context, uuid.UUID) error {
	c.entries = make(map[string][]entity.MonthlyTrendRow)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dated(owner uuid.UUID, category, subCategory, on, amount string) *entity.ExpenseDetail {
	return &entity.ExpenseDetail{
		Expense: &entity.Expense{
			ID:      uuid.New(),
			OwnerID: owner,
			Amount:  decimal.RequireFromString(amount),
			Date:    mustDate(on),
		},
		CategoryLabel:    category,
		SubCategoryLabel: subCategory,
	}
}
