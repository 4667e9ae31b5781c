package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

const topExpenseCategories = 5

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	OpeningRemainder(ctx context.Context, tenantID uuid.UUID, before time.Time, cash category.CashFilter) (decimal.Decimal, error)
	PeriodFlow(ctx context.Context, tenantID uuid.UUID, period fiscal.Period, cash category.CashFilter) (*Flow, error)
	ReserveSummary(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]ReserveLine, error)
	AdvanceDetail(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]PaymentDetail, error)
	LateDetail(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]PaymentDetail, error)
	ExpenseByCategory(ctx context.Context, tenantID uuid.UUID, period fiscal.Period, cash category.CashFilter, limit int) ([]CategoryExpense, error)
}

type CashFilters interface {
	CashFilter(ctx context.Context, tenantID uuid.UUID) (category.CashFilter, error)
}

type Service struct {
	repo    Repository
	filters CashFilters
	loc     *time.Location
	now     func() time.Time
}

func NewService(repo Repository, filters CashFilters, loc *time.Location) *Service {
	return &Service{repo: repo, filters: filters, loc: loc, now: time.Now}
}

// Generate builds the statement for period, or for the current month in the
// service's timezone when period is zero.
func (s *Service) Generate(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (*Statement, error) {
	if period.IsZero() {
		period = fiscal.Current(s.now(), s.loc)
	}

	cash, err := s.filters.CashFilter(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve cash filter: %w", err)
	}

	opening, err := s.repo.OpeningRemainder(ctx, tenantID, period.Start(), cash)
	if err != nil {
		return nil, fmt.Errorf("opening remainder: %w", err)
	}

	flow, err := s.repo.PeriodFlow(ctx, tenantID, period, cash)
	if err != nil {
		return nil, fmt.Errorf("period flow: %w", err)
	}

	reserve, err := s.repo.ReserveSummary(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("reserve summary: %w", err)
	}

	advances, err := s.repo.AdvanceDetail(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("advance detail: %w", err)
	}

	late, err := s.repo.LateDetail(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("late detail: %w", err)
	}

	expenses, err := s.repo.ExpenseByCategory(ctx, tenantID, period, cash, topExpenseCategories)
	if err != nil {
		return nil, fmt.Errorf("expense by category: %w", err)
	}

	return &Statement{
		Period:            period,
		PeriodLabel:       period.Label(),
		Income:            flow.Income,
		Totals:            Reconcile(opening, *flow, reserve),
		ReserveSummary:    reserve,
		AdvanceDetail:     advances,
		LateDetail:        late,
		ExpenseByCategory: expenses,
	}, nil
}
