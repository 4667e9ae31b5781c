package unit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=unit
type Repository interface {
	CreateUnit(ctx context.Context, u *Unit) error
	GetUnit(ctx context.Context, tenantID, id uuid.UUID) (*Unit, error)
	ListUnits(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Unit, error)
	UpdateUnit(ctx context.Context, u *Unit) error
	ListDebtors(ctx context.Context, tenantID uuid.UUID) ([]*Unit, error)

	OpeningBalance(ctx context.Context, tenantID, unitID uuid.UUID, before time.Time) (decimal.Decimal, error)
	ListMovements(ctx context.Context, tenantID, unitID uuid.UUID, from, to time.Time) ([]Movement, error)
	ComputeDrift(ctx context.Context, tenantID uuid.UUID) ([]Drift, error)
}

type ListFilter struct {
	Status *Status
	Number string
}

type CreateParams struct {
	Number     string
	OwnerName  string
	Status     Status
	MonthlyFee decimal.Decimal
	Notes      string
}

// UpdateParams never touches the balance.
type UpdateParams struct {
	Number     *string
	OwnerName  *string
	Status     *Status
	MonthlyFee *decimal.Decimal
	Notes      *string
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, params CreateParams) (*Unit, error) {
	number := strings.TrimSpace(params.Number)
	if number == "" {
		return nil, ErrNumberRequired
	}

	if params.Status == "" {
		params.Status = StatusOccupied
	}

	if !params.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if params.MonthlyFee.IsNegative() {
		return nil, ErrNegativeFee
	}

	u := &Unit{
		TenantID:   tenantID,
		Number:     number,
		OwnerName:  params.OwnerName,
		Status:     params.Status,
		MonthlyFee: params.MonthlyFee,
		Balance:    decimal.Zero,
		Notes:      params.Notes,
	}
	if err := s.repo.CreateUnit(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Unit, error) {
	return s.repo.GetUnit(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Unit, error) {
	return s.repo.ListUnits(ctx, tenantID, filter)
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, params UpdateParams) (*Unit, error) {
	u, err := s.repo.GetUnit(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if params.Number != nil {
		number := strings.TrimSpace(*params.Number)
		if number == "" {
			return nil, ErrNumberRequired
		}

		u.Number = number
	}

	if params.OwnerName != nil {
		u.OwnerName = *params.OwnerName
	}

	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, ErrInvalidStatus
		}

		u.Status = *params.Status
	}

	if params.MonthlyFee != nil {
		if params.MonthlyFee.IsNegative() {
			return nil, ErrNegativeFee
		}

		u.MonthlyFee = *params.MonthlyFee
	}

	if params.Notes != nil {
		u.Notes = *params.Notes
	}

	if err := s.repo.UpdateUnit(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// DebtorsReport lists units with a negative balance, most indebted first.
type DebtorsReport struct {
	Units     []*Unit
	TotalDebt decimal.Decimal
}

func (s *Service) Debtors(ctx context.Context, tenantID uuid.UUID) (*DebtorsReport, error) {
	units, err := s.repo.ListDebtors(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, u := range units {
		total = total.Add(u.Balance.Neg())
	}

	return &DebtorsReport{Units: units, TotalDebt: total}, nil
}

type StatementLine struct {
	Movement
	Balance decimal.Decimal
}

type AccountStatement struct {
	Unit           *Unit
	From           time.Time
	To             time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Lines          []StatementLine
}

// AccountStatement lists a unit's confirmed movements between from and to
// (inclusive) with a running balance. Zero bounds default to January 1st of
// the current year and today.
func (s *Service) AccountStatement(ctx context.Context, tenantID, unitID uuid.UUID, from, to time.Time) (*AccountStatement, error) {
	now := s.now()
	if from.IsZero() {
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	if to.IsZero() {
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if to.Before(from) {
		return nil, ErrInvalidDateSpan
	}

	u, err := s.repo.GetUnit(ctx, tenantID, unitID)
	if err != nil {
		return nil, err
	}

	opening, err := s.repo.OpeningBalance(ctx, tenantID, unitID, from)
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	movements, err := s.repo.ListMovements(ctx, tenantID, unitID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}

	st := &AccountStatement{
		Unit:           u,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		Lines:          make([]StatementLine, 0, len(movements)),
	}

	running := opening
	for _, m := range movements {
		running = running.Add(m.Signed())

		if m.Signed().IsPositive() {
			st.TotalIncome = st.TotalIncome.Add(m.Amount)
		} else {
			st.TotalExpense = st.TotalExpense.Add(m.Amount)
		}

		st.Lines = append(st.Lines, StatementLine{Movement: m, Balance: running})
	}

	st.ClosingBalance = running

	return st, nil
}

// AuditBalances recomputes every unit's balance from its confirmed history
// and reports the units whose stored value drifted.
func (s *Service) AuditBalances(ctx context.Context, tenantID uuid.UUID) ([]Drift, error) {
	drift, err := s.repo.ComputeDrift(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("computing balance drift: %w", err)
	}

	for _, d := range drift {
		slog.Warn("unit balance drift",
			"tenant_id", tenantID,
			"unit_id", d.UnitID,
			"unit", d.Number,
			"stored", d.Stored.StringFixed(2),
			"computed", d.Computed.StringFixed(2),
		)
	}

	return drift, nil
}
