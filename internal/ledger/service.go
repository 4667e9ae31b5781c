package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetTransaction(ctx context.Context, tenantID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	Summarize(ctx context.Context, tenantID uuid.UUID, filter ListFilter, cash category.CashFilter) (*Summary, error)

	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is one ledger unit of work: the transaction row and the unit balance
// commit together or not at all.
type Tx interface {
	UnitExists(ctx context.Context, tenantID, unitID uuid.UUID) (bool, error)
	GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Transaction, error)
	HasLivePeriodFee(ctx context.Context, tenantID, unitID, categoryID uuid.UUID, period fiscal.Period, exclude uuid.UUID) (bool, error)
	InsertTransaction(ctx context.Context, t *Transaction) error
	UpdateTransaction(ctx context.Context, t *Transaction) error
	AdjustBalance(ctx context.Context, tenantID, unitID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	Commit() error
	Rollback() error
}

// Categories is the slice of the category service the ledger depends on.
type Categories interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*category.Category, error)
	CashFilter(ctx context.Context, tenantID uuid.UUID) (category.CashFilter, error)
}

type Service struct {
	repo       Repository
	categories Categories
}

func NewService(repo Repository, categories Categories) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateParams struct {
	UnitID          *uuid.UUID
	CategoryID      uuid.UUID
	Type            category.Type
	Amount          decimal.Decimal
	Description     string
	Date            time.Time
	FiscalPeriod    fiscal.Period // Defaults to the month of Date
	Status          Status        // Defaults to confirmed
	PaymentMethod   string
	ReferenceNumber string
	Notes           string
	CreatedBy       *uuid.UUID
}

// UpdateParams is a patch; nil fields are left untouched.
type UpdateParams struct {
	Amount          *decimal.Decimal
	Description     *string
	Date            *time.Time
	FiscalPeriod    *fiscal.Period
	CategoryID      *uuid.UUID
	UnitID          *uuid.UUID
	ClearUnit       bool
	Status          *Status
	PaymentMethod   *string
	ReferenceNumber *string
	Notes           *string
}

type ListFilter struct {
	Type         *category.Type
	Status       *Status
	UnitID       *uuid.UUID
	CategoryID   *uuid.UUID
	FiscalPeriod *fiscal.Period
	StartDate    *time.Time
	EndDate      *time.Time
	AdvanceOnly  bool
	LateOnly     bool
	Limit        int
	Offset       int
}

// Result carries the unit's balance after the operation when one was touched.
type Result struct {
	Transaction *Transaction
	UnitBalance *decimal.Decimal
}

type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	Count         int
	AdvanceCount  int
	AdvanceAmount decimal.Decimal
	LateCount     int
	LateAmount    decimal.Decimal
}

func (s Summary) Net() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

type ListResult struct {
	Transactions []*Transaction
	Summary      *Summary
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, params CreateParams) (*Result, error) {
	if !params.Type.Valid() {
		return nil, ErrInvalidType
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if params.Date.IsZero() {
		return nil, ErrDateRequired
	}

	if params.Status == "" {
		params.Status = StatusConfirmed
	}

	if params.Status != StatusConfirmed && params.Status != StatusPending {
		return nil, ErrInvalidStatus
	}

	if params.FiscalPeriod.IsZero() {
		params.FiscalPeriod = fiscal.PeriodOf(params.Date)
	}

	cat, err := s.resolveCategory(ctx, tenantID, params.CategoryID, params.Type, params.UnitID)
	if err != nil {
		return nil, err
	}

	t := &Transaction{
		TenantID:        tenantID,
		UnitID:          params.UnitID,
		CategoryID:      cat.ID,
		CreatedBy:       params.CreatedBy,
		Type:            params.Type,
		Amount:          params.Amount,
		Description:     strings.TrimSpace(params.Description),
		Date:            params.Date,
		FiscalPeriod:    params.FiscalPeriod,
		Status:          params.Status,
		IsPeriodFee:     isPeriodFee(cat, params.UnitID),
		PaymentMethod:   params.PaymentMethod,
		ReferenceNumber: params.ReferenceNumber,
		Notes:           params.Notes,
		CategoryName:    cat.Name,
	}
	t.classify()

	ltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer ltx.Rollback()

	if t.UnitID != nil {
		if err := requireUnit(ctx, ltx, tenantID, *t.UnitID); err != nil {
			return nil, err
		}
	}

	if err := guardPeriodFee(ctx, ltx, t); err != nil {
		return nil, err
	}

	if err := ltx.InsertTransaction(ctx, t); err != nil {
		return nil, err
	}

	res := &Result{Transaction: t}

	if t.affectsBalance() {
		balance, err := ltx.AdjustBalance(ctx, tenantID, *t.UnitID, t.Delta())
		if err != nil {
			return nil, fmt.Errorf("adjust balance: %w", err)
		}

		res.UnitBalance = &balance
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger tx: %w", err)
	}

	return res, nil
}

// Update applies a patch. Confirmed transactions keep their amount, category
// and unit; only leaving the confirmed state touches the balance, and it is
// reversed with the values held before the patch.
func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, params UpdateParams) (*Result, error) {
	ltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer ltx.Rollback()

	t, err := ltx.GetForUpdate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	before := *t

	if t.Status.Terminal() {
		if params.Status != nil && params.Status.Terminal() {
			return nil, ErrAlreadyCancelled
		}

		return nil, ErrClosed
	}

	if err := s.applyPatch(ctx, t, params); err != nil {
		return nil, err
	}

	if t.UnitID != nil && !sameUnit(t.UnitID, before.UnitID) {
		if err := requireUnit(ctx, ltx, tenantID, *t.UnitID); err != nil {
			return nil, err
		}
	}

	if t.IsPeriodFee && periodFeeKeyChanged(&before, t) {
		if err := guardPeriodFee(ctx, ltx, t); err != nil {
			return nil, err
		}
	}

	if err := ltx.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}

	res, err := settle(ctx, ltx, &before, t)
	if err != nil {
		return nil, err
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger tx: %w", err)
	}

	return res, nil
}

// Cancel moves a live transaction to cancelled, reversing its balance effect
// if it was confirmed.
func (s *Service) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*Result, error) {
	ltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer ltx.Rollback()

	t, err := ltx.GetForUpdate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if t.Status.Terminal() {
		return nil, ErrAlreadyCancelled
	}

	before := *t
	t.Status = StatusCancelled

	if err := ltx.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}

	res, err := settle(ctx, ltx, &before, t)
	if err != nil {
		return nil, err
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger tx: %w", err)
	}

	return res, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) (*ListResult, error) {
	cash, err := s.categories.CashFilter(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve cash filter: %w", err)
	}

	txs, err := s.repo.ListTransactions(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	for _, t := range txs {
		t.IsRealCash = cash.IsRealCash(t.CategoryID, t.Type)
	}

	summary, err := s.repo.Summarize(ctx, tenantID, filter, cash)
	if err != nil {
		return nil, err
	}

	return &ListResult{Transactions: txs, Summary: summary}, nil
}

func (s *Service) applyPatch(ctx context.Context, t *Transaction, params UpdateParams) error {
	confirmed := t.Status == StatusConfirmed

	if params.Amount != nil && !params.Amount.Equal(t.Amount) {
		if confirmed {
			return ErrCannotUpdateConfirmed
		}

		if !params.Amount.IsPositive() {
			return ErrInvalidAmount
		}

		t.Amount = *params.Amount
	}

	unitID := t.UnitID
	if params.ClearUnit {
		unitID = nil
	} else if params.UnitID != nil {
		unitID = params.UnitID
	}

	categoryID := t.CategoryID
	if params.CategoryID != nil {
		categoryID = *params.CategoryID
	}

	if categoryID != t.CategoryID || !sameUnit(unitID, t.UnitID) {
		if confirmed {
			return ErrCannotUpdateConfirmed
		}

		cat, err := s.resolveCategory(ctx, t.TenantID, categoryID, t.Type, unitID)
		if err != nil {
			return err
		}

		t.CategoryID = cat.ID
		t.CategoryName = cat.Name
		t.UnitID = unitID
		t.IsPeriodFee = isPeriodFee(cat, unitID)
	}

	if params.Status != nil && *params.Status != t.Status {
		if !params.Status.Valid() {
			return ErrInvalidStatus
		}

		if !t.Status.CanTransition(*params.Status) {
			return ErrInvalidTransition
		}

		t.Status = *params.Status
	}

	if params.Date != nil {
		t.Date = *params.Date
	}

	if params.FiscalPeriod != nil {
		t.FiscalPeriod = *params.FiscalPeriod
	}

	if params.Description != nil {
		t.Description = strings.TrimSpace(*params.Description)
	}

	if params.PaymentMethod != nil {
		t.PaymentMethod = *params.PaymentMethod
	}

	if params.ReferenceNumber != nil {
		t.ReferenceNumber = *params.ReferenceNumber
	}

	if params.Notes != nil {
		t.Notes = *params.Notes
	}

	t.classify()

	return nil
}

func (s *Service) resolveCategory(ctx context.Context, tenantID, categoryID uuid.UUID, t category.Type, unitID *uuid.UUID) (*category.Category, error) {
	cat, err := s.categories.Get(ctx, tenantID, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}

		return nil, fmt.Errorf("get category: %w", err)
	}

	if !cat.IsActive {
		return nil, ErrCategoryNotFound
	}

	if cat.Type != t {
		return nil, ErrCategoryTypeMismatch
	}

	if t == category.TypeIncome && unitID == nil && cat.Purpose != category.PurposeUnitlessIncome {
		return nil, ErrIncomeRequiresUnit
	}

	return cat, nil
}

// settle applies the balance effect of moving from before to after. Entering
// confirmed applies the new delta; leaving it reverses the old one.
func settle(ctx context.Context, ltx Tx, before, after *Transaction) (*Result, error) {
	res := &Result{Transaction: after}

	var (
		unitID uuid.UUID
		delta  decimal.Decimal
	)

	switch {
	case before.affectsBalance() && !after.affectsBalance():
		unitID, delta = *before.UnitID, before.Delta().Neg()
	case !before.affectsBalance() && after.affectsBalance():
		unitID, delta = *after.UnitID, after.Delta()
	default:
		return res, nil
	}

	balance, err := ltx.AdjustBalance(ctx, after.TenantID, unitID, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust balance: %w", err)
	}

	res.UnitBalance = &balance

	return res, nil
}

func requireUnit(ctx context.Context, ltx Tx, tenantID, unitID uuid.UUID) error {
	ok, err := ltx.UnitExists(ctx, tenantID, unitID)
	if err != nil {
		return fmt.Errorf("check unit: %w", err)
	}

	if !ok {
		return ErrUnitNotFound
	}

	return nil
}

// guardPeriodFee rejects a second live maintenance-fee payment for the same
// unit and period. The partial unique index backs this check under races.
func guardPeriodFee(ctx context.Context, ltx Tx, t *Transaction) error {
	if !t.IsPeriodFee || t.Status.Terminal() {
		return nil
	}

	dup, err := ltx.HasLivePeriodFee(ctx, t.TenantID, *t.UnitID, t.CategoryID, t.FiscalPeriod, t.ID)
	if err != nil {
		return fmt.Errorf("check duplicate payment: %w", err)
	}

	if dup {
		return ErrDuplicatePayment
	}

	return nil
}

func isPeriodFee(cat *category.Category, unitID *uuid.UUID) bool {
	return cat.Type == category.TypeIncome && cat.Purpose == category.PurposeMaintenanceFee && unitID != nil
}

func periodFeeKeyChanged(before, after *Transaction) bool {
	return !before.IsPeriodFee ||
		before.CategoryID != after.CategoryID ||
		!sameUnit(before.UnitID, after.UnitID) ||
		before.FiscalPeriod != after.FiscalPeriod
}
