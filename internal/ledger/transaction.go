package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

var (
	ErrNotFound              = errors.New("TRANSACTION_NOT_FOUND")
	ErrCategoryNotFound      = category.ErrNotFound
	ErrUnitNotFound          = unit.ErrNotFound
	ErrCategoryTypeMismatch  = errors.New("CATEGORY_TYPE_MISMATCH")
	ErrIncomeRequiresUnit    = errors.New("INCOME_REQUIRES_UNIT")
	ErrDuplicatePayment      = errors.New("DUPLICATE_PAYMENT_SAME_PERIOD")
	ErrAlreadyCancelled      = errors.New("ALREADY_CANCELLED")
	ErrCannotUpdateConfirmed = errors.New("CANNOT_UPDATE_CONFIRMED")
	ErrClosed                = errors.New("TRANSACTION_CLOSED")
	ErrInvalidTransition     = errors.New("INVALID_STATUS_TRANSITION")
	ErrInvalidAmount         = errors.New("INVALID_AMOUNT")
	ErrInvalidType           = errors.New("INVALID_TRANSACTION_TYPE")
	ErrInvalidStatus         = errors.New("INVALID_TRANSACTION_STATUS")
	ErrDateRequired          = errors.New("TRANSACTION_DATE_REQUIRED")
)

// Status represents the lifecycle state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRefunded:
		return true
	}

	return false
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// CanTransition reports whether the state machine allows moving from s to next.
// Pending may be confirmed or withdrawn; confirmed may only end.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next.Terminal()
	}

	return false
}

// Transaction is one money movement recognized against a fiscal period.
type Transaction struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	UnitID           *uuid.UUID
	CategoryID       uuid.UUID
	CreatedBy        *uuid.UUID
	Type             category.Type
	Amount           decimal.Decimal
	Description      string
	Date             time.Time
	FiscalPeriod     fiscal.Period
	Status           Status
	IsAdvancePayment bool
	IsLatePayment    bool
	IsPeriodFee      bool
	PaymentMethod    string
	ReferenceNumber  string
	Notes            string
	CategoryName     string // Loaded via JOIN
	UnitNumber       string // Loaded via JOIN
	IsRealCash       bool   // Set by List
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Delta is the transaction's signed effect on its unit's balance.
func (t *Transaction) Delta() decimal.Decimal {
	if t.Type == category.TypeIncome {
		return t.Amount
	}

	return t.Amount.Neg()
}

// classify recomputes the advance/late flags from the fiscal period and date.
func (t *Transaction) classify() {
	t.IsAdvancePayment, t.IsLatePayment = fiscal.Classify(t.FiscalPeriod, t.Date).Flags()
}

func (t *Transaction) affectsBalance() bool {
	return t.UnitID != nil && t.Status == StatusConfirmed
}

func sameUnit(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
