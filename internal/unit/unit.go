package unit

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
)

var (
	ErrNotFound        = errors.New("UNIT_NOT_FOUND")
	ErrNumberRequired  = errors.New("UNIT_NUMBER_REQUIRED")
	ErrNumberTaken     = errors.New("UNIT_NUMBER_TAKEN")
	ErrInvalidStatus   = errors.New("INVALID_UNIT_STATUS")
	ErrNegativeFee     = errors.New("NEGATIVE_MONTHLY_FEE")
	ErrInvalidDateSpan = errors.New("INVALID_DATE_RANGE")
)

type Status string

const (
	StatusOccupied    Status = "occupied"
	StatusVacant      Status = "vacant"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	return s == StatusOccupied || s == StatusVacant || s == StatusMaintenance
}

// Unit is a housing unit. Balance is positive when the unit has credit and
// negative when it owes; it only moves through ledger operations.
type Unit struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Number     string
	OwnerName  string
	Status     Status
	MonthlyFee decimal.Decimal
	Balance    decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Movement is one confirmed transaction on a unit's account statement.
type Movement struct {
	TransactionID uuid.UUID
	Date          time.Time
	Type          category.Type
	CategoryName  string
	Description   string
	FiscalPeriod  string
	Amount        decimal.Decimal
}

// Signed is the movement's effect on the unit balance.
func (m Movement) Signed() decimal.Decimal {
	if m.Type == category.TypeIncome {
		return m.Amount
	}

	return m.Amount.Neg()
}

// Drift is a unit whose stored balance disagrees with its confirmed history.
type Drift struct {
	UnitID   uuid.UUID
	Number   string
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

func (d Drift) Difference() decimal.Decimal {
	return d.Stored.Sub(d.Computed)
}
