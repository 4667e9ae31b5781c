package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("CATEGORY_NOT_FOUND")
	ErrInvalidType    = errors.New("INVALID_CATEGORY_TYPE")
	ErrInvalidPurpose = errors.New("INVALID_CATEGORY_PURPOSE")
	ErrNameRequired   = errors.New("CATEGORY_NAME_REQUIRED")
)

// Type is the direction of money a category classifies.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Purpose tags categories the ledger treats specially.
type Purpose string

const (
	PurposeNormal Purpose = "normal"
	// PurposeVirtualIssuance marks the non-cash charge used to put a unit's
	// monthly debt on the books. It never counts as real cash out.
	PurposeVirtualIssuance Purpose = "virtual_issuance"
	// PurposeMaintenanceFee is the recurring unit payment guarded against
	// duplicates per fiscal period.
	PurposeMaintenanceFee Purpose = "maintenance_fee"
	// PurposeUnitlessIncome may be recorded as income without a unit (bank interest, etc).
	PurposeUnitlessIncome Purpose = "unitless_income"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeNormal, PurposeVirtualIssuance, PurposeMaintenanceFee, PurposeUnitlessIncome:
		return true
	}

	return false
}

// Category classifies a transaction. TenantID is nil for system-shared categories.
type Category struct {
	ID              uuid.UUID
	TenantID        *uuid.UUID
	Name            string
	Type            Type
	Purpose         Purpose
	IsCommonExpense bool
	IsActive        bool
	CreatedAt       time.Time
}

func (c *Category) IsSystem() bool {
	return c.TenantID == nil
}

// VisibleTo reports whether the tenant may reference this category.
func (c *Category) VisibleTo(tenantID uuid.UUID) bool {
	return c.TenantID == nil || *c.TenantID == tenantID
}
