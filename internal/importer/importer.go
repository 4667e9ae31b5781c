// Package importer posts bank statement deposits to the ledger as unit
// payments.
package importer

import (
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/importer/bank"
)

var ErrNoPaymentCategory = errors.New("PAYMENT_CATEGORY_NOT_FOUND")

type Importer interface {
	Parse(r io.Reader) ([]bank.Movement, error)
}

// Preview is a deposit with the unit its payer was matched to, if any.
type Preview struct {
	Movement bank.Movement
	UnitID   *uuid.UUID
}

// Rejection is a deposit the ledger refused, with the error code it gave.
type Rejection struct {
	Movement bank.Movement
	Code     string
}

// Result summarises one import run. Withdrawals are counted in Skipped;
// they are recorded by hand with their expense category.
type Result struct {
	Posted    []uuid.UUID
	Unmatched []bank.Movement
	Rejected  []Rejection
	Skipped   int
}
