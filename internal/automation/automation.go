// Package automation issues the monthly maintenance charges and runs the
// periodic balance audit.
package automation

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

var (
	ErrNoIssuanceCategory = errors.New("ISSUANCE_CATEGORY_NOT_FOUND")
	ErrNoAdmin            = errors.New("ADMIN_NOT_FOUND")
)

// Result of one tenant's monthly run. A run that found existing charges is a
// successful no-op with Created == 0. Skipped lists the numbers of occupied
// units left uncharged because neither they nor the run had a positive fee.
type Result struct {
	TenantID       uuid.UUID
	Period         fiscal.Period
	Created        int
	AlreadyExisted int
	Skipped        []string
	Total          decimal.Decimal
}

// Report aggregates the results of a run over several tenants.
type Report struct {
	Results        []Result
	Created        int
	AlreadyExisted int
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	r.Created += res.Created
	r.AlreadyExisted += res.AlreadyExisted
}
