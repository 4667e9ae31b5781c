package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

// Amount is a sum of confirmed transactions and how many contributed to it.
type Amount struct {
	Sum   decimal.Decimal
	Count int
}

// IncomeBreakdown classifies income by how its fiscal period relates to the
// reported one. Only Normal, Late and AdvancesReceived arrived as cash in the
// period; AdvancesApplied arrived earlier.
type IncomeBreakdown struct {
	Normal           Amount
	Late             Amount
	AdvancesApplied  Amount
	AdvancesReceived Amount
}

// Flow is the raw cash movement of one period.
type Flow struct {
	Income  IncomeBreakdown
	Expense decimal.Decimal
}

type Totals struct {
	OpeningRemainder decimal.Decimal
	TotalIncomeCash  decimal.Decimal
	PeriodExpense    decimal.Decimal
	NetPeriodFlow    decimal.Decimal
	FinalBalance     decimal.Decimal
	AdvanceReserve   decimal.Decimal
	AvailableBalance decimal.Decimal
}

// ReserveLine is the advance money held for one future period.
type ReserveLine struct {
	Period fiscal.Period
	Amount decimal.Decimal
	Units  int
}

type PaymentDetail struct {
	TransactionID uuid.UUID
	UnitID        uuid.UUID
	UnitNumber    string
	OwnerName     string
	FiscalPeriod  fiscal.Period
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
}

type CategoryExpense struct {
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Count      int
}

// Statement is the financial status of a tenant for one fiscal period.
type Statement struct {
	Period            fiscal.Period
	PeriodLabel       string
	Income            IncomeBreakdown
	Totals            Totals
	ReserveSummary    []ReserveLine
	AdvanceDetail     []PaymentDetail
	LateDetail        []PaymentDetail
	ExpenseByCategory []CategoryExpense
}

// Reconcile derives the statement totals. Every figure is exact decimal
// arithmetic over the inputs.
func Reconcile(opening decimal.Decimal, flow Flow, reserve []ReserveLine) Totals {
	advanceReserve := decimal.Zero
	for _, r := range reserve {
		advanceReserve = advanceReserve.Add(r.Amount)
	}

	incomeCash := flow.Income.Normal.Sum.
		Add(flow.Income.Late.Sum).
		Add(flow.Income.AdvancesReceived.Sum)

	net := incomeCash.Sub(flow.Expense)
	final := opening.Add(net)

	return Totals{
		OpeningRemainder: opening,
		TotalIncomeCash:  incomeCash,
		PeriodExpense:    flow.Expense,
		NetPeriodFlow:    net,
		FinalBalance:     final,
		AdvanceReserve:   advanceReserve,
		AvailableBalance: final.Sub(advanceReserve),
	}
}
