package ledger_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
)

// memLedger is an in-memory Repository whose Tx only publishes writes on Commit.
type memLedger struct {
	tenantID     uuid.UUID
	transactions map[uuid.UUID]*ledger.Transaction
	balances     map[uuid.UUID]decimal.Decimal
}

func newMemLedger(tenantID uuid.UUID, units ...uuid.UUID) *memLedger {
	m := &memLedger{
		tenantID:     tenantID,
		transactions: make(map[uuid.UUID]*ledger.Transaction),
		balances:     make(map[uuid.UUID]decimal.Decimal),
	}

	for _, u := range units {
		m.balances[u] = decimal.Zero
	}

	return m
}

// expected is the signed sum of confirmed transactions for a unit.
func (m *memLedger) expected(unitID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero

	for _, t := range m.transactions {
		if t.UnitID != nil && *t.UnitID == unitID && t.Status == ledger.StatusConfirmed {
			sum = sum.Add(t.Delta())
		}
	}

	return sum
}

func (m *memLedger) GetTransaction(_ context.Context, tenantID, id uuid.UUID) (*ledger.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok || t.TenantID != tenantID {
		return nil, ledger.ErrNotFound
	}

	cp := *t

	return &cp, nil
}

func (m *memLedger) ListTransactions(context.Context, uuid.UUID, ledger.ListFilter) ([]*ledger.Transaction, error) {
	return nil, nil
}

func (m *memLedger) Summarize(context.Context, uuid.UUID, ledger.ListFilter, category.CashFilter) (*ledger.Summary, error) {
	return &ledger.Summary{}, nil
}

func (m *memLedger) BeginTx(context.Context) (ledger.Tx, error) {
	return &memTx{
		m:      m,
		writes: make(map[uuid.UUID]*ledger.Transaction),
		deltas: make(map[uuid.UUID]decimal.Decimal),
	}, nil
}

type memTx struct {
	m      *memLedger
	writes map[uuid.UUID]*ledger.Transaction
	deltas map[uuid.UUID]decimal.Decimal
}

func (tx *memTx) lookup(id uuid.UUID) (*ledger.Transaction, bool) {
	if t, ok := tx.writes[id]; ok {
		return t, true
	}

	t, ok := tx.m.transactions[id]

	return t, ok
}

func (tx *memTx) UnitExists(_ context.Context, tenantID, unitID uuid.UUID) (bool, error) {
	_, ok := tx.m.balances[unitID]
	return ok && tenantID == tx.m.tenantID, nil
}

func (tx *memTx) GetForUpdate(_ context.Context, tenantID, id uuid.UUID) (*ledger.Transaction, error) {
	t, ok := tx.lookup(id)
	if !ok || t.TenantID != tenantID {
		return nil, ledger.ErrNotFound
	}

	cp := *t

	return &cp, nil
}

func (tx *memTx) HasLivePeriodFee(_ context.Context, tenantID, unitID, categoryID uuid.UUID, period fiscal.Period, exclude uuid.UUID) (bool, error) {
	seen := make(map[uuid.UUID]bool)

	check := func(t *ledger.Transaction) bool {
		return t.TenantID == tenantID && t.ID != exclude && t.UnitID != nil && *t.UnitID == unitID &&
			t.CategoryID == categoryID && t.FiscalPeriod == period &&
			t.Type == category.TypeIncome && t.Status != ledger.StatusCancelled
	}

	for id, t := range tx.writes {
		seen[id] = true

		if check(t) {
			return true, nil
		}
	}

	for id, t := range tx.m.transactions {
		if !seen[id] && check(t) {
			return true, nil
		}
	}

	return false, nil
}

func (tx *memTx) InsertTransaction(_ context.Context, t *ledger.Transaction) error {
	t.ID = uuid.New()
	cp := *t
	tx.writes[t.ID] = &cp

	return nil
}

func (tx *memTx) UpdateTransaction(_ context.Context, t *ledger.Transaction) error {
	if _, ok := tx.lookup(t.ID); !ok {
		return ledger.ErrNotFound
	}

	cp := *t
	tx.writes[t.ID] = &cp

	return nil
}

func (tx *memTx) AdjustBalance(_ context.Context, _ uuid.UUID, unitID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	current, ok := tx.m.balances[unitID]
	if !ok {
		return decimal.Zero, ledger.ErrUnitNotFound
	}

	tx.deltas[unitID] = tx.deltas[unitID].Add(delta)

	return current.Add(tx.deltas[unitID]), nil
}

func (tx *memTx) Commit() error {
	for id, t := range tx.writes {
		tx.m.transactions[id] = t
	}

	for id, d := range tx.deltas {
		tx.m.balances[id] = tx.m.balances[id].Add(d)
	}

	return nil
}

func (tx *memTx) Rollback() error {
	return nil
}

// memCategories serves a fixed set of categories.
type memCategories struct {
	byID map[uuid.UUID]*category.Category
}

func newMemCategories(cats ...*category.Category) *memCategories {
	m := &memCategories{byID: make(map[uuid.UUID]*category.Category)}
	for _, c := range cats {
		m.byID[c.ID] = c
	}

	return m
}

func (m *memCategories) Get(_ context.Context, _ uuid.UUID, id uuid.UUID) (*category.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, category.ErrNotFound
	}

	return c, nil
}

func (m *memCategories) CashFilter(context.Context, uuid.UUID) (category.CashFilter, error) {
	var ids []uuid.UUID

	for id, c := range m.byID {
		if c.Purpose == category.PurposeVirtualIssuance {
			ids = append(ids, id)
		}
	}

	return category.NewCashFilter(ids...), nil
}
