package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Fiscal periods are stored zero-padded (YYYY-MM), so text comparison on the
// column orders them by year then month.
const (
	inMonth    = `t.transaction_date >= $3 AND t.transaction_date < $4`
	notVirtual = `NOT (t.category_id = ANY($5::uuid[]))`
	isCommon   = `COALESCE(c.is_common_expense, TRUE)`
)

func (s *Store) OpeningRemainder(ctx context.Context, tenantID uuid.UUID, before time.Time, cash category.CashFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN t.type = 'income' THEN t.amount
				WHEN NOT (t.category_id = ANY($3::uuid[])) THEN -t.amount
				ELSE 0
			END
		), 0)
		FROM transactions t
		WHERE t.tenant_id = $1 AND t.status = 'confirmed' AND t.transaction_date < $2
	`

	var opening decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, tenantID, before, cash.VirtualIDs()).Scan(&opening); err != nil {
		return decimal.Zero, fmt.Errorf("summing opening remainder: %w", err)
	}

	return opening, nil
}

func (s *Store) PeriodFlow(ctx context.Context, tenantID uuid.UUID, period fiscal.Period, cash category.CashFilter) (*statement.Flow, error) {
	query := `
		SELECT
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.fiscal_period = $2 AND ` + inMonth + `), 0),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.fiscal_period = $2 AND ` + inMonth + `),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.fiscal_period < $2 AND ` + inMonth + `), 0),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.fiscal_period < $2 AND ` + inMonth + `),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.fiscal_period = $2 AND t.transaction_date < $3), 0),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.fiscal_period = $2 AND t.transaction_date < $3),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.fiscal_period > $2 AND ` + inMonth + `), 0),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.fiscal_period > $2 AND ` + inMonth + `),
			COALESCE(SUM(t.amount) FILTER (
				WHERE t.type = 'expense' AND ` + notVirtual + ` AND ` + isCommon + ` AND ` + inMonth + `
			), 0)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.tenant_id = $1 AND t.status = 'confirmed'
	`

	var flow statement.Flow

	in := &flow.Income

	err := s.db.QueryRowContext(ctx, query,
		tenantID,
		period.String(),
		period.Start(),
		period.End(),
		cash.VirtualIDs(),
	).Scan(
		&in.Normal.Sum, &in.Normal.Count,
		&in.Late.Sum, &in.Late.Count,
		&in.AdvancesApplied.Sum, &in.AdvancesApplied.Count,
		&in.AdvancesReceived.Sum, &in.AdvancesReceived.Count,
		&flow.Expense,
	)
	if err != nil {
		return nil, fmt.Errorf("summing period flow: %w", err)
	}

	return &flow, nil
}

func (s *Store) ReserveSummary(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]statement.ReserveLine, error) {
	query := `
		SELECT t.fiscal_period, SUM(t.amount), COUNT(DISTINCT t.unit_id)
		FROM transactions t
		WHERE t.tenant_id = $1 AND t.status = 'confirmed' AND t.type = 'income' AND t.fiscal_period > $2
		GROUP BY t.fiscal_period
		ORDER BY t.fiscal_period
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID, period.String())
	if err != nil {
		return nil, fmt.Errorf("listing advance reserve: %w", err)
	}
	defer rows.Close()

	var lines []statement.ReserveLine

	for rows.Next() {
		var l statement.ReserveLine
		if err := rows.Scan(&l.Period, &l.Amount, &l.Units); err != nil {
			return nil, fmt.Errorf("scanning reserve line: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reserve lines: %w", err)
	}

	return lines, nil
}

const selectDetailColumns = `
	SELECT t.id, t.unit_id, u.unit_number, COALESCE(u.owner_name, ''), t.fiscal_period,
		t.amount, t.transaction_date, t.description
	FROM transactions t
	JOIN units u ON u.id = t.unit_id
	WHERE t.tenant_id = $1 AND t.status = 'confirmed' AND t.type = 'income'
`

func (s *Store) AdvanceDetail(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]statement.PaymentDetail, error) {
	query := selectDetailColumns + `
		AND t.fiscal_period > $2
		ORDER BY t.fiscal_period, t.transaction_date
	`

	return s.queryDetail(ctx, query, tenantID, period.String())
}

func (s *Store) LateDetail(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) ([]statement.PaymentDetail, error) {
	query := selectDetailColumns + `
		AND t.fiscal_period < $2 AND t.transaction_date >= $3 AND t.transaction_date < $4
		ORDER BY t.fiscal_period, t.transaction_date
	`

	return s.queryDetail(ctx, query, tenantID, period.String(), period.Start(), period.End())
}

func (s *Store) queryDetail(ctx context.Context, query string, args ...any) ([]statement.PaymentDetail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payment detail: %w", err)
	}
	defer rows.Close()

	var details []statement.PaymentDetail

	for rows.Next() {
		var d statement.PaymentDetail
		if err := rows.Scan(
			&d.TransactionID, &d.UnitID, &d.UnitNumber, &d.OwnerName, &d.FiscalPeriod,
			&d.Amount, &d.Date, &d.Description,
		); err != nil {
			return nil, fmt.Errorf("scanning payment detail: %w", err)
		}

		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment detail: %w", err)
	}

	return details, nil
}

func (s *Store) ExpenseByCategory(ctx context.Context, tenantID uuid.UUID, period fiscal.Period, cash category.CashFilter, limit int) ([]statement.CategoryExpense, error) {
	query := `
		SELECT c.id, c.name, SUM(t.amount), COUNT(*)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.tenant_id = $1 AND t.status = 'confirmed' AND t.type = 'expense'
			AND t.transaction_date >= $2 AND t.transaction_date < $3
			AND NOT (t.category_id = ANY($4::uuid[])) AND c.is_common_expense
		GROUP BY c.id, c.name
		ORDER BY SUM(t.amount) DESC, c.name
		LIMIT $5
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID, period.Start(), period.End(), cash.VirtualIDs(), limit)
	if err != nil {
		return nil, fmt.Errorf("listing expense by category: %w", err)
	}
	defer rows.Close()

	var expenses []statement.CategoryExpense

	for rows.Next() {
		var e statement.CategoryExpense
		if err := rows.Scan(&e.CategoryID, &e.Name, &e.Amount, &e.Count); err != nil {
			return nil, fmt.Errorf("scanning category expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category expenses: %w", err)
	}

	return expenses, nil
}
