package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
)

const (
	uniqueViolation = "23505"
	periodFeeIndex  = "ux_transactions_period_fee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var t ledger.Transaction

	var typeStr, statusStr string

	var method, reference, notes, unitNumber sql.NullString

	if err := s.Scan(
		&t.ID, &t.TenantID, &t.UnitID, &t.CategoryID, &t.CreatedBy, &typeStr, &t.Amount,
		&t.Description, &t.Date, &t.FiscalPeriod, &statusStr,
		&t.IsAdvancePayment, &t.IsLatePayment, &t.IsPeriodFee,
		&method, &reference, &notes,
		&t.CategoryName, &unitNumber,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Type = category.Type(typeStr)
	t.Status = ledger.Status(statusStr)
	t.PaymentMethod = method.String
	t.ReferenceNumber = reference.String
	t.Notes = notes.String
	t.UnitNumber = unitNumber.String

	return &t, nil
}

const selectTransactionColumns = `
	t.id, t.tenant_id, t.unit_id, t.category_id, t.created_by, t.type, t.amount,
	t.description, t.transaction_date, t.fiscal_period, t.status,
	t.is_advance_payment, t.is_late_payment, t.is_period_fee,
	t.payment_method, t.reference_number, t.notes,
	c.name AS category_name, u.unit_number,
	t.created_at, t.updated_at
`

const fromTransactions = `
	FROM transactions t
	JOIN categories c ON c.id = t.category_id
	LEFT JOIN units u ON u.id = t.unit_id
`

func getTransaction(ctx context.Context, q querier, tenantID, id uuid.UUID, forUpdate bool) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + fromTransactions + `
		WHERE t.id = $1 AND t.tenant_id = $2`

	if forUpdate {
		query += " FOR UPDATE OF t"
	}

	t, err := scanTransaction(q.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return t, nil
}

func (s *Store) GetTransaction(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Transaction, error) {
	return getTransaction(ctx, s.db, tenantID, id, false)
}

// whereClause builds the shared filter. Cancelled rows are hidden unless a
// status is requested explicitly.
func whereClause(tenantID uuid.UUID, filter ledger.ListFilter) (string, []any) {
	where := " WHERE t.tenant_id = $1"
	args := []any{tenantID}

	add := func(cond string, v any) {
		args = append(args, v)
		where += fmt.Sprintf(" AND "+cond, len(args))
	}

	if filter.Status != nil {
		add("t.status = $%d", string(*filter.Status))
	} else {
		where += " AND t.status <> 'cancelled'"
	}

	if filter.Type != nil {
		add("t.type = $%d", string(*filter.Type))
	}

	if filter.UnitID != nil {
		add("t.unit_id = $%d", *filter.UnitID)
	}

	if filter.CategoryID != nil {
		add("t.category_id = $%d", *filter.CategoryID)
	}

	if filter.FiscalPeriod != nil {
		add("t.fiscal_period = $%d", filter.FiscalPeriod.String())
	}

	if filter.StartDate != nil {
		add("t.transaction_date >= $%d", *filter.StartDate)
	}

	if filter.EndDate != nil {
		add("t.transaction_date <= $%d", *filter.EndDate)
	}

	if filter.AdvanceOnly {
		where += " AND t.is_advance_payment"
	}

	if filter.LateOnly {
		where += " AND t.is_late_payment"
	}

	return where, args
}

func (s *Store) ListTransactions(ctx context.Context, tenantID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	where, args := whereClause(tenantID, filter)

	query := `SELECT ` + selectTransactionColumns + fromTransactions + where +
		` ORDER BY t.transaction_date DESC, t.created_at DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// Summarize totals the filtered set. Only confirmed rows carry money; expense
// excludes virtual issuance charges and non-common categories.
func (s *Store) Summarize(ctx context.Context, tenantID uuid.UUID, filter ledger.ListFilter, cash category.CashFilter) (*ledger.Summary, error) {
	where, args := whereClause(tenantID, filter)

	args = append(args, cash.VirtualIDs())
	virtualArg := len(args)

	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.status = 'confirmed'), 0),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'expense' AND t.status = 'confirmed'
				AND NOT (t.category_id = ANY($%[1]d::uuid[]))
				AND c.is_common_expense), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.is_advance_payment),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.is_advance_payment), 0),
			COUNT(*) FILTER (WHERE t.type = 'income' AND t.is_late_payment),
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income' AND t.is_late_payment), 0)
		`, virtualArg) + fromTransactions + where

	var sum ledger.Summary

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&sum.TotalIncome, &sum.TotalExpense, &sum.Count,
		&sum.AdvanceCount, &sum.AdvanceAmount,
		&sum.LateCount, &sum.LateAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing transactions: %w", err)
	}

	return &sum, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (s *Store) BeginTx(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: dbTx}, nil
}

// WrapTx exposes the ledger primitives on a transaction opened elsewhere, so
// batch writers share the same insert and balance statements.
func WrapTx(tx *sql.Tx) ledger.Tx {
	return &ledgerTx{tx: tx}
}

func (ltx *ledgerTx) Commit() error   { return ltx.tx.Commit() }
func (ltx *ledgerTx) Rollback() error { return ltx.tx.Rollback() }

func (ltx *ledgerTx) UnitExists(ctx context.Context, tenantID, unitID uuid.UUID) (bool, error) {
	var exists bool

	err := ltx.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM units WHERE id = $1 AND tenant_id = $2)`,
		unitID, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking unit: %w", err)
	}

	return exists, nil
}

func (ltx *ledgerTx) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Transaction, error) {
	return getTransaction(ctx, ltx.tx, tenantID, id, true)
}

func (ltx *ledgerTx) HasLivePeriodFee(ctx context.Context, tenantID, unitID, categoryID uuid.UUID, period fiscal.Period, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE tenant_id = $1 AND unit_id = $2 AND category_id = $3 AND fiscal_period = $4
				AND type = 'income' AND status <> 'cancelled' AND id <> $5
		)
	`

	var exists bool
	if err := ltx.tx.QueryRowContext(ctx, query, tenantID, unitID, categoryID, period.String(), exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking period fee: %w", err)
	}

	return exists, nil
}

func mapWriteError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == periodFeeIndex {
		return ledger.ErrDuplicatePayment
	}

	return fmt.Errorf("%s transaction: %w", action, err)
}

func (ltx *ledgerTx) InsertTransaction(ctx context.Context, t *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (
			tenant_id, unit_id, category_id, created_by, type, amount, description,
			transaction_date, fiscal_period, status, is_advance_payment, is_late_payment, is_period_fee,
			payment_method, reference_number, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := ltx.tx.QueryRowContext(ctx, query,
		t.TenantID,
		t.UnitID,
		t.CategoryID,
		t.CreatedBy,
		string(t.Type),
		t.Amount,
		t.Description,
		t.Date,
		t.FiscalPeriod.String(),
		string(t.Status),
		t.IsAdvancePayment,
		t.IsLatePayment,
		t.IsPeriodFee,
		nullString(t.PaymentMethod),
		nullString(t.ReferenceNumber),
		nullString(t.Notes),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "creating")
	}

	return nil
}

func (ltx *ledgerTx) UpdateTransaction(ctx context.Context, t *ledger.Transaction) error {
	query := `
		UPDATE transactions
		SET unit_id = $1, category_id = $2, amount = $3, description = $4, transaction_date = $5,
			fiscal_period = $6, status = $7, is_advance_payment = $8, is_late_payment = $9,
			is_period_fee = $10, payment_method = $11, reference_number = $12, notes = $13, updated_at = NOW()
		WHERE id = $14 AND tenant_id = $15
		RETURNING updated_at
	`

	err := ltx.tx.QueryRowContext(ctx, query,
		t.UnitID,
		t.CategoryID,
		t.Amount,
		t.Description,
		t.Date,
		t.FiscalPeriod.String(),
		string(t.Status),
		t.IsAdvancePayment,
		t.IsLatePayment,
		t.IsPeriodFee,
		nullString(t.PaymentMethod),
		nullString(t.ReferenceNumber),
		nullString(t.Notes),
		t.ID,
		t.TenantID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.ErrNotFound
		}

		return mapWriteError(err, "updating")
	}

	return nil
}

// AdjustBalance applies delta as a server-side increment and returns the new balance.
func (ltx *ledgerTx) AdjustBalance(ctx context.Context, tenantID, unitID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE units
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING balance
	`

	var balance decimal.Decimal
	if err := ltx.tx.QueryRowContext(ctx, query, delta, unitID, tenantID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ledger.ErrUnitNotFound
		}

		return decimal.Zero, fmt.Errorf("adjusting unit balance: %w", err)
	}

	return balance, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
