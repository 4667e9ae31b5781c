package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectUnitColumns = `id, tenant_id, unit_number, owner_name, status, monthly_fee, balance, notes, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUnit(s scanner) (*unit.Unit, error) {
	var u unit.Unit

	var statusStr string

	var owner, notes sql.NullString

	if err := s.Scan(
		&u.ID, &u.TenantID, &u.Number, &owner, &statusStr,
		&u.MonthlyFee, &u.Balance, &notes, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Status = unit.Status(statusStr)
	u.OwnerName = owner.String
	u.Notes = notes.String

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *Store) CreateUnit(ctx context.Context, u *unit.Unit) error {
	query := `
		INSERT INTO units (tenant_id, unit_number, owner_name, status, monthly_fee, balance, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, NOW(), NOW())
		RETURNING id, balance, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.TenantID,
		u.Number,
		u.OwnerName,
		string(u.Status),
		u.MonthlyFee,
		u.Notes,
	).Scan(&u.ID, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return unit.ErrNumberTaken
		}

		return fmt.Errorf("creating unit: %w", err)
	}

	return nil
}

func (s *Store) GetUnit(ctx context.Context, tenantID, id uuid.UUID) (*unit.Unit, error) {
	query := `SELECT ` + selectUnitColumns + ` FROM units WHERE id = $1 AND tenant_id = $2`

	u, err := scanUnit(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, unit.ErrNotFound
		}

		return nil, fmt.Errorf("getting unit: %w", err)
	}

	return u, nil
}

func (s *Store) ListUnits(ctx context.Context, tenantID uuid.UUID, filter unit.ListFilter) ([]*unit.Unit, error) {
	query := `SELECT ` + selectUnitColumns + ` FROM units WHERE tenant_id = $1`

	args := []any{tenantID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Number != "" {
		query += fmt.Sprintf(" AND unit_number ILIKE $%d", argIdx)

		args = append(args, "%"+filter.Number+"%")
	}

	query += " ORDER BY unit_number"

	return s.queryUnits(ctx, query, args...)
}

func (s *Store) ListDebtors(ctx context.Context, tenantID uuid.UUID) ([]*unit.Unit, error) {
	query := `SELECT ` + selectUnitColumns + `
		FROM units
		WHERE tenant_id = $1 AND balance < 0
		ORDER BY balance, unit_number`

	return s.queryUnits(ctx, query, tenantID)
}

func (s *Store) queryUnits(ctx context.Context, query string, args ...any) ([]*unit.Unit, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var units []*unit.Unit

	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}

		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}

	return units, nil
}

// UpdateUnit writes the descriptive fields only; balance is owned by the ledger.
func (s *Store) UpdateUnit(ctx context.Context, u *unit.Unit) error {
	query := `
		UPDATE units
		SET unit_number = $1, owner_name = $2, status = $3, monthly_fee = $4, notes = $5, updated_at = NOW()
		WHERE id = $6 AND tenant_id = $7
		RETURNING balance, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Number,
		u.OwnerName,
		string(u.Status),
		u.MonthlyFee,
		u.Notes,
		u.ID,
		u.TenantID,
	).Scan(&u.Balance, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return unit.ErrNotFound
		}

		if isUniqueViolation(err) {
			return unit.ErrNumberTaken
		}

		return fmt.Errorf("updating unit: %w", err)
	}

	return nil
}

const signedAmount = `CASE WHEN t.type = 'income' THEN t.amount ELSE -t.amount END`

func (s *Store) OpeningBalance(ctx context.Context, tenantID, unitID uuid.UUID, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + signedAmount + `), 0)
		FROM transactions t
		WHERE t.tenant_id = $1 AND t.unit_id = $2 AND t.status = 'confirmed' AND t.transaction_date < $3
	`

	var opening decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, tenantID, unitID, before).Scan(&opening); err != nil {
		return decimal.Zero, fmt.Errorf("summing movements before %s: %w", before.Format(time.DateOnly), err)
	}

	return opening, nil
}

func (s *Store) ListMovements(ctx context.Context, tenantID, unitID uuid.UUID, from, to time.Time) ([]unit.Movement, error) {
	query := `
		SELECT t.id, t.transaction_date, t.type, c.name, t.description, t.fiscal_period, t.amount
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.tenant_id = $1 AND t.unit_id = $2 AND t.status = 'confirmed'
			AND t.transaction_date BETWEEN $3 AND $4
		ORDER BY t.transaction_date, t.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID, unitID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var movements []unit.Movement

	for rows.Next() {
		var m unit.Movement

		var typeStr string

		if err := rows.Scan(&m.TransactionID, &m.Date, &typeStr, &m.CategoryName, &m.Description, &m.FiscalPeriod, &m.Amount); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}

		m.Type = category.Type(typeStr)
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movements: %w", err)
	}

	return movements, nil
}

func (s *Store) ComputeDrift(ctx context.Context, tenantID uuid.UUID) ([]unit.Drift, error) {
	query := `
		SELECT u.id, u.unit_number, u.balance, COALESCE(SUM(` + signedAmount + `), 0) AS computed
		FROM units u
		LEFT JOIN transactions t ON t.unit_id = u.id AND t.status = 'confirmed'
		WHERE u.tenant_id = $1
		GROUP BY u.id, u.unit_number, u.balance
		HAVING u.balance <> COALESCE(SUM(` + signedAmount + `), 0)
		ORDER BY u.unit_number
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("computing drift: %w", err)
	}
	defer rows.Close()

	var drift []unit.Drift

	for rows.Next() {
		var d unit.Drift
		if err := rows.Scan(&d.UnitID, &d.Number, &d.Stored, &d.Computed); err != nil {
			return nil, fmt.Errorf("scanning drift: %w", err)
		}

		drift = append(drift, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drift: %w", err)
	}

	return drift, nil
}
