package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	ledgerstore "github.com/MrJamesThe3rd/condo/internal/ledger/store"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindAdmin(ctx context.Context, tenantID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT id FROM users
		WHERE tenant_id = $1 AND role = 'admin'
		ORDER BY created_at
		LIMIT 1
	`

	var id uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, tenantID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, automation.ErrNoAdmin
		}

		return uuid.Nil, fmt.Errorf("finding admin: %w", err)
	}

	return id, nil
}

func runLockKey(tenantID uuid.UUID, period fiscal.Period) int64 {
	h := fnv.New64a()
	h.Write([]byte("monthly-charges"))
	h.Write(tenantID[:])
	h.Write([]byte(period.String()))

	return int64(h.Sum64())
}

type runTx struct {
	ledger.Tx

	tx *sql.Tx
}

func (s *Store) BeginRun(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (automation.RunTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning run tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", runLockKey(tenantID, period)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring run lock: %w", err)
	}

	return &runTx{Tx: ledgerstore.WrapTx(dbTx), tx: dbTx}, nil
}

func (r *runTx) CountCharges(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.tenant_id = $1 AND t.fiscal_period = $2
			AND t.type = 'expense' AND t.status = 'confirmed'
			AND c.purpose = 'virtual_issuance'
			AND (c.tenant_id = $1 OR c.tenant_id IS NULL)
	`

	var n int
	if err := r.tx.QueryRowContext(ctx, query, tenantID, period.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting charges: %w", err)
	}

	return n, nil
}

func (r *runTx) OccupiedUnits(ctx context.Context, tenantID uuid.UUID) ([]*unit.Unit, error) {
	query := `
		SELECT id, unit_number, monthly_fee
		FROM units
		WHERE tenant_id = $1 AND status = 'occupied'
		ORDER BY unit_number
		FOR UPDATE
	`

	rows, err := r.tx.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing occupied units: %w", err)
	}
	defer rows.Close()

	var units []*unit.Unit

	for rows.Next() {
		u := &unit.Unit{TenantID: tenantID, Status: unit.StatusOccupied}
		if err := rows.Scan(&u.ID, &u.Number, &u.MonthlyFee); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}

		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}

	return units, nil
}
