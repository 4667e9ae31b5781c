package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetTenant(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	query := `SELECT id, name, is_active, created_at FROM tenants WHERE id = $1`

	var t tenant.Tenant
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrNotFound
		}

		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	return &t, nil
}

func (s *Store) ListActive(ctx context.Context) ([]*tenant.Tenant, error) {
	query := `SELECT id, name, is_active, created_at FROM tenants WHERE is_active ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*tenant.Tenant

	for rows.Next() {
		var t tenant.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}

		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenants: %w", err)
	}

	return tenants, nil
}
