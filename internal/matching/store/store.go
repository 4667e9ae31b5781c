package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindUnit(ctx context.Context, tenantID uuid.UUID, rawDescription string) (uuid.UUID, bool, error) {
	query := `
		SELECT unit_id
		FROM payer_mappings
		WHERE tenant_id = $1 AND $2 LIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var unitID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, tenantID, rawDescription).Scan(&unitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("finding payer mapping: %w", err)
	}

	return unitID, true, nil
}

func (s *Store) UpsertMapping(ctx context.Context, tenantID uuid.UUID, pattern string, unitID uuid.UUID) error {
	query := `
		INSERT INTO payer_mappings (tenant_id, raw_pattern, unit_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (tenant_id, raw_pattern) DO UPDATE SET unit_id = EXCLUDED.unit_id, created_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, tenantID, pattern, unitID); err != nil {
		return fmt.Errorf("saving payer mapping: %w", err)
	}

	return nil
}

// Exists reports whether the unit belongs to the tenant.
func (s *Store) Exists(ctx context.Context, tenantID, unitID uuid.UUID) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM units WHERE id = $1 AND tenant_id = $2)`,
		unitID, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking unit: %w", err)
	}

	return exists, nil
}
