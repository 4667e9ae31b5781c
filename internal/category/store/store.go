package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCategoryColumns = `id, tenant_id, name, type, purpose, is_common_expense, is_active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr, purposeStr string

	if err := s.Scan(&c.ID, &c.TenantID, &c.Name, &typeStr, &purposeStr, &c.IsCommonExpense, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)
	c.Purpose = category.Purpose(purposeStr)

	return &c, nil
}

func (s *Store) GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE id = $1 AND (tenant_id = $2 OR tenant_id IS NULL)`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, tenantID uuid.UUID, filter category.ListFilter) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE (tenant_id = $1 OR tenant_id IS NULL) AND is_active`

	args := []any{tenantID}
	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, string(*filter.Type))
		argIdx++
	}

	if filter.Purpose != nil {
		query += fmt.Sprintf(" AND purpose = $%d", argIdx)

		args = append(args, string(*filter.Purpose))
	}

	query += " ORDER BY type, name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (tenant_id, name, type, purpose, is_common_expense, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.TenantID,
		c.Name,
		string(c.Type),
		string(c.Purpose),
		c.IsCommonExpense,
		c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) FindByPurpose(ctx context.Context, tenantID uuid.UUID, purpose category.Purpose, t category.Type) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE (tenant_id = $1 OR tenant_id IS NULL) AND purpose = $2 AND type = $3 AND is_active
		ORDER BY tenant_id NULLS LAST, created_at
		LIMIT 1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, tenantID, string(purpose), string(t)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("finding category by purpose: %w", err)
	}

	return c, nil
}

// VirtualIssuanceIDs includes inactive categories: old charges still reference them.
func (s *Store) VirtualIssuanceIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM categories
		WHERE (tenant_id = $1 OR tenant_id IS NULL) AND purpose = 'virtual_issuance'
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing virtual issuance categories: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning category id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category ids: %w", err)
	}

	return ids, nil
}
