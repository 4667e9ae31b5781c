// Package dbtest opens the Postgres database store tests run against and
// seeds rows for them. Tests are skipped unless TEST_DATABASE_URL is set.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/condo/internal/database"
)

const envURL = "TEST_DATABASE_URL"

// Open connects to the test database and applies the migrations. Every test
// works inside its own tenant, so nothing is truncated between runs.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(envURL)
	if url == "" {
		t.Skipf("%s not set", envURL)
	}

	db, err := database.New(url, database.Pool{MaxOpen: 4, MaxIdle: 2})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	return db
}

func insert(t *testing.T, db *sql.DB, query string, args ...any) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&id))

	return id
}

func Tenant(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()

	return insert(t, db, `INSERT INTO tenants (name) VALUES ($1) RETURNING id`, t.Name())
}

func Admin(t *testing.T, db *sql.DB, tenantID uuid.UUID) uuid.UUID {
	t.Helper()

	return insert(t, db,
		`INSERT INTO users (tenant_id, email, full_name, role) VALUES ($1, $2, 'Admin', 'admin') RETURNING id`,
		tenantID, uuid.NewString()+"@condo.test",
	)
}

// Category inserts a tenant-owned category. typ and purpose use the column
// values ("expense", "virtual_issuance", ...).
func Category(t *testing.T, db *sql.DB, tenantID uuid.UUID, name, typ, purpose string, common bool) uuid.UUID {
	t.Helper()

	return insert(t, db,
		`INSERT INTO categories (tenant_id, name, type, purpose, is_common_expense) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tenantID, name, typ, purpose, common,
	)
}

func Unit(t *testing.T, db *sql.DB, tenantID uuid.UUID, number, monthlyFee string) uuid.UUID {
	t.Helper()

	return insert(t, db,
		`INSERT INTO units (tenant_id, unit_number, owner_name, monthly_fee) VALUES ($1, $2, $3, $4) RETURNING id`,
		tenantID, number, "Owner "+number, monthlyFee,
	)
}

// Tx is a transaction row as stored. Status defaults to confirmed.
type Tx struct {
	TenantID   uuid.UUID
	UnitID     *uuid.UUID
	CategoryID uuid.UUID
	Type       string
	Amount     string
	Date       time.Time
	Period     string
	Status     string
}

// Transaction inserts the row as is. Unit balances are left untouched.
func Transaction(t *testing.T, db *sql.DB, tx Tx) uuid.UUID {
	t.Helper()

	if tx.Status == "" {
		tx.Status = "confirmed"
	}

	return insert(t, db, `
		INSERT INTO transactions (tenant_id, unit_id, category_id, type, amount, transaction_date, fiscal_period, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		tx.TenantID, tx.UnitID, tx.CategoryID, tx.Type, tx.Amount, tx.Date, tx.Period, tx.Status,
	)
}
