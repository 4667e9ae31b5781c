package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/automation/store"
	"github.com/MrJamesThe3rd/condo/internal/category"
	categorystore "github.com/MrJamesThe3rd/condo/internal/category/store"
	"github.com/MrJamesThe3rd/condo/internal/database/dbtest"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

func TestStore_RerunAfterIssuanceCategoryChange(t *testing.T) {
	db := dbtest.Open(t)
	tenantID := dbtest.Tenant(t, db)
	dbtest.Admin(t, db, tenantID)
	dbtest.Unit(t, db, tenantID, "A-101", "1500")
	dbtest.Unit(t, db, tenantID, "A-102", "0")

	ctx := context.Background()
	categories := category.NewService(categorystore.New(db))
	svc := automation.NewService(store.New(db), categories, nil, nil, decimal.RequireFromString("300"), time.UTC)
	period := fiscal.MustParsePeriod("2025-06")

	first, err := svc.RunTenant(ctx, tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, "1800.00", first.Total.StringFixed(2))

	// The tenant now owns an issuance category, so FindByPurpose resolves a
	// different id than the one the first run charged under.
	dbtest.Category(t, db, tenantID, "Emisión propia", "expense", "virtual_issuance", true)

	second, err := svc.RunTenant(ctx, tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.AlreadyExisted)

	var balance decimal.Decimal
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT SUM(balance) FROM units WHERE tenant_id = $1`, tenantID,
	).Scan(&balance))
	assert.True(t, balance.Equal(decimal.RequireFromString("-1800")), "balance = %s", balance)
}

func TestStore_CountChargesIgnoresOtherTenants(t *testing.T) {
	db := dbtest.Open(t)
	tenantID := dbtest.Tenant(t, db)
	other := dbtest.Tenant(t, db)

	otherIssuance := dbtest.Category(t, db, other, "Emisión", "expense", "virtual_issuance", true)
	otherUnit := dbtest.Unit(t, db, other, "B-1", "900")
	dbtest.Transaction(t, db, dbtest.Tx{
		TenantID:   other,
		UnitID:     &otherUnit,
		CategoryID: otherIssuance,
		Type:       "expense",
		Amount:     "900",
		Date:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Period:     "2025-06",
	})

	ctx := context.Background()
	period := fiscal.MustParsePeriod("2025-06")

	rtx, err := store.New(db).BeginRun(ctx, tenantID, period)
	require.NoError(t, err)
	defer rtx.Rollback()

	n, err := rtx.CountCharges(ctx, tenantID, period)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = rtx.CountCharges(ctx, other, period)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
