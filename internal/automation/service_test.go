package automation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) gomock.Matcher {
	want := dec(s)

	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && d.Equal(want)
	})
}

type mocks struct {
	repo       *automation.MockRepository
	rtx        *automation.MockRunTx
	categories *automation.MockCategories
	tenants    *automation.MockTenants
	auditor    *automation.MockAuditor
}

func newService(t *testing.T) (*automation.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:       automation.NewMockRepository(ctrl),
		rtx:        automation.NewMockRunTx(ctrl),
		categories: automation.NewMockCategories(ctrl),
		tenants:    automation.NewMockTenants(ctrl),
		auditor:    automation.NewMockAuditor(ctrl),
	}

	svc := automation.NewService(m.repo, m.categories, m.tenants, m.auditor, dec("300.00"), time.UTC)

	return svc, m
}

var issuance = &category.Category{
	ID:      uuid.New(),
	Name:    "Emisión de Cuota",
	Type:    category.TypeExpense,
	Purpose: category.PurposeVirtualIssuance,
}

func TestService_RunTenant_IssuesCharges(t *testing.T) {
	svc, m := newService(t)

	tenantID := uuid.New()
	adminID := uuid.New()
	period := fiscal.MustParsePeriod("2025-06")

	units := []*unit.Unit{
		{ID: uuid.New(), Number: "101", MonthlyFee: dec("1500")},
		{ID: uuid.New(), Number: "102", MonthlyFee: decimal.Zero},
	}

	m.categories.EXPECT().
		FindByPurpose(gomock.Any(), tenantID, category.PurposeVirtualIssuance, category.TypeExpense).
		Return(issuance, nil)
	m.repo.EXPECT().FindAdmin(gomock.Any(), tenantID).Return(adminID, nil)
	m.repo.EXPECT().BeginRun(gomock.Any(), tenantID, period).Return(m.rtx, nil)
	m.rtx.EXPECT().CountCharges(gomock.Any(), tenantID, period).Return(0, nil)
	m.rtx.EXPECT().OccupiedUnits(gomock.Any(), tenantID).Return(units, nil)

	var charges []*ledger.Transaction

	m.rtx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			charges = append(charges, tx)
			return nil
		}).
		Times(2)
	m.rtx.EXPECT().AdjustBalance(gomock.Any(), tenantID, units[0].ID, decEq("-1500")).Return(dec("-1500"), nil)
	m.rtx.EXPECT().AdjustBalance(gomock.Any(), tenantID, units[1].ID, decEq("-300")).Return(dec("-300"), nil)
	m.rtx.EXPECT().Commit().Return(nil)
	m.rtx.EXPECT().Rollback().Return(nil)

	res, err := svc.RunTenant(context.Background(), tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.AlreadyExisted)
	assert.Equal(t, "1800.00", res.Total.StringFixed(2))

	require.Len(t, charges, 2)

	for _, c := range charges {
		assert.Equal(t, category.TypeExpense, c.Type)
		assert.Equal(t, ledger.StatusConfirmed, c.Status)
		assert.Equal(t, period, c.FiscalPeriod)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), c.Date)
		assert.False(t, c.IsAdvancePayment)
		assert.False(t, c.IsLatePayment)
		assert.Equal(t, adminID, *c.CreatedBy)
		assert.Equal(t, "Emisión de Cuota - 2025-06", c.Description)
	}
}

func TestService_RunTenant_SkipsUnitsWithoutFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := automation.NewMockRepository(ctrl)
	rtx := automation.NewMockRunTx(ctrl)
	categories := automation.NewMockCategories(ctrl)

	svc := automation.NewService(repo, categories, nil, nil, decimal.Zero, time.UTC)

	tenantID := uuid.New()
	period := fiscal.MustParsePeriod("2025-06")
	units := []*unit.Unit{
		{ID: uuid.New(), Number: "101", MonthlyFee: dec("1500")},
		{ID: uuid.New(), Number: "102", MonthlyFee: decimal.Zero},
	}

	categories.EXPECT().FindByPurpose(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).Return(issuance, nil)
	repo.EXPECT().FindAdmin(gomock.Any(), tenantID).Return(uuid.New(), nil)
	repo.EXPECT().BeginRun(gomock.Any(), tenantID, period).Return(rtx, nil)
	rtx.EXPECT().CountCharges(gomock.Any(), tenantID, period).Return(0, nil)
	rtx.EXPECT().OccupiedUnits(gomock.Any(), tenantID).Return(units, nil)
	rtx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			assert.Equal(t, units[0].ID, *tx.UnitID)
			assert.True(t, tx.Amount.IsPositive())
			return nil
		})
	rtx.EXPECT().AdjustBalance(gomock.Any(), tenantID, units[0].ID, decEq("-1500")).Return(dec("-1500"), nil)
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	res, err := svc.RunTenant(context.Background(), tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, []string{"102"}, res.Skipped)
	assert.Equal(t, "1500.00", res.Total.StringFixed(2))
}

func TestService_RunTenant_SecondRunIsNoop(t *testing.T) {
	svc, m := newService(t)

	tenantID := uuid.New()
	period := fiscal.MustParsePeriod("2025-06")

	m.categories.EXPECT().FindByPurpose(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).Return(issuance, nil)
	m.repo.EXPECT().FindAdmin(gomock.Any(), tenantID).Return(uuid.New(), nil)
	m.repo.EXPECT().BeginRun(gomock.Any(), tenantID, period).Return(m.rtx, nil)
	m.rtx.EXPECT().CountCharges(gomock.Any(), tenantID, period).Return(12, nil)
	m.rtx.EXPECT().Rollback().Return(nil)

	res, err := svc.RunTenant(context.Background(), tenantID, period)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 12, res.AlreadyExisted)
}

func TestService_RunTenant_RollsBackOnFailure(t *testing.T) {
	svc, m := newService(t)

	tenantID := uuid.New()
	period := fiscal.MustParsePeriod("2025-06")
	units := []*unit.Unit{
		{ID: uuid.New(), Number: "101", MonthlyFee: dec("300")},
		{ID: uuid.New(), Number: "102", MonthlyFee: dec("300")},
	}

	m.categories.EXPECT().FindByPurpose(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).Return(issuance, nil)
	m.repo.EXPECT().FindAdmin(gomock.Any(), tenantID).Return(uuid.New(), nil)
	m.repo.EXPECT().BeginRun(gomock.Any(), tenantID, period).Return(m.rtx, nil)
	m.rtx.EXPECT().CountCharges(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	m.rtx.EXPECT().OccupiedUnits(gomock.Any(), tenantID).Return(units, nil)
	m.rtx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.rtx.EXPECT().AdjustBalance(gomock.Any(), tenantID, units[0].ID, gomock.Any()).Return(dec("-300"), nil)
	m.rtx.EXPECT().AdjustBalance(gomock.Any(), tenantID, units[1].ID, gomock.Any()).Return(decimal.Zero, errors.New("db error"))
	m.rtx.EXPECT().Rollback().Return(nil)

	res, err := svc.RunTenant(context.Background(), tenantID, period)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestService_RunTenant_MissingPrerequisites(t *testing.T) {
	t.Run("NoIssuanceCategory", func(t *testing.T) {
		svc, m := newService(t)

		m.categories.EXPECT().FindByPurpose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, category.ErrNotFound)

		_, err := svc.RunTenant(context.Background(), uuid.New(), fiscal.MustParsePeriod("2025-06"))
		assert.ErrorIs(t, err, automation.ErrNoIssuanceCategory)
	})

	t.Run("NoAdmin", func(t *testing.T) {
		svc, m := newService(t)

		m.categories.EXPECT().FindByPurpose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(issuance, nil)
		m.repo.EXPECT().FindAdmin(gomock.Any(), gomock.Any()).Return(uuid.Nil, automation.ErrNoAdmin)

		_, err := svc.RunTenant(context.Background(), uuid.New(), fiscal.MustParsePeriod("2025-06"))
		assert.ErrorIs(t, err, automation.ErrNoAdmin)
	})
}

func TestService_Run_AllTenantsContinuesPastFailure(t *testing.T) {
	svc, m := newService(t)
	svc.SetClock(func() time.Time { return time.Date(2025, time.July, 1, 0, 5, 0, 0, time.UTC) })

	ok := &tenant.Tenant{ID: uuid.New(), IsActive: true}
	broken := &tenant.Tenant{ID: uuid.New(), IsActive: true}
	period := fiscal.MustParsePeriod("2025-07")

	m.tenants.EXPECT().ListActive(gomock.Any()).Return([]*tenant.Tenant{broken, ok}, nil)

	m.categories.EXPECT().FindByPurpose(gomock.Any(), broken.ID, gomock.Any(), gomock.Any()).Return(nil, category.ErrNotFound)

	m.categories.EXPECT().FindByPurpose(gomock.Any(), ok.ID, gomock.Any(), gomock.Any()).Return(issuance, nil)
	m.repo.EXPECT().FindAdmin(gomock.Any(), ok.ID).Return(uuid.New(), nil)
	m.repo.EXPECT().BeginRun(gomock.Any(), ok.ID, period).Return(m.rtx, nil)
	m.rtx.EXPECT().CountCharges(gomock.Any(), ok.ID, period).Return(3, nil)
	m.rtx.EXPECT().Rollback().Return(nil)

	report, err := svc.Run(context.Background(), nil, fiscal.Period{})
	assert.ErrorIs(t, err, automation.ErrNoIssuanceCategory)
	require.NotNil(t, report)
	require.Len(t, report.Results, 1)
	assert.Equal(t, ok.ID, report.Results[0].TenantID)
	assert.Equal(t, 3, report.AlreadyExisted)
}

func TestService_AuditBalances(t *testing.T) {
	svc, m := newService(t)

	a := &tenant.Tenant{ID: uuid.New()}
	b := &tenant.Tenant{ID: uuid.New()}

	m.tenants.EXPECT().ListActive(gomock.Any()).Return([]*tenant.Tenant{a, b}, nil)
	m.auditor.EXPECT().AuditBalances(gomock.Any(), a.ID).Return([]unit.Drift{{Number: "101"}, {Number: "102"}}, nil)
	m.auditor.EXPECT().AuditBalances(gomock.Any(), b.ID).Return(nil, nil)

	drifted, err := svc.AuditBalances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, drifted)
}

func TestScheduler_RejectsInvalidSpec(t *testing.T) {
	svc, _ := newService(t)
	s := automation.NewScheduler(svc)

	assert.Error(t, s.ScheduleMonthly("not a cron spec"))
	assert.NoError(t, s.ScheduleMonthly("5 0 1 * *"))
	assert.NoError(t, s.ScheduleBalanceAudit("30 3 * * *"))
}
