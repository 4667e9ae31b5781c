package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=automation
type Repository interface {
	FindAdmin(ctx context.Context, tenantID uuid.UUID) (uuid.UUID, error)
	BeginRun(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (RunTx, error)
}

// RunTx holds the per-(tenant, period) lock for the whole run. It extends the
// ledger unit of work with the reads the run needs.
type RunTx interface {
	ledger.Tx
	// CountCharges counts the period's charges under any virtual issuance
	// category visible to the tenant, not only the one the run resolved.
	CountCharges(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (int, error)
	OccupiedUnits(ctx context.Context, tenantID uuid.UUID) ([]*unit.Unit, error)
}

type Categories interface {
	FindByPurpose(ctx context.Context, tenantID uuid.UUID, purpose category.Purpose, t category.Type) (*category.Category, error)
}

type Tenants interface {
	ListActive(ctx context.Context) ([]*tenant.Tenant, error)
}

type Auditor interface {
	AuditBalances(ctx context.Context, tenantID uuid.UUID) ([]unit.Drift, error)
}

type Service struct {
	repo       Repository
	categories Categories
	tenants    Tenants
	auditor    Auditor
	defaultFee decimal.Decimal
	loc        *time.Location
	now        func() time.Time
}

func NewService(repo Repository, categories Categories, tenants Tenants, auditor Auditor, defaultFee decimal.Decimal, loc *time.Location) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		tenants:    tenants,
		auditor:    auditor,
		defaultFee: defaultFee,
		loc:        loc,
		now:        time.Now,
	}
}

// Run issues the charges for period (current month when zero) for one tenant,
// or for every active tenant when tenantID is nil. Each tenant runs in its own
// transaction; a failing tenant does not stop the others.
func (s *Service) Run(ctx context.Context, tenantID *uuid.UUID, period fiscal.Period) (*Report, error) {
	if period.IsZero() {
		period = fiscal.Current(s.now(), s.loc)
	}

	report := &Report{}

	if tenantID != nil {
		res, err := s.RunTenant(ctx, *tenantID, period)
		if err != nil {
			return nil, err
		}

		report.add(*res)

		return report, nil
	}

	tenants, err := s.tenants.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active tenants: %w", err)
	}

	var errs []error

	for _, t := range tenants {
		res, err := s.RunTenant(ctx, t.ID, period)
		if err != nil {
			slog.Error("monthly charges failed", "tenant_id", t.ID, "period", period, "error", err)
			errs = append(errs, fmt.Errorf("tenant %s: %w", t.ID, err))

			continue
		}

		report.add(*res)
	}

	return report, errors.Join(errs...)
}

// RunTenant charges every occupied unit of one tenant its monthly fee, dated
// the first day of period. Either all units are charged or none are.
func (s *Service) RunTenant(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (*Result, error) {
	cat, err := s.categories.FindByPurpose(ctx, tenantID, category.PurposeVirtualIssuance, category.TypeExpense)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrNoIssuanceCategory
		}

		return nil, fmt.Errorf("find issuance category: %w", err)
	}

	admin, err := s.repo.FindAdmin(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rtx, err := s.repo.BeginRun(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	defer rtx.Rollback()

	res := &Result{TenantID: tenantID, Period: period, Total: decimal.Zero}

	existing, err := rtx.CountCharges(ctx, tenantID, period)
	if err != nil {
		return nil, fmt.Errorf("count charges: %w", err)
	}

	if existing > 0 {
		res.AlreadyExisted = existing

		slog.Info("monthly charges already issued", "tenant_id", tenantID, "period", period, "existing", existing)

		return res, nil
	}

	units, err := rtx.OccupiedUnits(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list occupied units: %w", err)
	}

	for _, u := range units {
		amount := u.MonthlyFee
		if !amount.IsPositive() {
			amount = s.defaultFee
		}

		if !amount.IsPositive() {
			slog.Warn("unit has no monthly fee", "tenant_id", tenantID, "unit", u.Number, "period", period)
			res.Skipped = append(res.Skipped, u.Number)

			continue
		}

		unitID := u.ID
		charge := &ledger.Transaction{
			TenantID:     tenantID,
			UnitID:       &unitID,
			CategoryID:   cat.ID,
			CreatedBy:    &admin,
			Type:         category.TypeExpense,
			Amount:       amount,
			Description:  fmt.Sprintf("%s - %s", cat.Name, period),
			Date:         period.Start(),
			FiscalPeriod: period,
			Status:       ledger.StatusConfirmed,
		}

		if err := rtx.InsertTransaction(ctx, charge); err != nil {
			return nil, fmt.Errorf("insert charge for unit %s: %w", u.Number, err)
		}

		if _, err := rtx.AdjustBalance(ctx, tenantID, u.ID, amount.Neg()); err != nil {
			return nil, fmt.Errorf("charge unit %s: %w", u.Number, err)
		}

		res.Created++
		res.Total = res.Total.Add(amount)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}

	slog.Info("monthly charges issued",
		"tenant_id", tenantID,
		"period", period,
		"created", res.Created,
		"skipped", len(res.Skipped),
		"total", res.Total.StringFixed(2),
	)

	return res, nil
}

// AuditBalances checks every active tenant and returns how many units drifted.
func (s *Service) AuditBalances(ctx context.Context) (int, error) {
	tenants, err := s.tenants.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active tenants: %w", err)
	}

	drifted := 0

	var errs []error

	for _, t := range tenants {
		drift, err := s.auditor.AuditBalances(ctx, t.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", t.ID, err))
			continue
		}

		drifted += len(drift)
	}

	return drifted, errors.Join(errs...)
}
