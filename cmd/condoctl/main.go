package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/condo/cmd/condoctl/internal/view"
	"github.com/MrJamesThe3rd/condo/internal/automation"
	automationStore "github.com/MrJamesThe3rd/condo/internal/automation/store"
	"github.com/MrJamesThe3rd/condo/internal/category"
	categoryStore "github.com/MrJamesThe3rd/condo/internal/category/store"
	"github.com/MrJamesThe3rd/condo/internal/config"
	"github.com/MrJamesThe3rd/condo/internal/database"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/statement"
	statementStore "github.com/MrJamesThe3rd/condo/internal/statement/store"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	tenantStore "github.com/MrJamesThe3rd/condo/internal/tenant/store"
	"github.com/MrJamesThe3rd/condo/internal/unit"
	unitStore "github.com/MrJamesThe3rd/condo/internal/unit/store"
)

const usage = `usage: condoctl <command> [flags]

commands:
  statement       -tenant ID [-period YYYY-MM]   financial status of a period
  debtors         -tenant ID                     units with a negative balance
  run-monthly     [-tenant ID] [-period YYYY-MM] issue monthly maintenance charges
  audit-balances  [-tenant ID]                   compare stored unit balances with their history
`

type services struct {
	tenants    *tenant.Service
	units      *unit.Service
	statements *statement.Service
	automation *automation.Service
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.Pool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc, err := newServices(cfg, db)
	if err != nil {
		slog.Error("failed to initialise services", "error", err)
		os.Exit(1)
	}

	if err := dispatch(svc, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}

		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

func newServices(cfg *config.Config, db *sql.DB) (*services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	fee, err := cfg.DefaultMonthlyFee()
	if err != nil {
		return nil, err
	}

	var (
		tenantSvc   = tenant.NewService(tenantStore.New(db))
		categorySvc = category.NewService(categoryStore.New(db))
		unitSvc     = unit.NewService(unitStore.New(db))
	)

	return &services{
		tenants:    tenantSvc,
		units:      unitSvc,
		statements: statement.NewService(statementStore.New(db), categorySvc, loc),
		automation: automation.NewService(automationStore.New(db), categorySvc, tenantSvc, unitSvc, fee, loc),
	}, nil
}

func dispatch(svc *services, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	tenantFlag := fs.String("tenant", "", "tenant id")
	periodFlag := fs.String("period", "", "fiscal period YYYY-MM (default: current month)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var period fiscal.Period

	if *periodFlag != "" {
		p, err := fiscal.ParsePeriod(*periodFlag)
		if err != nil {
			return err
		}

		period = p
	}

	var tenantID *uuid.UUID

	if *tenantFlag != "" {
		id, err := uuid.Parse(*tenantFlag)
		if err != nil {
			return fmt.Errorf("invalid -tenant: %w", err)
		}

		tenantID = &id
	}

	ctx, cancel := view.DbCtx()
	defer cancel()

	switch cmd {
	case "statement":
		if tenantID == nil {
			return errors.New("-tenant is required")
		}

		t, err := svc.tenants.Resolve(ctx, *tenantID)
		if err != nil {
			return err
		}

		st, err := svc.statements.Generate(ctx, t.ID, period)
		if err != nil {
			return err
		}

		fmt.Println(view.Statement(t.Name, st))
	case "debtors":
		if tenantID == nil {
			return errors.New("-tenant is required")
		}

		rep, err := svc.units.Debtors(ctx, *tenantID)
		if err != nil {
			return err
		}

		fmt.Println(view.Debtors(rep))
	case "run-monthly":
		rep, err := svc.automation.Run(ctx, tenantID, period)
		if rep != nil {
			fmt.Println(view.Charges(rep))
		}

		return err
	case "audit-balances":
		if tenantID == nil {
			drifted, err := svc.automation.AuditBalances(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%d units drifted across active tenants\n", drifted)

			return nil
		}

		drift, err := svc.units.AuditBalances(ctx, *tenantID)
		if err != nil {
			return err
		}

		fmt.Println(view.Drift(drift))
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}
