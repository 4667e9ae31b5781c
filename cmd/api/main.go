package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	automationStore "github.com/MrJamesThe3rd/condo/internal/automation/store"
	"github.com/MrJamesThe3rd/condo/internal/category"
	categoryStore "github.com/MrJamesThe3rd/condo/internal/category/store"
	"github.com/MrJamesThe3rd/condo/internal/config"
	"github.com/MrJamesThe3rd/condo/internal/database"
	condoHttp "github.com/MrJamesThe3rd/condo/internal/http"
	adminHandler "github.com/MrJamesThe3rd/condo/internal/http/admin"
	"github.com/MrJamesThe3rd/condo/internal/http/auth"
	categoryHandler "github.com/MrJamesThe3rd/condo/internal/http/category"
	importHandler "github.com/MrJamesThe3rd/condo/internal/http/importcsv"
	matchingHandler "github.com/MrJamesThe3rd/condo/internal/http/matching"
	reportHandler "github.com/MrJamesThe3rd/condo/internal/http/report"
	txHandler "github.com/MrJamesThe3rd/condo/internal/http/transaction"
	unitHandler "github.com/MrJamesThe3rd/condo/internal/http/unit"
	"github.com/MrJamesThe3rd/condo/internal/importer"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/condo/internal/ledger/store"
	"github.com/MrJamesThe3rd/condo/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/condo/internal/matching/store"
	"github.com/MrJamesThe3rd/condo/internal/statement"
	statementStore "github.com/MrJamesThe3rd/condo/internal/statement/store"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	tenantStore "github.com/MrJamesThe3rd/condo/internal/tenant/store"
	"github.com/MrJamesThe3rd/condo/internal/unit"
	unitStore "github.com/MrJamesThe3rd/condo/internal/unit/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	secret, err := cfg.JWTSecret()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	defaultFee, err := cfg.DefaultMonthlyFee()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString(), cfg.Pool())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	var (
		tenantService    = tenant.NewService(tenantStore.New(db))
		categoryService  = category.NewService(categoryStore.New(db))
		unitService      = unit.NewService(unitStore.New(db))
		ledgerService    = ledger.NewService(ledgerStore.New(db), categoryService)
		statementService = statement.NewService(statementStore.New(db), categoryService, loc)
		matchingRepo     = matchingStore.New(db)
		matchingService  = matching.NewService(matchingRepo, matchingRepo)
		importService    = importer.NewService(matchingService, categoryService, ledgerService)
		automationSvc    = automation.NewService(
			automationStore.New(db), categoryService, tenantService, unitService, defaultFee, loc,
		)
	)

	router := condoHttp.New(
		auth.New(secret, tenantService),
		cfg.Server.CORSOrigins,
		condoHttp.Handlers{
			Transactions: txHandler.NewHandler(ledgerService),
			Reports:      reportHandler.NewHandler(statementService),
			Units:        unitHandler.NewHandler(unitService),
			Categories:   categoryHandler.NewHandler(categoryService),
			Admin:        adminHandler.NewHandler(automationSvc, unitService),
			Import:       importHandler.NewHandler(importService),
			Matching:     matchingHandler.NewHandler(matchingService),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := automation.NewScheduler(automationSvc)

	if cfg.Automation.Enabled {
		if err := scheduler.ScheduleMonthly(cfg.Automation.Schedule); err != nil {
			return err
		}
	}

	if cfg.Automation.BalanceAuditEnable {
		if err := scheduler.ScheduleBalanceAudit(cfg.Automation.BalanceAuditCron); err != nil {
			return err
		}
	}

	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", server.Addr, "timezone", loc.String())

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		<-scheduler.Stop().Done()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		slog.Warn("scheduled jobs still running at shutdown")
	}

	return nil
}
