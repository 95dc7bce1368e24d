package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/budget"
	budgetPostgres "github.com/casafin/household-ledger/internal/budget/postgres"
	"github.com/casafin/household-ledger/internal/category"
	categoryPostgres "github.com/casafin/household-ledger/internal/category/postgres"
	"github.com/casafin/household-ledger/internal/core/events"
	"github.com/casafin/household-ledger/internal/expense"
	expensePostgres "github.com/casafin/household-ledger/internal/expense/postgres"
	"github.com/casafin/household-ledger/internal/household"
	householdPostgres "github.com/casafin/household-ledger/internal/household/postgres"
	"github.com/casafin/household-ledger/internal/insights"
	"github.com/casafin/household-ledger/internal/ledger"
	"github.com/casafin/household-ledger/internal/settlement"
	settlementPostgres "github.com/casafin/household-ledger/internal/settlement/postgres"
	"github.com/casafin/household-ledger/internal/transport/rest"
	"github.com/casafin/household-ledger/pkg/currency"
	"github.com/casafin/household-ledger/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Resolver *household.Service
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Resolver, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

// categorySeeder adapts the category service to the household package's
// seeding hook.
type categorySeeder struct {
	service *category.Service
}

func (c categorySeeder) SeedDefaults(householdID string) error {
	_, err := c.service.SeedDefaults(householdID)
	return err
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.App.Environment)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// GORM rides on the already-pooled pgx connection
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	bus := events.NewEventBus(lg)

	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)
	settlementRepo := settlementPostgres.NewSettlementRepository(gormDB)
	budgetRepo := budgetPostgres.NewBudgetRepository(gormDB)
	categoryRepo := categoryPostgres.NewCategoryRepository(gormDB)
	householdRepo := householdPostgres.NewHouseholdRepository(gormDB)

	categoryService := category.NewService(categoryRepo, lg)
	householdService := household.NewService(householdRepo, categorySeeder{categoryService}, lg)
	expenseService := expense.NewService(expenseRepo, bus, lg)
	ledgerService := ledger.NewService(expenseRepo, settlementRepo, bus, lg)
	settlementService := settlement.NewService(settlementRepo, ledgerService, bus, lg)
	budgetService := budget.NewService(budgetRepo, bus, lg)
	insightsService := insights.NewService(expenseRepo, budgetRepo, categoryRepo, householdRepo, config.App.Currency, lg)

	format := currency.NewFormatter(config.App.Currency)

	handlers := rest.Handlers{
		Household:  household.NewHandler(householdService),
		Category:   category.NewHandler(categoryService),
		Expense:    expense.NewHandler(expenseService),
		Settlement: settlement.NewHandler(settlementService),
		Budget:     budget.NewHandler(budgetService),
		Ledger:     ledger.NewHandler(ledgerService, format),
		Insights:   insights.NewHandler(insightsService),
	}

	return &Dependencies{
		Config:   config,
		DB:       db,
		Router:   chi.NewRouter(),
		Resolver: householdService,
		Handlers: handlers,
		Logger:   lg,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
