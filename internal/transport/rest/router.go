package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/casafin/household-ledger/internal/budget"
	"github.com/casafin/household-ledger/internal/category"
	"github.com/casafin/household-ledger/internal/expense"
	"github.com/casafin/household-ledger/internal/household"
	"github.com/casafin/household-ledger/internal/insights"
	"github.com/casafin/household-ledger/internal/ledger"
	"github.com/casafin/household-ledger/internal/settlement"
	"github.com/casafin/household-ledger/internal/transport/middleware"
	"github.com/casafin/household-ledger/internal/transport/swagger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Household  *household.Handler
	Category   *category.Handler
	Expense    *expense.Handler
	Settlement *settlement.Handler
	Budget     *budget.Handler
	Ledger     *ledger.Handler
	Insights   *insights.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, resolver middleware.MemberResolver, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Household bootstrap happens before a member identity exists.
		r.Post("/households", handlers.Household.CreateHousehold)
		r.Post("/households/join", handlers.Household.JoinHousehold)

		// Everything else acts as a resolved household member.
		r.Group(func(mr chi.Router) {
			mr.Use(middleware.MemberContext(resolver))

			mr.Get("/households/me", handlers.Household.GetMyHousehold)

			mr.Route("/categories", func(cr chi.Router) {
				cr.Get("/", handlers.Category.ListCategories)
				cr.Post("/", handlers.Category.CreateCategory)
				cr.Delete("/{id}", handlers.Category.DeleteCategory)
			})

			mr.Route("/expenses", func(er chi.Router) {
				er.Post("/", handlers.Expense.CreateExpense)
				er.Get("/", handlers.Expense.ListExpenses)
				er.Get("/{id}", handlers.Expense.GetExpense)
				er.Put("/{id}", handlers.Expense.UpdateExpense)
				er.Delete("/{id}", handlers.Expense.DeleteExpense)
			})

			mr.Route("/settlements", func(sr chi.Router) {
				sr.Post("/", handlers.Settlement.CreateSettlement)
				sr.Get("/", handlers.Settlement.ListSettlements)
				sr.Post("/settle-up", handlers.Settlement.SettleUp)
			})

			mr.Route("/budgets", func(br chi.Router) {
				br.Put("/", handlers.Budget.SetBudget)
				br.Get("/", handlers.Budget.ListBudgets)
				br.Delete("/{id}", handlers.Budget.DeleteBudget)
				br.Post("/copy", handlers.Budget.CopyBudgets)
			})

			mr.Get("/balance", handlers.Ledger.GetBalance)
			mr.Get("/reports", handlers.Ledger.GetReport)
			mr.Get("/insights", handlers.Insights.GetInsights)
		})
	})
}
