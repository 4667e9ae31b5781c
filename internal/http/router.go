package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/condo/internal/http/admin"
	"github.com/MrJamesThe3rd/condo/internal/http/auth"
	"github.com/MrJamesThe3rd/condo/internal/http/category"
	"github.com/MrJamesThe3rd/condo/internal/http/importcsv"
	"github.com/MrJamesThe3rd/condo/internal/http/matching"
	"github.com/MrJamesThe3rd/condo/internal/http/report"
	"github.com/MrJamesThe3rd/condo/internal/http/transaction"
	"github.com/MrJamesThe3rd/condo/internal/http/unit"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Handlers struct {
	Transactions *transaction.Handler
	Reports      *report.Handler
	Units        *unit.Handler
	Categories   *category.Handler
	Admin        *admin.Handler
	Import       *importcsv.Handler
	Matching     *matching.Handler
}

func New(authn *auth.Authenticator, corsOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authn.Middleware)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Transactions.Routes(r)
		})

		r.Route("/reports", h.Reports.Routes)

		r.Route("/units", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Units.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Categories.Routes(r)
		})

		r.Route("/import", func(r chi.Router) {
			r.Use(auth.RequireRole(tenant.RoleAdmin, tenant.RoleAccountant))
			h.Import.Routes(r)
		})

		r.Route("/matching", h.Matching.Routes)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(tenant.RoleAdmin))
			h.Admin.Routes(r)
		})
	})

	return router
}
