// Package handlers assembles the HTTP API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/amc-warranty-claims/pkg/claims"
	claimshandler "github.com/chris/amc-warranty-claims/pkg/handlers/claims"
	"github.com/chris/amc-warranty-claims/pkg/handlers/ledger"
	paymentshandler "github.com/chris/amc-warranty-claims/pkg/handlers/payments"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/handlers/vendors"
	"github.com/chris/amc-warranty-claims/pkg/middleware"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the services behind the API. Websocket and Gatherer are optional.
type Deps struct {
	Claims    claims.Workflow
	Ledger    wallet.Ledger
	Payments  paymentshandler.Verifier
	Websocket http.Handler
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger
	Debug     bool
}

// NewRouter mounts every endpoint on a chi router.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	responder := respond.New(d.Debug, logger)

	claimsH := claimshandler.NewClaimsHandler(d.Claims, responder)
	vendorsH := vendors.NewVendorsHandler(d.Ledger, responder)
	ledgerH := ledger.NewLedgerHandler(d.Ledger, responder)
	paymentsH := paymentshandler.NewPaymentsHandler(d.Payments, responder)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.NewStructuredLogger(logger))
	r.Use(chimw.Recoverer)

	r.Route("/claims", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/", claimsH.Submit)
		r.Get("/", claimsH.List)
		r.Get("/{id}", claimsH.Get)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/claims", claimsH.ListAll)
		r.Post("/claims/{id}/approve", claimsH.Approve)
		r.Post("/claims/{id}/reject", claimsH.Reject)
		r.Post("/claims/{id}/assign", claimsH.Assign)
		r.Post("/claims/{id}/complete", claimsH.Complete)
	})

	r.Route("/vendors", func(r chi.Router) {
		r.With(middleware.RequireAdmin).Post("/", vendorsH.Onboard)
		r.Get("/{id}/wallet", vendorsH.GetWallet)
		r.Get("/{id}/ledger", ledgerH.ListEntries)
		r.With(middleware.RequireAdmin).Get("/{id}/reconcile", ledgerH.Reconcile)
		r.With(middleware.RequireAdmin).Post("/{id}/penalties", vendorsH.ApplyPenalty)
	})

	r.Post("/payments/verify", paymentsH.Verify)

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		responder.JSON(w, http.StatusOK, "ok", nil)
	})

	if d.Websocket != nil {
		r.Handle("/ws", d.Websocket)
	}
	return r
}
