package ledger

import (
	"net/http"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// LedgerHandler exposes a vendor's ledger history and balance reconciliation.
type LedgerHandler struct {
	Ledger  wallet.Ledger
	respond *respond.Responder
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger wallet.Ledger, responder *respond.Responder) *LedgerHandler {
	return &LedgerHandler{Ledger: ledger, respond: responder}
}

// ListEntries returns the newest ledger entries of a vendor.
func (h *LedgerHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		h.respond.Error(w, r, apperrors.Validation("invalid limit parameter: %v", err))
		return
	}
	if limit < 1 || limit > maxLimit {
		h.respond.Error(w, r, apperrors.Validation("limit must be between 1 and %d", maxLimit))
		return
	}

	entries, err := h.Ledger.Entries(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []models.WalletLedgerEntry{}
	}
	h.respond.JSON(w, http.StatusOK, "Ledger entries retrieved", entries)
}

// Reconcile compares the cached balance with the ledger sum.
func (h *LedgerHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	drift, err := h.Ledger.Reconcile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	message := "Wallet balance matches ledger"
	if drift.Difference != 0 {
		message = "Wallet balance drifted from ledger"
	}
	h.respond.JSON(w, http.StatusOK, message, drift)
}
