package vendors

import (
	"net/http"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/go-chi/chi/v5"
)

// VendorsHandler holds the dependencies for vendor wallet handlers.
type VendorsHandler struct {
	Ledger  wallet.Ledger
	respond *respond.Responder
}

// NewVendorsHandler creates a new VendorsHandler.
func NewVendorsHandler(ledger wallet.Ledger, responder *respond.Responder) *VendorsHandler {
	return &VendorsHandler{Ledger: ledger, respond: responder}
}

type onboardRequest struct {
	VendorID string `json:"vendor_id"`
	Name     string `json:"name"`
}

type penaltyRequest struct {
	CaseID string `json:"case_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// WalletView is a vendor's balance together with its ledger history.
type WalletView struct {
	VendorID string                     `json:"vendor_id"`
	Balance  int64                      `json:"balance"`
	Entries  []models.WalletLedgerEntry `json:"entries"`
}

// Onboard creates the wallet that makes a vendor assignable.
func (h *VendorsHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	created, err := h.Ledger.CreateWallet(r.Context(), req.VendorID, req.Name)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusCreated, "Vendor onboarded", created)
}

// GetWallet returns the balance and entries of a vendor.
func (h *VendorsHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "id")

	exists, err := h.Ledger.VendorExists(r.Context(), vendorID)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if !exists {
		h.respond.Error(w, r, apperrors.ErrNotFound)
		return
	}

	balance, err := h.Ledger.GetBalance(r.Context(), vendorID)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	entries, err := h.Ledger.Entries(r.Context(), vendorID)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.WalletLedgerEntry{}
	}
	h.respond.JSON(w, http.StatusOK, "Wallet retrieved", WalletView{VendorID: vendorID, Balance: balance, Entries: entries})
}

// ApplyPenalty debits a vendor's wallet.
func (h *VendorsHandler) ApplyPenalty(w http.ResponseWriter, r *http.Request) {
	var req penaltyRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	entry, err := h.Ledger.ApplyPenalty(r.Context(), chi.URLParam(r, "id"), req.CaseID, req.Amount, req.Reason)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusCreated, "Penalty applied", entry)
}
