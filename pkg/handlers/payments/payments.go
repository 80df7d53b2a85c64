package payments

import (
	"context"
	"net/http"

	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/payments"
)

// Verifier checks a gateway callback and schedules the earning it pays for.
type Verifier interface {
	Verify(ctx context.Context, req payments.VerifyRequest) (*payments.VerifyResult, error)
}

// PaymentsHandler serves the payment gateway callback.
type PaymentsHandler struct {
	Verifier Verifier
	respond  *respond.Responder
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(verifier Verifier, responder *respond.Responder) *PaymentsHandler {
	return &PaymentsHandler{Verifier: verifier, respond: responder}
}

// Verify handles POST /payments/verify.
func (h *PaymentsHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req payments.VerifyRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	result, err := h.Verifier.Verify(r.Context(), req)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, "Payment verified", result)
}
