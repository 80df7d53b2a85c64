package claims

import (
	"net/http"
	"net/url"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/middleware"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ClaimsHandler serves the user and admin claim endpoints.
type ClaimsHandler struct {
	Workflow claims.Workflow
	respond  *respond.Responder
}

// NewClaimsHandler creates a new ClaimsHandler.
func NewClaimsHandler(workflow claims.Workflow, responder *respond.Responder) *ClaimsHandler {
	return &ClaimsHandler{Workflow: workflow, respond: responder}
}

// Submit opens a claim for the calling user.
func (h *ClaimsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req claims.SubmitRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	req.UserID = middleware.UserID(r.Context())

	claim, err := h.Workflow.Submit(r.Context(), req)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusCreated, "Claim submitted", claim)
}

// Get returns one of the calling user's claims.
func (h *ClaimsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claim, err := h.Workflow.Get(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, "Claim retrieved", claim)
}

// List pages through the calling user's claims.
func (h *ClaimsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, middleware.UserID(r.Context()))
}

// ListAll pages through every user's claims.
func (h *ClaimsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

func (h *ClaimsHandler) list(w http.ResponseWriter, r *http.Request, userID string) {
	q, err := bindListQuery(r.URL.Query())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	q.UserID = userID

	page, err := h.Workflow.List(r.Context(), q)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, "Claims retrieved", page)
}

func bindListQuery(values url.Values) (claims.ListQuery, error) {
	var (
		q      claims.ListQuery
		status string
	)
	params := []struct {
		name string
		dest any
	}{
		{"page", &q.Page},
		{"limit", &q.Limit},
		{"status", &status},
		{"search", &q.Search},
		{"sortBy", &q.SortBy},
		{"sortOrder", &q.SortOrder},
	}
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, values, p.dest); err != nil {
			return q, apperrors.Validation("invalid %s parameter: %v", p.name, err)
		}
	}
	q.Status = models.ClaimStatus(status)
	return q, nil
}

// Approve moves a pending claim to approved.
func (h *ClaimsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req claims.ApproveRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}
	req.AdminID = middleware.AdminID(r.Context())

	claim, err := h.Workflow.Approve(r.Context(), chi.URLParam(r, "id"), req)
	h.transitioned(w, r, claim, err, "Claim approved")
}

// Reject moves a pending claim to rejected and refunds its entitlement unit.
func (h *ClaimsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req claims.RejectRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	req.AdminID = middleware.AdminID(r.Context())

	claim, err := h.Workflow.Reject(r.Context(), chi.URLParam(r, "id"), req)
	h.transitioned(w, r, claim, err, "Claim rejected")
}

// Assign hands an approved claim to a vendor.
func (h *ClaimsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req claims.AssignRequest
	if err := respond.Decode(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	req.AdminID = middleware.AdminID(r.Context())

	claim, err := h.Workflow.AssignVendor(r.Context(), chi.URLParam(r, "id"), req)
	h.transitioned(w, r, claim, err, "Vendor assigned")
}

// Complete closes an in-progress claim.
func (h *ClaimsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req claims.CompleteRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}
	req.AdminID = middleware.AdminID(r.Context())

	claim, err := h.Workflow.Complete(r.Context(), chi.URLParam(r, "id"), req)
	h.transitioned(w, r, claim, err, "Claim completed")
}

// decodeOptional accepts an empty body for endpoints whose fields are all optional.
func (h *ClaimsHandler) decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := respond.Decode(r, dst); err != nil {
		h.respond.Error(w, r, err)
		return false
	}
	return true
}

func (h *ClaimsHandler) transitioned(w http.ResponseWriter, r *http.Request, claim *models.WarrantyClaim, err error, message string) {
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, message, claim)
}
