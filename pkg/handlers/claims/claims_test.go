package claims_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/claims/mocks"
	handler "github.com/chris/amc-warranty-claims/pkg/handlers/claims"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/middleware"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(workflow claims.Workflow) http.Handler {
	h := handler.NewClaimsHandler(workflow, respond.New(false, nil))
	r := chi.NewRouter()
	r.With(middleware.RequireUser).Post("/claims", h.Submit)
	r.With(middleware.RequireUser).Get("/claims", h.List)
	r.With(middleware.RequireUser).Get("/claims/{id}", h.Get)
	r.Route("/admin/claims", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.ListAll)
		r.Post("/{id}/approve", h.Approve)
		r.Post("/{id}/reject", h.Reject)
		r.Post("/{id}/assign", h.Assign)
		r.Post("/{id}/complete", h.Complete)
	})
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, respond.Envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr, env
}

var (
	asUser  = map[string]string{middleware.UserHeader: "user-1"}
	asAdmin = map[string]string{middleware.AdminHeader: "admin-1"}
)

func TestSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Submit", mock.Anything, claims.SubmitRequest{
			UserID:           "user-1",
			SubscriptionID:   "sub-1",
			ServiceCategory:  models.HomeVisit,
			IssueDescription: "AC not cooling",
		}).Return(&models.WarrantyClaim{ID: "c-1", Status: models.ClaimPending}, nil)

		rr, env := do(t, newRouter(wf), http.MethodPost, "/claims",
			`{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"AC not cooling"}`, asUser)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "c-1", env.Data.(map[string]any)["id"])
	})

	t.Run("Quota Exhausted", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Submit", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("submit: %w", apperrors.ErrQuotaExhausted))

		rr, env := do(t, newRouter(wf), http.MethodPost, "/claims",
			`{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"x"}`, asUser)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "QuotaExhausted", env.Error)
	})

	t.Run("Missing Identity", func(t *testing.T) {
		rr, _ := do(t, newRouter(mocks.NewWorkflow(t)), http.MethodPost, "/claims", `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		rr, env := do(t, newRouter(mocks.NewWorkflow(t)), http.MethodPost, "/claims", `{"subscription_id":`, asUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "ValidationError", env.Error)
	})
}

func TestGet(t *testing.T) {
	wf := mocks.NewWorkflow(t)
	wf.On("Get", mock.Anything, "c-9", "user-1").Return(nil, apperrors.ErrNotFound)

	rr, env := do(t, newRouter(wf), http.MethodGet, "/claims/c-9", "", asUser)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NotFound", env.Error)
}

func TestList(t *testing.T) {
	t.Run("Binds Query", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("List", mock.Anything, claims.ListQuery{
			UserID:    "user-1",
			Status:    models.ClaimPending,
			Search:    "fridge",
			Page:      2,
			Limit:     5,
			SortBy:    "updated_at",
			SortOrder: "asc",
		}).Return(&claims.ClaimPage{Pagination: claims.Pagination{CurrentPage: 2}}, nil)

		rr, env := do(t, newRouter(wf), http.MethodGet,
			"/claims?status=pending&search=fridge&page=2&limit=5&sortBy=updated_at&sortOrder=asc", "", asUser)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, env.Success)
	})

	t.Run("Admin Lists Everyone", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("List", mock.Anything, claims.ListQuery{}).Return(&claims.ClaimPage{}, nil)

		rr, _ := do(t, newRouter(wf), http.MethodGet, "/admin/claims", "", asAdmin)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Bad Page", func(t *testing.T) {
		rr, env := do(t, newRouter(mocks.NewWorkflow(t)), http.MethodGet, "/claims?page=two", "", asUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "ValidationError", env.Error)
	})
}

func TestAdminTransitions(t *testing.T) {
	t.Run("Approve Without Body", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Approve", mock.Anything, "c-1", claims.ApproveRequest{AdminID: "admin-1"}).
			Return(&models.WarrantyClaim{ID: "c-1", Status: models.ClaimApproved}, nil)

		rr, env := do(t, newRouter(wf), http.MethodPost, "/admin/claims/c-1/approve", "", asAdmin)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Claim approved", env.Message)
	})

	t.Run("Reject Invalid Transition", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Reject", mock.Anything, "c-1", claims.RejectRequest{AdminID: "admin-1", Reason: "duplicate"}).
			Return(nil, fmt.Errorf("reject: %w", apperrors.ErrInvalidTransition))

		rr, env := do(t, newRouter(wf), http.MethodPost, "/admin/claims/c-1/reject", `{"reason":"duplicate"}`, asAdmin)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "InvalidTransition", env.Error)
	})

	t.Run("Assign", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("AssignVendor", mock.Anything, "c-1", claims.AssignRequest{AdminID: "admin-1", VendorID: "v-1"}).
			Return(&models.WarrantyClaim{ID: "c-1", Status: models.ClaimInProgress, AssignedVendor: "v-1"}, nil)

		rr, _ := do(t, newRouter(wf), http.MethodPost, "/admin/claims/c-1/assign", `{"vendor_id":"v-1"}`, asAdmin)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Complete With Billing", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Complete", mock.Anything, "c-1", mock.MatchedBy(func(req claims.CompleteRequest) bool {
			return req.AdminID == "admin-1" && req.Billing != nil &&
				req.Billing.BillingAmount == 100000 && req.Billing.PaymentMethod == models.PaymentOnline
		})).Return(&models.WarrantyClaim{ID: "c-1", Status: models.ClaimCompleted, EarningStatus: models.EarningPosted}, nil)

		rr, _ := do(t, newRouter(wf), http.MethodPost, "/admin/claims/c-1/complete",
			`{"completion_notes":"done","billing":{"billing_amount":100000,"payment_method":"online"}}`, asAdmin)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("User Header Is Not Admin", func(t *testing.T) {
		rr, _ := do(t, newRouter(mocks.NewWorkflow(t)), http.MethodPost, "/admin/claims/c-1/approve", "", asUser)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
