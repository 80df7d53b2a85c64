package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/earning"
	"github.com/chris/amc-warranty-claims/pkg/handlers"
	"github.com/chris/amc-warranty-claims/pkg/metrics"
	"github.com/chris/amc-warranty-claims/pkg/middleware"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/payments"
	"github.com/chris/amc-warranty-claims/pkg/storage/memory"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t      *testing.T
	server *httptest.Server
}

func newAPI(t *testing.T) (*api, *memory.Store) {
	t.Helper()
	store := memory.New()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	ledger := wallet.NewService(store, earning.DefaultFeeSchedule(), wallet.WithMetrics(m))
	processor := claims.NewEarningProcessor(ledger, store, nil)
	workflow := claims.NewService(claims.Deps{
		Store:    store,
		Vendors:  ledger,
		Earnings: processor,
		Metrics:  m,
	})

	router := handlers.NewRouter(handlers.Deps{
		Claims:   workflow,
		Ledger:   ledger,
		Payments: payments.NewService(payments.NewVerifier("secret"), store, processor, nil),
		Gatherer: registry,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	_, err := store.CreateSubscription(context.Background(), &models.Subscription{
		ID:        "sub-1",
		UserID:    "user-1",
		PlanName:  "Gold AMC",
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(1, 0, 0),
		Entitlements: map[models.ServiceCategory]models.Entitlement{
			models.HomeVisit: {Limit: 2, Remaining: 2},
		},
		Version: 1,
	})
	require.NoError(t, err)
	return &api{t: t, server: srv}, store
}

func (a *api) call(method, path, body string, headers map[string]string) (int, map[string]any) {
	a.t.Helper()
	req, err := http.NewRequest(method, a.server.URL+path, strings.NewReader(body))
	require.NoError(a.t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := a.server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var env map[string]any
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

var (
	asUser  = map[string]string{middleware.UserHeader: "user-1"}
	asAdmin = map[string]string{middleware.AdminHeader: "admin-1"}
)

func TestClaimLifecycle(t *testing.T) {
	a, store := newAPI(t)

	status, _ := a.call(http.MethodPost, "/vendors", `{"vendor_id":"v-1","name":"Cool Air"}`, asAdmin)
	require.Equal(t, http.StatusCreated, status)

	status, env := a.call(http.MethodPost, "/claims",
		`{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"AC leaking"}`, asUser)
	require.Equal(t, http.StatusCreated, status)
	claimID := env["data"].(map[string]any)["id"].(string)

	sub, err := store.GetSubscription(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.Entitlements[models.HomeVisit].Remaining)

	status, _ = a.call(http.MethodPost, "/admin/claims/"+claimID+"/approve", "", asAdmin)
	require.Equal(t, http.StatusOK, status)

	status, _ = a.call(http.MethodPost, "/admin/claims/"+claimID+"/assign", `{"vendor_id":"v-1"}`, asAdmin)
	require.Equal(t, http.StatusOK, status)

	status, env = a.call(http.MethodPost, "/admin/claims/"+claimID+"/complete",
		`{"billing":{"billing_amount":100000,"spare_amount":20000,"payment_method":"online","gst_included":true}}`, asAdmin)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "posted", env["data"].(map[string]any)["earning_status"])

	status, env = a.call(http.MethodGet, "/vendors/v-1/wallet", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(52373), env["data"].(map[string]any)["balance"])

	status, env = a.call(http.MethodPost, "/admin/claims/"+claimID+"/approve", "", asAdmin)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "InvalidTransition", env["error"])

	status, env = a.call(http.MethodGet, "/claims?status=completed", "", asUser)
	require.Equal(t, http.StatusOK, status)
	page := env["data"].(map[string]any)
	assert.Equal(t, float64(1), page["pagination"].(map[string]any)["totalCount"])
}

func TestQuotaExhaustedOverHTTP(t *testing.T) {
	a, _ := newAPI(t)
	body := `{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"noise"}`

	for i := 0; i < 2; i++ {
		status, _ := a.call(http.MethodPost, "/claims", body, asUser)
		require.Equal(t, http.StatusCreated, status)
	}
	status, env := a.call(http.MethodPost, "/claims", body, asUser)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "QuotaExhausted", env["error"])
	assert.Equal(t, false, env["success"])
}

func TestPaymentVerification(t *testing.T) {
	a, _ := newAPI(t)
	status, _ := a.call(http.MethodPost, "/vendors", `{"vendor_id":"v-1"}`, asAdmin)
	require.Equal(t, http.StatusCreated, status)

	status, env := a.call(http.MethodPost, "/claims",
		`{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"AC leaking"}`, asUser)
	require.Equal(t, http.StatusCreated, status)
	claimID := env["data"].(map[string]any)["id"].(string)
	for _, step := range []struct{ action, body string }{
		{"approve", ""},
		{"assign", `{"vendor_id":"v-1"}`},
		{"complete", `{"payment_order_id":"order_1","billing":{"billing_amount":1000,"spare_amount":200,"payment_method":"online","gst_included":true}}`},
	} {
		status, _ = a.call(http.MethodPost, "/admin/claims/"+claimID+"/"+step.action, step.body, asAdmin)
		require.Equal(t, http.StatusOK, status, step.action)
	}

	sig := payments.NewVerifier("secret").Sign("order_1", "pay_1")
	body := fmt.Sprintf(`{"orderId":"order_1","paymentId":"pay_1","signature":%q,"amount":1000,"paymentMethod":"online"}`, sig)

	status, env = a.call(http.MethodPost, "/payments/verify", body, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "posted", env["data"].(map[string]any)["earningStatus"])
	assert.Equal(t, claimID, env["data"].(map[string]any)["caseId"])

	// Fields outside the signature cannot move the earning to another case or vendor.
	forged := fmt.Sprintf(`{"orderId":"order_1","paymentId":"pay_1","signature":%q,"amount":1000,"paymentMethod":"online","vendorId":"v-1","caseId":"case-x","billing":{"billing_amount":9000000}}`, sig)
	status, _ = a.call(http.MethodPost, "/payments/verify", forged, nil)
	require.Equal(t, http.StatusOK, status)

	_, env = a.call(http.MethodGet, "/vendors/v-1/wallet", "", nil)
	assert.Equal(t, float64(524), env["data"].(map[string]any)["balance"])
}

func TestMetricsEndpoint(t *testing.T) {
	a, _ := newAPI(t)
	_, _ = a.call(http.MethodPost, "/claims",
		`{"subscription_id":"sub-1","service_category":"home_visit","issue_description":"noise"}`, asUser)

	resp, err := a.server.Client().Get(a.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "claims_transitions_total")
}
