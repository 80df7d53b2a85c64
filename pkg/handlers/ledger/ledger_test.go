package ledger_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/handlers/ledger"
	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/chris/amc-warranty-claims/pkg/wallet/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(l wallet.Ledger) http.Handler {
	h := ledger.NewLedgerHandler(l, respond.New(false, nil))
	r := chi.NewRouter()
	r.Get("/vendors/{id}/ledger", h.ListEntries)
	r.Get("/vendors/{id}/reconcile", h.Reconcile)
	return r
}

func TestListEntries(t *testing.T) {
	entries := make([]models.WalletLedgerEntry, 25)
	for i := range entries {
		entries[i] = models.WalletLedgerEntry{EntryID: fmt.Sprintf("e-%d", i), Timestamp: time.Now()}
	}

	t.Run("Default Limit", func(t *testing.T) {
		l := mocks.NewLedger(t)
		l.On("Entries", mock.Anything, "v-1").Return(entries, nil)

		rr := httptest.NewRecorder()
		newRouter(l).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-1/ledger", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Data []models.WalletLedgerEntry `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Len(t, body.Data, 20)
		assert.Equal(t, "e-0", body.Data[0].EntryID)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		l := mocks.NewLedger(t)
		l.On("Entries", mock.Anything, "v-1").Return(entries, nil)

		rr := httptest.NewRecorder()
		newRouter(l).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-1/ledger?limit=3", nil))

		var body struct {
			Data []models.WalletLedgerEntry `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Len(t, body.Data, 3)
	})

	t.Run("Limit Out Of Range", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter(mocks.NewLedger(t)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-1/ledger?limit=0", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Storage Error", func(t *testing.T) {
		l := mocks.NewLedger(t)
		l.On("Entries", mock.Anything, "v-1").Return(nil, assert.AnError)

		rr := httptest.NewRecorder()
		newRouter(l).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-1/ledger", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestReconcile(t *testing.T) {
	t.Run("Drift", func(t *testing.T) {
		l := mocks.NewLedger(t)
		l.On("Reconcile", mock.Anything, "v-1").Return(wallet.Drift{VendorID: "v-1", CachedBalance: 100, LedgerBalance: 90, Difference: 10}, nil)

		rr := httptest.NewRecorder()
		newRouter(l).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-1/reconcile", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "drifted")
	})

	t.Run("Unknown Vendor", func(t *testing.T) {
		l := mocks.NewLedger(t)
		l.On("Reconcile", mock.Anything, "v-9").Return(wallet.Drift{}, apperrors.ErrNotFound)

		rr := httptest.NewRecorder()
		newRouter(l).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vendors/v-9/reconcile", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
