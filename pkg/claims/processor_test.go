package claims

import (
	"context"
	"testing"

	"github.com/chris/amc-warranty-claims/pkg/entitlement"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage/mocks"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEarningProcessor(t *testing.T) {
	req := wallet.EarningRequest{
		VendorID:      "V",
		CaseID:        "order-1",
		BillingAmount: 1000,
		SpareAmount:   200,
		PaymentMethod: models.PaymentOnline,
		GSTIncluded:   true,
	}

	t.Run("Replay Does Not Double Credit", func(t *testing.T) {
		f := newFixture(t, entitlement.OverrideStrict)
		p := NewEarningProcessor(f.wallets, f.store, nil)

		require.NoError(t, p.Process(context.Background(), req))
		require.NoError(t, p.Process(context.Background(), req))

		balance, err := f.wallets.GetBalance(context.Background(), "V")
		require.NoError(t, err)
		assert.Equal(t, int64(524), balance)
	})

	t.Run("Status Write Failure", func(t *testing.T) {
		f := newFixture(t, entitlement.OverrideStrict)
		claims := mocks.NewStorage(t)
		claims.On("SetEarningStatus", mock.Anything, "order-1", models.EarningPosted).Return(assert.AnError)

		status, err := NewEarningProcessor(f.wallets, claims, nil).ScheduleEarning(context.Background(), req)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, models.EarningPending, status)
	})
}
