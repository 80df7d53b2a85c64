package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/claims"
	"github.com/chris/amc-warranty-claims/pkg/earning"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage/memory"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingScheduler struct{}

func (failingScheduler) ScheduleEarning(context.Context, wallet.EarningRequest) (models.EarningStatus, error) {
	return models.EarningPending, errors.New("queue down")
}

func TestVerifier(t *testing.T) {
	v := NewVerifier("secret")
	sig := v.Sign("order_1", "pay_1")

	assert.True(t, v.Verify("order_1", "pay_1", sig))
	assert.False(t, v.Verify("order_1", "pay_2", sig))
	assert.False(t, v.Verify("order_1", "pay_1", "not-hex"))
	assert.False(t, NewVerifier("other").Verify("order_1", "pay_1", sig))
}

func seedCompletedClaim(t *testing.T, store *memory.Store, claimID, orderID string, billing models.JobBilling) {
	t.Helper()
	ctx := context.Background()
	sub := &models.Subscription{ID: "sub-" + claimID, UserID: "u1", Version: 1}
	_, err := store.CreateSubscription(ctx, sub)
	require.NoError(t, err)
	require.NoError(t, store.CreateClaim(ctx, &models.WarrantyClaim{
		ID:              claimID,
		SubscriptionID:  sub.ID,
		UserID:          "u1",
		ServiceCategory: models.HomeVisit,
		Status:          models.ClaimCompleted,
		AssignedVendor:  "V",
		Billing:         &billing,
		PaymentOrderID:  orderID,
		EarningStatus:   models.EarningPending,
	}, sub))
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	verifier := NewVerifier("secret")

	setup := func(t *testing.T) (*Service, *memory.Store, *wallet.Service) {
		store := memory.New()
		ledger := wallet.NewService(store, earning.DefaultFeeSchedule())
		_, err := ledger.CreateWallet(ctx, "V", "Vendor")
		require.NoError(t, err)
		seedCompletedClaim(t, store, "case-9", "order_1", models.JobBilling{
			BillingAmount: 100000,
			SpareAmount:   20000,
			PaymentMethod: models.PaymentOnline,
			GSTIncluded:   true,
		})
		return NewService(verifier, store, claims.NewEarningProcessor(ledger, store, nil), nil), store, ledger
	}

	request := func() VerifyRequest {
		return VerifyRequest{
			OrderID:       "order_1",
			PaymentID:     "pay_1",
			Signature:     verifier.Sign("order_1", "pay_1"),
			Amount:        100000,
			PaymentMethod: models.PaymentOnline,
		}
	}

	t.Run("Online Payment Posts Earning Once", func(t *testing.T) {
		svc, store, ledger := setup(t)

		result, err := svc.Verify(ctx, request())
		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, "case-9", result.CaseID)
		assert.Equal(t, models.EarningPosted, result.EarningStatus)

		_, err = svc.Verify(ctx, request())
		require.NoError(t, err)

		balance, _ := ledger.GetBalance(ctx, "V")
		assert.Equal(t, int64(52373), balance)
		claim, err := store.GetClaim(ctx, "case-9")
		require.NoError(t, err)
		assert.Equal(t, models.EarningPosted, claim.EarningStatus)
	})

	t.Run("Replayed Signature Cannot Redirect Earning", func(t *testing.T) {
		svc, _, ledger := setup(t)
		body := fmt.Sprintf(`{"orderId":"order_1","paymentId":"pay_1","signature":%q,"amount":100000,"paymentMethod":"online",`+
			`"vendorId":"V","caseId":"forged-1","billing":{"billing_amount":10000000,"payment_method":"online"}}`, verifier.Sign("order_1", "pay_1"))

		for i := 0; i < 3; i++ {
			var req VerifyRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			result, err := svc.Verify(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, "case-9", result.CaseID)
		}

		entries, err := ledger.Entries(ctx, "V")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "case-9", entries[0].CaseID)
		balance, _ := ledger.GetBalance(ctx, "V")
		assert.Equal(t, int64(52373), balance)
	})

	t.Run("Amount Mismatch Posts Nothing", func(t *testing.T) {
		svc, _, ledger := setup(t)
		req := request()
		req.Amount = 100

		_, err := svc.Verify(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.ErrorContains(t, err, ErrAmountMismatch.Error())
		balance, _ := ledger.GetBalance(ctx, "V")
		assert.Zero(t, balance)
	})

	t.Run("Unknown Order Posts Nothing", func(t *testing.T) {
		svc, _, ledger := setup(t)
		req := request()
		req.OrderID = "order_2"
		req.Signature = verifier.Sign("order_2", "pay_1")

		result, err := svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Empty(t, result.CaseID)
		assert.Empty(t, result.EarningStatus)
		balance, _ := ledger.GetBalance(ctx, "V")
		assert.Zero(t, balance)
	})

	t.Run("Cash Payment Posts Nothing", func(t *testing.T) {
		svc, _, ledger := setup(t)
		req := request()
		req.PaymentMethod = models.PaymentCash

		result, err := svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.Empty(t, result.EarningStatus)
		balance, _ := ledger.GetBalance(ctx, "V")
		assert.Zero(t, balance)
	})

	t.Run("Bad Signature", func(t *testing.T) {
		svc, _, _ := setup(t)
		req := request()
		req.Signature = verifier.Sign("order_1", "pay_other")

		_, err := svc.Verify(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.ErrorContains(t, err, ErrInvalidSignature.Error())
	})

	t.Run("Scheduler Failure", func(t *testing.T) {
		_, store, _ := setup(t)
		svc := NewService(verifier, store, failingScheduler{}, nil)

		_, err := svc.Verify(ctx, request())

		assert.ErrorIs(t, err, apperrors.ErrDependencyFailure)
	})
}
