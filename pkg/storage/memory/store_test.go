package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*Store, *models.Subscription) {
	t.Helper()
	s := New()
	sub, err := s.CreateSubscription(context.Background(), &models.Subscription{
		ID:     "sub-1",
		UserID: "user-1",
		Entitlements: map[models.ServiceCategory]models.Entitlement{
			models.HomeVisit: {Limit: 2, Remaining: 2},
		},
		Version: 1,
	})
	require.NoError(t, err)
	return s, sub
}

func TestCreateClaimCommitsSubscription(t *testing.T) {
	ctx := context.Background()
	s, _ := seed(t)

	staged, err := s.GetSubscription(ctx, "sub-1")
	require.NoError(t, err)
	staged.Entitlements[models.HomeVisit] = models.Entitlement{Limit: 2, Used: 1, Remaining: 1}

	claim := &models.WarrantyClaim{ID: "c-1", SubscriptionID: "sub-1", UserID: "user-1", Status: models.ClaimPending, CreatedAt: base}
	require.NoError(t, s.CreateClaim(ctx, claim, staged))
	assert.Equal(t, int64(2), staged.Version)

	stored, err := s.GetSubscription(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Entitlements[models.HomeVisit].Remaining)
	assert.Equal(t, int64(2), stored.Version)

	t.Run("Stale Version", func(t *testing.T) {
		stale := stored.Clone()
		stale.Version = 1
		err := s.CreateClaim(ctx, &models.WarrantyClaim{ID: "c-2", Status: models.ClaimPending}, stale)
		assert.ErrorIs(t, err, storage.ErrVersionConflict)

		_, err = s.GetClaim(ctx, "c-2")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Duplicate Claim", func(t *testing.T) {
		err := s.CreateClaim(ctx, claim, stored.Clone())
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestUpdateClaimGuardsStatus(t *testing.T) {
	ctx := context.Background()
	s, sub := seed(t)
	require.NoError(t, s.CreateClaim(ctx, &models.WarrantyClaim{ID: "c-1", SubscriptionID: "sub-1", Status: models.ClaimPending}, sub))

	approved := &models.WarrantyClaim{ID: "c-1", SubscriptionID: "sub-1", Status: models.ClaimApproved}
	require.NoError(t, s.UpdateClaim(ctx, approved, models.ClaimPending, nil))

	rejected := &models.WarrantyClaim{ID: "c-1", SubscriptionID: "sub-1", Status: models.ClaimRejected}
	err := s.UpdateClaim(ctx, rejected, models.ClaimPending, nil)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)

	err = s.UpdateClaim(ctx, &models.WarrantyClaim{ID: "c-9"}, models.ClaimPending, nil)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	s, sub := seed(t)
	require.NoError(t, s.CreateClaim(ctx, &models.WarrantyClaim{
		ID:      "c-1",
		Status:  models.ClaimCompleted,
		Billing: &models.JobBilling{BillingAmount: 1000},
	}, sub))

	got, err := s.GetClaim(ctx, "c-1")
	require.NoError(t, err)
	got.Billing.BillingAmount = 1
	got.Status = models.ClaimRejected

	again, err := s.GetClaim(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), again.Billing.BillingAmount)
	assert.Equal(t, models.ClaimCompleted, again.Status)

	fetched, err := s.GetSubscription(ctx, "sub-1")
	require.NoError(t, err)
	fetched.Entitlements[models.HomeVisit] = models.Entitlement{}
	fresh, _ := s.GetSubscription(ctx, "sub-1")
	assert.Equal(t, int64(2), fresh.Entitlements[models.HomeVisit].Limit)
}

func TestListClaims(t *testing.T) {
	ctx := context.Background()
	s, sub := seed(t)
	for i, st := range []models.ClaimStatus{models.ClaimPending, models.ClaimCompleted, models.ClaimCompleted} {
		c := &models.WarrantyClaim{
			ID:        string(rune('a' + i)),
			UserID:    "user-1",
			Status:    st,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if i == 2 {
			c.EarningStatus = models.EarningPending
		}
		require.NoError(t, s.CreateClaim(ctx, c, sub))
	}

	all, err := s.ListClaims(ctx, storage.ClaimFilter{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	pending, err := s.ListClaims(ctx, storage.ClaimFilter{Status: models.ClaimCompleted, EarningStatus: models.EarningPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "c", pending[0].ID)

	n, err := s.CountClaims(ctx, storage.ClaimFilter{Status: models.ClaimCompleted})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.SetEarningStatus(ctx, "c", models.EarningPosted))
	assert.ErrorIs(t, s.SetEarningStatus(ctx, "zzz", models.EarningPosted), storage.ErrNotFound)
}

func TestAppendEntry(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.CreateWallet(ctx, &models.VendorWallet{VendorID: "v-1", Version: 1})
	require.NoError(t, err)

	_, err = s.CreateWallet(ctx, &models.VendorWallet{VendorID: "v-1"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	require.NoError(t, s.AppendEntry(ctx, &models.WalletLedgerEntry{EntryID: "e-1", VendorID: "v-1", Amount: 500, Timestamp: base}))
	require.NoError(t, s.AppendEntry(ctx, &models.WalletLedgerEntry{EntryID: "e-2", VendorID: "v-1", Amount: -800, Timestamp: base.Add(time.Minute)}))

	assert.ErrorIs(t, s.AppendEntry(ctx, &models.WalletLedgerEntry{EntryID: "e-1", VendorID: "v-1", Amount: 500}), storage.ErrDuplicateEntry)
	assert.ErrorIs(t, s.AppendEntry(ctx, &models.WalletLedgerEntry{EntryID: "e-3", VendorID: "v-9", Amount: 1}), storage.ErrNotFound)

	wallet, err := s.GetWallet(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(-300), wallet.Balance)
	assert.Equal(t, int64(3), wallet.Version)

	entries, err := s.ListEntries(ctx, "v-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e-2", entries[0].EntryID)

	wallets, err := s.ListWallets(ctx)
	require.NoError(t, err)
	assert.Len(t, wallets, 1)
}
