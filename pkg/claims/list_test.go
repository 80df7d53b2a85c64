package claims

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClaims(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()
	sub := &models.Subscription{ID: "s1", UserID: "u1", EndDate: testNow.AddDate(1, 0, 0), Version: 1}
	_, err := store.CreateSubscription(ctx, sub)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		userID := "u1"
		if i%3 == 0 {
			userID = "u2"
		}
		status := models.ClaimPending
		if i%2 == 0 {
			status = models.ClaimApproved
		}
		err := store.CreateClaim(ctx, &models.WarrantyClaim{
			ID:               fmt.Sprintf("c%02d", i),
			SubscriptionID:   "s1",
			UserID:           userID,
			ServiceCategory:  models.HomeVisit,
			IssueDescription: fmt.Sprintf("Issue number %d", i),
			Status:           status,
			CreatedAt:        testNow.Add(time.Duration(i) * time.Hour),
		}, sub)
		require.NoError(t, err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedClaims(t, store)
	svc := NewService(Deps{Store: store})

	t.Run("Defaults To Newest First", func(t *testing.T) {
		page, err := svc.List(ctx, ListQuery{})

		require.NoError(t, err)
		assert.Len(t, page.Claims, 10)
		assert.Equal(t, "c11", page.Claims[0].ID)
		assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 12, HasNext: true, HasPrev: false}, page.Pagination)
	})

	t.Run("Second Page", func(t *testing.T) {
		page, err := svc.List(ctx, ListQuery{Page: 2, Limit: 5, SortOrder: "asc"})

		require.NoError(t, err)
		require.Len(t, page.Claims, 5)
		assert.Equal(t, "c05", page.Claims[0].ID)
		assert.Equal(t, Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 12, HasNext: true, HasPrev: true}, page.Pagination)
	})

	t.Run("Page Past The End", func(t *testing.T) {
		page, err := svc.List(ctx, ListQuery{Page: 9})

		require.NoError(t, err)
		assert.Empty(t, page.Claims)
		assert.False(t, page.Pagination.HasNext)
	})

	t.Run("Self Listing With Status", func(t *testing.T) {
		page, err := svc.List(ctx, ListQuery{UserID: "u2", Status: models.ClaimApproved})

		require.NoError(t, err)
		// u2 owns c00, c03, c06, c09; the even ones are approved.
		assert.Equal(t, 2, page.Pagination.TotalCount)
		for _, c := range page.Claims {
			assert.Equal(t, "u2", c.UserID)
			assert.Equal(t, models.ClaimApproved, c.Status)
		}
	})

	t.Run("Search", func(t *testing.T) {
		page, err := svc.List(ctx, ListQuery{Search: "NUMBER 1"})

		require.NoError(t, err)
		// "Issue number 1", "Issue number 10", "Issue number 11"
		assert.Equal(t, 3, page.Pagination.TotalCount)
	})

	t.Run("Invalid Query", func(t *testing.T) {
		_, err := svc.List(ctx, ListQuery{Status: "archived"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = svc.List(ctx, ListQuery{SortBy: "price"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = svc.List(ctx, ListQuery{SortOrder: "sideways"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
