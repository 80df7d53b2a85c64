package claims

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var sortKeys = map[string]func(a, b *models.WarrantyClaim) int{
	"created_at": func(a, b *models.WarrantyClaim) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"updated_at": func(a, b *models.WarrantyClaim) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
	"status":     func(a, b *models.WarrantyClaim) int { return strings.Compare(string(a.Status), string(b.Status)) },
	"service_category": func(a, b *models.WarrantyClaim) int {
		return strings.Compare(string(a.ServiceCategory), string(b.ServiceCategory))
	},
}

// List returns one page of claims filtered by owner, status and a case-insensitive search over
// the claim's text fields.
func (s *Service) List(ctx context.Context, q ListQuery) (*ClaimPage, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	all, err := s.store.ListClaims(ctx, storage.ClaimFilter{UserID: q.UserID, Status: q.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	matched := all[:0]
	for _, c := range all {
		if matchesSearch(&c, q.Search) {
			matched = append(matched, c)
		}
	}

	cmp := sortKeys[q.SortBy]
	desc := q.SortOrder == "desc"
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return cmp(&matched[i], &matched[j]) > 0
		}
		return cmp(&matched[i], &matched[j]) < 0
	})

	total := len(matched)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := make([]models.WarrantyClaim, end-start)
	copy(page, matched[start:end])
	return &ClaimPage{
		Claims: page,
		Pagination: Pagination{
			CurrentPage: q.Page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNext:     q.Page < totalPages,
			HasPrev:     q.Page > 1,
		},
	}, nil
}

func normalizeQuery(q ListQuery) (ListQuery, error) {
	if q.Status != "" {
		switch q.Status {
		case models.ClaimPending, models.ClaimApproved, models.ClaimRejected, models.ClaimInProgress, models.ClaimCompleted:
		default:
			return q, apperrors.Validation("unknown claim status %q", q.Status)
		}
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	q.SortBy = strings.ToLower(q.SortBy)
	switch q.SortBy {
	case "", "createdat":
		q.SortBy = "created_at"
	case "updatedat":
		q.SortBy = "updated_at"
	case "servicecategory":
		q.SortBy = "service_category"
	}
	if _, ok := sortKeys[q.SortBy]; !ok {
		return q, apperrors.Validation("cannot sort by %q", q.SortBy)
	}

	q.SortOrder = strings.ToLower(q.SortOrder)
	switch q.SortOrder {
	case "":
		q.SortOrder = "desc"
	case "asc", "desc":
	default:
		return q, apperrors.Validation("sort order must be asc or desc")
	}

	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	return q, nil
}

func matchesSearch(c *models.WarrantyClaim, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{c.ID, c.IssueDescription, c.PlanName, string(c.ServiceCategory), c.AdminNotes, c.AssignedVendor} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
