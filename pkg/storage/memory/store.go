// Package memory is an in-process implementation of storage.Storage with the same conditional
// write semantics as the DynamoDB store. It backs local runs and workflow tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
)

// Store keeps every record in maps guarded by one mutex. Records are copied on the way in and
// out so callers never share memory with the store.
type Store struct {
	mu            sync.Mutex
	subscriptions map[string]*models.Subscription
	claims        map[string]*models.WarrantyClaim
	wallets       map[string]*models.VendorWallet
	entries       map[string]*models.WalletLedgerEntry
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		subscriptions: make(map[string]*models.Subscription),
		claims:        make(map[string]*models.WarrantyClaim),
		wallets:       make(map[string]*models.VendorWallet),
		entries:       make(map[string]*models.WalletLedgerEntry),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) GetSubscription(_ context.Context, id string) (*models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return nil, fmt.Errorf("subscription %s: %w", id, storage.ErrNotFound)
	}
	return sub.Clone(), nil
}

func (s *Store) CreateSubscription(_ context.Context, sub *models.Subscription) (*models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[sub.ID]; ok {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, storage.ErrAlreadyExists)
	}
	s.subscriptions[sub.ID] = sub.Clone()
	return sub, nil
}

func (s *Store) GetClaim(_ context.Context, id string) (*models.WarrantyClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.claims[id]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", id, storage.ErrNotFound)
	}
	return cloneClaim(claim), nil
}

func (s *Store) ListClaims(_ context.Context, filter storage.ClaimFilter) ([]models.WarrantyClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.matching(filter), nil
}

func (s *Store) CountClaims(_ context.Context, filter storage.ClaimFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.matching(filter)), nil
}

func (s *Store) CreateClaim(_ context.Context, claim *models.WarrantyClaim, sub *models.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[claim.ID]; ok {
		return fmt.Errorf("claim %s: %w", claim.ID, storage.ErrAlreadyExists)
	}
	if err := s.checkVersion(sub); err != nil {
		return err
	}

	s.claims[claim.ID] = cloneClaim(claim)
	s.commitSubscription(sub)
	return nil
}

func (s *Store) UpdateClaim(_ context.Context, claim *models.WarrantyClaim, from models.ClaimStatus, sub *models.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.claims[claim.ID]
	if !ok {
		return fmt.Errorf("claim %s: %w", claim.ID, storage.ErrNotFound)
	}
	if current.Status != from {
		return fmt.Errorf("claim %s is %s, expected %s: %w", claim.ID, current.Status, from, storage.ErrStatusConflict)
	}
	if sub != nil {
		if err := s.checkVersion(sub); err != nil {
			return err
		}
	}

	s.claims[claim.ID] = cloneClaim(claim)
	if sub != nil {
		s.commitSubscription(sub)
	}
	return nil
}

func (s *Store) SetEarningStatus(_ context.Context, claimID string, status models.EarningStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.claims[claimID]
	if !ok {
		return fmt.Errorf("claim %s: %w", claimID, storage.ErrNotFound)
	}
	claim.EarningStatus = status
	claim.UpdatedAt = time.Now()
	return nil
}

func (s *Store) GetWallet(_ context.Context, vendorID string) (*models.VendorWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[vendorID]
	if !ok {
		return nil, fmt.Errorf("wallet for vendor %s: %w", vendorID, storage.ErrNotFound)
	}
	cp := *w
	return &cp, nil
}

func (s *Store) CreateWallet(_ context.Context, wallet *models.VendorWallet) (*models.VendorWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[wallet.VendorID]; ok {
		return nil, fmt.Errorf("wallet for vendor %s: %w", wallet.VendorID, storage.ErrAlreadyExists)
	}
	cp := *wallet
	s.wallets[wallet.VendorID] = &cp
	return wallet, nil
}

func (s *Store) ListWallets(_ context.Context) ([]models.VendorWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := make([]models.VendorWallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		wallets = append(wallets, *w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].VendorID < wallets[j].VendorID })
	return wallets, nil
}

func (s *Store) AppendEntry(_ context.Context, entry *models.WalletLedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.EntryID]; ok {
		return fmt.Errorf("entry %s: %w", entry.EntryID, storage.ErrDuplicateEntry)
	}
	w, ok := s.wallets[entry.VendorID]
	if !ok {
		return fmt.Errorf("wallet for vendor %s: %w", entry.VendorID, storage.ErrNotFound)
	}

	cp := *entry
	s.entries[entry.EntryID] = &cp
	w.Balance += entry.Amount
	w.Version++
	w.UpdatedAt = entry.Timestamp
	return nil
}

func (s *Store) ListEntries(_ context.Context, vendorID string) ([]models.WalletLedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []models.WalletLedgerEntry
	for _, e := range s.entries {
		if e.VendorID == vendorID {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.After(entries[j].Timestamp) })
	return entries, nil
}

func (s *Store) checkVersion(sub *models.Subscription) error {
	current, ok := s.subscriptions[sub.ID]
	if !ok {
		return fmt.Errorf("subscription %s: %w", sub.ID, storage.ErrNotFound)
	}
	if current.Version != sub.Version {
		return fmt.Errorf("subscription %s at version %d, expected %d: %w", sub.ID, current.Version, sub.Version, storage.ErrVersionConflict)
	}
	return nil
}

func (s *Store) commitSubscription(sub *models.Subscription) {
	sub.Version++
	s.subscriptions[sub.ID] = sub.Clone()
}

func (s *Store) matching(filter storage.ClaimFilter) []models.WarrantyClaim {
	var claims []models.WarrantyClaim
	for _, c := range s.claims {
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.PaymentOrderID != "" && c.PaymentOrderID != filter.PaymentOrderID {
			continue
		}
		if filter.SubscriptionID != "" && c.SubscriptionID != filter.SubscriptionID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.EarningStatus != "" && c.EarningStatus != filter.EarningStatus {
			continue
		}
		claims = append(claims, *cloneClaim(c))
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].CreatedAt.After(claims[j].CreatedAt) })
	return claims
}

func cloneClaim(c *models.WarrantyClaim) *models.WarrantyClaim {
	cp := *c
	if c.Billing != nil {
		b := *c.Billing
		cp.Billing = &b
	}
	return &cp
}
