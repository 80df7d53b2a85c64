package storage

import (
	"context"

	"github.com/chris/amc-warranty-claims/pkg/models"
)

// WalletStore defines the interface for managing vendor wallets.
type WalletStore interface {
	// GetWallet retrieves a vendor's wallet by vendor ID.
	GetWallet(ctx context.Context, vendorID string) (*models.VendorWallet, error)

	// CreateWallet creates a new, empty wallet for a vendor.
	CreateWallet(ctx context.Context, wallet *models.VendorWallet) (*models.VendorWallet, error)

	// ListWallets retrieves all vendor wallets.
	ListWallets(ctx context.Context) ([]models.VendorWallet, error)
}

// LedgerStore defines the append-only interface to the wallet ledger.
type LedgerStore interface {
	// AppendEntry atomically writes entry and adds entry.Amount to the vendor's cached balance.
	// It fails with ErrDuplicateEntry if the entry ID was already used and with ErrNotFound
	// if the vendor has no wallet.
	AppendEntry(ctx context.Context, entry *models.WalletLedgerEntry) error

	// ListEntries retrieves a vendor's ledger entries, newest first.
	ListEntries(ctx context.Context, vendorID string) ([]models.WalletLedgerEntry, error)
}

// WalletLedgerStore combines the wallet and ledger interfaces.
type WalletLedgerStore interface {
	WalletStore
	LedgerStore
}
