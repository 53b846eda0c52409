package storage

import (
	"context"

	"github.com/mpfeif/caddiebook/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)

	// Event operations
	SaveEvent(ctx context.Context, event *model.Event) error
	GetEvent(ctx context.Context, id model.EventID) (*model.Event, error)
	DeleteEvent(ctx context.Context, id model.EventID) error

	// Settlement operations
	SaveSettlement(ctx context.Context, settlement *model.Settlement) error
	GetSettlement(ctx context.Context, id model.SettlementID) (*model.Settlement, error)
	GetSettlementsForEvent(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error)
	GetSettlementsForProfile(ctx context.Context, profileID model.ProfileID) ([]*model.Settlement, error)

	// TransitionSettlement atomically applies a status transition: the
	// settlement's current status must equal expect or the transition is
	// rejected with model.ErrSettlementNotPending and nothing is written.
	// This is the check-and-set that prevents a double-pay race between
	// two devices.
	TransitionSettlement(ctx context.Context, id model.SettlementID, expect model.SettlementStatus, apply func(*model.Settlement) error) (*model.Settlement, error)

	// Wallet operations. The wallet is an append-only ledger: entries
	// are never mutated or deleted.
	AppendWalletTransaction(ctx context.Context, tx *model.WalletTransaction) error
	GetWalletTransactions(ctx context.Context, profileID model.ProfileID) ([]*model.WalletTransaction, error)
}
