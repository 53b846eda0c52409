package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles    map[model.ProfileID]*model.Profile
	events      map[model.EventID]*model.Event
	settlements map[model.SettlementID]*model.Settlement

	settlementsByEvent   map[model.EventID][]model.SettlementID
	settlementsByProfile map[model.ProfileID][]model.SettlementID

	walletByProfile map[model.ProfileID][]*model.WalletTransaction
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:             make(map[model.ProfileID]*model.Profile),
		events:               make(map[model.EventID]*model.Event),
		settlements:          make(map[model.SettlementID]*model.Settlement),
		settlementsByEvent:   make(map[model.EventID][]model.SettlementID),
		settlementsByProfile: make(map[model.ProfileID][]model.SettlementID),
		walletByProfile:      make(map[model.ProfileID][]*model.WalletTransaction),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profiles := make([]*model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
	return nil
}

// Settlement operations

func (s *Storage) SaveSettlement(ctx context.Context, settlement *model.Settlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.settlements[settlement.ID]; !exists {
		s.settlementsByEvent[settlement.EventID] = append(s.settlementsByEvent[settlement.EventID], settlement.ID)
		if settlement.FromProfileID != "" {
			s.settlementsByProfile[settlement.FromProfileID] = append(s.settlementsByProfile[settlement.FromProfileID], settlement.ID)
		}
		if settlement.ToProfileID != "" {
			s.settlementsByProfile[settlement.ToProfileID] = append(s.settlementsByProfile[settlement.ToProfileID], settlement.ID)
		}
	}
	s.settlements[settlement.ID] = settlement
	return nil
}

func (s *Storage) GetSettlement(ctx context.Context, id model.SettlementID) (*model.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settlement, ok := s.settlements[id]
	if !ok {
		return nil, model.ErrSettlementNotFound
	}
	return settlement, nil
}

func (s *Storage) GetSettlementsForEvent(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.settlementsByEvent[eventID]), nil
}

func (s *Storage) GetSettlementsForProfile(ctx context.Context, profileID model.ProfileID) ([]*model.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.settlementsByProfile[profileID]), nil
}

// collect resolves settlement ids to records in a stable order
func (s *Storage) collect(ids []model.SettlementID) []*model.Settlement {
	settlements := make([]*model.Settlement, 0, len(ids))
	for _, id := range ids {
		if settlement, ok := s.settlements[id]; ok {
			settlements = append(settlements, settlement)
		}
	}
	sortSettlements(settlements)
	return settlements
}

func sortSettlements(settlements []*model.Settlement) {
	sort.Slice(settlements, func(i, j int) bool {
		if !settlements[i].CreatedAt.Equal(settlements[j].CreatedAt) {
			return settlements[i].CreatedAt.Before(settlements[j].CreatedAt)
		}
		return settlements[i].ID < settlements[j].ID
	})
}

func (s *Storage) TransitionSettlement(ctx context.Context, id model.SettlementID, expect model.SettlementStatus, apply func(*model.Settlement) error) (*model.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settlement, ok := s.settlements[id]
	if !ok {
		return nil, model.ErrSettlementNotFound
	}
	if settlement.Status != expect {
		return nil, model.ErrSettlementNotPending
	}

	// Apply against a copy so a failed apply leaves no partial effect
	updated := *settlement
	if err := apply(&updated); err != nil {
		return nil, err
	}
	s.settlements[id] = &updated
	return &updated, nil
}

// Wallet operations

func (s *Storage) AppendWalletTransaction(ctx context.Context, tx *model.WalletTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletByProfile[tx.ProfileID] = append(s.walletByProfile[tx.ProfileID], tx)
	return nil
}

func (s *Storage) GetWalletTransactions(ctx context.Context, profileID model.ProfileID) ([]*model.WalletTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.walletByProfile[profileID]
	result := make([]*model.WalletTransaction, len(entries))
	copy(result, entries)
	return result, nil
}
