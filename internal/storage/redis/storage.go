package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, profileKey(profile.ID), data, 0)
	pipe.SAdd(ctx, profilesIndexKey(), string(profile.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	ids, err := s.client.SMembers(ctx, profilesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Profile{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(model.ProfileID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	profiles := make([]*model.Profile, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var profile model.Profile
		if err := json.Unmarshal([]byte(val.(string)), &profile); err != nil {
			continue // Skip invalid data
		}
		profiles = append(profiles, &profile)
	}

	sortProfiles(profiles)
	return profiles, nil
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Completed events are kept forever; in-progress events expire
	var ttl time.Duration
	if !event.IsCompleted {
		ttl = s.cfg.EventTTL
	}

	return s.client.Set(ctx, eventKey(event.ID), data, ttl).Err()
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	data, err := s.client.Get(ctx, eventKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEventNotFound
		}
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	return s.client.Del(ctx, eventKey(id)).Err()
}

// Settlement operations

func (s *Storage) SaveSettlement(ctx context.Context, settlement *model.Settlement) error {
	data, err := json.Marshal(settlement)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, settlementKey(settlement.ID), data, 0)
	pipe.SAdd(ctx, settlementsForEventIndexKey(settlement.EventID), string(settlement.ID))
	if settlement.FromProfileID != "" {
		pipe.SAdd(ctx, settlementsForProfileIndexKey(settlement.FromProfileID), string(settlement.ID))
	}
	if settlement.ToProfileID != "" {
		pipe.SAdd(ctx, settlementsForProfileIndexKey(settlement.ToProfileID), string(settlement.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSettlement(ctx context.Context, id model.SettlementID) (*model.Settlement, error) {
	data, err := s.client.Get(ctx, settlementKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSettlementNotFound
		}
		return nil, err
	}

	var settlement model.Settlement
	if err := json.Unmarshal(data, &settlement); err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (s *Storage) GetSettlementsForEvent(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error) {
	return s.settlementsByIndex(ctx, settlementsForEventIndexKey(eventID))
}

func (s *Storage) GetSettlementsForProfile(ctx context.Context, profileID model.ProfileID) ([]*model.Settlement, error) {
	return s.settlementsByIndex(ctx, settlementsForProfileIndexKey(profileID))
}

func (s *Storage) settlementsByIndex(ctx context.Context, indexKey string) ([]*model.Settlement, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Settlement{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = settlementKey(model.SettlementID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	settlements := make([]*model.Settlement, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var settlement model.Settlement
		if err := json.Unmarshal([]byte(val.(string)), &settlement); err != nil {
			continue // Skip invalid data
		}
		settlements = append(settlements, &settlement)
	}

	sortSettlements(settlements)
	return settlements, nil
}

// TransitionSettlement applies a status transition under an optimistic
// WATCH transaction: if another writer changes the settlement between
// the read and the write, the transaction aborts and the transition is
// rejected rather than retried.
func (s *Storage) TransitionSettlement(ctx context.Context, id model.SettlementID, expect model.SettlementStatus, apply func(*model.Settlement) error) (*model.Settlement, error) {
	key := settlementKey(id)
	var updated *model.Settlement

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrSettlementNotFound
			}
			return err
		}

		var settlement model.Settlement
		if err := json.Unmarshal(data, &settlement); err != nil {
			return err
		}

		if settlement.Status != expect {
			return model.ErrSettlementNotPending
		}

		if err := apply(&settlement); err != nil {
			return err
		}

		newData, err := json.Marshal(&settlement)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newData, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &settlement
		return nil
	}, key)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			// Another writer got there first
			return nil, model.ErrSettlementNotPending
		}
		return nil, err
	}
	return updated, nil
}

// Wallet operations

func (s *Storage) AppendWalletTransaction(ctx context.Context, tx *model.WalletTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, walletKey(tx.ProfileID), data).Err()
}

func (s *Storage) GetWalletTransactions(ctx context.Context, profileID model.ProfileID) ([]*model.WalletTransaction, error) {
	values, err := s.client.LRange(ctx, walletKey(profileID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	txs := make([]*model.WalletTransaction, 0, len(values))
	for _, val := range values {
		var tx model.WalletTransaction
		if err := json.Unmarshal([]byte(val), &tx); err != nil {
			continue // Skip invalid data
		}
		txs = append(txs, &tx)
	}
	return txs, nil
}

// SMembers returns members in arbitrary order; sort for stable listings

func sortProfiles(profiles []*model.Profile) {
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
}

func sortSettlements(settlements []*model.Settlement) {
	sort.Slice(settlements, func(i, j int) bool {
		if !settlements[i].CreatedAt.Equal(settlements[j].CreatedAt) {
			return settlements[i].CreatedAt.Before(settlements[j].CreatedAt)
		}
		return settlements[i].ID < settlements[j].ID
	})
}
