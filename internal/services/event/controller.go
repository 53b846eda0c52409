package event

import (
	"context"
	"log/slog"

	"github.com/mpfeif/caddiebook/internal/dependencies/clock"
	"github.com/mpfeif/caddiebook/internal/dependencies/random"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller owns event lifecycle: golfers, scorecards, and game
// configs are mutable until the event completes, after which everything
// is frozen and payouts can be settled.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates an event controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateEvent initializes a new event. A nil tee means no course data
// was available; scoring falls back to the default layout.
func (c *Controller) CreateEvent(ctx context.Context, name string, owner model.ProfileID, tee *model.Tee) (*model.Event, error) {
	if _, err := c.storage.GetProfile(ctx, owner); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	event := &model.Event{
		ID:             model.EventID(c.random.String(12, idAlphabet)),
		Name:           name,
		OwnerProfileID: owner,
		Tee:            tee,
		Scorecards:     make(map[model.GolferID]*model.Scorecard),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		c.logger.Error("failed to save event",
			slog.String("event_id", string(event.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("event created",
		slog.String("event_id", string(event.ID)),
		slog.String("owner", string(owner)),
	)

	return event, nil
}

// GetEvent retrieves an event by ID
func (c *Controller) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	return c.storage.GetEvent(ctx, id)
}

// AddGolfer adds a participant to an event: either registered (profile
// id set) or ad hoc (custom name set)
func (c *Controller) AddGolfer(ctx context.Context, eventID model.EventID, profileID model.ProfileID, customName string, handicapOverride *float64) (*model.Golfer, error) {
	if profileID == "" && customName == "" {
		return nil, model.ErrInvalidGolfer
	}

	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsCompleted {
		return nil, model.ErrEventCompleted
	}

	if profileID != "" {
		if _, err := c.storage.GetProfile(ctx, profileID); err != nil {
			return nil, err
		}
		for _, g := range event.Golfers {
			if g.ProfileID == profileID {
				return nil, model.ErrDuplicateGolfer
			}
		}
	}

	golfer := model.Golfer{
		ID:               model.GolferID(c.random.String(8, idAlphabet)),
		ProfileID:        profileID,
		CustomName:       customName,
		HandicapOverride: handicapOverride,
	}
	event.Golfers = append(event.Golfers, golfer)
	event.Scorecard(golfer.ID) // initialize an empty scorecard
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return &golfer, nil
}

// RecordScore enters gross strokes for one golfer on one hole
func (c *Controller) RecordScore(ctx context.Context, eventID model.EventID, golferID model.GolferID, hole, strokes int) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.IsCompleted {
		return model.ErrEventCompleted
	}
	if _, ok := event.Golfer(golferID); !ok {
		return model.ErrGolferNotFound
	}
	if strokes < 1 {
		return model.ErrInvalidStrokes
	}

	if !event.Scorecard(golferID).SetStrokes(hole, strokes) {
		return model.ErrInvalidHole
	}
	event.UpdatedAt = c.clock.Now()

	return c.storage.SaveEvent(ctx, event)
}

// AddNassau attaches a Nassau config. Only the event owner may change
// game configs.
func (c *Controller) AddNassau(ctx context.Context, eventID model.EventID, owner model.ProfileID, cfg model.NassauConfig) (*model.NassauConfig, error) {
	event, err := c.editableEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	// A golfer may appear on at most one team within a config
	seen := map[model.GolferID]bool{}
	for _, t := range cfg.Teams {
		for _, id := range t.GolferIDs {
			if seen[id] {
				return nil, model.ErrDuplicateGolfer
			}
			seen[id] = true
		}
	}

	cfg.ID = model.GameID(c.random.String(8, idAlphabet))
	event.Nassau = append(event.Nassau, cfg)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event.Nassau[len(event.Nassau)-1], nil
}

// AddSkins attaches a skins config
func (c *Controller) AddSkins(ctx context.Context, eventID model.EventID, owner model.ProfileID, cfg model.SkinsConfig) (*model.SkinsConfig, error) {
	event, err := c.editableEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	cfg.ID = model.GameID(c.random.String(8, idAlphabet))
	event.Skins = append(event.Skins, cfg)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event.Skins[len(event.Skins)-1], nil
}

// AddPinky attaches a pinky (penalty count) config
func (c *Controller) AddPinky(ctx context.Context, eventID model.EventID, owner model.ProfileID, cfg model.PinkyConfig) (*model.PinkyConfig, error) {
	event, err := c.editableEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	cfg.ID = model.GameID(c.random.String(8, idAlphabet))
	if cfg.Counts == nil {
		cfg.Counts = make(map[model.GolferID]int)
	}
	event.Pinkies = append(event.Pinkies, cfg)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event.Pinkies[len(event.Pinkies)-1], nil
}

// AddGreenie attaches a greenie (reward count) config
func (c *Controller) AddGreenie(ctx context.Context, eventID model.EventID, owner model.ProfileID, cfg model.GreenieConfig) (*model.GreenieConfig, error) {
	event, err := c.editableEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	cfg.ID = model.GameID(c.random.String(8, idAlphabet))
	if cfg.Counts == nil {
		cfg.Counts = make(map[model.GolferID]int)
	}
	event.Greenies = append(event.Greenies, cfg)
	event.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return &event.Greenies[len(event.Greenies)-1], nil
}

// RecordSideBetCount records a declared pinky or greenie count for a
// golfer, typically at round end before the event completes
func (c *Controller) RecordSideBetCount(ctx context.Context, eventID model.EventID, gameID model.GameID, golferID model.GolferID, count int) error {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.IsCompleted {
		return model.ErrEventCompleted
	}
	if _, ok := event.Golfer(golferID); !ok {
		return model.ErrGolferNotFound
	}

	for i := range event.Pinkies {
		if event.Pinkies[i].ID == gameID {
			event.Pinkies[i].Counts[golferID] = count
			event.UpdatedAt = c.clock.Now()
			return c.storage.SaveEvent(ctx, event)
		}
	}
	for i := range event.Greenies {
		if event.Greenies[i].ID == gameID {
			event.Greenies[i].Counts[golferID] = count
			event.UpdatedAt = c.clock.Now()
			return c.storage.SaveEvent(ctx, event)
		}
	}
	return model.ErrGameNotFound
}

// CompleteEvent freezes the event: scorecards and game configs become
// immutable and settlements can be derived
func (c *Controller) CompleteEvent(ctx context.Context, eventID model.EventID, owner model.ProfileID) (*model.Event, error) {
	event, err := c.editableEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	event.IsCompleted = true
	event.CompletedAt = &now
	event.UpdatedAt = now

	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	c.logger.Info("event completed",
		slog.String("event_id", string(eventID)),
		slog.Int("golfer_count", len(event.Golfers)),
	)

	return event, nil
}

// editableEvent loads an event and checks that it is still open and
// that the caller owns it
func (c *Controller) editableEvent(ctx context.Context, eventID model.EventID, owner model.ProfileID) (*model.Event, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsCompleted {
		return nil, model.ErrEventCompleted
	}
	if event.OwnerProfileID != owner {
		return nil, model.ErrNotOwner
	}
	return event, nil
}
