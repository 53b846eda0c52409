package profile

import (
	"context"
	"log/slog"

	"github.com/mpfeif/caddiebook/internal/dependencies/clock"
	"github.com/mpfeif/caddiebook/internal/dependencies/random"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Controller manages registered golfer profiles. Authentication happens
// upstream; a profile here is just identity plus handicap state.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a profile controller
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

// CreateProfile registers a new profile. A nil handicap index means the
// golfer has no established index yet.
func (c *Controller) CreateProfile(ctx context.Context, displayName string, handicapIndex *float64) (*model.Profile, error) {
	profile := &model.Profile{
		ID:            model.ProfileID(c.random.String(12, idAlphabet)),
		DisplayName:   displayName,
		HandicapIndex: handicapIndex,
		CreatedAt:     c.clock.Now(),
	}

	if err := c.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	c.logger.Info("profile created", slog.String("profile_id", string(profile.ID)))
	return profile, nil
}

// GetProfile retrieves a profile by ID
func (c *Controller) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	return c.storage.GetProfile(ctx, id)
}

// ListProfiles returns all registered profiles
func (c *Controller) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return c.storage.ListProfiles(ctx)
}

// UpdateHandicapIndex replaces a profile's handicap index. Events snapshot
// the index at evaluation time, so past payouts are unaffected.
func (c *Controller) UpdateHandicapIndex(ctx context.Context, id model.ProfileID, index *float64) (*model.Profile, error) {
	profile, err := c.storage.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.HandicapIndex = index
	if err := c.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateProfile(ctx context.Context, displayName string, handicapIndex *float64) (*model.Profile, error)
	GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	UpdateHandicapIndex(ctx context.Context, id model.ProfileID, index *float64) (*model.Profile, error)
}

var _ ControllerInterface = (*Controller)(nil)
