package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mpfeif/caddiebook/internal/dependencies/clock"
	"github.com/mpfeif/caddiebook/internal/dependencies/random"
	"github.com/mpfeif/caddiebook/internal/services/event"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
	"github.com/mpfeif/caddiebook/internal/services/payout"
	"github.com/mpfeif/caddiebook/internal/services/profile"
	"github.com/mpfeif/caddiebook/internal/services/settlement"
	"github.com/mpfeif/caddiebook/internal/storage"
	"github.com/mpfeif/caddiebook/internal/storage/memory"
	redisstorage "github.com/mpfeif/caddiebook/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	HandicapService      *handicap.Service
	PayoutService        *payout.Service
	ProfileController    *profile.Controller
	EventController      *event.Controller
	SettlementController *settlement.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// HandicapPolicy holds the handicap rules (optional)
	// If zero value, defaults to handicap.DefaultPolicy()
	HandicapPolicy handicap.Policy
	// SettlementConfig holds reconciler settings (optional)
	// If zero value, defaults to settlement.DefaultConfig()
	SettlementConfig settlement.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	policy := cfg.HandicapPolicy
	if policy.DefaultIndex == 0 && policy.MaxSweeps == 0 {
		policy = handicap.DefaultPolicy()
	}

	settlementCfg := cfg.SettlementConfig
	if settlementCfg.RoundingUnit == 0 {
		settlementCfg = settlement.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, policy, settlementCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	policy handicap.Policy,
	settlementCfg settlement.Config,
	logger *slog.Logger,
) *App {
	handicapService := handicap.New(policy)
	payoutService := payout.New(handicapService, logger)
	profileController := profile.NewController(store, clk, rnd, logger)
	eventController := event.NewController(store, clk, rnd, logger)
	settlementController := settlement.NewController(store, payoutService, clk, settlementCfg, logger)

	return &App{
		Storage:              store,
		Clock:                clk,
		Random:               rnd,
		HandicapService:      handicapService,
		PayoutService:        payoutService,
		ProfileController:    profileController,
		EventController:      eventController,
		SettlementController: settlementController,
	}
}
