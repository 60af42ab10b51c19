package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/bangtable/bangtable/internal/dependencies/clock"
	"github.com/bangtable/bangtable/internal/dependencies/random"
	"github.com/bangtable/bangtable/internal/services/auth"
	"github.com/bangtable/bangtable/internal/services/deck"
	"github.com/bangtable/bangtable/internal/services/lobby"
	"github.com/bangtable/bangtable/internal/services/match"
	"github.com/bangtable/bangtable/internal/services/session"
	"github.com/bangtable/bangtable/internal/services/table"
	"github.com/bangtable/bangtable/internal/storage"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
	"github.com/bangtable/bangtable/internal/storage/memory"
	redisstorage "github.com/bangtable/bangtable/internal/storage/redis"
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
	Locks   *gamelock.Keyed

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DeckService       *deck.Service
	AuthService       *auth.Service
	SessionController *session.Controller
	LobbyController   *lobby.Controller
	MatchController   *match.Controller
	TableController   *table.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
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

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	locks := gamelock.New()

	// Create services
	deckService := deck.New(rnd)
	authService := auth.New(store, clk, authCfg)
	sessionController := session.NewController(store, locks, clk, logger)
	lobbyController := lobby.NewController(store, locks, clk, logger)
	matchController := match.NewController(store, deckService, locks, clk, logger)
	tableController := table.NewController(store, locks, clk, logger)

	return &App{
		Storage:           store,
		Locks:             locks,
		Clock:             clk,
		Random:            rnd,
		DeckService:       deckService,
		AuthService:       authService,
		SessionController: sessionController,
		LobbyController:   lobbyController,
		MatchController:   matchController,
		TableController:   tableController,
	}
}
