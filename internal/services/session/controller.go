package session

import (
	"context"
	"log/slog"

	"github.com/bangtable/bangtable/internal/dependencies/clock"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/storage"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
)

// Controller manages game session lifecycle: creation, deletion and
// membership listing
type Controller struct {
	storage storage.Storage
	locks   *gamelock.Keyed
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new session lifecycle controller
func NewController(storage storage.Storage, locks *gamelock.Keyed, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		locks:   locks,
		clock:   clock,
		logger:  logger,
	}
}

// Create allocates a new empty game with the given user as admin
func (c *Controller) Create(ctx context.Context, owner model.User) (*model.Game, error) {
	id, err := c.storage.NextGameID(ctx)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()

	game := &model.Game{
		ID:             id,
		Admin:          owner.Name,
		HasStarted:     false,
		Requests:       []model.User{},
		JoinedUsers:    []model.User{},
		Players:        []model.Player{},
		UnusedCards:    []model.Card{},
		CommunityCards: []model.Card{},
		UsedCards:      []model.Card{},
		Logs:           []model.LogEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.Int64("game_id", int64(id)),
		slog.String("admin", owner.Name),
	)

	return game, nil
}

// Get retrieves a full game snapshot by id
func (c *Controller) Get(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// Delete removes a game permanently. Only the admin may delete.
func (c *Controller) Delete(ctx context.Context, id model.GameID, actor model.User) error {
	return c.locks.Do(ctx, id, func() error {
		game, err := c.storage.GetGame(ctx, id)
		if err != nil {
			return err
		}

		if game.Admin != actor.Name {
			return model.ErrNotAdmin
		}

		return c.storage.DeleteGame(ctx, id)
	})
}

// ListForUser returns the ids of every game the user appears in, whether
// pending, joined or playing
func (c *Controller) ListForUser(ctx context.Context, user model.User) ([]model.GameID, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	ids := []model.GameID{}
	for _, g := range games {
		if g.IsMember(user.ID) {
			ids = append(ids, g.ID)
		}
	}
	return ids, nil
}
