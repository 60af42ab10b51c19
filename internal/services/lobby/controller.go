package lobby

import (
	"context"
	"log/slog"

	"github.com/bangtable/bangtable/internal/dependencies/clock"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/storage"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
)

// MaxPlayers is the session-level member cap; the role table has 7 seats
const MaxPlayers = 7

// Controller manages pre-start membership: join requests, admin approval
// and member removal
type Controller struct {
	storage storage.Storage
	locks   *gamelock.Keyed
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new lobby controller
func NewController(storage storage.Storage, locks *gamelock.Keyed, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		locks:   locks,
		clock:   clock,
		logger:  logger,
	}
}

// RequestJoin asks for membership in a game. Calling it again for the same
// user is a no-op. The admin skips the request queue and joins directly.
func (c *Controller) RequestJoin(ctx context.Context, gameID model.GameID, user model.User) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		if game.HasStarted {
			return model.ErrGameStarted
		}

		// Idempotent: already pending or already joined
		if game.HasRequested(user.ID) || game.HasJoined(user.ID) {
			return nil
		}

		if user.Name == game.Admin {
			if len(game.JoinedUsers) >= MaxPlayers {
				return model.ErrGameFull
			}
			game.JoinedUsers = append(game.JoinedUsers, user)
		} else {
			game.Requests = append(game.Requests, user)
		}
		game.UpdatedAt = c.clock.Now()

		return c.storage.SaveGame(ctx, game)
	})
}

// Authorize moves a pending user into the joined set. Admin only.
func (c *Controller) Authorize(ctx context.Context, gameID model.GameID, actor model.User, targetID model.UserID) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		if game.Admin != actor.Name {
			return model.ErrNotAdmin
		}

		idx := -1
		for i, u := range game.Requests {
			if u.ID == targetID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.ErrRequestNotFound
		}

		if len(game.JoinedUsers) >= MaxPlayers {
			return model.ErrGameFull
		}

		target := game.Requests[idx]
		game.Requests = append(game.Requests[:idx], game.Requests[idx+1:]...)
		game.JoinedUsers = append(game.JoinedUsers, target)
		game.UpdatedAt = c.clock.Now()

		c.logger.Info("join authorized",
			slog.Int64("game_id", int64(gameID)),
			slog.String("user", target.Name),
		)

		return c.storage.SaveGame(ctx, game)
	})
}

// RemoveMember removes a joined user. Self-leave and admin-kick are the
// same operation.
func (c *Controller) RemoveMember(ctx context.Context, gameID model.GameID, actor model.User, targetName string) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		idx := -1
		for i, u := range game.JoinedUsers {
			if u.Name == targetName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.ErrMemberNotFound
		}

		if actor.Name != targetName && actor.Name != game.Admin {
			return model.ErrForbidden
		}

		game.JoinedUsers = append(game.JoinedUsers[:idx], game.JoinedUsers[idx+1:]...)
		game.UpdatedAt = c.clock.Now()

		return c.storage.SaveGame(ctx, game)
	})
}
