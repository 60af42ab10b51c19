package table

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bangtable/bangtable/internal/dependencies/clock"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/storage"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
)

// Controller mutates a started game's table state: card movement between
// zones, life adjustment and role reveal. Every mutation is audit logged
// on the game.
type Controller struct {
	storage storage.Storage
	locks   *gamelock.Keyed
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new table controller
func NewController(storage storage.Storage, locks *gamelock.Keyed, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		locks:   locks,
		clock:   clock,
		logger:  logger,
	}
}

// MoveCard relocates one card from the source zone to the target zone,
// inserting at the given index. index == len(target) appends. This single
// operation covers playing, equipping, giving, stealing, discarding,
// drawing and revealing to the table; no card effect is resolved here.
func (c *Controller) MoveCard(ctx context.Context, gameID model.GameID, actor model.User, cardID model.CardID, source, target model.ZoneRef, index int) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		if game.GetPlayer(actor.Name) == nil {
			return model.ErrNotInGame
		}

		src, err := game.CollectionFor(source)
		if err != nil {
			return err
		}

		cardIdx := -1
		for i, card := range *src {
			if card.ID == cardID {
				cardIdx = i
				break
			}
		}
		if cardIdx < 0 {
			return model.ErrCardNotFound
		}

		// Resolve the target before touching the source so a bad move
		// leaves the game untouched
		dst, err := game.CollectionFor(target)
		if err != nil {
			return err
		}
		if index < 0 || index > len(*dst) {
			return model.ErrInvalidIndex
		}

		card := (*src)[cardIdx]
		*src = append((*src)[:cardIdx], (*src)[cardIdx+1:]...)

		// Source and target may alias the same zone; recheck the bound
		// after removal
		if index > len(*dst) {
			index = len(*dst)
		}
		*dst = append(*dst, model.Card{})
		copy((*dst)[index+1:], (*dst)[index:])
		(*dst)[index] = card

		game.AppendLog(actor.Name, fmt.Sprintf("card moved (%s)", cardID))
		game.UpdatedAt = c.clock.Now()

		return c.storage.SaveGame(ctx, game)
	})
}

// AdjustLife applies a signed delta to the acting player's own life total.
// No floor or ceiling is applied.
func (c *Controller) AdjustLife(ctx context.Context, gameID model.GameID, actor model.User, delta int) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		player := game.GetPlayer(actor.Name)
		if player == nil {
			return model.ErrNotInGame
		}

		player.Life += delta
		game.AppendLog(actor.Name, fmt.Sprintf("life adjusted (%+d)", delta))
		game.UpdatedAt = c.clock.Now()

		return c.storage.SaveGame(ctx, game)
	})
}

// Reveal exposes the acting player's hidden role. Revealing twice is a
// no-op; there is no un-reveal.
func (c *Controller) Reveal(ctx context.Context, gameID model.GameID, actor model.User) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		player := game.GetPlayer(actor.Name)
		if player == nil {
			return model.ErrNotInGame
		}

		player.IsRevealed = true
		game.AppendLog(actor.Name, "role revealed")
		game.UpdatedAt = c.clock.Now()

		c.logger.Info("role revealed",
			slog.Int64("game_id", int64(gameID)),
			slog.String("player", actor.Name),
		)

		return c.storage.SaveGame(ctx, game)
	})
}
