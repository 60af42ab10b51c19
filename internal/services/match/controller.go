package match

import (
	"context"
	"log/slog"

	"github.com/bangtable/bangtable/internal/dependencies/clock"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/deck"
	"github.com/bangtable/bangtable/internal/storage"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
)

// Player count band for a startable game
const (
	MinPlayers = 4
	MaxPlayers = 7
)

// Controller performs the one-way lobby -> started transition
type Controller struct {
	storage     storage.Storage
	deckService *deck.Service
	locks       *gamelock.Keyed
	clock       clock.Clock
	logger      *slog.Logger
}

// NewController creates a new match controller
func NewController(storage storage.Storage, deckService *deck.Service, locks *gamelock.Keyed, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage:     storage,
		deckService: deckService,
		locks:       locks,
		clock:       clock,
		logger:      logger,
	}
}

// Start deals the match: draws roles, characters and a fresh deck, builds
// the player seats in join order and moves the game to started. Only the
// admin may start, only once, and only with 4-7 joined members.
func (c *Controller) Start(ctx context.Context, gameID model.GameID, actor model.User) error {
	return c.locks.Do(ctx, gameID, func() error {
		game, err := c.storage.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		if game.Admin != actor.Name {
			return model.ErrNotAdmin
		}
		if game.HasStarted {
			return model.ErrGameStarted
		}

		n := len(game.JoinedUsers)
		if n < MinPlayers || n > MaxPlayers {
			return model.ErrPlayerCount
		}

		roles, err := c.deckService.Roles(n)
		if err != nil {
			return err
		}
		characters, err := c.deckService.Characters(n)
		if err != nil {
			return err
		}
		cards := c.deckService.BuildDeck()

		players := make([]model.Player, 0, n)
		for i, user := range game.JoinedUsers {
			isSheriff := roles[i].Name == model.RoleSheriff

			life := characters[i].Life
			if isSheriff {
				life++
			}

			// Initial hand size equals life, dealt from the deck head
			hand := make([]model.Card, life)
			copy(hand, cards[:life])
			cards = cards[life:]

			players = append(players, model.Player{
				User:       user,
				Role:       roles[i],
				Character:  characters[i],
				Life:       life,
				IsRevealed: isSheriff, // the Sheriff plays face up
				IsActive:   isSheriff,
				Hand:       hand,
				Inventory:  []model.Card{},
				Played:     []model.Card{},
			})
		}

		game.HasStarted = true
		game.Players = players
		game.Requests = []model.User{}
		game.JoinedUsers = []model.User{}
		game.UnusedCards = cards
		game.CommunityCards = []model.Card{}
		game.UsedCards = []model.Card{}
		game.AppendLog(actor.Name, "game started")
		game.UpdatedAt = c.clock.Now()

		if err := c.storage.SaveGame(ctx, game); err != nil {
			return err
		}

		c.logger.Info("game started",
			slog.Int64("game_id", int64(gameID)),
			slog.Int("players", n),
		)

		return nil
	})
}
