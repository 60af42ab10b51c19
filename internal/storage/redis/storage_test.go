package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/bangtable/bangtable/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
	s.mini.Close()
}

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{ID: 1, Name: "alice"}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", got.Name)

	byName, err := s.storage.GetUserByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID(1), byName.ID)
}

func (s *StorageSuite) TestGetUnknownUser() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByName(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestNextUserIDIncrements() {
	a, err := s.storage.NextUserID(s.ctx)
	s.Require().NoError(err)
	b, err := s.storage.NextUserID(s.ctx)
	s.Require().NoError(err)
	s.Equal(a+1, b)
}

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		UserID:       1,
		Name:         "alice",
		PasswordHash: "$2a$10$example",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	got, err := s.storage.GetAccountByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(account.PasswordHash, got.PasswordHash)
}

func (s *StorageSuite) TestGetUnknownAccount() {
	_, err := s.storage.GetAccountByName(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestSaveAndGetGameRoundTrip() {
	game := &model.Game{
		ID:         1,
		Admin:      "alice",
		HasStarted: true,
		Players: []model.Player{
			{
				User:      model.User{ID: 2, Name: "bob"},
				Role:      model.Role{Name: model.RoleSheriff},
				Character: model.Character{Name: "Jourdonnais", Life: 4},
				Life:      5,
				Hand: []model.Card{
					{ID: "c1", Title: "Bang", Signature: model.Signature{Suit: "Hearts", Rank: "A"}},
				},
			},
		},
		UnusedCards: []model.Card{{ID: "c2", Title: "Missed"}},
		Logs:        []model.LogEntry{{PlayerName: "bob", Interaction: "game started"}},
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(game.Admin, got.Admin)
	s.Require().Len(got.Players, 1)
	s.Equal(5, got.Players[0].Life)
	s.Require().Len(got.Players[0].Hand, 1)
	s.Equal("Hearts", got.Players[0].Hand[0].Signature.Suit)
	s.Equal(game.Logs, got.Logs)
}

func (s *StorageSuite) TestGetUnknownGame() {
	_, err := s.storage.GetGame(s.ctx, 42)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: 1, Admin: "alice"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, 1))

	_, err := s.storage.GetGame(s.ctx, 1)
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestListGames() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: 1, Admin: "alice"}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: 2, Admin: "bob"}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestListGamesSkipsExpired() {
	cfg := DefaultConfig()
	cfg.GameTTL = time.Minute

	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	store := NewWithClient(client, cfg)
	defer store.Close()

	s.Require().NoError(store.SaveGame(s.ctx, &model.Game{ID: 1, Admin: "alice"}))
	s.Require().NoError(store.SaveGame(s.ctx, &model.Game{ID: 2, Admin: "bob"}))

	s.mini.FastForward(2 * time.Minute)

	games, err := store.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestNextGameIDIncrements() {
	a, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)
	b, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)
	s.Equal(a+1, b)
}
