package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bangtable/bangtable/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{ID: 1, Admin: "alice"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", got.Admin)
}

func (s *StorageSuite) TestGetGameReturnsCopy() {
	game := &model.Game{ID: 1, Admin: "alice"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)

	// Mutating the snapshot must not touch stored state
	got.Requests = append(got.Requests, model.User{ID: 2, Name: "bob"})

	again, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(again.Requests)
}

func (s *StorageSuite) TestSaveCopiesGame() {
	game := &model.Game{ID: 1, Admin: "alice"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game.HasStarted = true

	got, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.False(got.HasStarted)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: 1, Admin: "alice"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, 1))

	_, err := s.storage.GetGame(s.ctx, 1)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGames() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: 1, Admin: "alice"}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: 2, Admin: "bob"}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestNextGameIDIncrements() {
	a, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)
	b, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)
	s.Equal(a+1, b)
}
