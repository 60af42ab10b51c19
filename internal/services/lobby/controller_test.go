package lobby

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bangtable/bangtable/internal/dependencies/mocks"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/session"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
	"github.com/bangtable/bangtable/internal/storage/memory"
	"github.com/bangtable/bangtable/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	sessions   *session.Controller
	controller *Controller
	ctx        context.Context

	admin model.User
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	locks := gamelock.New()
	logger := testutil.NopLogger()
	s.sessions = session.NewController(s.storage, locks, s.clock, logger)
	s.controller = NewController(s.storage, locks, s.clock, logger)
	s.ctx = context.Background()

	s.admin = model.User{ID: 1, Name: "alice"}
}

func (s *ControllerSuite) createGame() *model.Game {
	game, err := s.sessions.Create(s.ctx, s.admin)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) user(id int64, name string) model.User {
	return model.User{ID: model.UserID(id), Name: name}
}

// RequestJoin tests

func (s *ControllerSuite) TestRequestJoinAddsToRequests() {
	game := s.createGame()
	bob := s.user(2, "bob")

	err := s.controller.RequestJoin(s.ctx, game.ID, bob)
	s.Require().NoError(err)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Len(updated.Requests, 1)
	s.Equal(bob.ID, updated.Requests[0].ID)
	s.Empty(updated.JoinedUsers)
}

func (s *ControllerSuite) TestRequestJoinAdminJoinsDirectly() {
	game := s.createGame()

	err := s.controller.RequestJoin(s.ctx, game.ID, s.admin)
	s.Require().NoError(err)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Empty(updated.Requests)
	s.Len(updated.JoinedUsers, 1)
	s.Equal(s.admin.ID, updated.JoinedUsers[0].ID)
}

func (s *ControllerSuite) TestRequestJoinIsIdempotent() {
	game := s.createGame()
	bob := s.user(2, "bob")

	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Len(updated.Requests, 1)
}

func (s *ControllerSuite) TestRequestJoinIdempotentAfterAuthorize() {
	game := s.createGame()
	bob := s.user(2, "bob")

	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))
	s.Require().NoError(s.controller.Authorize(s.ctx, game.ID, s.admin, bob.ID))
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Empty(updated.Requests)
	s.Len(updated.JoinedUsers, 1)
}

func (s *ControllerSuite) TestRequestJoinFailsIfGameNotFound() {
	err := s.controller.RequestJoin(s.ctx, 999, s.user(2, "bob"))
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestRequestJoinFailsAfterStart() {
	game := s.createGame()
	game.HasStarted = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.RequestJoin(s.ctx, game.ID, s.user(2, "bob"))
	s.ErrorIs(err, model.ErrGameStarted)
}

// Authorize tests

func (s *ControllerSuite) TestAuthorizeMovesRequestToJoined() {
	game := s.createGame()
	bob := s.user(2, "bob")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))

	err := s.controller.Authorize(s.ctx, game.ID, s.admin, bob.ID)
	s.Require().NoError(err)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Empty(updated.Requests)
	s.Len(updated.JoinedUsers, 1)
	s.Equal(bob.ID, updated.JoinedUsers[0].ID)
}

func (s *ControllerSuite) TestAuthorizeByNonAdminFails() {
	game := s.createGame()
	bob := s.user(2, "bob")
	carol := s.user(3, "carol")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))

	err := s.controller.Authorize(s.ctx, game.ID, carol, bob.ID)
	s.ErrorIs(err, model.ErrNotAdmin)

	// State untouched
	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Len(updated.Requests, 1)
	s.Empty(updated.JoinedUsers)
}

func (s *ControllerSuite) TestAuthorizeWithoutRequestFails() {
	game := s.createGame()

	err := s.controller.Authorize(s.ctx, game.ID, s.admin, 42)
	s.ErrorIs(err, model.ErrRequestNotFound)
}

func (s *ControllerSuite) TestAuthorizeFailsWhenFull() {
	game := s.createGame()
	for i := int64(2); i < 2+MaxPlayers; i++ {
		u := s.user(i, "user"+string(rune('a'+i)))
		s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, u))
		s.Require().NoError(s.controller.Authorize(s.ctx, game.ID, s.admin, u.ID))
	}

	late := s.user(50, "late")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, late))
	err := s.controller.Authorize(s.ctx, game.ID, s.admin, late.ID)
	s.ErrorIs(err, model.ErrGameFull)
}

// RemoveMember tests

func (s *ControllerSuite) TestRemoveMemberSelfLeave() {
	game := s.createGame()
	bob := s.user(2, "bob")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))
	s.Require().NoError(s.controller.Authorize(s.ctx, game.ID, s.admin, bob.ID))

	err := s.controller.RemoveMember(s.ctx, game.ID, bob, "bob")
	s.Require().NoError(err)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Empty(updated.JoinedUsers)
}

func (s *ControllerSuite) TestRemoveMemberAdminKick() {
	game := s.createGame()
	bob := s.user(2, "bob")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))
	s.Require().NoError(s.controller.Authorize(s.ctx, game.ID, s.admin, bob.ID))

	err := s.controller.RemoveMember(s.ctx, game.ID, s.admin, "bob")
	s.Require().NoError(err)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Empty(updated.JoinedUsers)
}

func (s *ControllerSuite) TestRemoveMemberByThirdPartyFails() {
	game := s.createGame()
	bob := s.user(2, "bob")
	carol := s.user(3, "carol")
	s.Require().NoError(s.controller.RequestJoin(s.ctx, game.ID, bob))
	s.Require().NoError(s.controller.Authorize(s.ctx, game.ID, s.admin, bob.ID))

	err := s.controller.RemoveMember(s.ctx, game.ID, carol, "bob")
	s.ErrorIs(err, model.ErrForbidden)

	updated, _ := s.sessions.Get(s.ctx, game.ID)
	s.Len(updated.JoinedUsers, 1)
}

func (s *ControllerSuite) TestRemoveMemberNotJoinedFails() {
	game := s.createGame()

	err := s.controller.RemoveMember(s.ctx, game.ID, s.admin, "ghost")
	s.ErrorIs(err, model.ErrMemberNotFound)
}
