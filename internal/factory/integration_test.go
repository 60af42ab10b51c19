package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bangtable/bangtable/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) signup(name string) model.User {
	session, err := s.app.AuthService.Register(s.ctx, name, "password-"+name)
	s.Require().NoError(err)
	return session.User
}

// Full flow: signup, create, join, authorize, start, then play at the table
func (s *IntegrationSuite) TestFullSessionFlow() {
	admin := s.signup("admin")
	others := []model.User{
		s.signup("bill"),
		s.signup("carol"),
		s.signup("dave"),
		s.signup("erin"),
	}

	// Admin creates a game and joins their own table directly
	game, err := s.app.SessionController.Create(s.ctx, admin)
	s.Require().NoError(err)
	s.Require().NoError(s.app.LobbyController.RequestJoin(s.ctx, game.ID, admin))

	// Everyone else requests and is admitted
	for _, u := range others {
		s.Require().NoError(s.app.LobbyController.RequestJoin(s.ctx, game.ID, u))
		s.Require().NoError(s.app.LobbyController.Authorize(s.ctx, game.ID, admin, u.ID))
	}

	s.Require().NoError(s.app.MatchController.Start(s.ctx, game.ID, admin))

	started, err := s.app.SessionController.Get(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(started.HasStarted)
	s.Len(started.Players, 5)

	// Exactly one sheriff, revealed and active
	sheriffs := 0
	var sheriff *model.Player
	for i := range started.Players {
		if started.Players[i].Role.Name == model.RoleSheriff {
			sheriffs++
			sheriff = &started.Players[i]
		}
	}
	s.Require().Equal(1, sheriffs)
	s.True(sheriff.IsRevealed)
	s.True(sheriff.IsActive)
	s.Equal(sheriff.Character.Life+1, sheriff.Life)
	s.Len(sheriff.Hand, sheriff.Life)

	// Sheriff plays their first hand card
	actor := sheriff.User
	card := sheriff.Hand[0]
	err = s.app.TableController.MoveCard(s.ctx, game.ID, actor, card.ID,
		model.ZoneRef{Zone: model.ZoneHand, Owner: actor.Name},
		model.ZoneRef{Zone: model.ZonePlayed, Owner: actor.Name},
		0,
	)
	s.Require().NoError(err)

	// Takes a hit and reveals
	s.Require().NoError(s.app.TableController.AdjustLife(s.ctx, game.ID, actor, -1))
	s.Require().NoError(s.app.TableController.Reveal(s.ctx, game.ID, actor))

	final, err := s.app.SessionController.Get(s.ctx, game.ID)
	s.Require().NoError(err)

	player := final.GetPlayer(actor.Name)
	s.Require().NotNil(player)
	s.Equal(sheriff.Life-1, player.Life)
	s.Len(player.Played, 1)
	s.Equal(card.ID, player.Played[0].ID)

	// Newest log entries first
	s.Require().NotEmpty(final.Logs)
	s.Equal("role revealed", final.Logs[0].Interaction)
	s.Equal("game started", final.Logs[len(final.Logs)-1].Interaction)
}

// Membership listing tracks a user through the whole lifecycle
func (s *IntegrationSuite) TestMembershipListing() {
	admin := s.signup("admin")
	guest := s.signup("guest")

	game, err := s.app.SessionController.Create(s.ctx, admin)
	s.Require().NoError(err)

	ids, err := s.app.SessionController.ListForUser(s.ctx, guest)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.app.LobbyController.RequestJoin(s.ctx, game.ID, guest))

	ids, err = s.app.SessionController.ListForUser(s.ctx, guest)
	s.Require().NoError(err)
	s.Equal([]model.GameID{game.ID}, ids)

	// A pending request is not removable membership
	err = s.app.LobbyController.RemoveMember(s.ctx, game.ID, admin, guest.Name)
	s.ErrorIs(err, model.ErrMemberNotFound)

	s.Require().NoError(s.app.LobbyController.Authorize(s.ctx, game.ID, admin, guest.ID))

	ids, err = s.app.SessionController.ListForUser(s.ctx, guest)
	s.Require().NoError(err)
	s.Equal([]model.GameID{game.ID}, ids)

	// Kicking the joined user drops the game from the listing
	s.Require().NoError(s.app.LobbyController.RemoveMember(s.ctx, game.ID, admin, guest.Name))

	ids, err = s.app.SessionController.ListForUser(s.ctx, guest)
	s.Require().NoError(err)
	s.Empty(ids)
}

// Deleting a session removes it for everyone
func (s *IntegrationSuite) TestDeleteSession() {
	admin := s.signup("admin")
	guest := s.signup("guest")

	game, err := s.app.SessionController.Create(s.ctx, admin)
	s.Require().NoError(err)
	s.Require().NoError(s.app.LobbyController.RequestJoin(s.ctx, game.ID, guest))

	s.Require().NoError(s.app.SessionController.Delete(s.ctx, game.ID, admin))

	_, err = s.app.SessionController.Get(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	err = s.app.LobbyController.RequestJoin(s.ctx, game.ID, guest)
	s.ErrorIs(err, model.ErrGameNotFound)
}
