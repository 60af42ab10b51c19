package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bangtable/bangtable/internal/dependencies/mocks"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterCreatesUserAndSession() {
	session, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Name)
	s.NotZero(session.UserID)

	user, err := s.storage.GetUserByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(session.UserID, user.ID)

	account, err := s.storage.GetAccountByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEqual("hunter22", account.PasswordHash)
}

func (s *ServiceSuite) TestRegisterRejectsShortName() {
	_, err := s.service.Register(s.ctx, "ab", "password")
	s.ErrorIs(err, model.ErrNameTooShort)
}

func (s *ServiceSuite) TestRegisterRejectsTakenName() {
	_, err := s.service.Register(s.ctx, "alice", "password")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "other")
	s.ErrorIs(err, model.ErrNameTaken)
}

func (s *ServiceSuite) TestLoginWithCorrectPassword() {
	registered, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)
	s.Equal(registered.UserID, session.UserID)
	s.NotEqual(registered.Token, session.Token)
}

func (s *ServiceSuite) TestLoginWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	session, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	got, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, got.UserID)
}

func (s *ServiceSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateExpiredSession() {
	session, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	old, err := s.service.Register(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	fresh, err := s.service.Login(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
