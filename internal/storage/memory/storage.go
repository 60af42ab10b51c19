package memory

import (
	"context"
	"sync"

	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users     map[model.UserID]*model.User
	nameIndex map[string]model.UserID
	accounts  map[string]*model.Account
	games     map[model.GameID]*model.Game

	lastUserID model.UserID
	lastGameID model.GameID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:     make(map[model.UserID]*model.User),
		nameIndex: make(map[string]model.UserID),
		accounts:  make(map[string]*model.Account),
		games:     make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.nameIndex[user.Name] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) NextUserID(ctx context.Context) (model.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUserID++
	return s.lastUserID, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Name] = account
	return nil
}

func (s *Storage) GetAccountByName(ctx context.Context, name string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[name]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return account, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g.Clone())
	}
	return games, nil
}

func (s *Storage) NextGameID(ctx context.Context) (model.GameID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGameID++
	return s.lastGameID, nil
}
