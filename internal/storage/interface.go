package storage

import (
	"context"

	"github.com/bangtable/bangtable/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations return model sentinel errors for missing entities and
// surface any I/O failure verbatim; callers treat those as a retryable
// 500-class condition and never as partial state.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	NextUserID(ctx context.Context) (model.UserID, error)

	// Account operations (credential material, kept apart from User)
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByName(ctx context.Context, name string) (*model.Account, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]*model.Game, error)
	NextGameID(ctx context.Context) (model.GameID, error)
}
