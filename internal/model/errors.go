package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrNameTaken    = errors.New("user name is already taken")
	ErrNameTooShort = errors.New("user name is too short")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameStarted     = errors.New("game has already started")
	ErrGameFull        = errors.New("game is full")
	ErrPlayerCount     = errors.New("player count must be between 4 and 7")
	ErrNotAdmin        = errors.New("user is not the game admin")
	ErrForbidden       = errors.New("user may not perform this action")
	ErrRequestNotFound = errors.New("no pending join request for user")
	ErrMemberNotFound  = errors.New("user is not a member of this game")
	ErrNotInGame       = errors.New("user is not a player in this game")

	// Card/zone errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrCardNotFound   = errors.New("card not found in source zone")
	ErrInvalidZone    = errors.New("invalid zone")
	ErrInvalidIndex   = errors.New("target index out of range")

	// Pool errors
	ErrPoolExhausted = errors.New("not enough entries in pool")
)
