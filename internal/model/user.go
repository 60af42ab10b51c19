package model

import "time"

// UserID uniquely identifies a user across the system
type UserID int64

// User is the public projection of an account: no credential material
type User struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
}

// Account extends User with authentication data
// Stored separately so the credential hash never travels with game state
type Account struct {
	UserID       UserID    `json:"user_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"` // bcrypt hash
	CreatedAt    time.Time `json:"created_at"`
}

// MinNameLength is the minimum length of a user name
const MinNameLength = 3
