package redis

import (
	"fmt"

	"github.com/bangtable/bangtable/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "bang"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the name -> user_id index
func usernameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, name)
}

// accountKey returns the Redis key for an Account
func accountKey(name string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, name)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// userSeqKey returns the Redis key of the user id counter
func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

// gameSeqKey returns the Redis key of the game id counter
func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:game", keyPrefix)
}
