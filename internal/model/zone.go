package model

// Zone names a card container, owned either by a player or by the game
type Zone string

const (
	ZoneHand      Zone = "hand"
	ZoneInventory Zone = "inventory"
	ZonePlayed    Zone = "played"
	ZoneUnused    Zone = "unused"
	ZoneCommunity Zone = "community"
	ZoneUsed      Zone = "used"
)

// OwnedByPlayer reports whether the zone belongs to a player rather than
// to the game itself
func (z Zone) OwnedByPlayer() bool {
	switch z {
	case ZoneHand, ZoneInventory, ZonePlayed:
		return true
	}
	return false
}

// ParseZone validates a zone name from the wire
func ParseZone(s string) (Zone, error) {
	switch z := Zone(s); z {
	case ZoneHand, ZoneInventory, ZonePlayed, ZoneUnused, ZoneCommunity, ZoneUsed:
		return z, nil
	}
	return "", ErrInvalidZone
}

// ZoneRef addresses one concrete card collection within a game.
// Owner is the player name for player-owned zones and empty otherwise.
type ZoneRef struct {
	Zone  Zone
	Owner string
}
