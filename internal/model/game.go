package model

import "time"

// GameID uniquely identifies a game session
type GameID int64

// Game is one session of the card game, from lobby through completion.
// Before the start transition membership lives in Requests/JoinedUsers;
// afterwards it lives in Players and never changes.
type Game struct {
	ID         GameID `json:"id"`
	Admin      string `json:"admin"` // user name of the session admin
	HasStarted bool   `json:"has_started"`

	Requests    []User   `json:"requests"`     // awaiting admin approval, in request order
	JoinedUsers []User   `json:"joined_users"` // approved, in join order
	Players     []Player `json:"players"`      // populated at start

	UnusedCards    []Card `json:"unused_cards"` // draw pile
	CommunityCards []Card `json:"community_cards"`
	UsedCards      []Card `json:"used_cards"` // discard

	Logs []LogEntry `json:"logs"` // newest first

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetPlayer returns the player with the given user name, or nil
func (g *Game) GetPlayer(name string) *Player {
	for i := range g.Players {
		if g.Players[i].User.Name == name {
			return &g.Players[i]
		}
	}
	return nil
}

// HasRequested reports whether the user is awaiting approval
func (g *Game) HasRequested(id UserID) bool {
	for _, u := range g.Requests {
		if u.ID == id {
			return true
		}
	}
	return false
}

// HasJoined reports whether the user has been approved into the lobby
func (g *Game) HasJoined(id UserID) bool {
	for _, u := range g.JoinedUsers {
		if u.ID == id {
			return true
		}
	}
	return false
}

// IsMember reports whether the user appears anywhere in the session:
// pending, joined, or playing
func (g *Game) IsMember(id UserID) bool {
	if g.HasRequested(id) || g.HasJoined(id) {
		return true
	}
	for _, p := range g.Players {
		if p.User.ID == id {
			return true
		}
	}
	return false
}

// CollectionFor resolves a zone reference to the backing card slice.
// Player-owned zones require ref.Owner to name an existing player.
func (g *Game) CollectionFor(ref ZoneRef) (*[]Card, error) {
	if ref.Zone.OwnedByPlayer() {
		p := g.GetPlayer(ref.Owner)
		if p == nil {
			return nil, ErrPlayerNotFound
		}
		switch ref.Zone {
		case ZoneHand:
			return &p.Hand, nil
		case ZoneInventory:
			return &p.Inventory, nil
		case ZonePlayed:
			return &p.Played, nil
		}
	}
	switch ref.Zone {
	case ZoneUnused:
		return &g.UnusedCards, nil
	case ZoneCommunity:
		return &g.CommunityCards, nil
	case ZoneUsed:
		return &g.UsedCards, nil
	}
	return nil, ErrInvalidZone
}

// Clone returns a deep copy of the game. Stores hand out clones so a
// failed operation that already touched a loaded aggregate never leaks
// into persisted state.
func (g *Game) Clone() *Game {
	c := *g
	c.Requests = append([]User{}, g.Requests...)
	c.JoinedUsers = append([]User{}, g.JoinedUsers...)
	c.UnusedCards = append([]Card{}, g.UnusedCards...)
	c.CommunityCards = append([]Card{}, g.CommunityCards...)
	c.UsedCards = append([]Card{}, g.UsedCards...)
	c.Logs = append([]LogEntry{}, g.Logs...)
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		p.Hand = append([]Card{}, p.Hand...)
		p.Inventory = append([]Card{}, p.Inventory...)
		p.Played = append([]Card{}, p.Played...)
		c.Players[i] = p
	}
	return &c
}

// AppendLog prepends an entry so Logs reads newest first
func (g *Game) AppendLog(playerName, interaction string) {
	g.Logs = append([]LogEntry{{PlayerName: playerName, Interaction: interaction}}, g.Logs...)
}
