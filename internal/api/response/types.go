package response

import (
	"time"

	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u model.User) User {
	return User{
		ID:   int64(u.ID),
		Name: u.Name,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(s.User),
		SessionToken: s.Token,
	}
}

// Signature represents a card's deck signing
type Signature struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// Card represents a card in API responses
type Card struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	IsInstant bool      `json:"is_instant"`
	ImageURL  string    `json:"image_url,omitempty"`
	Signature Signature `json:"signature"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		ID:        string(c.ID),
		Title:     c.Title,
		IsInstant: c.IsInstant,
		ImageURL:  c.ImageURL,
		Signature: Signature{Suit: c.Signature.Suit, Rank: c.Signature.Rank},
	}
}

func cardsFromModel(cards []model.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromModel(c)
	}
	return out
}

// Role represents a player's role card
type Role struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Character represents a player's character card
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Life        int    `json:"life"`
}

// Player represents a seated player in API responses
type Player struct {
	User       User      `json:"user"`
	Role       Role      `json:"role"`
	Character  Character `json:"character"`
	Life       int       `json:"life"`
	IsRevealed bool      `json:"is_revealed"`
	IsActive   bool      `json:"is_active"`
	Hand       []Card    `json:"hand"`
	Inventory  []Card    `json:"inventory"`
	Played     []Card    `json:"played"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		User: UserFromModel(p.User),
		Role: Role{
			Name:     string(p.Role.Name),
			ImageURL: p.Role.ImageURL,
		},
		Character: Character{
			Name:        p.Character.Name,
			Description: p.Character.Description,
			ImageURL:    p.Character.ImageURL,
			Life:        p.Character.Life,
		},
		Life:       p.Life,
		IsRevealed: p.IsRevealed,
		IsActive:   p.IsActive,
		Hand:       cardsFromModel(p.Hand),
		Inventory:  cardsFromModel(p.Inventory),
		Played:     cardsFromModel(p.Played),
	}
}

// LogEntry represents a single audit log line
type LogEntry struct {
	PlayerName  string `json:"player_name"`
	Interaction string `json:"interaction"`
}

// Game represents a full game snapshot in API responses
type Game struct {
	ID             int64      `json:"id"`
	Admin          string     `json:"admin"`
	HasStarted     bool       `json:"has_started"`
	Requests       []User     `json:"requests"`
	JoinedUsers    []User     `json:"joined_users"`
	Players        []Player   `json:"players"`
	UnusedCards    []Card     `json:"unused_cards"`
	CommunityCards []Card     `json:"community_cards"`
	UsedCards      []Card     `json:"used_cards"`
	Logs           []LogEntry `json:"logs"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	requests := make([]User, len(g.Requests))
	for i, u := range g.Requests {
		requests[i] = UserFromModel(u)
	}

	joined := make([]User, len(g.JoinedUsers))
	for i, u := range g.JoinedUsers {
		joined[i] = UserFromModel(u)
	}

	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerFromModel(p)
	}

	logs := make([]LogEntry, len(g.Logs))
	for i, l := range g.Logs {
		logs[i] = LogEntry{PlayerName: l.PlayerName, Interaction: l.Interaction}
	}

	return Game{
		ID:             int64(g.ID),
		Admin:          g.Admin,
		HasStarted:     g.HasStarted,
		Requests:       requests,
		JoinedUsers:    joined,
		Players:        players,
		UnusedCards:    cardsFromModel(g.UnusedCards),
		CommunityCards: cardsFromModel(g.CommunityCards),
		UsedCards:      cardsFromModel(g.UsedCards),
		Logs:           logs,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// GameList is the response for listing a user's games
type GameList struct {
	GameIDs []int64 `json:"game_ids"`
}

// GameListFromIDs converts game ids to a GameList
func GameListFromIDs(ids []model.GameID) GameList {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return GameList{GameIDs: out}
}
