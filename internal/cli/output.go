package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Card response type
type Card struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	IsInstant bool   `json:"is_instant"`
	Signature struct {
		Suit string `json:"suit"`
		Rank string `json:"rank"`
	} `json:"signature"`
}

// Player response type
type Player struct {
	User User `json:"user"`
	Role struct {
		Name string `json:"name"`
	} `json:"role"`
	Character struct {
		Name string `json:"name"`
		Life int    `json:"life"`
	} `json:"character"`
	Life       int    `json:"life"`
	IsRevealed bool   `json:"is_revealed"`
	IsActive   bool   `json:"is_active"`
	Hand       []Card `json:"hand"`
	Inventory  []Card `json:"inventory"`
	Played     []Card `json:"played"`
}

// LogEntry response type
type LogEntry struct {
	PlayerName  string `json:"player_name"`
	Interaction string `json:"interaction"`
}

// Game response type
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
}

// GameList response type
type GameList struct {
	GameIDs []int64 `json:"game_ids"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d)\n", u.Name, u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %d\n", g.ID)
	fmt.Printf("Admin: %s\n", g.Admin)
	if g.HasStarted {
		fmt.Println("State: started")
	} else {
		fmt.Println("State: lobby")
	}

	if len(g.Requests) > 0 {
		fmt.Printf("Pending requests (%d):\n", len(g.Requests))
		for _, u := range g.Requests {
			fmt.Printf("  - %s (#%d)\n", u.Name, u.ID)
		}
	}
	if len(g.JoinedUsers) > 0 {
		fmt.Printf("Joined (%d):\n", len(g.JoinedUsers))
		for _, u := range g.JoinedUsers {
			fmt.Printf("  - %s (#%d)\n", u.Name, u.ID)
		}
	}

	if len(g.Players) > 0 {
		fmt.Printf("Players (%d):\n", len(g.Players))
		for _, p := range g.Players {
			role := "hidden"
			if p.IsRevealed {
				role = p.Role.Name
			}
			active := ""
			if p.IsActive {
				active = " *"
			}
			fmt.Printf("  - %s%s: %s, %d life, %d in hand, %d played\n",
				p.User.Name, active, role, p.Life, len(p.Hand), len(p.Played))
			fmt.Printf("    character: %s\n", p.Character.Name)
			for _, c := range p.Played {
				fmt.Printf("    played: %s\n", formatCard(c))
			}
			for _, c := range p.Inventory {
				fmt.Printf("    in play: %s\n", formatCard(c))
			}
		}
	}

	if g.HasStarted {
		fmt.Printf("Deck: %d, community: %d, discarded: %d\n",
			len(g.UnusedCards), len(g.CommunityCards), len(g.UsedCards))
	}
	if len(g.CommunityCards) > 0 {
		fmt.Println("Community:")
		for _, c := range g.CommunityCards {
			fmt.Printf("  - %s\n", formatCard(c))
		}
	}

	if len(g.Logs) > 0 {
		n := len(g.Logs)
		if n > 10 {
			n = 10
		}
		fmt.Printf("Recent log (%d of %d):\n", n, len(g.Logs))
		for _, l := range g.Logs[:n] {
			fmt.Printf("  %s: %s\n", l.PlayerName, l.Interaction)
		}
	}
}

func formatCard(c Card) string {
	if c.Signature.Suit != "" {
		return fmt.Sprintf("%s [%s %s] (%s)", c.Title, c.Signature.Rank, c.Signature.Suit, c.ID)
	}
	return fmt.Sprintf("%s (%s)", c.Title, c.ID)
}

func (o *Output) printGameList(l GameList) {
	if len(l.GameIDs) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.GameIDs))
	for _, id := range l.GameIDs {
		fmt.Printf("  - %d\n", id)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
