package model

// Player is a seat at a started game. Players are created in bulk when the
// match starts and membership never changes afterwards.
type Player struct {
	User       User      `json:"user"`
	Role       Role      `json:"role"`
	Character  Character `json:"character"`
	Life       int       `json:"life"` // may go non-positive; no elimination here
	IsRevealed bool      `json:"is_revealed"`
	IsActive   bool      `json:"is_active"`
	Hand       []Card    `json:"hand"`
	Inventory  []Card    `json:"inventory"`
	Played     []Card    `json:"played"`
}

// LogEntry records one audited interaction, newest first in Game.Logs
type LogEntry struct {
	PlayerName  string `json:"player_name"`
	Interaction string `json:"interaction"`
}
