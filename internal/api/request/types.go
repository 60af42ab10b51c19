package request

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AuthorizeRequest is the request body for admitting a pending join request
type AuthorizeRequest struct {
	UserID int64 `json:"user_id"`
}

// MoveCardRequest is the request body for moving a card between zones
type MoveCardRequest struct {
	CardID      string `json:"card_id"`
	SourceZone  string `json:"source_zone"`
	SourceOwner string `json:"source_owner,omitempty"`
	TargetZone  string `json:"target_zone"`
	TargetOwner string `json:"target_owner,omitempty"`
	TargetIndex int    `json:"target_index"`
}

// AdjustLifeRequest is the request body for changing the acting player's life
type AdjustLifeRequest struct {
	Delta int `json:"delta"`
}
