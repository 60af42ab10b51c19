package model

// CardID uniquely identifies one dealt card instance.
// Two cards with the same title are still distinct instances.
type CardID string

// Signature is the (suit, rank) identity stamped on a card when the deck
// is built, distinct from its title
type Signature struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// Card is a single card instance in some zone of a game
type Card struct {
	ID        CardID    `json:"id"`
	Title     string    `json:"title"`
	IsInstant bool      `json:"is_instant"` // false for equipment that stays in play
	ImageURL  string    `json:"image_url"`
	Signature Signature `json:"signature"`
}
