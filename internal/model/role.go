package model

// RoleName identifies one of the four hidden roles
type RoleName string

const (
	RoleSheriff  RoleName = "Sheriff"
	RoleDeputy   RoleName = "Deputy"
	RoleRenegade RoleName = "Renegade"
	RoleBandit   RoleName = "Bandit"
)

// Role is a hidden role assignment with its display reference
type Role struct {
	Name     RoleName `json:"name"`
	ImageURL string   `json:"image_url"`
}

// Character is one of the named characters a player embodies for a match
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Life        int    `json:"life"` // base life points
}
