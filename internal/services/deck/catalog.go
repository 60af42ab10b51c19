package deck

import "github.com/bangtable/bangtable/internal/model"

// cardCount pairs a card template with how many copies the deck carries
type cardCount struct {
	card  model.Card
	count int
}

// catalog is the fixed 80-card base multiset, before signing
var catalog = []cardCount{
	{instant("Bang", "/img/cards/bang.png"), 25},
	{instant("Missed", "/img/cards/missed.png"), 12},
	{instant("Beer", "/img/cards/beer.png"), 6},
	{instant("Panic", "/img/cards/panic.png"), 4},
	{instant("Cat Balou", "/img/cards/cat_balou.png"), 4},
	{instant("Duel", "/img/cards/duel.png"), 3},
	{instant("Stagecoach", "/img/cards/stagecoach.png"), 2},
	{instant("General Store", "/img/cards/general_store.png"), 2},
	{instant("Indians", "/img/cards/indians.png"), 2},
	{instant("Wells Fargo", "/img/cards/wells_fargo.png"), 1},
	{instant("Gatling", "/img/cards/gatling.png"), 1},
	{instant("Saloon", "/img/cards/saloon.png"), 1},
	{equipment("Schofield", "/img/cards/schofield.png"), 3},
	{equipment("Volcanic", "/img/cards/volcanic.png"), 2},
	{equipment("Remington", "/img/cards/remington.png"), 1},
	{equipment("Carbine", "/img/cards/carbine.png"), 1},
	{equipment("Winchester", "/img/cards/winchester.png"), 1},
	{equipment("Jail", "/img/cards/jail.png"), 3},
	{equipment("Barrel", "/img/cards/barrel.png"), 2},
	{equipment("Mustang", "/img/cards/mustang.png"), 2},
	{equipment("Scope", "/img/cards/scope.png"), 1},
	{equipment("Dynamite", "/img/cards/dynamite.png"), 1},
}

// DeckSize is the total number of cards in the base multiset
const DeckSize = 80

// suits in signing order
var suits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

// ranks is the 21-entry signing sequence: a full 2..A run, then 2..9 again.
// 4 suits x 21 ranks leaves 4 slots with no source card; signing stops when
// the multiset runs out.
var ranks = []string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A",
	"2", "3", "4", "5", "6", "7", "8", "9",
}

func instant(title, imageURL string) model.Card {
	return model.Card{Title: title, IsInstant: true, ImageURL: imageURL}
}

func equipment(title, imageURL string) model.Card {
	return model.Card{Title: title, IsInstant: false, ImageURL: imageURL}
}

// roleTable is the fixed assignment table for a 7-seat game.
// The first n entries are used for an n-player game.
var roleTable = []model.Role{
	{Name: model.RoleSheriff, ImageURL: "/img/roles/sheriff.png"},
	{Name: model.RoleRenegade, ImageURL: "/img/roles/renegade.png"},
	{Name: model.RoleBandit, ImageURL: "/img/roles/bandit.png"},
	{Name: model.RoleBandit, ImageURL: "/img/roles/bandit.png"},
	{Name: model.RoleDeputy, ImageURL: "/img/roles/deputy.png"},
	{Name: model.RoleBandit, ImageURL: "/img/roles/bandit.png"},
	{Name: model.RoleDeputy, ImageURL: "/img/roles/deputy.png"},
}

// characterPool is the fixed set of characters players can draw
var characterPool = []model.Character{
	{Name: "Willy the Kid", Description: "Can play any number of Bang cards.", ImageURL: "/img/characters/willy_the_kid.png", Life: 4},
	{Name: "Vulture Sam", Description: "Takes the cards of eliminated players.", ImageURL: "/img/characters/vulture_sam.png", Life: 4},
	{Name: "Suzy Lafayette", Description: "Draws a card when her hand empties.", ImageURL: "/img/characters/suzy_lafayette.png", Life: 4},
	{Name: "Sid Ketchum", Description: "May discard two cards to regain one life.", ImageURL: "/img/characters/sid_ketchum.png", Life: 4},
	{Name: "Slab the Killer", Description: "His Bangs need two Missed to cancel.", ImageURL: "/img/characters/slab_the_killer.png", Life: 4},
	{Name: "Pedro Ramirez", Description: "May draw his first card from the discard pile.", ImageURL: "/img/characters/pedro_ramirez.png", Life: 4},
	{Name: "Paul Regret", Description: "Seen at distance +1 by everyone.", ImageURL: "/img/characters/paul_regret.png", Life: 3},
	{Name: "Lucky Duke", Description: "Flips two cards on every draw check.", ImageURL: "/img/characters/lucky_duke.png", Life: 4},
	{Name: "Kit Carlson", Description: "Looks at three cards, keeps two.", ImageURL: "/img/characters/kit_carlson.png", Life: 4},
	{Name: "Jourdonnais", Description: "Has a built-in Barrel.", ImageURL: "/img/characters/jourdonnais.png", Life: 4},
	{Name: "Jesse Jones", Description: "May draw his first card from a player's hand.", ImageURL: "/img/characters/jesse_jones.png", Life: 4},
	{Name: "El Gringo", Description: "Draws from whoever hits him.", ImageURL: "/img/characters/el_gringo.png", Life: 3},
	{Name: "Calamity Janet", Description: "Plays Bang as Missed and vice versa.", ImageURL: "/img/characters/calamity_janet.png", Life: 4},
	{Name: "Bart Cassidy", Description: "Draws a card whenever he loses a life.", ImageURL: "/img/characters/bart_cassidy.png", Life: 4},
}
