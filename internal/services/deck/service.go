package deck

import (
	"github.com/google/uuid"

	"github.com/bangtable/bangtable/internal/dependencies/random"
	"github.com/bangtable/bangtable/internal/model"
)

// Service builds decks and draws role/character assignments.
// All randomness flows through the injected Random so draws can be pinned
// in tests.
type Service struct {
	random random.Random
}

// New creates a new deck service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// BuildDeck materializes the fixed card multiset, shuffles it, stamps each
// card with a fresh id and a (suit, rank) signature, and shuffles again.
// The returned order is the deal order: hands are dealt from the head.
func (s *Service) BuildDeck() []model.Card {
	cards := make([]model.Card, 0, DeckSize)
	for _, cc := range catalog {
		for i := 0; i < cc.count; i++ {
			cards = append(cards, cc.card)
		}
	}

	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	// Sign in nested suit x rank order, one shuffled card per slot.
	// The rank sequence has more slots than the multiset has cards; the
	// trailing slots are skipped.
	signed := make([]model.Card, 0, len(cards))
	idx := 0
	for _, suit := range suits {
		for _, rank := range ranks {
			if idx >= len(cards) {
				break
			}
			card := cards[idx]
			card.ID = model.CardID(uuid.NewString())
			card.Signature = model.Signature{Suit: suit, Rank: rank}
			signed = append(signed, card)
			idx++
		}
	}

	s.random.Shuffle(len(signed), func(i, j int) {
		signed[i], signed[j] = signed[j], signed[i]
	})

	return signed
}

// Roles draws the role assignments for an n-player game: the first n
// entries of the fixed table, shuffled. Taking the prefix before shuffling
// keeps exactly one Sheriff in every draw.
func (s *Service) Roles(n int) ([]model.Role, error) {
	if n < 1 || n > len(roleTable) {
		return nil, model.ErrPoolExhausted
	}

	roles := make([]model.Role, n)
	copy(roles, roleTable[:n])

	s.random.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	return roles, nil
}

// Characters draws n distinct characters: the full pool shuffled, prefix
// taken
func (s *Service) Characters(n int) ([]model.Character, error) {
	if n < 1 || n > len(characterPool) {
		return nil, model.ErrPoolExhausted
	}

	pool := make([]model.Character, len(characterPool))
	copy(pool, characterPool)

	s.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool[:n], nil
}
