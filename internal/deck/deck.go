package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/klondike/internal/card"
)

// Deck represents an ordered pile of cards, bottom first
type Deck struct {
	Cards []card.ID
}

// New returns the full 52-card deck in ID order
func New() *Deck {
	d := &Deck{Cards: make([]card.ID, card.DeckSize)}
	for i := range d.Cards {
		d.Cards[i] = card.ID(i)
	}
	return d
}

// NewRand returns a generator for the given seed. Equal seeds give equal deals.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed picks a fresh non-zero seed
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// Shuffle permutes the deck in place
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Pop removes and returns the top card
func (d *Deck) Pop() (card.ID, error) {
	if len(d.Cards) == 0 {
		return 0, fmt.Errorf("deck is empty")
	}
	top := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return top, nil
}
