package card

import (
	"errors"
	"fmt"
	"strings"
)

// NumSuits is the number of suits in the deck
const NumSuits = 4

// NumRanks is the number of ranks per suit
const NumRanks = 13

// DeckSize is the number of cards in a full deck
const DeckSize = NumSuits * NumRanks

// ErrUnknownCard is returned for IDs or names that do not denote a card
var ErrUnknownCard = errors.New("unknown card")

// Suit of a card. The order matches the ID encoding.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in ID order
var Suits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

var suitNames = [NumSuits]string{"Spades", "Hearts", "Diamonds", "Clubs"}
var suitSymbols = [NumSuits]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if int(s) >= NumSuits {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Initial returns the one-letter suit name used in card names
func (s Suit) Initial() string {
	return s.String()[:1]
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	if int(s) >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// Color returns the colour of the suit
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color is either red or black
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank of a card, 1 (Ace) through 13 (King)
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankNames = [NumRanks + 1]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// ID identifies one of the 52 cards. Suit is ID % 4 and rank is ID / 4 + 1.
type ID uint8

// Valid reports whether the ID denotes a card of the deck
func (id ID) Valid() bool {
	return int(id) < DeckSize
}

// Card returns the card the ID denotes
func (id ID) Card() Card {
	return Card{
		ID:   id,
		Suit: Suit(int(id) % NumSuits),
		Rank: Rank(int(id)/NumSuits + 1),
	}
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	return id.Card().String()
}

// Card represents a playing card. It carries identity only, never placement.
type Card struct {
	ID   ID   // 0..51
	Suit Suit // Spades, Hearts, Diamonds or Clubs
	Rank Rank // 1..13
}

// New returns the card of the given suit and rank
func New(s Suit, r Rank) (Card, error) {
	if int(s) >= NumSuits || r < Ace || r > King {
		return Card{}, fmt.Errorf("%w: suit %d rank %d", ErrUnknownCard, s, r)
	}
	return ID((int(r)-1)*NumSuits + int(s)).Card(), nil
}

// Color returns the colour derived from the suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String returns the card name, e.g. "AS" or "10H"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Initial()
}

// Symbol returns the card name with a unicode pip, e.g. "A♠"
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// All returns the 52 cards in ID order
func All() []Card {
	cards := make([]Card, DeckSize)
	for i := range cards {
		cards[i] = ID(i).Card()
	}
	return cards
}

// Parse reads a card name such as "AS", "10h", "qd" or "7♣"
func Parse(name string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty name", ErrUnknownCard)
	}

	suit, rankPart, ok := splitSuit(s)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}

	for r := Ace; r <= King; r++ {
		if rankNames[r] == rankPart || (r == Ace && rankPart == "1") || (r == 10 && rankPart == "T") {
			return New(suit, r)
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, name)
}

// splitSuit cuts the trailing suit letter or pip off an upper-cased name
func splitSuit(s string) (Suit, string, bool) {
	for _, suit := range Suits {
		if rest, ok := strings.CutSuffix(s, suit.Initial()); ok && rest != "" {
			return suit, rest, true
		}
		if rest, ok := strings.CutSuffix(s, suit.Symbol()); ok && rest != "" {
			return suit, rest, true
		}
	}
	return 0, "", false
}
