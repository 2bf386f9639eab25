package board

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
)

// NumFoundations is the number of foundation piles, one per suit
const NumFoundations = card.NumSuits

// NumColumns is the number of tableau columns
const NumColumns = card.NumSuits + 3

// Zone is the kind of pile a card lives in
type Zone uint8

const (
	Stock Zone = iota
	Waste
	Foundation
	Tableau
)

func (z Zone) String() string {
	switch z {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "column"
	default:
		return fmt.Sprintf("Zone(%d)", uint8(z))
	}
}

// Placement is the role a card plays inside its zone. It is derived from the
// zone contents on every lookup.
type Placement uint8

const (
	// StockCard is face down in the stock
	StockCard Placement = iota
	// WasteTop is the most recently drawn card
	WasteTop
	// WasteCovered is an earlier drawn card, inert until it surfaces again
	WasteCovered
	// FoundationTop is the visible card of a foundation
	FoundationTop
	// FoundationCovered lies under another foundation card for good
	FoundationCovered
	// Hidden is face down in a tableau column
	Hidden
	// Frontier is the last face-up card of a tableau column
	Frontier
	// RunMember is face up with more cards stacked after it
	RunMember
)

var placementNames = [...]string{
	StockCard:         "stock",
	WasteTop:          "waste top",
	WasteCovered:      "waste covered",
	FoundationTop:     "foundation top",
	FoundationCovered: "foundation covered",
	Hidden:            "hidden",
	Frontier:          "frontier",
	RunMember:         "run member",
}

func (p Placement) String() string {
	if int(p) < len(placementNames) {
		return placementNames[p]
	}
	return fmt.Sprintf("Placement(%d)", uint8(p))
}

// FaceUp reports whether a card in this placement shows its face
func (p Placement) FaceUp() bool {
	return p != StockCard && p != Hidden
}

// Movable reports whether a card in this placement may be selected as a source
func (p Placement) Movable() bool {
	return p == WasteTop || p == Frontier || p == RunMember
}

// Location is where a card currently is
type Location struct {
	Zone      Zone
	Index     int // foundation or column number, 0 for stock and waste
	Depth     int // cards below this one in the zone
	Placement Placement
}

func (l Location) String() string {
	return fmt.Sprintf("%s depth %d (%s)", l.Slot(), l.Depth, l.Placement)
}

// Slot returns the pile the location belongs to
func (l Location) Slot() Target {
	return Target{Zone: l.Zone, Index: l.Index}
}

// Target names a pile a selected card may be sent to
type Target struct {
	Zone  Zone
	Index int
}

func (t Target) String() string {
	switch t.Zone {
	case Stock, Waste:
		return t.Zone.String()
	default:
		return fmt.Sprintf("%s %d", t.Zone, t.Index+1)
	}
}

// FoundationTarget returns the target for foundation i
func FoundationTarget(i int) Target {
	return Target{Zone: Foundation, Index: i}
}

// ColumnTarget returns the target for tableau column i
func ColumnTarget(i int) Target {
	return Target{Zone: Tableau, Index: i}
}

// WasteTarget is the waste pile. It is only ever the cancel target.
var WasteTarget = Target{Zone: Waste}

// column is a tableau pile: a hidden prefix followed by a face-up run
type column struct {
	cards  []card.ID
	hidden int
}

func (c *column) empty() bool {
	return len(c.cards) == 0
}

func (c *column) frontier() (card.ID, bool) {
	if len(c.cards) == 0 {
		return 0, false
	}
	return c.cards[len(c.cards)-1], true
}

func (c *column) placement(depth int) Placement {
	switch {
	case depth < c.hidden:
		return Hidden
	case depth == len(c.cards)-1:
		return Frontier
	default:
		return RunMember
	}
}

// cut removes the cards from depth upward and turns over the newly exposed
// card if it was hidden
func (c *column) cut(depth int) []card.ID {
	moved := make([]card.ID, len(c.cards)-depth)
	copy(moved, c.cards[depth:])
	c.cards = c.cards[:depth]
	if n := len(c.cards); n > 0 && c.hidden >= n {
		c.hidden = n - 1
	}
	return moved
}

func top(pile []card.ID) (card.ID, bool) {
	if len(pile) == 0 {
		return 0, false
	}
	return pile[len(pile)-1], true
}

func pilePlacement(z Zone, depth, size int) Placement {
	covered := depth < size-1
	switch z {
	case Stock:
		return StockCard
	case Waste:
		if covered {
			return WasteCovered
		}
		return WasteTop
	default:
		if covered {
			return FoundationCovered
		}
		return FoundationTop
	}
}
