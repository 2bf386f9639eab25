// Package board implements the Klondike solitaire rules engine: the card
// zones, move legality, move execution and the stock/waste cycle.
//
// A Board is a two-state machine. In Idle a card may be selected with
// SelectSource or the stock drawn with Draw. Selecting a card computes its
// legal destinations and enters Selecting, which ChooseDestination or Cancel
// leave again. Every call either applies completely or returns an error and
// leaves the board untouched.
//
// A Board is not safe for concurrent use.
package board

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// State is the selection state of a board
type State uint8

const (
	// Idle means no card is selected
	Idle State = iota
	// Selecting means a source card awaits a destination or cancellation
	Selecting
)

func (s State) String() string {
	if s == Selecting {
		return "selecting"
	}
	return "idle"
}

// Selection is a pending move: the chosen source card, where it was when
// chosen and the piles it may go to. Destinations always ends with the
// source's own slot, which cancels.
type Selection struct {
	Source       card.ID
	From         Location
	Destinations []Target
}

// Cancel returns the target that cancels the selection
func (s Selection) Cancel() Target {
	return s.From.Slot()
}

// Allows reports whether t is one of the destinations
func (s Selection) Allows(t Target) bool {
	return slices.Contains(s.Destinations, t)
}

func (s Selection) clone() Selection {
	s.Destinations = slices.Clone(s.Destinations)
	return s
}

// Board owns every card of one game
type Board struct {
	stock       []card.ID // top is last
	waste       []card.ID // top is last
	foundations [NumFoundations][]card.ID
	tableau     [NumColumns]column
	selection   *Selection
	logger      *slog.Logger
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the logger that receives a debug record for every
// transition
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

func newBoard(opts []Option) *Board {
	b := &Board{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New builds a board from an explicit layout
func New(l Layout, opts ...Option) (*Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(opts)
	b.stock = clone(l.Stock)
	b.waste = clone(l.Waste)
	for i, f := range l.Foundations {
		b.foundations[i] = clone(f)
	}
	for i, c := range l.Tableau {
		b.tableau[i] = column{
			cards:  append(clone(c.Hidden), c.Up...),
			hidden: len(c.Hidden),
		}
	}
	return b, nil
}

// Deal shuffles a fresh deck with rng and lays it out. Cards are taken from
// the top of the shuffled deck row by row: in row i column i gets a face-up
// card and every later column a face-down one, so column i ends up with i
// hidden cards under one frontier. The rest becomes the stock. A nil rng
// uses a random seed.
func Deal(rng *rand.Rand, opts ...Option) *Board {
	if rng == nil {
		rng = deck.NewRand(deck.RandomSeed())
	}
	d := deck.New()
	d.Shuffle(rng)

	b := newBoard(opts)
	for row := 0; row < NumColumns; row++ {
		b.tableau[row].cards = append(b.tableau[row].cards, mustPop(d))
		for col := row + 1; col < NumColumns; col++ {
			b.tableau[col].cards = append(b.tableau[col].cards, mustPop(d))
			b.tableau[col].hidden++
		}
	}
	b.stock = d.Cards

	b.logger.Debug("cards dealt", "stock", len(b.stock))
	return b
}

func mustPop(d *deck.Deck) card.ID {
	id, err := d.Pop()
	if err != nil {
		panic(fmt.Sprintf("deal: %v", err))
	}
	return id
}

// State returns the current selection state
func (b *Board) State() State {
	if b.selection != nil {
		return Selecting
	}
	return Idle
}

// Selection returns the pending selection, if any
func (b *Board) Selection() (Selection, bool) {
	if b.selection == nil {
		return Selection{}, false
	}
	return b.selection.clone(), true
}

// CardZone returns where the card is
func (b *Board) CardZone(id card.ID) (Location, error) {
	if !id.Valid() {
		return Location{}, fmt.Errorf("%w: %d", card.ErrUnknownCard, id)
	}
	return b.locate(id), nil
}

// locate scans the zones for id, which must be valid
func (b *Board) locate(id card.ID) Location {
	if i := slices.Index(b.stock, id); i >= 0 {
		return Location{Zone: Stock, Depth: i, Placement: StockCard}
	}
	if i := slices.Index(b.waste, id); i >= 0 {
		return Location{Zone: Waste, Depth: i, Placement: pilePlacement(Waste, i, len(b.waste))}
	}
	for f, pile := range b.foundations {
		if i := slices.Index(pile, id); i >= 0 {
			return Location{Zone: Foundation, Index: f, Depth: i, Placement: pilePlacement(Foundation, i, len(pile))}
		}
	}
	for c := range b.tableau {
		col := &b.tableau[c]
		if i := slices.Index(col.cards, id); i >= 0 {
			return Location{Zone: Tableau, Index: c, Depth: i, Placement: col.placement(i)}
		}
	}
	panic(fmt.Sprintf("card %s is in no zone", id))
}

// SelectSource chooses the card to move and computes where it may go
func (b *Board) SelectSource(id card.ID) (Selection, error) {
	if b.selection != nil {
		return Selection{}, fmt.Errorf("%w: %s is already selected", ErrInvalidStateTransition, b.selection.Source)
	}
	if !id.Valid() {
		return Selection{}, fmt.Errorf("%w: unknown card %d", ErrInvalidSource, id)
	}

	from := b.locate(id)
	if !from.Placement.Movable() {
		return Selection{}, fmt.Errorf("%w: %s is %s", ErrInvalidSource, id, from.Placement)
	}

	sel := &Selection{
		Source:       id,
		From:         from,
		Destinations: legalTargets(id.Card(), from, b.foundationTops(), b.columnTops()),
	}
	b.selection = sel

	b.logger.Debug("source selected", "card", id.String(), "from", from.String(), "destinations", len(sel.Destinations)-1)
	return sel.clone(), nil
}

func (b *Board) foundationTops() []pileTop {
	tops := make([]pileTop, NumFoundations)
	for i, pile := range b.foundations {
		id, ok := top(pile)
		tops[i] = pileTop{card: id.Card(), empty: !ok}
	}
	return tops
}

func (b *Board) columnTops() []pileTop {
	tops := make([]pileTop, NumColumns)
	for i := range b.tableau {
		id, ok := b.tableau[i].frontier()
		tops[i] = pileTop{card: id.Card(), empty: !ok}
	}
	return tops
}

// ChooseDestination completes the pending selection. Choosing the source's
// own slot cancels it.
func (b *Board) ChooseDestination(t Target) (Snapshot, error) {
	sel := b.selection
	if sel == nil {
		return Snapshot{}, fmt.Errorf("%w: no card is selected", ErrInvalidStateTransition)
	}
	if !sel.Allows(t) {
		return Snapshot{}, fmt.Errorf("%w: %s cannot go to %s", ErrInvalidDestination, sel.Source, t)
	}

	if t == sel.Cancel() {
		return b.Cancel()
	}

	moved := b.take(sel.From)
	switch t.Zone {
	case Foundation:
		b.foundations[t.Index] = append(b.foundations[t.Index], moved...)
	case Tableau:
		b.tableau[t.Index].cards = append(b.tableau[t.Index].cards, moved...)
	}
	b.selection = nil

	b.logger.Debug("card moved", "card", sel.Source.String(), "from", sel.From.Slot().String(), "to", t.String(), "count", len(moved))
	return b.Snapshot(), nil
}

// take removes the card at from together with everything stacked after it
func (b *Board) take(from Location) []card.ID {
	switch from.Zone {
	case Waste:
		id := b.waste[len(b.waste)-1]
		b.waste = b.waste[:len(b.waste)-1]
		return []card.ID{id}
	case Tableau:
		return b.tableau[from.Index].cut(from.Depth)
	default:
		panic(fmt.Sprintf("cannot move cards out of %s", from.Zone))
	}
}

// Cancel drops the pending selection
func (b *Board) Cancel() (Snapshot, error) {
	if b.selection == nil {
		return Snapshot{}, fmt.Errorf("%w: no card is selected", ErrInvalidStateTransition)
	}
	b.logger.Debug("selection cancelled", "card", b.selection.Source.String())
	b.selection = nil
	return b.Snapshot(), nil
}

// TargetOf returns the pile a card stands for when clicked as a destination:
// a foundation top or column frontier names its pile, and the selected
// source names its own slot.
func (b *Board) TargetOf(id card.ID) (Target, error) {
	if !id.Valid() {
		return Target{}, fmt.Errorf("%w: unknown card %d", ErrInvalidDestination, id)
	}
	loc := b.locate(id)
	if b.selection != nil && b.selection.Source == id {
		return b.selection.Cancel(), nil
	}
	if b.selection != nil && loc.Slot() == b.selection.Cancel() {
		return Target{}, fmt.Errorf("%w: %s shares a pile with the selected %s", ErrInvalidDestination, id, b.selection.Source)
	}
	switch loc.Placement {
	case FoundationTop, Frontier:
		return loc.Slot(), nil
	default:
		return Target{}, fmt.Errorf("%w: %s is %s", ErrInvalidDestination, id, loc.Placement)
	}
}
