package board

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
)

// Layout is an explicit arrangement of all 52 cards. Every pile lists its
// cards bottom first.
type Layout struct {
	Stock       []card.ID
	Waste       []card.ID
	Foundations [][]card.ID // at most NumFoundations; missing piles are empty
	Tableau     []Column    // at most NumColumns; missing columns are empty
}

// Column is one tableau column of a Layout
type Column struct {
	Hidden []card.ID
	Up     []card.ID
}

// Validate checks the layout against the board invariants
func (l Layout) Validate() error {
	if len(l.Foundations) > NumFoundations {
		return fmt.Errorf("%w: %d foundations, want at most %d", ErrInvalidLayout, len(l.Foundations), NumFoundations)
	}
	if len(l.Tableau) > NumColumns {
		return fmt.Errorf("%w: %d columns, want at most %d", ErrInvalidLayout, len(l.Tableau), NumColumns)
	}

	seen := make(map[card.ID]bool, card.DeckSize)
	add := func(where string, ids []card.ID) error {
		for _, id := range ids {
			if !id.Valid() {
				return fmt.Errorf("%w: %s holds unknown card %d", ErrInvalidLayout, where, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: %s appears twice", ErrInvalidLayout, id)
			}
			seen[id] = true
		}
		return nil
	}

	if err := add("stock", l.Stock); err != nil {
		return err
	}
	if err := add("waste", l.Waste); err != nil {
		return err
	}
	for i, f := range l.Foundations {
		where := FoundationTarget(i).String()
		if err := add(where, f); err != nil {
			return err
		}
		if !validFoundation(f) {
			return fmt.Errorf("%w: %s is not an ascending single-suit pile from the Ace", ErrInvalidLayout, where)
		}
	}
	for i, c := range l.Tableau {
		where := ColumnTarget(i).String()
		if err := add(where, c.Hidden); err != nil {
			return err
		}
		if err := add(where, c.Up); err != nil {
			return err
		}
		if len(c.Hidden) > 0 && len(c.Up) == 0 {
			return fmt.Errorf("%w: %s has hidden cards but no face-up card", ErrInvalidLayout, where)
		}
		if !validRun(c.Up) {
			return fmt.Errorf("%w: %s face-up cards are not a descending alternating run", ErrInvalidLayout, where)
		}
	}

	if len(seen) != card.DeckSize {
		return fmt.Errorf("%w: %d cards placed, want %d", ErrInvalidLayout, len(seen), card.DeckSize)
	}
	return nil
}

// Layout returns the board's current arrangement
func (b *Board) Layout() Layout {
	l := Layout{
		Stock:       clone(b.stock),
		Waste:       clone(b.waste),
		Foundations: make([][]card.ID, NumFoundations),
		Tableau:     make([]Column, NumColumns),
	}
	for i, f := range b.foundations {
		l.Foundations[i] = clone(f)
	}
	for i, c := range b.tableau {
		l.Tableau[i] = Column{
			Hidden: clone(c.cards[:c.hidden]),
			Up:     clone(c.cards[c.hidden:]),
		}
	}
	return l
}

func clone(ids []card.ID) []card.ID {
	out := make([]card.ID, len(ids))
	copy(out, ids)
	return out
}
