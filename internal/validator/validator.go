package validator

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Snapshot board.Snapshot
	Results  ValidationResults
}

func NewValidator(snap board.Snapshot) *Validator {
	return &Validator{
		Snapshot: snap,
		Results:  ValidationResults{},
	}
}

// Validate checks the snapshot against every board invariant. The error is
// reserved for snapshots too malformed to inspect.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateShape(); err != nil {
		return v.Results, err
	}

	v.validateConservation()
	v.validateStock()
	v.validateWaste()
	v.validateFoundations()
	v.validateTableau()
	v.validateSelection()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateShape() error {
	s := v.Snapshot
	if len(s.Foundations) != board.NumFoundations {
		return fmt.Errorf("snapshot has %d foundations, want %d", len(s.Foundations), board.NumFoundations)
	}
	if len(s.Tableau) != board.NumColumns {
		return fmt.Errorf("snapshot has %d columns, want %d", len(s.Tableau), board.NumColumns)
	}
	return nil
}

// validateConservation checks that the zones hold the deck exactly once
func (v *Validator) validateConservation() {
	counts := make(map[card.ID]int, card.DeckSize)
	for _, c := range v.Snapshot.Cards() {
		counts[c.Card.ID]++
	}
	for _, c := range card.All() {
		switch n := counts[c.ID]; {
		case n == 0:
			v.errorf("%s is missing", c)
		case n > 1:
			v.errorf("%s appears %d times", c, n)
		}
	}
	if len(counts) > card.DeckSize {
		v.errorf("%d distinct cards on the board, want %d", len(counts), card.DeckSize)
	}
}

func (v *Validator) validateStock() {
	for _, c := range v.Snapshot.Stock.Cards {
		if c.FaceUp || c.Selectable || c.Placement != board.StockCard {
			v.errorf("stock card %s is exposed (%s)", c.Card, c.Placement)
		}
	}
}

// validateWaste checks that only the top waste card is usable
func (v *Validator) validateWaste() {
	cards := v.Snapshot.Waste.Cards
	for i, c := range cards {
		want := board.WasteCovered
		if i == len(cards)-1 {
			want = board.WasteTop
		}
		if c.Placement != want {
			v.errorf("waste card %s at depth %d is %s, want %s", c.Card, i, c.Placement, want)
		}
		if c.Placement == board.WasteCovered && c.Selectable {
			v.errorf("covered waste card %s is selectable", c.Card)
		}
	}
}

// validateFoundations checks every foundation is one suit ascending from the Ace
func (v *Validator) validateFoundations() {
	for i, p := range v.Snapshot.Foundations {
		for d, c := range p.Cards {
			if c.Card.Rank != card.Rank(d+1) {
				v.errorf("foundation %d: %s at depth %d, want rank %s", i+1, c.Card, d, card.Rank(d+1))
			}
			if c.Card.Suit != p.Cards[0].Card.Suit {
				v.errorf("foundation %d: %s breaks the %s suit", i+1, c.Card, p.Cards[0].Card.Suit)
			}
			if c.Selectable {
				v.errorf("foundation %d: %s is selectable", i+1, c.Card)
			}
		}
	}
}

// validateTableau checks hidden prefixes and face-up runs
func (v *Validator) validateTableau() {
	for i, p := range v.Snapshot.Tableau {
		faceUp := false
		for d, c := range p.Cards {
			if c.FaceUp {
				faceUp = true
			} else if faceUp {
				v.errorf("column %d: hidden %s lies on a face-up card", i+1, c.Card)
			}
			if d == 0 {
				continue
			}
			prev := p.Cards[d-1]
			if prev.FaceUp && c.FaceUp {
				if c.Card.Rank+1 != prev.Card.Rank {
					v.errorf("column %d: %s does not follow %s by rank", i+1, c.Card, prev.Card)
				}
				if c.Card.Color() == prev.Card.Color() {
					v.errorf("column %d: %s repeats the colour of %s", i+1, c.Card, prev.Card)
				}
			}
		}
		if len(p.Cards) > 0 {
			if top, _ := p.Top(); !top.FaceUp || top.Placement != board.Frontier {
				v.errorf("column %d: top card %s is not a face-up frontier", i+1, top.Card)
			}
		}
	}
}

// validateSelection checks the state flags agree with each other
func (v *Validator) validateSelection() {
	s := v.Snapshot
	switch s.State {
	case board.Idle:
		if s.Selection != nil {
			v.errorf("idle board carries a selection of %s", s.Selection.Source)
		}
		if !s.CanDraw {
			v.errorf("idle board refuses to draw")
		}
	case board.Selecting:
		if s.Selection == nil {
			v.errorf("selecting board has no selection")
			return
		}
		if s.CanDraw {
			v.errorf("selecting board allows drawing")
		}
		dests := s.Selection.Destinations
		if len(dests) == 0 || dests[len(dests)-1] != s.Selection.Cancel() {
			v.errorf("selection of %s does not end with its cancel slot", s.Selection.Source)
		} else if len(dests) == 1 {
			v.warnf("%s has nowhere to go", s.Selection.Source)
		}
	}
}
