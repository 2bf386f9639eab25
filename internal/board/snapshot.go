package board

import "github.com/arcanaland/klondike/internal/card"

// Snapshot is a self-contained copy of everything a renderer needs
type Snapshot struct {
	State       State
	Selection   *Selection // nil when idle
	CanDraw     bool
	Stock       Pile
	Waste       Pile
	Foundations []Pile
	Tableau     []Pile
}

// Pile is one zone slot of a snapshot
type Pile struct {
	Slot        Target
	Cards       []CardView // bottom first
	Destination bool       // the selected card may be moved here
}

// Top returns the top card of the pile
func (p Pile) Top() (CardView, bool) {
	if len(p.Cards) == 0 {
		return CardView{}, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// CardView is one card of a snapshot
type CardView struct {
	Card       card.Card
	Placement  Placement
	FaceUp     bool
	Selectable bool // may be passed to SelectSource now
	Selected   bool // is the pending source
}

// Snapshot copies the current board state
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		State:       b.State(),
		CanDraw:     b.CanDraw(),
		Foundations: make([]Pile, NumFoundations),
		Tableau:     make([]Pile, NumColumns),
	}
	if b.selection != nil {
		sel := b.selection.clone()
		s.Selection = &sel
	}

	s.Stock = b.pileView(Target{Zone: Stock}, b.stock, func(int) Placement { return StockCard })
	s.Waste = b.pileView(WasteTarget, b.waste, func(i int) Placement {
		return pilePlacement(Waste, i, len(b.waste))
	})
	for i, pile := range b.foundations {
		s.Foundations[i] = b.pileView(FoundationTarget(i), pile, func(d int) Placement {
			return pilePlacement(Foundation, d, len(pile))
		})
	}
	for i := range b.tableau {
		col := &b.tableau[i]
		s.Tableau[i] = b.pileView(ColumnTarget(i), col.cards, col.placement)
	}
	return s
}

func (b *Board) pileView(slot Target, ids []card.ID, placement func(int) Placement) Pile {
	p := Pile{
		Slot:  slot,
		Cards: make([]CardView, len(ids)),
	}
	if b.selection != nil && slot != b.selection.Cancel() {
		p.Destination = b.selection.Allows(slot)
	}
	for i, id := range ids {
		pl := placement(i)
		p.Cards[i] = CardView{
			Card:       id.Card(),
			Placement:  pl,
			FaceUp:     pl.FaceUp(),
			Selectable: b.selection == nil && pl.Movable(),
			Selected:   b.selection != nil && b.selection.Source == id,
		}
	}
	return p
}

// Cards returns every card of the snapshot, zone by zone
func (s Snapshot) Cards() []CardView {
	out := make([]CardView, 0, card.DeckSize)
	out = append(out, s.Stock.Cards...)
	out = append(out, s.Waste.Cards...)
	for _, p := range s.Foundations {
		out = append(out, p.Cards...)
	}
	for _, p := range s.Tableau {
		out = append(out, p.Cards...)
	}
	return out
}
