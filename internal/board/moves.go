package board

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
)

// Move is one legal source/destination pair
type Move struct {
	Source card.ID
	To     Target
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.Source, m.To)
}

// Moves lists every move that SelectSource followed by ChooseDestination
// would accept from an idle board, cancellations excluded. Drawing is not
// listed.
func (b *Board) Moves() []Move {
	var moves []Move
	foundations, columns := b.foundationTops(), b.columnTops()

	add := func(id card.ID, from Location) {
		targets := legalTargets(id.Card(), from, foundations, columns)
		for _, t := range targets[:len(targets)-1] {
			moves = append(moves, Move{Source: id, To: t})
		}
	}

	if id, ok := top(b.waste); ok {
		add(id, Location{Zone: Waste, Depth: len(b.waste) - 1, Placement: WasteTop})
	}
	for c := range b.tableau {
		col := &b.tableau[c]
		for d := col.hidden; d < len(col.cards); d++ {
			add(col.cards[d], Location{Zone: Tableau, Index: c, Depth: d, Placement: col.placement(d)})
		}
	}
	return moves
}

// Apply selects m.Source and sends it to m.To in one step. A rejected
// destination leaves the board idle and unchanged.
func (b *Board) Apply(m Move) (Snapshot, error) {
	if _, err := b.SelectSource(m.Source); err != nil {
		return Snapshot{}, err
	}
	snap, err := b.ChooseDestination(m.To)
	if err != nil {
		b.selection = nil
		return Snapshot{}, err
	}
	return snap, nil
}
