package board

import "github.com/arcanaland/klondike/internal/card"

// pileTop is what a destination pile shows to an incoming card
type pileTop struct {
	card  card.Card
	empty bool
}

// foundationAccepts reports whether src, sitting in placement p, may be put
// on a foundation showing top. Only single cards go to foundations.
func foundationAccepts(top pileTop, src card.Card, p Placement) bool {
	if p == RunMember {
		return false
	}
	if top.empty {
		return src.Rank == card.Ace
	}
	return top.card.Suit == src.Suit && top.card.Rank+1 == src.Rank
}

// columnAccepts reports whether src (alone or heading a run) may be put on a
// tableau column showing top
func columnAccepts(top pileTop, src card.Card) bool {
	if top.empty {
		return src.Rank == card.King
	}
	return top.card.Rank == src.Rank+1 && top.card.Color() != src.Color()
}

// legalTargets lists every destination of src at from: accepting foundations
// in order, then accepting columns other than its own, then its own slot,
// which cancels the selection.
func legalTargets(src card.Card, from Location, foundations, columns []pileTop) []Target {
	targets := make([]Target, 0, len(foundations)+len(columns)+1)
	for i, f := range foundations {
		if foundationAccepts(f, src, from.Placement) {
			targets = append(targets, FoundationTarget(i))
		}
	}
	for i, c := range columns {
		if from.Zone == Tableau && from.Index == i {
			continue
		}
		if columnAccepts(c, src) {
			targets = append(targets, ColumnTarget(i))
		}
	}
	return append(targets, from.Slot())
}

// validRun reports whether ids form a face-up tableau run: strictly
// descending by one with alternating colours
func validRun(ids []card.ID) bool {
	for i := 1; i < len(ids); i++ {
		prev, next := ids[i-1].Card(), ids[i].Card()
		if next.Rank+1 != prev.Rank || next.Color() == prev.Color() {
			return false
		}
	}
	return true
}

// validFoundation reports whether ids form a foundation: one suit, ascending
// by one from the Ace
func validFoundation(ids []card.ID) bool {
	for i, id := range ids {
		c := id.Card()
		if c.Rank != card.Rank(i+1) || c.Suit != ids[0].Card().Suit {
			return false
		}
	}
	return true
}
