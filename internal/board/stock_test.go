package board

import (
	"reflect"
	"testing"

	"github.com/arcanaland/klondike/internal/deck"
)

func TestDrawAndRecycle(t *testing.T) {
	b := loadFixture(t, "draw")

	steps := []struct {
		stock []string
		waste []string
		top   string
	}{
		{stock: []string{"2S"}, waste: []string{"5H"}, top: "5H"},
		{stock: []string{}, waste: []string{"5H", "2S"}, top: "2S"},
		// Stock is listed bottom first: [2S 5H] is [5H 2S] read from the top.
		{stock: []string{"2S", "5H"}, waste: []string{}},
	}
	for i, step := range steps {
		snap, err := b.Draw()
		if err != nil {
			t.Fatalf("draw %d: %v", i+1, err)
		}
		l := b.Layout()
		if got := names(l.Stock); !reflect.DeepEqual(got, step.stock) {
			t.Fatalf("draw %d: stock = %v, want %v", i+1, got, step.stock)
		}
		if got := names(l.Waste); !reflect.DeepEqual(got, step.waste) {
			t.Fatalf("draw %d: waste = %v, want %v", i+1, got, step.waste)
		}
		top, ok := snap.Waste.Top()
		if step.top == "" {
			if ok {
				t.Fatalf("draw %d: waste shows %s, want empty", i+1, top.Card)
			}
			continue
		}
		if !ok || top.Card.String() != step.top || top.Placement != WasteTop || !top.Selectable {
			t.Fatalf("draw %d: waste top = %+v, want selectable %s", i+1, top, step.top)
		}
		for _, v := range snap.Waste.Cards[:len(snap.Waste.Cards)-1] {
			if v.Placement != WasteCovered || v.Selectable {
				t.Fatalf("draw %d: covered waste card %s is %v", i+1, v.Card, v.Placement)
			}
		}
	}

	// The next pass repeats the first one.
	if _, err := b.Draw(); err != nil {
		t.Fatal(err)
	}
	if got := names(b.Layout().Waste); !reflect.DeepEqual(got, []string{"5H"}) {
		t.Fatalf("second pass drew %v, want [5H]", got)
	}
}

func TestDrawRoundTrip(t *testing.T) {
	b := Deal(deck.NewRand(11))
	initial := b.Layout().Stock

	draws := 0
	for len(b.Layout().Stock) > 0 {
		if _, err := b.Draw(); err != nil {
			t.Fatal(err)
		}
		draws++
		if draws > len(initial) {
			t.Fatalf("stock did not run out after %d draws", draws)
		}
	}
	waste := b.Layout().Waste
	if len(waste) != len(initial) {
		t.Fatalf("waste holds %d cards, want %d", len(waste), len(initial))
	}

	if _, err := b.Draw(); err != nil {
		t.Fatal(err)
	}
	l := b.Layout()
	if len(l.Waste) != 0 {
		t.Fatalf("waste not empty after recycle: %v", names(l.Waste))
	}
	for i := range waste {
		if l.Stock[i] != waste[len(waste)-1-i] {
			t.Fatalf("recycled stock is not the reversed waste")
		}
	}
	if !reflect.DeepEqual(l.Stock, initial) {
		t.Fatalf("recycled stock %v differs from the dealt stock %v", names(l.Stock), names(initial))
	}
}

func TestDrawWithNothingLeft(t *testing.T) {
	b := loadFixture(t, "run_move")
	before := b.Snapshot()
	snap, err := b.Draw()
	if err != nil {
		t.Fatalf("Draw on empty stock and waste: %v", err)
	}
	if !reflect.DeepEqual(before, snap) {
		t.Fatalf("Draw on empty stock and waste changed the board")
	}
}

func TestStockCardsAreFaceDown(t *testing.T) {
	snap := Deal(deck.NewRand(4)).Snapshot()
	for _, v := range snap.Stock.Cards {
		if v.FaceUp || v.Selectable || v.Placement != StockCard {
			t.Fatalf("stock card %s exposed: %+v", v.Card, v)
		}
	}
	if !snap.CanDraw {
		t.Fatalf("CanDraw false on an idle board")
	}
}
