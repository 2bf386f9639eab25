package validator

import (
	"strings"
	"testing"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

func validate(t *testing.T, snap board.Snapshot) ValidationResults {
	t.Helper()
	res, err := NewValidator(snap).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return res
}

func TestValidateRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		b := board.Deal(deck.NewRand(seed))
		rng := deck.NewRand(seed + 100)
		for step := 0; step < 300; step++ {
			if res := validate(t, b.Snapshot()); !res.OK() {
				t.Fatalf("seed %d step %d: %v", seed, step, res.Errors)
			}
			moves := b.Moves()
			if len(moves) == 0 || rng.IntN(2) == 0 {
				if _, err := b.Draw(); err != nil {
					t.Fatal(err)
				}
				continue
			}
			if _, err := b.Apply(moves[rng.IntN(len(moves))]); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestValidateSelecting(t *testing.T) {
	b := board.Deal(deck.NewRand(3))
	top, _ := b.Snapshot().Tableau[0].Top()
	if _, err := b.SelectSource(top.Card.ID); err != nil {
		t.Fatal(err)
	}
	if res := validate(t, b.Snapshot()); !res.OK() {
		t.Fatalf("selecting board reported broken: %v", res.Errors)
	}
}

func TestValidateCatchesBrokenSnapshots(t *testing.T) {
	twoH, err := card.New(card.Hearts, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		tamper func(s *board.Snapshot)
		want   string
	}{
		{
			name: "duplicate card",
			tamper: func(s *board.Snapshot) {
				s.Stock.Cards[0].Card = s.Stock.Cards[1].Card
			},
			want: "appears 2 times",
		},
		{
			name: "exposed stock",
			tamper: func(s *board.Snapshot) {
				s.Stock.Cards[3].FaceUp = true
			},
			want: "stock card",
		},
		{
			name: "foundation without ace",
			tamper: func(s *board.Snapshot) {
				s.Foundations[0].Cards = []board.CardView{{Card: twoH, Placement: board.FoundationTop, FaceUp: true}}
			},
			want: "want rank A",
		},
		{
			name: "hidden column top",
			tamper: func(s *board.Snapshot) {
				s.Tableau[0].Cards[0].FaceUp = false
				s.Tableau[0].Cards[0].Placement = board.Hidden
			},
			want: "not a face-up frontier",
		},
		{
			name: "hidden card on face-up card",
			tamper: func(s *board.Snapshot) {
				s.Tableau[6].Cards[0].FaceUp = true
			},
			want: "lies on a face-up card",
		},
		{
			name: "idle board refusing to draw",
			tamper: func(s *board.Snapshot) {
				s.CanDraw = false
			},
			want: "refuses to draw",
		},
		{
			name: "selecting without selection",
			tamper: func(s *board.Snapshot) {
				s.State = board.Selecting
				s.CanDraw = false
			},
			want: "has no selection",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := board.Deal(deck.NewRand(5)).Snapshot()
			tt.tamper(&snap)
			res := validate(t, snap)
			if res.OK() {
				t.Fatalf("tampered snapshot passed")
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Fatalf("errors %q do not mention %q", res.Errors, tt.want)
			}
		})
	}
}

func TestValidateRun(t *testing.T) {
	snap := board.Deal(deck.NewRand(9)).Snapshot()
	col := &snap.Tableau[1]
	under := col.Cards[0]
	under.FaceUp = true
	under.Placement = board.RunMember
	col.Cards[0] = under
	// Column 2 now shows two cards, which only form a run if the deal lined them up.
	prev, next := col.Cards[0].Card, col.Cards[1].Card
	res := validate(t, snap)
	legal := next.Rank+1 == prev.Rank && next.Color() != prev.Color()
	if res.OK() != legal {
		t.Fatalf("run %s,%s: OK() = %v, errors %v", prev, next, res.OK(), res.Errors)
	}
}

func TestValidateShape(t *testing.T) {
	snap := board.Deal(deck.NewRand(1)).Snapshot()
	snap.Tableau = snap.Tableau[:board.NumColumns-1]
	if _, err := NewValidator(snap).Validate(); err == nil {
		t.Fatalf("short tableau accepted")
	}
}
