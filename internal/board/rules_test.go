package board

import (
	"reflect"
	"testing"

	"github.com/arcanaland/klondike/internal/card"
)

func pt(t *testing.T, name string) pileTop {
	t.Helper()
	if name == "" {
		return pileTop{empty: true}
	}
	return pileTop{card: mustCard(t, name).Card()}
}

func TestFoundationAccepts(t *testing.T) {
	tests := []struct {
		name      string
		top       string
		src       string
		placement Placement
		want      bool
	}{
		{name: "next rank same suit", top: "4H", src: "5H", placement: Frontier, want: true},
		{name: "from waste", top: "4H", src: "5H", placement: WasteTop, want: true},
		{name: "wrong suit", top: "4H", src: "5D", placement: Frontier, want: false},
		{name: "skips a rank", top: "4H", src: "6H", placement: Frontier, want: false},
		{name: "same rank", top: "4H", src: "4H", placement: Frontier, want: false},
		{name: "run member", top: "4H", src: "5H", placement: RunMember, want: false},
		{name: "ace on empty", top: "", src: "AC", placement: Frontier, want: true},
		{name: "two on empty", top: "", src: "2C", placement: Frontier, want: false},
		{name: "ace run member on empty", top: "", src: "AS", placement: RunMember, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foundationAccepts(pt(t, tt.top), mustCard(t, tt.src).Card(), tt.placement); got != tt.want {
				t.Fatalf("foundationAccepts(%q, %s, %v) = %v, want %v", tt.top, tt.src, tt.placement, got, tt.want)
			}
		})
	}
}

func TestColumnAccepts(t *testing.T) {
	tests := []struct {
		name string
		top  string
		src  string
		want bool
	}{
		{name: "red on black", top: "8S", src: "7H", want: true},
		{name: "black on red", top: "8H", src: "7S", want: true},
		{name: "same colour", top: "8S", src: "7C", want: false},
		{name: "same rank", top: "8S", src: "8H", want: false},
		{name: "going up", top: "7S", src: "8H", want: false},
		{name: "king on empty", top: "", src: "KD", want: true},
		{name: "queen on empty", top: "", src: "QD", want: false},
		{name: "ace on king", top: "KS", src: "AH", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnAccepts(pt(t, tt.top), mustCard(t, tt.src).Card()); got != tt.want {
				t.Fatalf("columnAccepts(%q, %s) = %v, want %v", tt.top, tt.src, got, tt.want)
			}
		})
	}
}

// An Ace can never be a run member in a reachable board. The foundation rule
// still refuses it if one ever were.
func TestAceRunMemberNeverTargetsFoundation(t *testing.T) {
	aceS := mustCard(t, "AS").Card()
	from := Location{Zone: Tableau, Index: 0, Depth: 3, Placement: RunMember}
	foundations := []pileTop{{empty: true}, {empty: true}, {empty: true}, {empty: true}}
	columns := make([]pileTop, NumColumns)
	for i := range columns {
		columns[i] = pileTop{card: card.ID(51).Card()}
	}

	got := legalTargets(aceS, from, foundations, columns)
	if !reflect.DeepEqual(got, []Target{ColumnTarget(0)}) {
		t.Fatalf("legalTargets = %v, want only the cancel slot", got)
	}

	from.Placement = Frontier
	got = legalTargets(aceS, from, foundations, columns)
	if len(got) != NumFoundations+1 {
		t.Fatalf("frontier ace targets = %v, want every empty foundation", got)
	}
}

func TestLegalTargetsSkipsOwnColumn(t *testing.T) {
	src := mustCard(t, "7S").Card()
	from := Location{Zone: Tableau, Index: 2, Placement: Frontier}
	columns := make([]pileTop, NumColumns)
	for i := range columns {
		columns[i] = pt(t, "8H")
	}
	got := legalTargets(src, from, make([]pileTop, NumFoundations), columns)
	for _, target := range got[:len(got)-1] {
		if target == ColumnTarget(2) {
			t.Fatalf("own column offered as destination: %v", got)
		}
	}
	if got[len(got)-1] != ColumnTarget(2) {
		t.Fatalf("last target = %v, want the cancel slot", got[len(got)-1])
	}
}

func TestValidRun(t *testing.T) {
	ids := func(ns ...string) []card.ID {
		out := make([]card.ID, len(ns))
		for i, n := range ns {
			out[i] = mustCard(t, n)
		}
		return out
	}
	if !validRun(ids("KS", "QH", "JC", "10D")) {
		t.Fatalf("valid run rejected")
	}
	if !validRun(nil) || !validRun(ids("5H")) {
		t.Fatalf("trivial runs rejected")
	}
	if validRun(ids("KS", "QC")) {
		t.Fatalf("same colour run accepted")
	}
	if validRun(ids("KS", "JH")) {
		t.Fatalf("gapped run accepted")
	}
	if !validFoundation(ids("AD", "2D", "3D")) || validFoundation(ids("AD", "2H")) || validFoundation(ids("2D")) {
		t.Fatalf("validFoundation wrong")
	}
}
