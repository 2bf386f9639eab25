package board

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arcanaland/klondike/internal/card"
)

// fixture is the YAML form of a Layout. Cards are named ("AS", "10H").
// Cards the fixture does not mention are slid face down under column Spill.
type fixture struct {
	Stock       []string        `yaml:"stock"`
	Waste       []string        `yaml:"waste"`
	Foundations [][]string      `yaml:"foundations"`
	Tableau     []fixtureColumn `yaml:"tableau"`
	Spill       int             `yaml:"spill"`
}

type fixtureColumn struct {
	Hidden []string `yaml:"hidden"`
	Up     []string `yaml:"up"`
}

func loadFixture(t *testing.T, name string) *Board {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name+".yaml"))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("parse fixture %s: %v", name, err)
	}

	used := make(map[card.ID]bool)
	ids := func(names []string) []card.ID {
		out := make([]card.ID, 0, len(names))
		for _, n := range names {
			c, err := card.Parse(n)
			if err != nil {
				t.Fatalf("fixture %s: %v", name, err)
			}
			used[c.ID] = true
			out = append(out, c.ID)
		}
		return out
	}

	l := Layout{
		Stock:   ids(f.Stock),
		Waste:   ids(f.Waste),
		Tableau: make([]Column, NumColumns),
	}
	for _, pile := range f.Foundations {
		l.Foundations = append(l.Foundations, ids(pile))
	}
	for i, c := range f.Tableau {
		l.Tableau[i] = Column{Hidden: ids(c.Hidden), Up: ids(c.Up)}
	}

	var rest []card.ID
	for _, c := range card.All() {
		if !used[c.ID] {
			rest = append(rest, c.ID)
		}
	}
	spill := &l.Tableau[f.Spill]
	if len(spill.Up) == 0 && len(rest) > 0 {
		t.Fatalf("fixture %s: spill column %d needs a face-up card", name, f.Spill+1)
	}
	spill.Hidden = append(rest, spill.Hidden...)

	b, err := New(l)
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return b
}

func mustCard(t *testing.T, name string) card.ID {
	t.Helper()
	c, err := card.Parse(name)
	if err != nil {
		t.Fatalf("card %q: %v", name, err)
	}
	return c.ID
}

func names(ids []card.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
