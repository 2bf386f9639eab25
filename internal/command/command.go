// Package command parses and runs the player's input lines.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/card"
)

var ErrUnknownCommand = errors.New("unknown command")

// Kind is what a command does
type Kind int

const (
	None Kind = iota
	Draw
	Select
	To
	Pick // a bare card name: select when idle, move onto it when selecting
	Cancel
	Moves
	Show
	Help
	Quit
)

var kindNames = [...]string{
	None:   "none",
	Draw:   "draw",
	Select: "select",
	To:     "to",
	Pick:   "pick",
	Cancel: "cancel",
	Moves:  "moves",
	Show:   "board",
	Help:   "help",
	Quit:   "quit",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed input line
type Command struct {
	Kind Kind
	// Card is set for Select, Pick and card-named destinations
	Card card.Card
	// Slot is set for destinations named f1..f4, t1..t7 or w
	Slot   board.Target
	ByCard bool
}

// Destination resolves the target of a To command against b
func (c Command) Destination(b *board.Board) (board.Target, error) {
	if c.ByCard {
		return b.TargetOf(c.Card.ID)
	}
	return c.Slot, nil
}

var verbs = map[string]Kind{
	"d": Draw, "draw": Draw,
	"s": Select, "select": Select,
	"t": To, "to": To,
	"c": Cancel, "cancel": Cancel,
	"m": Moves, "moves": Moves,
	"b": Show, "board": Show,
	"h": Help, "help": Help, "?": Help,
	"q": Quit, "quit": Quit, "exit": Quit,
}

// Parse reads one input line. Blank lines parse to None.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: None}, nil
	}

	kind, ok := verbs[fields[0]]
	if !ok {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
		}
		// A bare slot is a destination, a bare card is a pick
		if slot, ok := parseSlot(fields[0]); ok {
			return Command{Kind: To, Slot: slot}, nil
		}
		c, err := card.Parse(fields[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
		}
		return Command{Kind: Pick, Card: c}, nil
	}

	switch kind {
	case Select:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: select <card>")
		}
		c, err := card.Parse(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Select, Card: c}, nil
	case To:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: to <f1-f4|t1-t7|w|card>")
		}
		if slot, ok := parseSlot(fields[1]); ok {
			return Command{Kind: To, Slot: slot}, nil
		}
		c, err := card.Parse(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("no slot or card named %q", fields[1])
		}
		return Command{Kind: To, Card: c, ByCard: true}, nil
	default:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments", fields[0])
		}
		return Command{Kind: kind}, nil
	}
}

// parseSlot reads f1..f4, t1..t7 and w
func parseSlot(s string) (board.Target, bool) {
	if s == "w" || s == "waste" {
		return board.WasteTarget, true
	}
	if len(s) < 2 {
		return board.Target{}, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return board.Target{}, false
	}
	switch {
	case s[0] == 'f' && n >= 1 && n <= board.NumFoundations:
		return board.FoundationTarget(n - 1), true
	case s[0] == 't' && n >= 1 && n <= board.NumColumns:
		return board.ColumnTarget(n - 1), true
	}
	return board.Target{}, false
}
