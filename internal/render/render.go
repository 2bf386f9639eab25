// Package render draws board snapshots as text for a terminal.
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/config"
)

const (
	cellWidth    = 6
	defaultWidth = 80
	// wide enough to fan the waste
	fanWidth = 60
	fanCards = 3
)

// Theme is the parsed form of config.Theme
type Theme struct {
	Red       colorful.Color
	Black     colorful.Color
	Highlight colorful.Color
	Selected  colorful.Color
}

// ParseTheme parses the hex colours of a config theme
func ParseTheme(t config.Theme) (Theme, error) {
	var th Theme
	for _, c := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"red", t.Red, &th.Red},
		{"black", t.Black, &th.Black},
		{"highlight", t.Highlight, &th.Highlight},
		{"selected", t.Selected, &th.Selected},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", c.name, err)
		}
		*c.dst = parsed
	}
	return th, nil
}

// Options control how a Renderer draws
type Options struct {
	Unicode bool
	Color   bool
	Width   int
	Theme   Theme
}

// OptionsFor builds Options from the config and the terminal behind out
func OptionsFor(cfg *config.Config, out *os.File) (Options, error) {
	th, err := ParseTheme(cfg.Theme)
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Unicode: cfg.UnicodeSuits,
		Theme:   th,
		Width:   defaultWidth,
	}

	tty := term.IsTerminal(int(out.Fd()))
	switch cfg.Color {
	case config.ColorAlways:
		opts.Color = true
	case config.ColorNever:
		opts.Color = false
	default:
		opts.Color = tty && os.Getenv("NO_COLOR") == ""
	}
	if tty {
		if width, _, err := term.GetSize(int(out.Fd())); err == nil && width > 0 {
			opts.Width = width
		}
	}
	return opts, nil
}

// Renderer draws snapshots
type Renderer struct {
	opts  Options
	label *colorize.Color
	faint *colorize.Color
	warn  *colorize.Color
}

func New(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	r := &Renderer{
		opts:  opts,
		label: colorize.New(colorize.FgCyan),
		faint: colorize.New(colorize.FgHiBlack),
		warn:  colorize.New(colorize.FgYellow),
	}
	for _, c := range []*colorize.Color{r.label, r.faint, r.warn} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Board writes the whole snapshot to w
func (r *Renderer) Board(w io.Writer, s board.Snapshot) error {
	var b strings.Builder

	b.WriteString(r.topRow(s))
	b.WriteString("\n\n")

	// Column headers
	for i := range s.Tableau {
		b.WriteString(r.pad(r.label.Sprintf("t%d", i+1), cellWidth))
	}
	b.WriteString("\n")

	depth := 0
	for _, p := range s.Tableau {
		depth = max(depth, len(p.Cards))
	}
	for row := 0; row < max(depth, 1); row++ {
		var line strings.Builder
		for _, p := range s.Tableau {
			switch {
			case row < len(p.Cards):
				line.WriteString(r.pad(r.cell(p.Cards[row], p.Destination && row == len(p.Cards)-1), cellWidth))
			case row == 0:
				line.WriteString(r.pad(r.empty(p.Destination), cellWidth))
			default:
				line.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.Status(s))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) topRow(s board.Snapshot) string {
	var b strings.Builder

	b.WriteString(r.label.Sprint("stock "))
	if top, ok := s.Stock.Top(); ok {
		b.WriteString(r.cell(top, false))
	} else {
		b.WriteString(r.empty(false))
	}
	b.WriteString(r.faint.Sprintf(" %-3d", len(s.Stock.Cards)))

	b.WriteString(r.label.Sprint("w "))
	shown := 1
	if r.opts.Width >= fanWidth {
		shown = fanCards
	}
	waste := s.Waste.Cards[max(0, len(s.Waste.Cards)-shown):]
	var fan strings.Builder
	if len(waste) == 0 {
		fan.WriteString(r.empty(false))
	}
	for i, v := range waste {
		if i > 0 {
			fan.WriteString(" ")
		}
		fan.WriteString(r.cell(v, false))
	}
	b.WriteString(r.pad(fan.String(), shown*cellWidth))

	for i, p := range s.Foundations {
		b.WriteString(r.label.Sprintf(" f%d ", i+1))
		if top, ok := p.Top(); ok {
			b.WriteString(r.cell(top, p.Destination))
		} else {
			b.WriteString(r.empty(p.Destination))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Status describes what the player may do next
func (r *Renderer) Status(s board.Snapshot) string {
	if s.Selection == nil {
		return r.faint.Sprint("select a card, or d to draw")
	}
	sel := s.Selection
	src := r.Card(sel.Source.Card())
	dests := sel.Destinations[:len(sel.Destinations)-1]
	if len(dests) == 0 {
		return r.warn.Sprintf("%s has nowhere to go", src) + r.faint.Sprint(" (c to cancel)")
	}
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = SlotName(d)
	}
	return fmt.Sprintf("%s %s %s", r.label.Sprint("move"), src,
		r.label.Sprint("to "))+strings.Join(names, ", ")+r.faint.Sprint(" (c to cancel)")
}

// Moves lists legal moves, one per line
func (r *Renderer) Moves(moves []board.Move) string {
	if len(moves) == 0 {
		return r.faint.Sprint("no moves, d to draw")
	}
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s", r.pad(r.Card(m.Source.Card()), 4), r.faint.Sprint("->"), SlotName(m.To))
	}
	return b.String()
}

// Card names a card in the configured style
func (r *Renderer) Card(c card.Card) string {
	if r.opts.Unicode {
		return c.Symbol()
	}
	return c.String()
}

// SlotName is the input name of a pile: f1..f4, t1..t7 or w
func SlotName(t board.Target) string {
	switch t.Zone {
	case board.Foundation:
		return fmt.Sprintf("f%d", t.Index+1)
	case board.Tableau:
		return fmt.Sprintf("t%d", t.Index+1)
	case board.Waste:
		return "w"
	default:
		return t.String()
	}
}

func (r *Renderer) cell(v board.CardView, destination bool) string {
	if !v.FaceUp {
		if r.opts.Unicode {
			return r.faint.Sprint("▒▒▒")
		}
		return r.faint.Sprint("###")
	}

	fg := r.opts.Theme.Black
	if v.Card.Color() == card.Red {
		fg = r.opts.Theme.Red
	}
	text := r.Card(v.Card)
	switch {
	case v.Selected:
		return r.paint(text, fg, r.opts.Theme.Selected, "*")
	case destination:
		return r.paint(text, fg, r.opts.Theme.Highlight, ">")
	}
	return r.paint(text, fg, nil, "")
}

func (r *Renderer) empty(destination bool) string {
	if destination {
		return r.paint("[ ]", r.opts.Theme.Black, r.opts.Theme.Highlight, ">")
	}
	return r.faint.Sprint("[ ]")
}

// paint wraps text in 24-bit colour codes. Without colour the mark is
// prefixed instead. bg may be nil.
func (r *Renderer) paint(text string, fg, bg color.Color, mark string) string {
	if !r.opts.Color {
		return mark + text
	}
	r1, g1, b1, _ := fg.RGBA()
	seq := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r1>>8, g1>>8, b1>>8)
	if bg != nil {
		r2, g2, b2, _ := bg.RGBA()
		seq += fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r2>>8, g2>>8, b2>>8)
	}
	return seq + text + "\x1b[0m"
}

// pad right-pads s to width visible columns
func (r *Renderer) pad(s string, width int) string {
	if n := VisibleWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// VisibleWidth is the terminal width of s without its escape sequences
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
