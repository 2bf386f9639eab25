package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/render"
)

// ErrQuit is returned by Exec when the player asks to leave
var ErrQuit = errors.New("quit")

const helpText = `commands:
  d, draw              turn over the next stock card
  s, select <card>     pick up a card (and everything on it)
  t, to <slot|card>    put the selected card on f1-f4, t1-t7, or a pile's top card
  <card>               select a card, or move the selection onto it
  c, cancel            put the selected card back
  m, moves             list the legal moves
  b, board             redraw the board
  h, help              show this help
  q, quit              leave the game
cards are named like AS, 10H, qd or 7♣`

// Session runs commands against one board and writes what the player sees
type Session struct {
	Board    *board.Board
	Renderer *render.Renderer
	Out      io.Writer
	Logger   *slog.Logger
}

func NewSession(b *board.Board, r *render.Renderer, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{Board: b, Renderer: r, Out: out, Logger: logger}
}

// Start draws the opening board
func (s *Session) Start() error {
	return s.Renderer.Board(s.Out, s.Board.Snapshot())
}

// ExecLine parses and runs one line
func (s *Session) ExecLine(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}
	return s.Exec(cmd)
}

// Exec runs one command. Rejected moves leave the board as it was and are
// returned as errors; the session stays usable.
func (s *Session) Exec(cmd Command) error {
	s.Logger.Debug("command", "kind", cmd.Kind)

	switch cmd.Kind {
	case None:
		return nil
	case Quit:
		return ErrQuit
	case Help:
		_, err := fmt.Fprintln(s.Out, helpText)
		return err
	case Show:
		return s.Renderer.Board(s.Out, s.Board.Snapshot())
	case Moves:
		_, err := fmt.Fprintln(s.Out, s.Renderer.Moves(s.Board.Moves()))
		return err
	case Draw:
		snap, err := s.Board.Draw()
		if err != nil {
			return err
		}
		return s.Renderer.Board(s.Out, snap)
	case Cancel:
		snap, err := s.Board.Cancel()
		if err != nil {
			return err
		}
		return s.Renderer.Board(s.Out, snap)
	case Select:
		return s.selectSource(cmd)
	case Pick:
		if s.Board.State() == board.Idle {
			return s.selectSource(cmd)
		}
		return s.moveTo(Command{Kind: To, Card: cmd.Card, ByCard: true})
	case To:
		return s.moveTo(cmd)
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownCommand, cmd.Kind)
	}
}

func (s *Session) selectSource(cmd Command) error {
	if _, err := s.Board.SelectSource(cmd.Card.ID); err != nil {
		return err
	}
	return s.Renderer.Board(s.Out, s.Board.Snapshot())
}

func (s *Session) moveTo(cmd Command) error {
	if s.Board.State() != board.Selecting {
		return fmt.Errorf("%w: select a card first", board.ErrInvalidStateTransition)
	}
	target, err := cmd.Destination(s.Board)
	if err != nil {
		return err
	}
	snap, err := s.Board.ChooseDestination(target)
	if err != nil {
		return err
	}
	return s.Renderer.Board(s.Out, snap)
}
