package cmd

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/command"
	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/deck"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Klondike",
	Long: `Play deals a game and reads commands until you quit.
Type h at the prompt for the list of commands. Lines can also be piped in on stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, r, err := setup(cmd)
		if err != nil {
			return err
		}

		seed := pickSeed(cmd, cfg)
		b := board.Deal(deck.NewRand(seed), board.WithLogger(logger))
		out := cmd.OutOrStdout()

		interactive := cmd.InOrStdin() == io.Reader(os.Stdin) && term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			if err := renderBanner(); err != nil {
				logger.Warn("banner not rendered", "error", err)
			}
		}
		pterm.Info.WithWriter(out).Printfln("Seed %d. Type h for help.", seed)

		s := command.NewSession(b, r, out, logger)
		if err := s.Start(); err != nil {
			return err
		}

		next := lineReader(cmd.InOrStdin(), interactive)
		for {
			line, err := next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}

			err = s.ExecLine(line)
			switch {
			case errors.Is(err, command.ErrQuit):
				return nil
			case err != nil:
				pterm.Error.WithWriter(out).Println(err)
			}
		}
	},
}

func renderBanner() error {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("K", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("londike", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// pickSeed prefers --seed, then the config, then a fresh random seed
func pickSeed(cmd *cobra.Command, cfg *config.Config) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return deck.RandomSeed()
}

// lineReader returns a function yielding input lines until io.EOF
func lineReader(in io.Reader, interactive bool) func() (string, error) {
	if interactive {
		prompt := pterm.DefaultInteractiveTextInput.WithDefaultText(">")
		return func() (string, error) {
			return prompt.Show()
		}
	}

	scanner := bufio.NewScanner(in)
	return func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

func init() {
	playCmd.Flags().Uint64("seed", 0, "deal seed (default: config seed, else random)")
}
