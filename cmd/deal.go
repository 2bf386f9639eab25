package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/deck"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a fresh deal",
	Long:  `Deal shuffles a deck, lays out the board and prints it. The same seed always gives the same deal.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, r, err := setup(cmd)
		if err != nil {
			return err
		}

		seed := pickSeed(cmd, cfg)
		b := board.Deal(deck.NewRand(seed), board.WithLogger(logger))

		pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln("Seed %d", seed)
		return r.Board(cmd.OutOrStdout(), b.Snapshot())
	},
}

func init() {
	dealCmd.Flags().Uint64("seed", 0, "deal seed (default: config seed, else random)")
}
