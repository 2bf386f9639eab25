package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/board"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/validator"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Play random games and validate the board after every step",
	Long: `Check deals seeded games, plays random legal moves and draws, and validates the board after each step.
It verifies card conservation, foundation order, tableau runs and the selection state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, _, err := setup(cmd)
		if err != nil {
			return err
		}
		games, _ := cmd.Flags().GetInt("games")
		steps, _ := cmd.Flags().GetInt("steps")
		if games < 1 || steps < 0 {
			return fmt.Errorf("--games must be positive and --steps not negative")
		}
		seed := pickSeed(cmd, cfg)
		out := cmd.OutOrStdout()

		var warnings []string
		for g := 0; g < games; g++ {
			gameSeed := seed + uint64(g)
			b := board.Deal(deck.NewRand(gameSeed), board.WithLogger(logger))
			rng := deck.NewRand(gameSeed ^ 0xc1ec)

			for step := 0; step <= steps; step++ {
				if step > 0 {
					if err := playStep(b, rng); err != nil {
						return fmt.Errorf("game %d (seed %d) step %d: %w", g+1, gameSeed, step, err)
					}
				}

				results, err := validator.NewValidator(b.Snapshot()).Validate()
				if err != nil {
					return fmt.Errorf("validation error: %v", err)
				}
				if !results.OK() {
					pterm.Error.WithWriter(out).Printfln("Game %d (seed %d) broke after step %d with %d errors:", g+1, gameSeed, step, len(results.Errors))
					for i, e := range results.Errors {
						fmt.Fprintf(out, "%d. %s\n", i+1, e)
					}
					return fmt.Errorf("validation failed")
				}
				warnings = append(warnings, results.Warnings...)
			}
			logger.Info("game checked", "seed", gameSeed, "steps", steps)
		}

		pterm.Success.WithWriter(out).Printfln("%d games of %d steps from seed %d kept every invariant.", games, steps, seed)
		if len(warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}
		return nil
	},
}

// playStep makes one random legal move, or draws
func playStep(b *board.Board, rng *rand.Rand) error {
	moves := b.Moves()
	if len(moves) == 0 || rng.IntN(3) == 0 {
		_, err := b.Draw()
		return err
	}
	_, err := b.Apply(moves[rng.IntN(len(moves))])
	return err
}

func init() {
	checkCmd.Flags().Uint64("seed", 0, "seed of the first game (default: config seed, else random)")
	checkCmd.Flags().Int("games", 10, "number of games to play")
	checkCmd.Flags().Int("steps", 500, "moves and draws per game")
}
