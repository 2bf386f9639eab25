package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/render"
)

var (
	configPath string
	verbose    bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Klondike solitaire in the terminal",
	Long: `Klondike is a terminal front end for a Klondike solitaire rules engine.
Play a game, print a seeded deal, or check the engine against its invariants with random play.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/klondike/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every board transition")

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig honours --config
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadConfigFrom(configPath)
	}
	return config.LoadConfig()
}

func activeConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

// newLogger builds the pterm-backed slog logger. --verbose forces debug.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(lvl)).WithWriter(w))
	return slog.New(handler), nil
}

func ptermLevel(lvl slog.Level) pterm.LogLevel {
	switch {
	case lvl <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case lvl <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case lvl <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// setup loads the config, logger and renderer every game command needs
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *render.Renderer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, err
	}

	opts, err := render.OptionsFor(cfg, os.Stdout)
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.OutOrStdout() != io.Writer(os.Stdout) && cfg.Color != config.ColorAlways {
		opts.Color = false
	}
	if !opts.Color {
		pterm.DisableColor()
	}
	return cfg, logger, render.New(opts), nil
}
