// slither-gui runs slither in a desktop window where the real mouse cursor
// steers the serpent. Scores share the database used by the terminal version.
//
// Usage:
//
//	slither-gui [--difficulty hard] [--config ./slither.yaml] [--seed 42]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/logging"
	"github.com/vovakirdan/tui-slither/internal/platform/gui"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither-gui",
	Short: "Slither in a desktop window",
	Long: `Open slither in a desktop window.

Controls:
  Mouse          - Steer
  Click/Enter    - Start, resume
  P              - Pause
  Esc            - Pause while playing, otherwise back to the title
  R              - Restart (after game over)
  Q              - Quit`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.slither/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	slither.SetLogger(logger)

	slither.SetConfigPath(flagConfig)
	slither.SetDifficultyPreset(flagDifficulty)
	game := slither.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	return gui.Run(game, store, cfg, logger)
}

// openLogger logs to stderr unless --log-file is set; the window leaves the
// terminal free.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return logging.OpenFile(flagLogFile, "slither-gui", flagLogLevel)
	}
	logger := logging.New(os.Stderr, "slither-gui")
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(lvl)
	return logger, io.NopCloser(nil), nil
}
