package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/platform/tui"
	"github.com/vovakirdan/tui-slither/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play slither",
	Long: `Start playing immediately.

Controls:
  Mouse          - Steer (the serpent chases the pointer)
  Click/Enter    - Start, resume
  P              - Pause
  Esc/B          - Pause while playing, otherwise back to the title
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 5 lives, lower top speed
  normal - 3 lives, speeds up as you eat
  hard   - 2 lives, faster start and steeper ramp
  fixed  - Speed never changes

Examples:
  slither play
  slither play --difficulty hard
  slither play --config ./my-slither.yaml
  slither play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Set config path and difficulty before creation
	slither.SetConfigPath(flagConfig)
	slither.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(slither.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
