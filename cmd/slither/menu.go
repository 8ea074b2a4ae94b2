package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/platform/tui"
	"github.com/vovakirdan/tui-slither/internal/registry"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

// runMenu is the root command: menu -> difficulty -> game -> menu until quit.
func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, slither.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, slither.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case tui.MenuChoicePlay:
			preset, updated, selErr := tui.RunDifficultySelector(store, slither.GameID, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updated
			if preset == "" {
				continue
			}

			game, createErr := registry.Create(slither.GameID)
			if createErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
				return
			}
			if da, ok := game.(registry.DifficultyAware); ok {
				da.SetDifficulty(string(preset))
			}

			// Fresh seed per game unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			quit, runErr := tui.Run(game, store, cfg)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
			if quit {
				return
			}

		default:
			return
		}
	}
}

// openStore opens the scores database, continuing without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
