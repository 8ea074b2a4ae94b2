// slither is a pointer-chasing serpent game for the terminal.
//
// Usage:
//
//	slither                  - Start the menu (play, high scores)
//	slither play             - Play directly, skipping the menu
//	slither serve            - Start SSH server for remote play
//	slither scores           - Show the run history
//	slither list             - List registered games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.slither/scores.db)
//	--log-file <path>   - Write logs to a file (the terminal is busy with the game)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Slither - steer a hungry serpent with your mouse",
	Long: `Slither is a terminal arcade game. A serpent chases your mouse pointer,
grows as it eats and loses a life when it hits a wall, a block or itself.

Running slither with no command opens the menu.

Available commands:
  play     - Play directly
  serve    - Start SSH server for remote play
  scores   - View the run history
  list     - Show registered games

Examples:
  slither
  slither play --difficulty hard
  slither serve --ssh :2222
  slither scores --difficulty normal`,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging points the default logger and the game logger at --log-file.
// Without a log file interactive commands log nowhere.
func setupLogging(_ *cobra.Command, _ []string) error {
	logger, closer, err := logging.OpenFile(flagLogFile, "slither", flagLogLevel)
	if err != nil {
		return err
	}
	logCloser = closer
	log.SetDefault(logger)
	slither.SetLogger(logger)
	return nil
}
