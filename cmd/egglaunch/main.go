// egglaunch is a vertical arcade climb played in the terminal: launch the
// egg from perch to perch and get it back into the nest at the top.
//
// Usage:
//
//	egglaunch play [egg|egg_random]  - Play a game
//	egglaunch menu                   - Pick a game interactively
//	egglaunch list                   - List available games
//	egglaunch scores [game]          - Show recent and best round times
//	egglaunch level --seed N         - Print a generated level
//	egglaunch simulate               - Run a scripted headless session
//	egglaunch settings [show|set]    - Show or change saved preferences
//	egglaunch serve                  - Start the SSH server
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - Level seed (0 = config seed)
//	--db <path>           - Scores database (default: ~/.egglaunch/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination while the TUI owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-launch/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/egg-launch/internal/games/egg"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagTimesDir   string
	flagRetain     int
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "egglaunch",
	Short: "Egg Launch - climb back to the nest in your terminal",
	Long: `Egg Launch is a vertical arcade climb. The egg starts in the nest at the
top of the tree, falls to the ground, and has to be launched from perch to
perch until it lands back in the nest. Every round is timed.

Available commands:
  play      - Play a game directly
  menu      - Interactive game picker
  list      - Show all available games
  scores    - Recent and best round times
  level     - Print the branches and perches of a seed
  simulate  - Headless scripted run, prints the final snapshot
  settings  - Show or change saved preferences
  serve     - Start SSH server for remote play

Examples:
  egglaunch play
  egglaunch play egg_random --difficulty hard
  egglaunch level --seed 42
  egglaunch simulate --frames 600 --script "0:release,400:charge,430:launch"
  egglaunch serve --ssh :2222`,
	PersistentPreRun: loadPreferences,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Level seed (0 = use the config's seed)")
	pf.StringVar(&flagDBPath, "db", "~/.egglaunch/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.egglaunch/egglaunch.log", "Log file used while the game owns the terminal")
	pf.StringVar(&flagTimesDir, "times-dir", "~/.egglaunch/times", "Directory for plain-text round time logs (empty disables)")
	pf.IntVar(&flagRetain, "retain", storage.DefaultRetain, "Round times kept per game")
	pf.BoolVar(&flagSound, "sound", true, "Play sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}
