package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-launch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, or the saved default game.

Games:
  egg         - The configured seed, the same level every time
  egg_random  - A fresh level for every round

Controls:
  Enter        - Drop the egg out of the nest
  Space        - Start charging, press again to launch
  I/Up/Click   - Kick the angle indicator upward
  Left/Right   - Launch direction
  T            - Teleport to the top perch (debug configs only)
  P            - Pause
  R            - New level
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More launch power, closer branches
  normal - The config as written
  hard   - Less launch power, wider gaps
  fixed  - The config as written

Examples:
  egglaunch play
  egglaunch play egg_random
  egglaunch play egg --seed 42 --difficulty easy
  egglaunch play --config ./my-egg.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := prefs.Game
	if len(args) == 1 {
		gameID = args[0]
	}

	if err := configureGames(); err != nil {
		fail("%v", err)
	}
	game := mustGame(gameID)

	logger, closeLog := openLogFile()
	defer closeLog()

	svc, closeServices := openServices(logger)
	_, err := tui.Run(game, svc, terminalConfig())
	closeServices()
	if err != nil {
		fail("running game: %v", err)
	}
}
