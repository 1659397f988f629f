package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-launch/internal/platform/tui"
	"github.com/vovakirdan/egg-launch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Esc during a game returns to the menu.

Examples:
  egglaunch menu
  egglaunch menu --fps 30
  egglaunch menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGames(); err != nil {
		fail("%v", err)
	}

	logger, closeLog := openLogFile()
	defer closeLog()

	svc, closeServices := openServices(logger)
	defer closeServices()

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(svc.Store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(svc.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, svc, cfg)
		if err != nil {
			logger.Error("game failed", "game", result.GameID, "error", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
