package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-launch/internal/audio"
	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
	"github.com/vovakirdan/egg-launch/internal/games/egg"
	"github.com/vovakirdan/egg-launch/internal/platform/tui"
	"github.com/vovakirdan/egg-launch/internal/registry"
	"github.com/vovakirdan/egg-launch/internal/settings"
	"github.com/vovakirdan/egg-launch/internal/storage"
)

var (
	prefsManager *settings.Manager
	prefs        = settings.DefaultPreferences()
)

// loadPreferences reads saved preferences and uses them for every flag the
// user did not pass.
func loadPreferences(cmd *cobra.Command, _ []string) {
	m, err := settings.Open(newLogger(os.Stderr))
	if err != nil {
		newLogger(os.Stderr).Warn("preferences unavailable", "error", err)
	}
	prefsManager = m
	prefs = m.Get()

	flags := cmd.Flags()
	if !flags.Changed("seed") && prefs.Seed != 0 {
		flagSeed = prefs.Seed
	}
	if !flags.Changed("difficulty") && prefs.Difficulty != "" {
		flagDifficulty = prefs.Difficulty
	}
	if !flags.Changed("sound") {
		flagSound = prefs.SoundEnabled
	}
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "egglaunch",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile returns a logger writing to --log-file. The TUI owns the
// terminal, so on failure logs are dropped.
func openLogFile() (*log.Logger, func()) {
	path, err := storage.ExpandHome(flagLogFile)
	if err == nil && path != "" {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if err == nil {
				return newLogger(f), func() { f.Close() }
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	return newLogger(io.Discard), func() {}
}

// terminalConfig builds the runtime config from the flags and the current
// terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGames passes the config path and preset to the egg package and
// checks that the config loads.
func configureGames() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (valid: easy, normal, hard, fixed)", flagDifficulty)
	}
	egg.SetConfigPath(flagConfig)
	egg.SetDifficultyPreset(flagDifficulty)
	if _, err := egg.LoadConfig(); err != nil {
		return err
	}
	return nil
}

// mustGame resolves a game ID or exits with a hint.
func mustGame(id string) registry.Game {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'egglaunch list' to see available games.")
		os.Exit(1)
	}
	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game
}

// openServices opens score storage and audio for an interactive session.
// Storage and audio failures are logged and the game runs without them.
func openServices(logger *log.Logger) (tui.Services, func()) {
	svc := tui.Services{
		TextDir: flagTimesDir,
		Retain:  flagRetain,
		Sink:    audio.Nop{},
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		store.SetRetain(flagRetain)
		svc.Store = store
	}

	if flagSound {
		player := audio.NewPlayer(prefs.SoundVolume)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			svc.Sink = player
		}
	}

	return svc, func() {
		svc.Sink.Close()
		if svc.Store != nil {
			svc.Store.Close()
		}
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, "Error: "+strings.TrimSuffix(msg, "\n"))
	os.Exit(1)
}
