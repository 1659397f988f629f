package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-launch/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Preferences are defaults for flags you do not pass: sound, volume,
difficulty, the default game and the level seed.

Examples:
  egglaunch settings
  egglaunch settings set difficulty hard
  egglaunch settings set sound false`,
	Run: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print saved preferences",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Long:  "Change one preference. Keys: " + strings.Join(settings.Keys(), ", "),
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	p := prefsManager.Get()
	difficulty := p.Difficulty
	if difficulty == "" {
		difficulty = "(config)"
	}
	seed := "(config)"
	if p.Seed != 0 {
		seed = fmt.Sprint(p.Seed)
	}

	fmt.Printf("  %-10s  %v\n", "sound", p.SoundEnabled)
	fmt.Printf("  %-10s  %.2f\n", "volume", p.SoundVolume)
	fmt.Printf("  %-10s  %s\n", "difficulty", difficulty)
	fmt.Printf("  %-10s  %s\n", "game", p.Game)
	fmt.Printf("  %-10s  %s\n", "seed", seed)
	if !prefsManager.Persistent() {
		fmt.Println()
		fmt.Println("Preferences are not persistent: the data directory is unavailable.")
	}
}

func runSettingsSet(_ *cobra.Command, args []string) {
	if err := prefsManager.Set(args[0], args[1]); err != nil {
		fail("%v", err)
	}
	if err := prefsManager.Save(); err != nil {
		fail("%v", err)
	}
	fmt.Printf("%s = %s\n", args[0], args[1])
}
