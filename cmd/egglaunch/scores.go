package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-launch/internal/core"
	"github.com/vovakirdan/egg-launch/internal/storage"
)

var (
	flagLast int
	flagBest int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recent and best round times",
	Long: `Display the most recent round times (oldest first, newest last) and
the fastest rounds for a game. Without a database the plain-text time log
is read instead.

Examples:
  egglaunch scores
  egglaunch scores egg_random --last 20 --best 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLast, "last", 10, "Number of recent rounds to show")
	scoresCmd.Flags().IntVar(&flagBest, "best", 10, "Number of best rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := prefs.Game
	if len(args) == 1 {
		gameID = args[0]
	}
	title := mustGame(gameID).Title()

	var (
		recent []int64
		best   []storage.Record
	)

	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
		if recent, err = store.ForGame(gameID).ReadLastN(flagLast); err != nil {
			fail("reading recent rounds: %v", err)
		}
		if best, err = store.BestRuns(gameID, flagBest); err != nil {
			fail("reading best rounds: %v", err)
		}
	} else {
		if flagTimesDir == "" {
			fail("opening scores database: %v", err)
		}
		log, logErr := storage.OpenTextLog(filepath.Join(flagTimesDir, gameID+".txt"), 0)
		if logErr != nil {
			fail("opening scores database: %v", err)
		}
		if recent, err = log.ReadLastN(flagLast); err != nil {
			fail("reading %s: %v", log.Path(), err)
		}
	}

	fmt.Printf("Round Times - %s\n", title)
	fmt.Println()

	if len(recent) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'egglaunch play %s' and get the egg back into the nest!\n", gameID)
		return
	}

	fmt.Println("Recent (newest last):")
	for i, ms := range recent {
		fmt.Printf("  %-4d  %s\n", i+1, core.FormatDuration(ms))
	}

	if len(best) > 0 {
		fmt.Println()
		fmt.Println("Best:")
		fmt.Printf("  %-4s  %-9s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-9s  %s\n", "----", "----", "----")
		for i, r := range best {
			fmt.Printf("  %-4d  %-9s  %s\n", i+1, core.FormatDuration(r.DurationMs), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
