package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/lox/blackjack/internal/score"
)

type StatsCmd struct {
	globalFlags
}

func (c *StatsCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}

	rec := app.tracker.Record()

	fmt.Println("Current session")
	fmt.Printf("  Matches played: %d\n", rec.CurrentScore.MatchCount)
	fmt.Printf("  Cash:           $%d (started with $%d)\n", rec.CurrentScore.CurrentCash, rec.CurrentScore.StartCash)
	fmt.Printf("  Started:        %s\n", score.FormatDate(rec.CurrentScore.StartDate))
	fmt.Println()
	fmt.Println("All time")
	fmt.Printf("  Games:          %d\n", rec.TotalGames)
	fmt.Printf("  Matches:        %d\n", rec.TotalMatches)
	fmt.Printf("  Best score:     %d\n", rec.BestScore)
	fmt.Printf("  Average score:  %.1f\n", app.tracker.AverageScore())

	if len(rec.ScoreHistory) > 0 {
		fmt.Println()
		fmt.Println("Recent games")
		for i, entry := range rec.ScoreHistory {
			fmt.Printf("  %2d. score %-5d cash $%-5d %s  (%s)\n",
				i+1, entry.Score, entry.StartCash,
				score.FormatDate(entry.EndDate),
				score.FormatDuration(entry.DurationMS))
		}
	}

	if rec.CurrentScore.MatchCount > 0 {
		elapsed := time.Since(rec.CurrentScore.StartDate)
		fmt.Println()
		fmt.Printf("Session running for %s\n", score.FormatDuration(elapsed.Milliseconds()))
	}

	keys, err := app.store.Keys()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		fmt.Println()
		fmt.Println("Stored data")
		for _, key := range keys {
			data, ok, err := app.store.Get(key)
			if err != nil || !ok {
				continue
			}
			fmt.Printf("  %-20s %d bytes\n", key, len(data))
		}
	}
	return nil
}
