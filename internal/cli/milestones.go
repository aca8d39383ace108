package cli

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/stats"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	elapsed := session.Stats(time.Now()).Elapsed.Days

	for _, status := range stats.Evaluate(content.Achievements, elapsed) {
		marker := "🔒"
		if status.Unlocked {
			marker = "✓"
		}
		fmt.Printf("%s %-14s %s\n", marker, status.Entry.Title, status.Entry.Description)
	}

	if next, ok := stats.NextLocked(content.Achievements, elapsed); ok {
		progress := stats.ProgressToNext(elapsed, next.DaysRequired)
		fmt.Printf("\nNext: %s (%.0f%%)\n", next.Title, progress*100)
	} else {
		fmt.Println("\nAll achievements unlocked!")
	}
	return nil
}

type BenefitsCmd struct{}

func (c *BenefitsCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	elapsed := session.Stats(time.Now()).Elapsed.Days

	for _, status := range stats.Evaluate(content.HealthBenefits, elapsed) {
		marker := "·"
		if status.Unlocked {
			marker = "✓"
		}
		when := fmt.Sprintf("day %g", status.Entry.Days)
		if status.Entry.Days < 1 {
			when = fmt.Sprintf("%gh", status.Entry.Days*24)
		}
		fmt.Printf("%s %-8s %s: %s\n", marker, when, status.Entry.Title, status.Entry.Description)
	}

	if latest, ok := stats.LatestUnlocked(content.HealthBenefits, elapsed); ok {
		fmt.Printf("\nLatest milestone: %s\n", latest.Title)
	}
	return nil
}

type TipCmd struct{}

func (c *TipCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	tip := content.TipFor(session.Stats(time.Now()).Elapsed.Days)
	fmt.Printf("%s\n\n%s\n", tip.Title, tip.Content)
	return nil
}
