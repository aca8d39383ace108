package cli

import (
	"fmt"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/journal"
)

type LogCmd struct {
	Today LogTodayCmd `cmd:"" default:"withargs" help:"Record today's consumption."`
	List  LogListCmd  `cmd:"" help:"List recent daily logs."`
}

type LogTodayCmd struct {
	Count int    `short:"c" help:"Units consumed today (0 for a clean day)." required:""`
	Notes string `short:"m" help:"Optional notes for the day." default:""`
}

func (c *LogTodayCmd) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count cannot be negative")
	}
	return nil
}

func (c *LogTodayCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	entry, err := session.LogToday(c.Count, c.Notes)
	if err != nil {
		return err
	}

	if entry.Count == 0 {
		fmt.Printf("Logged a clean day for %s. Keep it up!\n", entry.Date)
	} else {
		fmt.Printf("Logged %d unit(s) for %s.\n", entry.Count, entry.Date)
	}

	if session.RelapseRisk() {
		fmt.Println("⚠ Consumption in the last few days. The emergency breathing exercise is one 'exhale breathe' away.")
	}
	return nil
}

type LogListCmd struct {
	Days int `short:"n" help:"How many recent days to show." default:"7"`
}

func (c *LogListCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	entries := journal.RecentWindow(session.DailyLogs, c.Days)
	if len(entries) == 0 {
		fmt.Println("No daily logs recorded.")
		return nil
	}

	for _, entry := range entries {
		marker := "✓"
		if entry.Count > 0 {
			marker = fmt.Sprintf("%d", entry.Count)
		}
		fmt.Printf("%s  %s", entry.Date, marker)
		if entry.Notes != "" {
			fmt.Printf("  %s", entry.Notes)
		}
		fmt.Println()
	}
	return nil
}
