package cli

import (
	"fmt"

	"github.com/exhale-app/exhale/internal/app"
)

type MoodCmd struct {
	Add  MoodAddCmd  `cmd:"" help:"Record how you feel."`
	List MoodListCmd `cmd:"" help:"List mood entries."`
}

type MoodAddCmd struct {
	Mood string `arg:"" help:"Mood (excellent|good|okay|difficult|struggling)."`
	Note string `short:"m" help:"Optional note." default:""`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	mood, err := parseMood(c.Mood)
	if err != nil {
		return err
	}

	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	if _, err := session.AddMood(mood, c.Note); err != nil {
		return err
	}

	fmt.Printf("Mood recorded: %s\n", mood)
	return nil
}

type MoodListCmd struct {
	Last int `short:"n" help:"Show only the last N entries." default:"0"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	moods := session.Moods
	if c.Last > 0 && len(moods) > c.Last {
		moods = moods[len(moods)-c.Last:]
	}

	if len(moods) == 0 {
		fmt.Println("No mood entries recorded.")
		return nil
	}

	for _, e := range moods {
		fmt.Printf("%s  %-10s", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Mood)
		if e.Note != "" {
			fmt.Printf("  %s", e.Note)
		}
		fmt.Println()
	}
	return nil
}
