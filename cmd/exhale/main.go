package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/exhale-app/exhale/internal/cli"
	"github.com/exhale-app/exhale/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json or .db)." type:"path" env:"EXHALE_CONFIG" default:"~/.config/exhale/exhale.db"`

	Init         cli.InitCmd         `cmd:"" help:"Initialize exhale storage."`
	Onboard      cli.OnboardCmd      `cmd:"" help:"Set up your quit profile."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status       cli.StatusCmd       `cmd:"" help:"Show elapsed time, savings and progress."`
	Craving      cli.CravingCmd      `cmd:"" help:"Record and list cravings."`
	Mood         cli.MoodCmd         `cmd:"" help:"Record and list moods."`
	Log          cli.LogCmd          `cmd:"" help:"Daily consumption log."`
	Program      cli.ProgramCmd      `cmd:"" help:"Show the 30-day program."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievement progress."`
	Benefits     cli.BenefitsCmd     `cmd:"" help:"Show health benefit milestones."`
	Tip          cli.TipCmd          `cmd:"" help:"Show today's tip."`
	Breathe      cli.BreatheCmd      `cmd:"" help:"Run the guided breathing exercise."`
	Profile      cli.ProfileCmd      `cmd:"" help:"Show or edit your quit profile."`
	Reset        cli.ResetCmd        `cmd:"" help:"Erase all data and start over."`
	Backup       cli.BackupCmd       `cmd:"" help:"Create, list and restore storage backups."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Check storage health."`
	Debug        cli.DebugCmd        `cmd:"" help:"Inspect raw storage."`
}

func main() {
	// Optional .env for EXHALE_CONFIG and friends.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("exhale"),
		kong.Description("Quit-smoking companion: live counters, savings, milestones and a 30-day program"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage backend follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
