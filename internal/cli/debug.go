package cli

import (
	"encoding/json"
	"fmt"

	"github.com/exhale-app/exhale/internal/app"
)

type DebugCmd struct {
	DBPath      *DebugDBPathCmd      `cmd:"" help:"Show storage path."`
	DumpProfile *DebugDumpProfileCmd `cmd:"" help:"Dump profile data as JSON."`
	DumpJournal *DebugDumpJournalCmd `cmd:"" help:"Dump event collections as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpProfileCmd struct{}

func (cmd *DebugDumpProfileCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(session.Profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpJournalCmd struct{}

func (cmd *DebugDumpJournalCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	output := map[string]any{
		"cravings":   session.Cravings,
		"moods":      session.Moods,
		"daily_logs": session.DailyLogs,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
