package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	// First run goes through onboarding before the dashboard opens.
	if !session.Profile.IsOnboarded {
		onboard := &OnboardCmd{}
		if err := onboard.Run(ctx); err != nil {
			return err
		}
		session, err = app.NewSession(ctx.Store)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
