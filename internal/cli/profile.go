package cli

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/journal"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the current quit profile." default:"1"`
	Edit ProfileEditCmd `cmd:"" help:"Edit quit profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	p := session.Profile
	fmt.Printf("  %-20s %s\n", "Quitting:", p.ConsumptionType)
	fmt.Printf("  %-20s %s\n", "Quit date:", p.QuitDate.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  %-20s %g/day\n", "Previous use:", p.DailyConsumption)
	fmt.Printf("  %-20s %s\n", "Cost per unit:", formatMoney(p.CostPerUnit, p.Currency))
	fmt.Printf("  %-20s %t\n", "Onboarded:", p.IsOnboarded)
	return nil
}

type ProfileEditCmd struct {
	Type     string   `help:"Consumption type (cigarettes|joints|thc|nicotine)."`
	QuitDate string   `help:"Quit date (YYYY-MM-DD)."`
	Rate     *float64 `help:"Daily consumption rate before quitting."`
	Cost     *float64 `help:"Cost per unit."`
	Currency string   `help:"Currency symbol."`
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	// Merge-patch semantics: only supplied flags change the profile.
	profile := session.Profile
	changed := false

	if c.Type != "" {
		ct, err := parseConsumptionType(c.Type)
		if err != nil {
			return err
		}
		profile.ConsumptionType = ct
		changed = true
	}
	if c.QuitDate != "" {
		quit, err := time.ParseInLocation(journal.DateFormat, c.QuitDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid quit date: %s (expected YYYY-MM-DD)", c.QuitDate)
		}
		profile.QuitDate = quit
		changed = true
	}
	if c.Rate != nil {
		if *c.Rate <= 0 {
			return fmt.Errorf("rate must be greater than zero")
		}
		profile.DailyConsumption = *c.Rate
		changed = true
	}
	if c.Cost != nil {
		if *c.Cost <= 0 {
			return fmt.Errorf("cost must be greater than zero")
		}
		profile.CostPerUnit = *c.Cost
		changed = true
	}
	if c.Currency != "" {
		profile.Currency = c.Currency
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change. Pass at least one flag, or run 'exhale onboard' for the guided setup.")
		return nil
	}

	if err := session.UpdateProfile(profile); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("This erases your profile, cravings, moods and daily logs. Type 'yes' to confirm: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := session.Reset(); err != nil {
		return err
	}

	fmt.Println("All data reset to defaults.")
	return nil
}
