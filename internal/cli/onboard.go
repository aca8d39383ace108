package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/journal"
	"github.com/exhale-app/exhale/internal/models"
)

type OnboardCmd struct{}

func (c *OnboardCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	profile := session.Profile
	consumptionType := string(profile.ConsumptionType)
	quitDate := profile.QuitDate.Format(journal.DateFormat)
	dailyRate := strconv.FormatFloat(profile.DailyConsumption, 'f', -1, 64)
	costPerUnit := strconv.FormatFloat(profile.CostPerUnit, 'f', -1, 64)
	currency := profile.Currency

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you quitting?").
				Options(
					huh.NewOption("Cigarettes", "cigarettes"),
					huh.NewOption("Joints", "joints"),
					huh.NewOption("THC vape", "thc"),
					huh.NewOption("Nicotine vape", "nicotine"),
				).
				Value(&consumptionType),
			huh.NewInput().
				Title("Quit date (YYYY-MM-DD)").
				Description("Leave as today if you are quitting right now.").
				Value(&quitDate).
				Validate(func(s string) error {
					_, err := time.ParseInLocation(journal.DateFormat, s, time.Local)
					return err
				}),
			huh.NewInput().
				Title("How many units per day did you consume?").
				Value(&dailyRate).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Cost per unit").
				Value(&costPerUnit).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Currency symbol").
				Value(&currency),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	ct, err := parseConsumptionType(consumptionType)
	if err != nil {
		return err
	}
	quit, err := time.ParseInLocation(journal.DateFormat, quitDate, time.Local)
	if err != nil {
		return fmt.Errorf("invalid quit date: %w", err)
	}
	rate, err := strconv.ParseFloat(dailyRate, 64)
	if err != nil {
		return fmt.Errorf("invalid daily consumption: %w", err)
	}
	cost, err := strconv.ParseFloat(costPerUnit, 64)
	if err != nil {
		return fmt.Errorf("invalid cost per unit: %w", err)
	}

	profile = models.UserProfile{
		ConsumptionType:  ct,
		QuitDate:         quit,
		DailyConsumption: rate,
		CostPerUnit:      cost,
		Currency:         currency,
		IsOnboarded:      true,
	}

	if err := session.UpdateProfile(profile); err != nil {
		return err
	}

	fmt.Println("You're all set. Run 'exhale status' to see your progress, or 'exhale' for the full dashboard.")
	return nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
