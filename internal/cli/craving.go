package cli

import (
	"fmt"

	"github.com/exhale-app/exhale/internal/app"
)

type CravingCmd struct {
	Add  CravingAddCmd  `cmd:"" help:"Record a craving."`
	List CravingListCmd `cmd:"" help:"List recorded cravings."`
}

type CravingAddCmd struct {
	Smoked    bool `help:"The craving was not resisted."`
	Intensity int  `short:"i" help:"Craving intensity (1-5)." default:"3"`
}

func (c *CravingAddCmd) Validate() error {
	if c.Intensity < 1 || c.Intensity > 5 {
		return fmt.Errorf("intensity must be between 1 and 5")
	}
	return nil
}

func (c *CravingAddCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	_, err = session.AddCraving(!c.Smoked, c.Intensity)
	if err != nil {
		return err
	}

	if c.Smoked {
		fmt.Println("Logged. A slip is not a fall: the counter keeps running from your quit date.")
	} else {
		fmt.Println("Craving resisted. Well done!")
	}
	return nil
}

type CravingListCmd struct {
	Last int `short:"n" help:"Show only the last N entries." default:"0"`
}

func (c *CravingListCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	cravings := session.Cravings
	if c.Last > 0 && len(cravings) > c.Last {
		cravings = cravings[len(cravings)-c.Last:]
	}

	if len(cravings) == 0 {
		fmt.Println("No cravings recorded.")
		return nil
	}

	for _, e := range cravings {
		outcome := "resisted"
		if !e.Avoided {
			outcome = "smoked"
		}
		fmt.Printf("%s  intensity %d  [%s]\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Intensity, outcome)
	}
	return nil
}
