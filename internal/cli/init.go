package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized exhale storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Run 'exhale onboard' to set up your quit profile.")
	return nil
}
