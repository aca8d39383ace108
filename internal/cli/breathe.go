package cli

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/content"
)

type BreatheCmd struct {
	Cycles int `short:"n" help:"Number of breathing cycles." default:"3"`
}

func (c *BreatheCmd) Validate() error {
	if c.Cycles < 1 {
		return fmt.Errorf("cycles must be at least 1")
	}
	return nil
}

// Run walks the guided cycle in real time. Cravings pass in a few minutes;
// this keeps the hands and mind busy until they do.
func (c *BreatheCmd) Run(ctx *Context) error {
	fmt.Println("Emergency breathing. Follow along; the craving will pass.")
	fmt.Println()

	for cycle := 1; cycle <= c.Cycles; cycle++ {
		fmt.Printf("Cycle %d of %d\n", cycle, c.Cycles)
		for _, phase := range content.BreathingCycle {
			fmt.Printf("  %-22s %s\n", phase.Label+":", phase.Instruction)
			time.Sleep(phase.Duration)
		}
		fmt.Println()
	}

	fmt.Println("Done. You are still smoke-free. 💪")
	return nil
}
