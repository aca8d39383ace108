package content

import "time"

// BreathingPhase is one step of the guided emergency breathing cycle.
type BreathingPhase struct {
	Label       string
	Instruction string
	Mantra      string
	Duration    time.Duration
}

// BreathingCycle is the emergency-mode exercise: a long inhale, a hold, and
// an even longer exhale, repeated until the craving passes.
var BreathingCycle = []BreathingPhase{
	{
		Label:       "Breathe in deeply",
		Instruction: "Let the air in slowly through your nose, filling your belly.",
		Mantra:      "I am feeding my body oxygen and calm.",
		Duration:    4500 * time.Millisecond,
	},
	{
		Label:       "Hold your breath",
		Instruction: "Hold it, keeping your shoulders relaxed.",
		Mantra:      "I control my inner rhythm.",
		Duration:    3500 * time.Millisecond,
	},
	{
		Label:       "Breathe out slowly",
		Instruction: "Let the air out through your mouth as if blowing through a straw.",
		Mantra:      "I release the tension and the craving.",
		Duration:    6500 * time.Millisecond,
	},
}

// PhaseAt maps a time offset into the repeating cycle to the active phase
// and the time remaining in it.
func PhaseAt(offset time.Duration) (BreathingPhase, time.Duration) {
	var total time.Duration
	for _, p := range BreathingCycle {
		total += p.Duration
	}
	offset = offset % total
	for _, p := range BreathingCycle {
		if offset < p.Duration {
			return p, p.Duration - offset
		}
		offset -= p.Duration
	}
	return BreathingCycle[0], BreathingCycle[0].Duration
}
