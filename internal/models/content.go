package models

// Achievement is a static milestone definition. Unlocked state is derived
// from elapsed days at read time and never persisted.
type Achievement struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DaysRequired float64 `json:"days_required"`
	Icon         string  `json:"icon"`
}

func (a Achievement) ThresholdDays() float64 { return a.DaysRequired }

// HealthBenefit is a static recovery milestone keyed by days since quitting.
type HealthBenefit struct {
	Days        float64 `json:"days"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

func (b HealthBenefit) ThresholdDays() float64 { return b.Days }

// ProgramDay is one of the 30 fixed entries of the guided program.
type ProgramDay struct {
	Day                 int    `json:"day"`
	Challenge           string `json:"challenge"`
	HealthTip           string `json:"health_tip"`
	MentalExercise      string `json:"mental_exercise"`
	MotivationalMessage string `json:"motivational_message"`
	IsPremium           bool   `json:"is_premium"`
}

type TipCategory string

const (
	TipMotivation TipCategory = "motivation"
	TipHealth     TipCategory = "health"
	TipStrategy   TipCategory = "strategy"
	TipWellness   TipCategory = "wellness"
)

// DailyTip is a short day-indexed encouragement shown on the home screen.
type DailyTip struct {
	Day      int         `json:"day"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Category TipCategory `json:"category"`
}
