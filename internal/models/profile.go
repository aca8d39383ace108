package models

import "time"

type ConsumptionType string

const (
	ConsumptionCigarettes ConsumptionType = "cigarettes"
	ConsumptionJoints     ConsumptionType = "joints"
	ConsumptionTHC        ConsumptionType = "thc"
	ConsumptionNicotine   ConsumptionType = "nicotine"
)

// UserProfile holds the quitting parameters everything else is derived from.
// QuitDate is the origin of all elapsed-time computation.
type UserProfile struct {
	ConsumptionType  ConsumptionType `json:"consumption_type"`
	QuitDate         time.Time       `json:"quit_date"`
	DailyConsumption float64         `json:"daily_consumption"` // units per day before quitting
	CostPerUnit      float64         `json:"cost_per_unit"`
	Currency         string          `json:"currency"`
	IsOnboarded      bool            `json:"is_onboarded"`
}

// DefaultProfile returns the profile used on first run and after a full reset.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		ConsumptionType:  ConsumptionCigarettes,
		QuitDate:         now,
		DailyConsumption: 20,
		CostPerUnit:      0.5,
		Currency:         "€",
		IsOnboarded:      false,
	}
}
