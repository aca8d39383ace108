package content

import "github.com/exhale-app/exhale/internal/models"

// HealthBenefits is ordered ascending by Days.
// SavingsItem prices one "that's N of these" comparison for the savings
// display. Prices are rough and deliberately not localized.
type SavingsItem struct {
	Label string
	Cost  float64
}

var SavingsItems = []SavingsItem{
	{"coffees", 3.5},
	{"cinema tickets", 11.0},
	{"pizzas", 9.0},
}

var HealthBenefits = []models.HealthBenefit{
	{
		Days:        0.5,
		Title:       "Circulation improving",
		Description: "Your blood circulation is starting to improve",
	},
	{
		Days:        1,
		Title:       "Oxygen back to normal",
		Description: "The oxygen level in your blood is returning to normal",
	},
	{
		Days:        2,
		Title:       "Taste and smell",
		Description: "Your senses of taste and smell are starting to recover",
	},
	{
		Days:        3,
		Title:       "Easier breathing",
		Description: "Breathing gets easier and your energy rises",
	},
	{
		Days:        7,
		Title:       "Lungs healing",
		Description: "Your lungs are starting to clear out and repair themselves",
	},
	{
		Days:        14,
		Title:       "Excellent circulation",
		Description: "Your blood circulation has improved considerably",
	},
	{
		Days:        30,
		Title:       "Lung function",
		Description: "Your lung function can improve by up to 30%",
	},
	{
		Days:        90,
		Title:       "Lower risks",
		Description: "Your risk of a heart attack has dropped considerably",
	},
	{
		Days:        180,
		Title:       "Major recovery",
		Description: "Significant recovery of your lung function",
	},
	{
		Days:        365,
		Title:       "Heart risk halved",
		Description: "Your risk of heart disease is down by 50%",
	},
}
