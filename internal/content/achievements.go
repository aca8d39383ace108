// Package content holds the static reference tables: achievements, health
// benefits, the 30-day program, daily tips, and the breathing exercise.
// Tables are fixed at compile time and ordered ascending by threshold where
// one applies; nothing here is mutated at runtime.
package content

import "github.com/exhale-app/exhale/internal/models"

// Achievements is ordered ascending by DaysRequired. The first entry uses a
// fractional threshold (one hour) on purpose; it is compared against
// continuous elapsed days, not whole days.
var Achievements = []models.Achievement{
	{
		ID:           "1-hour",
		Title:        "First hour",
		Description:  "1 hour smoke-free",
		DaysRequired: 1.0 / 24.0,
		Icon:         "clock",
	},
	{
		ID:           "24-hours",
		Title:        "First day",
		Description:  "24 hours smoke-free",
		DaysRequired: 1,
		Icon:         "sun",
	},
	{
		ID:           "3-days",
		Title:        "Three days",
		Description:  "3 days smoke-free",
		DaysRequired: 3,
		Icon:         "star",
	},
	{
		ID:           "1-week",
		Title:        "One week",
		Description:  "7 days smoke-free",
		DaysRequired: 7,
		Icon:         "award",
	},
	{
		ID:           "2-weeks",
		Title:        "Two weeks",
		Description:  "14 days smoke-free",
		DaysRequired: 14,
		Icon:         "zap",
	},
	{
		ID:           "1-month",
		Title:        "One month",
		Description:  "30 days smoke-free",
		DaysRequired: 30,
		Icon:         "trophy",
	},
	{
		ID:           "3-months",
		Title:        "Three months",
		Description:  "90 days smoke-free",
		DaysRequired: 90,
		Icon:         "crown",
	},
	{
		ID:           "6-months",
		Title:        "Six months",
		Description:  "180 days smoke-free",
		DaysRequired: 180,
		Icon:         "gem",
	},
	{
		ID:           "1-year",
		Title:        "One year",
		Description:  "365 days smoke-free",
		DaysRequired: 365,
		Icon:         "sparkles",
	},
}
