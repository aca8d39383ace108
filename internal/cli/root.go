package cli

import (
	"fmt"
	"strings"

	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/stats"
	"github.com/exhale-app/exhale/internal/storage"
)

type Context struct {
	Store storage.Provider
}

func parseConsumptionType(s string) (models.ConsumptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cigarettes":
		return models.ConsumptionCigarettes, nil
	case "joints":
		return models.ConsumptionJoints, nil
	case "thc":
		return models.ConsumptionTHC, nil
	case "nicotine":
		return models.ConsumptionNicotine, nil
	default:
		return "", fmt.Errorf("invalid consumption type: %s (expected cigarettes|joints|thc|nicotine)", s)
	}
}

func parseMood(s string) (models.Mood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return models.MoodExcellent, nil
	case "good":
		return models.MoodGood, nil
	case "okay":
		return models.MoodOkay, nil
	case "difficult":
		return models.MoodDifficult, nil
	case "struggling":
		return models.MoodStruggling, nil
	default:
		return "", fmt.Errorf("invalid mood: %s (expected excellent|good|okay|difficult|struggling)", s)
	}
}

func formatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%.2f%s", amount, currency)
}

func formatElapsed(e stats.ElapsedTime) string {
	return fmt.Sprintf("%dd %02dh %02dm", e.DaysPart(), e.HoursPart(), e.MinutesPart())
}
