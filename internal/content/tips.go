package content

import (
	"math"

	"github.com/exhale-app/exhale/internal/models"
)

// FallbackTip is shown once the user is past the 30-day tip table.
var FallbackTip = models.DailyTip{
	Title:    "Keep it up!",
	Content:  "You are past the first 30 days! Keep up the excellent work!",
	Category: models.TipMotivation,
}

// DailyTips is indexed by program day, 1..30.
var DailyTips = []models.DailyTip{
	{
		Day:      1,
		Title:    "Well done on your first day!",
		Content:  "The first 24 hours are the hardest. Drink plenty of water, breathe deeply and remember why you decided to quit. You can do this! 💪",
		Category: models.TipMotivation,
	},
	{
		Day:      2,
		Title:    "Nicotine is leaving your body",
		Content:  "By now the nicotine is almost entirely out of your system. Cravings are strong but only last a few minutes. Use the emergency mode when it gets hard.",
		Category: models.TipHealth,
	},
	{
		Day:      3,
		Title:    "Your taste and smell are improving",
		Content:  "Your senses are coming back! You will soon rediscover flavours and smells. It is one of the first gifts your body gives you.",
		Category: models.TipHealth,
	},
	{
		Day:      4,
		Title:    "Identify your triggers",
		Content:  "Note the moments when the craving is strongest: morning coffee, breaks, stress... Anticipate them and prepare alternatives (chewing gum, a walk, water).",
		Category: models.TipStrategy,
	},
	{
		Day:      5,
		Title:    "Breathing and relaxation",
		Content:  "Stress can trigger cravings. Practice deep breathing: inhale for 4 seconds, hold for 4, exhale for 6. Repeat 5 times.",
		Category: models.TipWellness,
	},
	{
		Day:      6,
		Title:    "You are breathing better",
		Content:  "Your lung capacity is starting to improve. Try walking more and feel the difference! Exercise also helps manage cravings.",
		Category: models.TipHealth,
	},
	{
		Day:      7,
		Title:    "A week of freedom! 🎉",
		Content:  "Congratulations, you made it a whole week! That is huge. The physical cravings are fading; now it is mostly habit. Keep going, you have got this!",
		Category: models.TipMotivation,
	},
	{
		Day:      8,
		Title:    "Reward yourself",
		Content:  "Use the money you saved to treat yourself to something nice. You deserve it! It reinforces your motivation and makes the benefits concrete.",
		Category: models.TipMotivation,
	},
	{
		Day:      9,
		Title:    "Your energy is coming back",
		Content:  "You should notice more energy and less fatigue. Your body is already thanking you! Use it to be more active.",
		Category: models.TipHealth,
	},
	{
		Day:      10,
		Title:    "Avoid risky situations",
		Content:  "If you can, temporarily avoid the places where you used to smoke. Build new habits in new places.",
		Category: models.TipStrategy,
	},
	{
		Day:      11,
		Title:    "Talk about your success",
		Content:  "Share your progress with the people around you. Their support is precious, and saying your success out loud makes it more real.",
		Category: models.TipMotivation,
	},
	{
		Day:      12,
		Title:    "Stay hydrated!",
		Content:  "Water helps flush out toxins and reduces cravings. Aim for 2 litres a day. Add some lemon for taste!",
		Category: models.TipWellness,
	},
	{
		Day:      13,
		Title:    "Your skin is improving",
		Content:  "Circulation is improving and your skin is starting to look healthier. Another visible benefit of quitting!",
		Category: models.TipHealth,
	},
	{
		Day:      14,
		Title:    "Two weeks! 🌟",
		Content:  "You doubled your record! Every passing day makes the rest easier. Cravings come less often now.",
		Category: models.TipMotivation,
	},
	{
		Day:      15,
		Title:    "Handle stress differently",
		Content:  "Find new ways to decompress: sport, meditation, music, drawing... Experiment!",
		Category: models.TipStrategy,
	},
	{
		Day:      16,
		Title:    "Your sleep is improving",
		Content:  "Without nicotine your sleep becomes more restorative. You wake up fresher. Settle into a regular sleep routine.",
		Category: models.TipWellness,
	},
	{
		Day:      17,
		Title:    "The cravings are changing",
		Content:  "The physical cravings have largely faded. What remains is the psychological habit. You are stronger than it!",
		Category: models.TipHealth,
	},
	{
		Day:      18,
		Title:    "Visualise your success",
		Content:  "Take 5 minutes each day to visualise your life without tobacco. Picture yourself in 6 months, 1 year. The technique strengthens your resolve.",
		Category: models.TipStrategy,
	},
	{
		Day:      19,
		Title:    "Your immune system is stronger",
		Content:  "Your body fights off infections better now. You will get sick less often!",
		Category: models.TipHealth,
	},
	{
		Day:      20,
		Title:    "Stay alert",
		Content:  "Complacency is the enemy. There is no such thing as \"just one\". Remember where you came from and how far you have come.",
		Category: models.TipStrategy,
	},
	{
		Day:      21,
		Title:    "Three weeks! 🚀",
		Content:  "They say it takes 21 days to build a habit. You have built the habit of NOT smoking. Incredible!",
		Category: models.TipMotivation,
	},
	{
		Day:      22,
		Title:    "Your cardio is improving",
		Content:  "Your heart and lungs work better. Stairs are easier. Keep moving!",
		Category: models.TipHealth,
	},
	{
		Day:      23,
		Title:    "Get some exercise",
		Content:  "Exercise produces endorphins, like cigarettes did, but better! Find an activity you enjoy.",
		Category: models.TipWellness,
	},
	{
		Day:      24,
		Title:    "Count your savings",
		Content:  "Look at how much you have saved. Impressive, right? Think about what you will do with it!",
		Category: models.TipMotivation,
	},
	{
		Day:      25,
		Title:    "Hard moments pass",
		Content:  "If cravings still come, remember: they only last 3-5 minutes. Distraction, water, breathing. You know the routine!",
		Category: models.TipStrategy,
	},
	{
		Day:      26,
		Title:    "Your circulation is better",
		Content:  "Your blood flows better and your hands and feet feel warmer. Your body regenerates day by day.",
		Category: models.TipHealth,
	},
	{
		Day:      27,
		Title:    "Take care of yourself",
		Content:  "Use this momentum to improve other parts of your life: food, sleep, relationships. You deserve the best!",
		Category: models.TipWellness,
	},
	{
		Day:      28,
		Title:    "Almost a month!",
		Content:  "In a few days you will have a full month. That is huge! You are pulling off something incredible.",
		Category: models.TipMotivation,
	},
	{
		Day:      29,
		Title:    "Help others",
		Content:  "If someone you know wants to quit, share your experience. Helping others strengthens your own resolve.",
		Category: models.TipMotivation,
	},
	{
		Day:      30,
		Title:    "ONE MONTH! 🏆",
		Content:  "CONGRATULATIONS! A whole month without smoking! You have proven you are stronger. Keep going, the best is yet to come!",
		Category: models.TipMotivation,
	},
}

// TipFor picks the tip for the current elapsed days: whole elapsed days
// index the table (day 0 shows tip 1), and anything past the table falls
// back to the generic encouragement.
func TipFor(elapsedDays float64) models.DailyTip {
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	idx := int(math.Floor(elapsedDays))
	if idx >= len(DailyTips) {
		return FallbackTip
	}
	return DailyTips[idx]
}
