package content

import "github.com/exhale-app/exhale/internal/models"

// Program is the fixed 30-day guided program, indexed 1..30 by Day. The
// IsPremium flag is reported to callers as-is; entitlement enforcement
// happens at the presentation layer, not here.
var Program = []models.ProgramDay{
	{
		Day:                 1,
		Challenge:           "Throw away all your paraphernalia (lighters, ashtrays...)",
		HealthTip:           "Nicotine leaves your body within 72 hours. Your body is already regenerating.",
		MentalExercise:      "Write down 3 personal reasons why you are quitting. Reread them tonight.",
		MotivationalMessage: "The first day takes the most courage. You have already won! 💪",
		IsPremium:           false,
	},
	{
		Day:                 2,
		Challenge:           "Write every craving on paper, then crumple it up and throw it away",
		HealthTip:           "Your heart rate is starting to settle back to normal. Your heart thanks you!",
		MentalExercise:      "When a craving hits, count down from 10 to 0 while breathing deeply.",
		MotivationalMessage: "Every smoke-free minute is a victory. You are stronger than the craving! 🔥",
		IsPremium:           false,
	},
	{
		Day:                 3,
		Challenge:           "Replace your cigarette break with a 5-minute walk",
		HealthTip:           "Your taste and smell are coming back. You are about to rediscover flavour!",
		MentalExercise:      "Picture yourself one year from now, free and healthy. Feel that pride.",
		MotivationalMessage: "72 hours! The physical nicotine is gone. The hardest part is behind you! 🌟",
		IsPremium:           false,
	},
	{
		Day:                 4,
		Challenge:           "Identify your biggest trigger and find a concrete alternative",
		HealthTip:           "Your blood circulation is improving. Your hands and feet feel less cold.",
		MentalExercise:      "Think of a hard situation you overcame before. You can do it again.",
		MotivationalMessage: "Habits change. You are becoming someone new! 💎",
		IsPremium:           true,
	},
	{
		Day:                 5,
		Challenge:           "Drink 2 litres of water today to flush out your system",
		HealthTip:           "Your lungs are starting to clear out mucus and residue. Breathe deep!",
		MentalExercise:      "Practice 5 minutes of mindful breathing: in for 4 counts, out for 7.",
		MotivationalMessage: "Your body is cleansing, your mind is freeing itself. Keep going! 💧",
		IsPremium:           true,
	},
	{
		Day:                 6,
		Challenge:           "Do 20 minutes of physical exercise (walk, bike, sport...)",
		HealthTip:           "Your lung capacity is up 10%. Feel the difference!",
		MentalExercise:      "Repeat this mantra 10 times: 'I am free. I control my choices.'",
		MotivationalMessage: "Your energy is coming back. Enjoy this new strength! ⚡",
		IsPremium:           true,
	},
	{
		Day:                 7,
		Challenge:           "Celebrate your first week! Treat yourself with the money you saved",
		HealthTip:           "Your heart attack risk is already starting to drop. Incredible!",
		MentalExercise:      "Write a letter to your future self one year from now. Describe your pride.",
		MotivationalMessage: "A FULL WEEK! You have proven your strength. This is HUGE! 🏆",
		IsPremium:           false,
	},
	{
		Day:                 8,
		Challenge:           "Deep-clean a place where you used to smoke (car, balcony...)",
		HealthTip:           "Your taste and smell are twice as sharp as before!",
		MentalExercise:      "List 5 benefits you already feel, physically or mentally.",
		MotivationalMessage: "Every day moves you further from your old self. Keep moving! 🚀",
		IsPremium:           true,
	},
	{
		Day:                 9,
		Challenge:           "Call or text someone who supports you and share your pride",
		HealthTip:           "Your immune system is getting stronger. You will get sick less often!",
		MentalExercise:      "Picture your body as a house under renovation. Each day repairs a room.",
		MotivationalMessage: "Other people's support multiplies your strength. You are not alone! 🤝",
		IsPremium:           true,
	},
	{
		Day:                 10,
		Challenge:           "Try a new relaxing activity (yoga, drawing, music...)",
		HealthTip:           "Your energy level is 20% higher than last week!",
		MentalExercise:      "Practice gratitude: thank your body for its capacity to heal.",
		MotivationalMessage: "You are discovering new ways to be happy. Explore! 🎨",
		IsPremium:           true,
	},
	{
		Day:                 11,
		Challenge:           "Consciously avoid the places where you smoked the most",
		HealthTip:           "The smoker's cough is fading. Your lungs are actively clearing.",
		MentalExercise:      "When a craving hits, ask yourself: 'Do I really want to start over from ZERO?'",
		MotivationalMessage: "Changing habits means changing places. You are building your new environment! 🌍",
		IsPremium:           true,
	},
	{
		Day:                 12,
		Challenge:           "Prepare healthy snacks for craving moments",
		HealthTip:           "Your skin is starting to glow. Circulation keeps improving!",
		MentalExercise:      "Picture the money you saved as a mountain growing every day.",
		MotivationalMessage: "Taking care of yourself is becoming natural. You deserve it! 🥗",
		IsPremium:           true,
	},
	{
		Day:                 13,
		Challenge:           "Declutter part of your life (papers, clothes, digital)",
		HealthTip:           "Your sleep is deeper and more restorative without nicotine.",
		MentalExercise:      "Cleaning your environment cleans your mind. Feel that lightness.",
		MotivationalMessage: "Outer order, inner order. You are building your new life! 📦",
		IsPremium:           true,
	},
	{
		Day:                 14,
		Challenge:           "Two weeks! Take a photo of yourself to see the difference",
		HealthTip:           "Your complexion is clearer, your eyes brighter. You are glowing!",
		MentalExercise:      "Mentally compare that photo with two weeks ago. See the change.",
		MotivationalMessage: "14 DAYS! You doubled the first week. NOTHING can stop you! 🌟",
		IsPremium:           false,
	},
	{
		Day:                 15,
		Challenge:           "Try a new anti-stress breathing technique",
		HealthTip:           "Your blood circulation is 30% better than two weeks ago!",
		MentalExercise:      "Box breathing: inhale 4, hold 4, exhale 4, pause 4. Repeat 5 times.",
		MotivationalMessage: "Breathing is your superpower against stress. Master it! 🧘",
		IsPremium:           true,
	},
	{
		Day:                 16,
		Challenge:           "Write a list of 10 things you love about your new life",
		HealthTip:           "Your lungs work 30% better. Climbing stairs is easier!",
		MentalExercise:      "Reread that list every morning for 3 days. Anchor the benefits.",
		MotivationalMessage: "You are not 'giving up' something, you are GAINING a new life! 📝",
		IsPremium:           true,
	},
	{
		Day:                 17,
		Challenge:           "Plan an outing or activity you kept putting off",
		HealthTip:           "Your blood oxygen level is optimal. You feel alive!",
		MentalExercise:      "Life is short. Do that thing you wanted to do. Now.",
		MotivationalMessage: "More money, more energy, more time. ENJOY IT! 🎉",
		IsPremium:           true,
	},
	{
		Day:                 18,
		Challenge:           "Help someone today (family, friend, stranger...)",
		HealthTip:           "Your nervous system is rebalancing. You are less irritable!",
		MentalExercise:      "Helping others strengthens your own resolve. Feel that connection.",
		MotivationalMessage: "By becoming better for yourself, you become better for others! 💚",
		IsPremium:           true,
	},
	{
		Day:                 19,
		Challenge:           "Meditate for 10 minutes (use an app if it helps)",
		HealthTip:           "Your blood pressure is normalising. Your heart beats more calmly.",
		MentalExercise:      "Watch your thoughts like passing clouds. Do not judge them.",
		MotivationalMessage: "Inner calm is your new power. Cultivate it! 🧘‍♂️",
		IsPremium:           true,
	},
	{
		Day:                 20,
		Challenge:           "Cook a healthy, delicious meal to enjoy your recovered taste",
		HealthTip:           "Your taste buds are fully regenerated. Rediscover flavour!",
		MentalExercise:      "Eat mindfully. Savour every bite. It is a gift.",
		MotivationalMessage: "Food has never tasted this good. Enjoy every sensation! 🍽️",
		IsPremium:           true,
	},
	{
		Day:                 21,
		Challenge:           "21 days means a new habit is formed! Celebrate with your people",
		HealthTip:           "Scientifically, you have rewired your brain. You are a non-smoker now!",
		MentalExercise:      "Say it out loud: 'I am a non-smoker'. Believe it.",
		MotivationalMessage: "THREE WEEKS! Your brain has changed. You are officially FREE! 🎊",
		IsPremium:           false,
	},
	{
		Day:                 22,
		Challenge:           "Donate to a health charity or help someone else quit",
		HealthTip:           "Your risk of heart disease drops with every passing day.",
		MentalExercise:      "Sharing your success multiplies it. You inspire others.",
		MotivationalMessage: "Your journey can save other lives. You are an example! 🌟",
		IsPremium:           true,
	},
	{
		Day:                 23,
		Challenge:           "Try a sport or physical activity you have never done",
		HealthTip:           "Your physical endurance is up 40% since day one!",
		MentalExercise:      "Stepping outside your comfort zone is how you grow. Dare the unknown.",
		MotivationalMessage: "Your new body can do incredible things. Discover them! 🏃",
		IsPremium:           true,
	},
	{
		Day:                 24,
		Challenge:           "Work out exactly what you have saved and plan a big purchase",
		HealthTip:           "On average a smoker saves 2000-3000€ a year by quitting!",
		MentalExercise:      "Visualise that purchase. Feel the satisfaction. You earned it.",
		MotivationalMessage: "That money used to go up in smoke. Now it is YOURS! 💰",
		IsPremium:           true,
	},
	{
		Day:                 25,
		Challenge:           "Write a letter to your 'smoker self' explaining why you are not coming back",
		HealthTip:           "Your cancer risk drops a little more with every tobacco-free day.",
		MentalExercise:      "That letter is a contract with yourself. Seal your commitment.",
		MotivationalMessage: "You closed that door and threw away the key. Onward! ✍️",
		IsPremium:           true,
	},
	{
		Day:                 26,
		Challenge:           "Spend time in nature (park, forest, beach...)",
		HealthTip:           "Fresh air is your best ally. Your lungs know it!",
		MentalExercise:      "Breathe the clean air deeply. Thank your lungs for their work.",
		MotivationalMessage: "Nature reminds you that you're part of a cycle of life and renewal! 🌲",
		IsPremium:           true,
	},
	{
		Day:                 27,
		Challenge:           "Do a full check-up of your routine (sleep, food, exercise)",
		HealthTip:           "A healthy lifestyle is your best protection against relapse.",
		MentalExercise:      "Tune every part of your life. You are running at full capacity now.",
		MotivationalMessage: "You are not just an 'ex-smoker', you are becoming your best self! 💯",
		IsPremium:           true,
	},
	{
		Day:                 28,
		Challenge:           "Plan your goals for the next 6 months (sport, travel, a project...)",
		HealthTip:           "Clear goals protect you against boredom and relapse.",
		MentalExercise:      "Write those goals down. Visualise them. They are already taking shape.",
		MotivationalMessage: "The future is bright. You have proven you can do ANYTHING! 🚀",
		IsPremium:           true,
	},
	{
		Day:                 29,
		Challenge:           "Reread all your notes since day 1. Measure how far you have come",
		HealthTip:           "Your body has regenerated by 80%. It is almost miraculous!",
		MentalExercise:      "Compare day-1 you with today's you. That is a superhero.",
		MotivationalMessage: "In 29 days you have transformed. Tomorrow you cross the finish line! 🏁",
		IsPremium:           true,
	},
	{
		Day:                 30,
		Challenge:           "CELEBRATE! 30 DAYS! Do something SPECIAL for yourself",
		HealthTip:           "A FULL MONTH! Your body is transformed. You are biologically a non-smoker!",
		MentalExercise:      "Close your eyes. Feel that IMMENSE pride. You did it. It is REAL.",
		MotivationalMessage: "30 DAYS! You WON! You are FREE! You are INCREDIBLE! 🏆",
		IsPremium:           false,
	},
}

// ProgramDayAt returns the entry for a 1-based day index, clamped to the table.
func ProgramDayAt(day int) models.ProgramDay {
	if day < 1 {
		day = 1
	}
	if day > len(Program) {
		day = len(Program)
	}
	return Program[day-1]
}
