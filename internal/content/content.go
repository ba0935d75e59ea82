// Package content holds the static devotional material the companion serves:
// daily devotions, prayer challenges, mastery verses, the scripture adventure
// path, and mood missions. Nothing in here is persisted per user.
package content

// Devotion is one morning or evening devotional.
type Devotion struct {
	Title          string `json:"title"`
	Greeting       string `json:"greeting"`
	VerseReference string `json:"verse_reference"`
	VerseText      string `json:"verse_text"`
	Word           string `json:"word"`
	Application    string `json:"application"`
	Prayer         string `json:"prayer"`
	Closing        string `json:"closing"`
}

// Verse is one entry in the verse mastery collection.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Theme     string `json:"theme"`
}

// AdventureStop is one waypoint on the scripture adventure path.
type AdventureStop struct {
	Book   string `json:"book"`
	Theme  string `json:"theme"`
	Lesson string `json:"lesson"`
}

// MoodMission is a small challenge matched to how the user says they feel.
type MoodMission struct {
	Challenge string `json:"challenge"`
	Comfort   string `json:"comfort"`
	Badge     string `json:"badge"`
}

const (
	DevotionMorning = "morning"
	DevotionEvening = "evening"
)

var Devotions = map[string]Devotion{
	DevotionMorning: {
		Title:          `🌅 MORNING DEVOTION: "Start with Stillness"`,
		Greeting:       "Good morning, %s. Time to pray and start your day with God.",
		VerseReference: "Psalm 46:10",
		VerseText:      "Be still, and know that I am God.",
		Word:           "Before the day demands your attention, God invites you to stillness — not silence, but surrender. In the quiet, He strengthens you. You don't need to rush — you need to rest in Him first.",
		Application:    `Take 3 deep breaths and whisper, "God, I trust You today." That moment of peace can shape your entire day.`,
		Prayer:         "Heavenly Father, Thank You for the gift of today. As I step into the hours ahead, I choose stillness before You. Quiet my heart from anxiety and noise. Help me walk with peace, speak with kindness, and act with purpose. Let my choices reflect Your wisdom and my heart reflect Your love. Be with me in every moment, and lead me where You want me to go. In Jesus' name, Amen.",
		Closing:        "📖 GABE is always by your side — you are never alone.",
	},
	DevotionEvening: {
		Title:          `🌙 EVENING DEVOTION: "Lay It Down"`,
		Greeting:       "Good evening, %s. You've made it through the day. Let's pause, reflect, and pray together.",
		VerseReference: "1 Peter 5:7",
		VerseText:      "Cast all your anxiety on Him because He cares for you.",
		Word:           "You weren't meant to carry it all. God sees the pressure, the thoughts, the unspoken worries — and He's asking you to hand them over. Lay it down tonight. Rest in Him, not just sleep.",
		Application:    `Think of one thing that's weighing on your heart. Whisper it to God. Then say, "I release it to You." That's how peace begins.`,
		Prayer:         "Lord, Thank You for walking with me today — through the joys, the stress, the quiet moments, and the mess. As night falls, I place my thoughts, my worries, and my plans in Your hands. Refresh my body, renew my mind, and fill my heart with peace. Watch over me and those I love. In Jesus' name, Amen.",
		Closing:        "💬 GABE is always by your side — you are never alone.",
	},
}

// PrayerChallenges is the fixed bank the daily challenge is drawn from.
// Order matters: the date-to-challenge mapping indexes into this slice.
var PrayerChallenges = []string{
	"Pray for someone who has hurt you and ask God to heal their heart",
	"Write a prayer of gratitude for three specific things from this week",
	"Pray for a world leader or someone in authority",
	"Ask God to show you how to serve someone in need today",
	"Pray for wisdom in a decision you're facing",
	"Thank God for His faithfulness in a difficult season of your life",
	"Pray for peace in a conflict situation you know about",
	"Ask God to help you forgive yourself for something you regret",
}

var MasteryVerses = []Verse{
	{Reference: "John 3:16", Text: "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life.", Theme: "love"},
	{Reference: "Romans 8:28", Text: "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.", Theme: "hope"},
	{Reference: "Philippians 4:6", Text: "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God.", Theme: "anxiety"},
	{Reference: "Psalm 34:18", Text: "The Lord is close to the brokenhearted and saves those who are crushed in spirit.", Theme: "sadness"},
	{Reference: "James 1:17", Text: "Every good and perfect gift is from above, coming down from the Father of the heavenly lights.", Theme: "gratitude"},
}

var AdventureStops = []AdventureStop{
	{Book: "Genesis", Theme: "Beginnings", Lesson: "God creates and calls us into relationship"},
	{Book: "Exodus", Theme: "Deliverance", Lesson: "God rescues His people from bondage"},
	{Book: "Psalms", Theme: "Worship", Lesson: "Honest prayers and praise in all seasons"},
	{Book: "Proverbs", Theme: "Wisdom", Lesson: "Living skillfully according to God's design"},
	{Book: "Matthew", Theme: "The King", Lesson: "Jesus as the promised Messiah"},
	{Book: "John", Theme: "Life", Lesson: "Jesus as the source of eternal life"},
	{Book: "Acts", Theme: "Mission", Lesson: "The Holy Spirit empowers the church"},
	{Book: "Romans", Theme: "Grace", Lesson: "Salvation through faith, not works"},
	{Book: "Ephesians", Theme: "Unity", Lesson: "Our identity and purpose in Christ"},
}

var MoodMissions = map[string]MoodMission{
	"sad": {
		Challenge: "Read Psalm 34:18 and write one thing you're grateful for today",
		Comfort:   "God is close to you in this sadness. You're not alone.",
		Badge:     "Comfort Seeker",
	},
	"anxious": {
		Challenge: `Take 3 deep breaths and pray: "God, I trust You with my worries"`,
		Comfort:   "God invites you to cast all your anxiety on Him because He cares for you.",
		Badge:     "Peace Finder",
	},
	"grateful": {
		Challenge: "List 5 things you're thankful for and pray a prayer of praise",
		Comfort:   "Your grateful heart brings joy to God's heart.",
		Badge:     "Gratitude Keeper",
	},
	"angry": {
		Challenge: "Pray for someone who has made you angry and ask for a soft heart",
		Comfort:   "God sees your anger and offers His peace to calm your heart.",
		Badge:     "Peacemaker",
	},
	"tired": {
		Challenge: "Ask God for rest and strength, then take a few minutes of quiet time",
		Comfort:   "Come to Jesus, all who are weary, and He will give you rest.",
		Badge:     "Rest Seeker",
	},
}

// DefaultMood is used when an unknown mood label comes in.
const DefaultMood = "anxious"

// MoodMissionFor returns the mission for a mood, falling back to DefaultMood.
func MoodMissionFor(mood string) (string, MoodMission) {
	if m, ok := MoodMissions[mood]; ok {
		return mood, m
	}
	return DefaultMood, MoodMissions[DefaultMood]
}
