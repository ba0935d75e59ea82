package content

import "sort"

// SessionDefinition is one session within a guided study.
type SessionDefinition struct {
	Number             int      `json:"session_number"`
	Title              string   `json:"title"`
	ScriptureReference string   `json:"scripture_reference"`
	ScriptureText      string   `json:"scripture_text"`
	Questions          []string `json:"questions"`
	XPReward           int      `json:"xp_reward"`
}

// StudyDefinition is a named, ordered sequence of devotional sessions.
type StudyDefinition struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Duration    string              `json:"duration"`
	XPReward    int                 `json:"xp_reward"`
	Sessions    []SessionDefinition `json:"sessions"`
}

// SessionCount reports how many sessions the study has.
func (s StudyDefinition) SessionCount() int {
	return len(s.Sessions)
}

// Session returns the 1-based session n, or false when out of range.
func (s StudyDefinition) Session(n int) (SessionDefinition, bool) {
	if n < 1 || n > len(s.Sessions) {
		return SessionDefinition{}, false
	}
	return s.Sessions[n-1], true
}

var Studies = map[string]StudyDefinition{
	"trusting_god": {
		ID:          "trusting_god",
		Title:       "Trusting God in Difficult Times",
		Description: "Learn to trust God's goodness when life feels uncertain",
		Duration:    "10-15 min each",
		XPReward:    5,
		Sessions: []SessionDefinition{
			{
				Number:             1,
				Title:              "God's Faithfulness in the Past",
				ScriptureReference: "Psalm 77:11-12",
				ScriptureText:      "I will remember the deeds of the Lord; yes, I will remember your miracles of long ago. I will consider all your works and meditate on all your mighty deeds.",
				Questions: []string{
					"When have you seen God's faithfulness in your life before?",
					"How can remembering God's past goodness help you trust Him today?",
					`What "mighty deeds" of God do you want to remember more often?`,
				},
				XPReward: 4,
			},
			{
				Number:             2,
				Title:              "Trusting God's Character",
				ScriptureReference: "Romans 8:28",
				ScriptureText:      "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.",
				Questions: []string{
					"What does this verse teach you about God's character?",
					"How might God be working for good in a difficult situation you're facing?",
					"What helps you remember that God's purposes are always loving?",
				},
				XPReward: 4,
			},
			{
				Number:             3,
				Title:              "Casting Your Anxieties",
				ScriptureReference: "1 Peter 5:7",
				ScriptureText:      "Cast all your anxiety on him because he cares for you.",
				Questions: []string{
					"What anxieties do you need to cast on God today?",
					"How does knowing God cares for you change your perspective on worry?",
					`What practical steps can you take to "cast" your worries on God?`,
				},
				XPReward: 4,
			},
		},
	},
	"love_in_action": {
		ID:          "love_in_action",
		Title:       "Love in Action: Serving Others",
		Description: "Discover practical ways to show God's love to others",
		Duration:    "12-18 min each",
		XPReward:    5,
		Sessions: []SessionDefinition{
			{
				Number:             1,
				Title:              "The Greatest Commandment",
				ScriptureReference: "Matthew 22:37-39",
				ScriptureText:      `Jesus replied: "Love the Lord your God with all your heart and with all your soul and with all your mind. This is the first and greatest commandment. And the second is like it: Love your neighbor as yourself."`,
				Questions: []string{
					`What does it mean to love God with "all" your heart, soul, and mind?`,
					`Who is your "neighbor" that God is calling you to love?`,
					"How can loving God more deeply help you love others better?",
				},
				XPReward: 4,
			},
			{
				Number:             2,
				Title:              "Practical Love",
				ScriptureReference: "1 John 3:18",
				ScriptureText:      "Dear children, let us not love with words or speech but with actions and in truth.",
				Questions: []string{
					"What's the difference between loving with words vs. loving with actions?",
					"What specific action could you take this week to show love to someone?",
					`How does loving "in truth" guide the way we serve others?`,
				},
				XPReward: 4,
			},
			{
				Number:             3,
				Title:              "Serving the Least",
				ScriptureReference: "Matthew 25:40",
				ScriptureText:      `The King will reply, "Truly I tell you, whatever you did for one of the least of these brothers and sisters of mine, you did for me."`,
				Questions: []string{
					`Who are "the least of these" in your community?`,
					"How does serving others connect us to Jesus?",
					"What barriers prevent you from serving more, and how can you overcome them?",
				},
				XPReward: 4,
			},
		},
	},
	"identity_in_christ": {
		ID:          "identity_in_christ",
		Title:       "Your Identity in Christ",
		Description: "Understand who you are as God's beloved child",
		Duration:    "8-12 min each",
		XPReward:    6,
		Sessions: []SessionDefinition{
			{
				Number:             1,
				Title:              "Chosen and Beloved",
				ScriptureReference: "Ephesians 1:4",
				ScriptureText:      "For he chose us in him before the creation of the world to be holy and blameless in his sight. In love...",
				Questions: []string{
					"What does it mean that God chose you before creation?",
					`How does being "chosen" change how you see yourself?`,
					"What does God's love for you look like in your daily life?",
				},
				XPReward: 3,
			},
			{
				Number:             2,
				Title:              "Children of God",
				ScriptureReference: "1 John 3:1",
				ScriptureText:      "See what great love the Father has lavished on us, that we should be called children of God! And that is what we are!",
				Questions: []string{
					`What does it mean to be called a "child of God"?`,
					`How has God "lavished" His love on you?`,
					"How should being God's child affect your daily decisions?",
				},
				XPReward: 3,
			},
			{
				Number:             3,
				Title:              "New Creation",
				ScriptureReference: "2 Corinthians 5:17",
				ScriptureText:      "Therefore, if anyone is in Christ, the new creation has come: The old has gone, the new is here!",
				Questions: []string{
					`What "old" things in your life has God made new?`,
					`How does being a "new creation" give you hope?`,
					"What areas of your life still need God's transforming work?",
				},
				XPReward: 3,
			},
			{
				Number:             4,
				Title:              "More Than Conquerors",
				ScriptureReference: "Romans 8:37",
				ScriptureText:      "No, in all these things we are more than conquerors through him who loved us.",
				Questions: []string{
					"What challenges are you facing that God can help you conquer?",
					`How does Christ's love make you "more than a conqueror"?`,
					"How can you encourage someone else with this truth this week?",
				},
				XPReward: 3,
			},
		},
	},
}

// StudyByID looks a study up in the catalog.
func StudyByID(id string) (StudyDefinition, bool) {
	s, ok := Studies[id]
	return s, ok
}

// StudyIDs returns the catalog ids in stable order. Resume scans and study
// listings iterate in this order so behavior does not depend on map ordering.
func StudyIDs() []string {
	ids := make([]string, 0, len(Studies))
	for id := range Studies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
