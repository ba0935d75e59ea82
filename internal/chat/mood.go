// internal/chat/mood.go
package chat

import (
	"strings"

	"github.com/schollz/closestmatch"

	"github.com/gabelabs/gabe-web/internal/content"
)

// moodKeywords maps canonical mission moods to words that signal them
// in a chat message.
var moodKeywords = map[string][]string{
	"sad":      {"sad", "down", "depressed", "crying", "heartbroken", "lonely", "hopeless", "miserable"},
	"anxious":  {"anxious", "worried", "scared", "nervous", "afraid", "stressed", "overwhelmed", "panic"},
	"grateful": {"grateful", "thankful", "blessed", "appreciate", "joy", "happy", "wonderful"},
	"angry":    {"angry", "mad", "furious", "frustrated", "annoyed", "hate", "unfair"},
	"tired":    {"tired", "exhausted", "weary", "drained", "burnt out", "worn out", "can't keep going"},
}

// DetectMood infers a mood from a chat message for mission selection
// and visualization. Defaults to "hopeful" when nothing matches.
func DetectMood(message string) string {
	lower := strings.ToLower(message)
	best, bestHits := "hopeful", 0
	for _, mood := range []string{"sad", "anxious", "grateful", "angry", "tired"} {
		hits := 0
		for _, kw := range moodKeywords[mood] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = mood, hits
		}
	}
	return best
}

func missionMoodMatcher() *closestmatch.ClosestMatch {
	moods := []string{}
	for mood := range content.MoodMissions {
		moods = append(moods, mood)
	}

	return closestmatch.New(moods, []int{2})
}

var moodMatcher = missionMoodMatcher()

// CanonicalMood maps a free-form mood word to the closest mission mood.
// Exact matches pass through; near-misses ("anxius", "tiredness") are
// fuzzy-matched against the mission catalog.
func CanonicalMood(mood string) string {
	cleaned := strings.ToLower(strings.TrimSpace(mood))
	if cleaned == "" {
		return content.DefaultMood
	}
	if _, ok := content.MoodMissions[cleaned]; ok {
		return cleaned
	}
	// Closest always guesses; only trust it when the input plausibly
	// starts with the matched mood ("sadness" -> "sad").
	if match := moodMatcher.Closest(cleaned); match != "" && strings.HasPrefix(cleaned, match[:min(3, len(match))]) {
		return match
	}
	return content.DefaultMood
}
