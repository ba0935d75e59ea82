package progress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBadgesFirstAction(t *testing.T) {
	r := NewRecord()
	assert.Empty(t, EvaluateBadges(r), "no actions, no badges")

	r.TotalActions = 1
	assert.Equal(t, []string{BadgeFaithSeed}, EvaluateBadges(r))
}

func TestEvaluateBadgesDevotionKeeper(t *testing.T) {
	r := NewRecord()
	r.TotalActions = 1
	r.Streaks.Devotion = 3

	got := EvaluateBadges(r)
	assert.Contains(t, got, BadgeDevotionKeeper)
}

func TestEvaluateBadgesPrayerWarriorCountsPrefixedChallenges(t *testing.T) {
	r := NewRecord()
	r.CompletedChallenges = []string{
		"prayer_2024-06-01", "prayer_2024-06-02", "prayer_2024-06-03",
		"reading_2024-06-04",
		"prayer_2024-06-05", "prayer_2024-06-06",
	}

	got := EvaluateBadges(r)
	assert.Contains(t, got, BadgePrayerWarrior)
}

func TestEvaluateBadgesVerseSage(t *testing.T) {
	r := NewRecord()
	for i := 0; i < 10; i++ {
		r.VerseMasteryLog = append(r.VerseMasteryLog, fmt.Sprintf("2024-06-%02dT09:00:00Z", i+1))
	}
	assert.Contains(t, EvaluateBadges(r), BadgeVerseSage)
}

func TestEvaluateBadgesScriptureExplorer(t *testing.T) {
	r := NewRecord()
	r.AdventurePosition = 5
	assert.Contains(t, EvaluateBadges(r), BadgeScriptureExplorer)
}

func TestEvaluateBadgesEmotionalResilienceDistinctMoods(t *testing.T) {
	r := NewRecord()
	r.MoodMissionsCompleted = []string{
		"mood_sad_2024-06-01",
		"mood_sad_2024-06-02",
		"mood_anxious_2024-06-02",
	}
	assert.NotContains(t, EvaluateBadges(r), BadgeEmotionalResilience,
		"two distinct moods is not enough")

	r.MoodMissionsCompleted = append(r.MoodMissionsCompleted, "mood_tired_2024-06-03")
	assert.Contains(t, EvaluateBadges(r), BadgeEmotionalResilience)
}

func TestEvaluateBadgesNeverDuplicates(t *testing.T) {
	r := NewRecord()
	r.TotalActions = 1
	r.Streaks.Devotion = 10

	first := EvaluateBadges(r)
	assert.NotEmpty(t, first)

	// Re-qualifying over and over must not re-award.
	for i := 0; i < 10; i++ {
		assert.Empty(t, EvaluateBadges(r))
	}

	seen := map[string]int{}
	for _, b := range r.Badges {
		seen[b]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "badge %q awarded %d times", name, n)
	}
}
