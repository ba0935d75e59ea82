package progress

import "strings"

// Badge names awarded by the evaluator. Level names are also granted as
// badges, but by the ledger when a level is crossed, not here.
const (
	BadgeFaithSeed           = "Faith Seed"
	BadgeDevotionKeeper      = "Devotion Keeper"
	BadgePrayerWarrior       = "Prayer Warrior"
	BadgeVerseSage           = "Verse Sage"
	BadgeScriptureExplorer   = "Scripture Explorer"
	BadgeEmotionalResilience = "Emotional Resilience"
)

// EvaluateBadges checks every badge condition against the record, appends
// any newly qualified badges, and returns just the new ones. Each badge is
// granted at most once; repeat qualification is a no-op.
func EvaluateBadges(r *Record) []string {
	newBadges := []string{}

	grant := func(name string, qualified bool) {
		if qualified && !r.HasBadge(name) {
			r.Badges = append(r.Badges, name)
			newBadges = append(newBadges, name)
		}
	}

	grant(BadgeFaithSeed, r.TotalActions >= 1)
	grant(BadgeDevotionKeeper, r.Streaks.Devotion >= 3)
	grant(BadgePrayerWarrior, countPrayerChallenges(r) >= 5)
	grant(BadgeVerseSage, len(r.VerseMasteryLog) >= 10)
	grant(BadgeScriptureExplorer, r.AdventurePosition >= 5)
	grant(BadgeEmotionalResilience, countDistinctMoods(r) >= 3)

	return newBadges
}

func countPrayerChallenges(r *Record) int {
	n := 0
	for _, c := range r.CompletedChallenges {
		if strings.HasPrefix(c, "prayer") {
			n++
		}
	}
	return n
}

// countDistinctMoods parses mood tokens of the form "mood_{mood}_{date}".
func countDistinctMoods(r *Record) int {
	moods := map[string]struct{}{}
	for _, token := range r.MoodMissionsCompleted {
		parts := strings.Split(token, "_")
		if len(parts) >= 2 {
			moods[parts[1]] = struct{}{}
		}
	}
	return len(moods)
}
