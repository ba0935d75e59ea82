package progress

import "time"

// Devotion streak variants. Completing a morning or evening devotion also
// advances the generic devotion streak, which is what callers report back.
const (
	StreakMorning = "morning"
	StreakEvening = "evening"
	StreakGeneric = "generic"
)

// touchStreak applies the one streak rule: continue when the last completion
// was yesterday, otherwise restart at 1, and stamp today. It is NOT
// idempotent within a day; callers must run the completed-today guard first
// or a same-day second call double-increments.
func touchStreak(count *int, lastDate *string, today time.Time) {
	yesterday := isoDate(today.AddDate(0, 0, -1))
	if *lastDate == yesterday {
		*count++
	} else {
		*count = 1
	}
	*lastDate = isoDate(today)
}

// TouchPrayerStreak advances the prayer streak for today.
func TouchPrayerStreak(r *Record, today time.Time) {
	touchStreak(&r.Streaks.Prayer, &r.Streaks.LastPrayer, today)
}

// TouchDevotionStreak advances the devotion streak for today. Morning and
// evening variants advance their own counter and the generic one.
func TouchDevotionStreak(r *Record, variant string, today time.Time) {
	switch variant {
	case StreakMorning:
		touchStreak(&r.Streaks.MorningDevotion, &r.Streaks.LastMorningDevotion, today)
	case StreakEvening:
		touchStreak(&r.Streaks.EveningDevotion, &r.Streaks.LastEveningDevotion, today)
	}
	touchStreak(&r.Streaks.Devotion, &r.Streaks.LastDevotion, today)
}

// CompletedToday is the shared already-completed-today guard: it compares a
// stored last-completion date against today's calendar date.
func CompletedToday(lastDate string, today time.Time) bool {
	return lastDate != "" && lastDate == isoDate(today)
}

// DevotionStreakCount returns the counter for a variant streak.
func DevotionStreakCount(r *Record, variant string) int {
	switch variant {
	case StreakMorning:
		return r.Streaks.MorningDevotion
	case StreakEvening:
		return r.Streaks.EveningDevotion
	default:
		return r.Streaks.Devotion
	}
}

// LastDevotionDate returns the last-completion date for a variant streak.
func LastDevotionDate(r *Record, variant string) string {
	switch variant {
	case StreakMorning:
		return r.Streaks.LastMorningDevotion
	case StreakEvening:
		return r.Streaks.LastEveningDevotion
	default:
		return r.Streaks.LastDevotion
	}
}
