// Package progress implements the companion's progression engine: the
// per-session progression record, the XP/level ledger, streak tracking,
// badge evaluation, daily content selection, and the guided study state
// machine. Everything operates on one in-memory Record per action; the
// Store owns persistence.
package progress

import "time"

// Level names double as badge names when a level is reached.
const (
	LevelSeed          = "Seed"
	LevelShepherd      = "Shepherd"
	LevelDisciple      = "Disciple"
	LevelWarrior       = "Warrior"
	LevelServantLeader = "Servant Leader"
)

// dateLayout is the calendar-day format used for streak comparisons.
const dateLayout = "2006-01-02"

// Streaks holds consecutive-day counters and the last calendar day each
// action type was completed. Empty last-dates mean "never".
type Streaks struct {
	Devotion            int    `json:"devotion"`
	Prayer              int    `json:"prayer"`
	MorningDevotion     int    `json:"morning_devotion"`
	EveningDevotion     int    `json:"evening_devotion"`
	LastDevotion        string `json:"last_devotion,omitempty"`
	LastPrayer          string `json:"last_prayer,omitempty"`
	LastMorningDevotion string `json:"last_morning_devotion,omitempty"`
	LastEveningDevotion string `json:"last_evening_devotion,omitempty"`
}

// StudyProgress tracks a user's position within one guided study.
// CurrentSession is 1-based; a value past the study's session count means
// the study is finished.
type StudyProgress struct {
	CurrentSession    int                 `json:"current_session"`
	CompletedSessions []int               `json:"completed_sessions"`
	Answers           map[string][]string `json:"answers"`
}

// Record is one session's full progression state.
type Record struct {
	XP                    int                       `json:"xp"`
	Level                 string                    `json:"level"`
	Streaks               Streaks                   `json:"streak"`
	Badges                []string                  `json:"badges"`
	CompletedChallenges   []string                  `json:"completed_challenges"`
	AdventurePosition     int                       `json:"scripture_adventure_position"`
	VerseMasteryLog       []string                  `json:"verse_mastery_progress"`
	MoodMissionsCompleted []string                  `json:"mood_missions_completed"`
	TotalActions          int                       `json:"total_actions"`
	Studies               map[string]*StudyProgress `json:"bible_studies"`
	StudiesCompleted      int                       `json:"studies_completed"`
}

// NewRecord returns a fresh record with all counters zeroed.
func NewRecord() *Record {
	return &Record{
		Level:                 LevelSeed,
		Badges:                []string{},
		CompletedChallenges:   []string{},
		VerseMasteryLog:       []string{},
		MoodMissionsCompleted: []string{},
		Studies:               map[string]*StudyProgress{},
	}
}

// Normalize backfills fields missing from older stored shapes. The record
// schema has grown over time (studies were added later), so loaders must
// accept records persisted before those fields existed.
func (r *Record) Normalize() {
	if r.Level == "" {
		r.Level = LevelSeed
	}
	if r.Badges == nil {
		r.Badges = []string{}
	}
	if r.CompletedChallenges == nil {
		r.CompletedChallenges = []string{}
	}
	if r.VerseMasteryLog == nil {
		r.VerseMasteryLog = []string{}
	}
	if r.MoodMissionsCompleted == nil {
		r.MoodMissionsCompleted = []string{}
	}
	if r.Studies == nil {
		r.Studies = map[string]*StudyProgress{}
	}
	for _, sp := range r.Studies {
		if sp.CompletedSessions == nil {
			sp.CompletedSessions = []int{}
		}
		if sp.Answers == nil {
			sp.Answers = map[string][]string{}
		}
	}
}

// Clone deep-copies the record so stores never hand out aliased state.
func (r *Record) Clone() *Record {
	c := *r
	c.Badges = append([]string(nil), r.Badges...)
	c.CompletedChallenges = append([]string(nil), r.CompletedChallenges...)
	c.VerseMasteryLog = append([]string(nil), r.VerseMasteryLog...)
	c.MoodMissionsCompleted = append([]string(nil), r.MoodMissionsCompleted...)
	c.Studies = make(map[string]*StudyProgress, len(r.Studies))
	for id, sp := range r.Studies {
		cp := &StudyProgress{
			CurrentSession:    sp.CurrentSession,
			CompletedSessions: append([]int(nil), sp.CompletedSessions...),
			Answers:           make(map[string][]string, len(sp.Answers)),
		}
		for k, v := range sp.Answers {
			cp.Answers[k] = append([]string(nil), v...)
		}
		c.Studies[id] = cp
	}
	c.Normalize()
	return &c
}

// HasBadge reports whether the badge was already awarded.
func (r *Record) HasBadge(name string) bool {
	for _, b := range r.Badges {
		if b == name {
			return true
		}
	}
	return false
}

func isoDate(t time.Time) string {
	return t.Format(dateLayout)
}
