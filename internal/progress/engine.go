package progress

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gabelabs/gabe-web/internal/content"
	"github.com/gabelabs/gabe-web/internal/logger"
)

// Result type discriminators shared by the daily-content operations.
const (
	ResultNewDevotion      = "new_devotion"
	ResultNewChallenge     = "new_challenge"
	ResultNewStop          = "new_stop"
	ResultAlreadyCompleted = "already_completed"
	ResultJourneyCompleted = "completed"
	ResultStudySession     = "study_session"
	ResultStudyList        = "study_list"
)

// Engine runs every progression action as one load-mutate-save cycle
// against the Store. Cycles for the same session id are serialized with a
// keyed mutex so concurrent requests cannot clobber each other's saves.
type Engine struct {
	store Store
	log   *logger.Log
	now   func() time.Time

	// rng is shared across sessions; rngMu serializes it because quiz
	// generation runs outside the per-session locks.
	rngMu sync.Mutex
	rng   *rand.Rand

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option tweaks engine construction; used by tests to pin the clock.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand overrides the quiz selection randomness.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   logger.New(),
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		locks: map[string]*sync.Mutex{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[sessionID] = l
	}
	return l
}

// update runs one serialized load-mutate-save cycle for a session.
func (e *Engine) update(sessionID string, mutate func(*Record) error) error {
	l := e.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	r, err := e.store.Load(sessionID)
	if err != nil {
		return err
	}
	if err := mutate(r); err != nil {
		return err
	}
	if err := e.store.Save(sessionID, r); err != nil {
		e.log.WithError(err).Error("Failed to save progress")
		return err
	}
	e.log.Session(sessionID, fmt.Sprintf("progress updated: xp=%d level=%s actions=%d", r.XP, r.Level, r.TotalActions))
	return nil
}

// view runs a read-only cycle; Load still creates a default record for a
// session the store has never seen.
func (e *Engine) view(sessionID string) (*Record, error) {
	l := e.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()
	return e.store.Load(sessionID)
}

// DevotionResult is either today's devotion or an already-completed notice.
type DevotionResult struct {
	Type          string            `json:"type"`
	Message       string            `json:"message,omitempty"`
	Devotion      *content.Devotion `json:"devotion,omitempty"`
	DevotionType  string            `json:"devotion_type"`
	Streak        int               `json:"streak,omitempty"`
	CurrentStreak int               `json:"current_streak"`
}

// CompletionResult reports an XP-awarding completion (devotion or prayer).
type CompletionResult struct {
	XPEarned  int      `json:"xp_earned"`
	NewLevel  string   `json:"new_level"`
	Streak    int      `json:"streak"`
	NewBadges []string `json:"new_badges"`
	TotalXP   int      `json:"total_xp"`
}

// GetDailyDevotion serves the morning or evening devotion for the current
// hour, personalized with the user's name, unless that variant was already
// completed today.
func (e *Engine) GetDailyDevotion(sessionID, userName string) (DevotionResult, error) {
	r, err := e.view(sessionID)
	if err != nil {
		return DevotionResult{}, err
	}

	now := e.now()
	variant := DevotionVariantForHour(now.Hour())

	if CompletedToday(LastDevotionDate(r, variant), now) {
		comeBack := "tomorrow morning"
		if variant == StreakMorning {
			comeBack = "tonight"
		}
		return DevotionResult{
			Type:         ResultAlreadyCompleted,
			Message:      fmt.Sprintf("You've already completed your %s devotion today! Come back %s for the next one.", variant, comeBack),
			Streak:       DevotionStreakCount(r, variant),
			DevotionType: variant,
		}, nil
	}

	if userName == "" {
		userName = "friend"
	}
	devotion := content.Devotions[variant]
	devotion.Greeting = fmt.Sprintf(devotion.Greeting, userName)

	return DevotionResult{
		Type:          ResultNewDevotion,
		Devotion:      &devotion,
		DevotionType:  variant,
		CurrentStreak: DevotionStreakCount(r, variant),
	}, nil
}

// CompleteDevotion marks the current time-of-day devotion done, advancing
// both the variant streak and the generic devotion streak, and awards XP.
// The reflection text is accepted but not stored; it exists so the UI can
// prompt for one.
func (e *Engine) CompleteDevotion(sessionID, reflection string) (CompletionResult, error) {
	var result CompletionResult
	err := e.update(sessionID, func(r *Record) error {
		now := e.now()
		variant := DevotionVariantForHour(now.Hour())

		TouchDevotionStreak(r, variant, now)
		AwardXP(r, 2)
		newBadges := EvaluateBadges(r)

		result = CompletionResult{
			XPEarned:  2,
			NewLevel:  r.Level,
			Streak:    r.Streaks.Devotion,
			NewBadges: newBadges,
			TotalXP:   r.XP,
		}
		return nil
	})
	return result, err
}

// ChallengeResult is either today's prayer challenge or an already-
// completed notice carrying the current streak.
type ChallengeResult struct {
	Type          string `json:"type"`
	Message       string `json:"message,omitempty"`
	Challenge     string `json:"challenge,omitempty"`
	Streak        int    `json:"streak,omitempty"`
	CurrentStreak int    `json:"current_streak"`
}

// GetPrayerChallenge serves today's challenge. The same calendar date maps
// to the same challenge for every session.
func (e *Engine) GetPrayerChallenge(sessionID string) (ChallengeResult, error) {
	r, err := e.view(sessionID)
	if err != nil {
		return ChallengeResult{}, err
	}

	now := e.now()
	if CompletedToday(r.Streaks.LastPrayer, now) {
		return ChallengeResult{
			Type:    ResultAlreadyCompleted,
			Message: "You've already completed today's prayer challenge! Come back tomorrow.",
			Streak:  r.Streaks.Prayer,
		}, nil
	}

	return ChallengeResult{
		Type:          ResultNewChallenge,
		Challenge:     ChallengeForDate(isoDate(now)),
		CurrentStreak: r.Streaks.Prayer,
	}, nil
}

// CompletePrayerChallenge logs the challenge, advances the prayer streak
// and awards XP.
func (e *Engine) CompletePrayerChallenge(sessionID string) (CompletionResult, error) {
	var result CompletionResult
	err := e.update(sessionID, func(r *Record) error {
		now := e.now()
		TouchPrayerStreak(r, now)
		r.CompletedChallenges = append(r.CompletedChallenges, "prayer_"+isoDate(now))
		AwardXP(r, 2)
		newBadges := EvaluateBadges(r)

		result = CompletionResult{
			XPEarned:  2,
			NewLevel:  r.Level,
			Streak:    r.Streaks.Prayer,
			NewBadges: newBadges,
			TotalXP:   r.XP,
		}
		return nil
	})
	return result, err
}

// GetVerseQuiz generates a random verse mastery question. It touches no
// session state; scoring happens on submission.
func (e *Engine) GetVerseQuiz() VerseQuiz {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return GenerateVerseQuiz(e.rng)
}

// VerseResult reports the outcome of a quiz submission. Wrong answers
// change nothing and earn nothing.
type VerseResult struct {
	Correct        bool     `json:"correct"`
	XPEarned       int      `json:"xp_earned,omitempty"`
	NewBadges      []string `json:"new_badges,omitempty"`
	TotalXP        int      `json:"total_xp"`
	VersesMastered int      `json:"verses_mastered,omitempty"`
	Encouragement  string   `json:"encouragement,omitempty"`
}

// SubmitVerseAnswer scores a quiz answer and, when correct, logs the
// mastery and awards XP.
func (e *Engine) SubmitVerseAnswer(sessionID, submitted, expected, quizType string) (VerseResult, error) {
	if !CheckVerseAnswer(submitted, expected, quizType) {
		r, err := e.view(sessionID)
		if err != nil {
			return VerseResult{}, err
		}
		return VerseResult{
			Correct:       false,
			Encouragement: "Keep studying! God's Word is worth learning.",
			TotalXP:       r.XP,
		}, nil
	}

	var result VerseResult
	err := e.update(sessionID, func(r *Record) error {
		AwardXP(r, 1)
		r.VerseMasteryLog = append(r.VerseMasteryLog, e.now().Format(time.RFC3339))
		newBadges := EvaluateBadges(r)

		result = VerseResult{
			Correct:        true,
			XPEarned:       1,
			NewBadges:      newBadges,
			TotalXP:        r.XP,
			VersesMastered: len(r.VerseMasteryLog),
		}
		return nil
	})
	return result, err
}

// AdventureView is the next stop on the scripture adventure, or a
// journey-completed notice once the position runs past the path.
type AdventureView struct {
	Type       string                 `json:"type"`
	Message    string                 `json:"message,omitempty"`
	Stop       *content.AdventureStop `json:"stop,omitempty"`
	Position   int                    `json:"position,omitempty"`
	TotalStops int                    `json:"total_stops,omitempty"`
}

// GetAdventureStop returns the stop at the session's current position.
// Stops are sequential, never random.
func (e *Engine) GetAdventureStop(sessionID string) (AdventureView, error) {
	r, err := e.view(sessionID)
	if err != nil {
		return AdventureView{}, err
	}

	if r.AdventurePosition >= len(content.AdventureStops) {
		return AdventureView{
			Type:    ResultJourneyCompleted,
			Message: "Congratulations! You've completed the entire Scripture Adventure journey!",
		}, nil
	}

	stop := content.AdventureStops[r.AdventurePosition]
	return AdventureView{
		Type:       ResultNewStop,
		Stop:       &stop,
		Position:   r.AdventurePosition + 1,
		TotalStops: len(content.AdventureStops),
	}, nil
}

// AdventureResult reports a completed stop.
type AdventureResult struct {
	XPEarned      int      `json:"xp_earned"`
	NewLevel      string   `json:"new_level"`
	NewBadges     []string `json:"new_badges"`
	TotalXP       int      `json:"total_xp"`
	NextAvailable bool     `json:"next_available"`
}

// CompleteAdventureStop advances the position unconditionally; the getter
// treats an out-of-range position as journey completed, so no upper bound
// is enforced here.
func (e *Engine) CompleteAdventureStop(sessionID string) (AdventureResult, error) {
	var result AdventureResult
	err := e.update(sessionID, func(r *Record) error {
		r.AdventurePosition++
		AwardXP(r, 3)
		newBadges := EvaluateBadges(r)

		result = AdventureResult{
			XPEarned:      3,
			NewLevel:      r.Level,
			NewBadges:     newBadges,
			TotalXP:       r.XP,
			NextAvailable: r.AdventurePosition < len(content.AdventureStops),
		}
		return nil
	})
	return result, err
}

// MoodMissionView is a mission matched to a mood label.
type MoodMissionView struct {
	Mood      string `json:"mood"`
	Challenge string `json:"challenge"`
	Comfort   string `json:"comfort"`
	Badge     string `json:"badge"`
}

// GetMoodMission returns the mission for a mood, falling back to the
// default for unknown labels. No session state involved.
func (e *Engine) GetMoodMission(mood string) MoodMissionView {
	mood, m := content.MoodMissionFor(normalizeMood(mood))
	return MoodMissionView{
		Mood:      mood,
		Challenge: m.Challenge,
		Comfort:   m.Comfort,
		Badge:     m.Badge,
	}
}

// MoodResult reports a completed mood mission.
type MoodResult struct {
	XPEarned       int      `json:"xp_earned"`
	NewBadges      []string `json:"new_badges"`
	TotalXP        int      `json:"total_xp"`
	ComfortMessage string   `json:"comfort_message"`
}

// CompleteMoodMission logs a mood mission token for today and awards XP.
// Repeating the same mood on the same day is allowed; only distinct moods
// count toward the resilience badge.
func (e *Engine) CompleteMoodMission(sessionID, mood string) (MoodResult, error) {
	var result MoodResult
	err := e.update(sessionID, func(r *Record) error {
		token := fmt.Sprintf("mood_%s_%s", normalizeMood(mood), isoDate(e.now()))
		r.MoodMissionsCompleted = append(r.MoodMissionsCompleted, token)
		AwardXP(r, 1)
		newBadges := EvaluateBadges(r)

		result = MoodResult{
			XPEarned:       1,
			NewBadges:      newBadges,
			TotalXP:        r.XP,
			ComfortMessage: "You've taken a step toward emotional and spiritual health. God sees your heart.",
		}
		return nil
	})
	return result, err
}

// Overview is the full progress summary for a session.
type Overview struct {
	Level              string   `json:"level"`
	XP                 int      `json:"xp"`
	NextLevel          string   `json:"next_level"`
	ProgressPercentage float64  `json:"progress_percentage"`
	Badges             []string `json:"badges"`
	Streaks            Streaks  `json:"streaks"`
	AdventureProgress  int      `json:"adventure_progress"`
	VersesMastered     int      `json:"verses_mastered"`
	TotalActions       int      `json:"total_actions"`
	StudiesCompleted   int      `json:"studies_completed"`
}

// GetProgress builds the overview for a session.
func (e *Engine) GetProgress(sessionID string) (Overview, error) {
	r, err := e.view(sessionID)
	if err != nil {
		return Overview{}, err
	}

	next, pct := LevelProgress(r.XP)
	return Overview{
		Level:              r.Level,
		XP:                 r.XP,
		NextLevel:          next,
		ProgressPercentage: pct,
		Badges:             r.Badges,
		Streaks:            r.Streaks,
		AdventureProgress:  r.AdventurePosition,
		VersesMastered:     len(r.VerseMasteryLog),
		TotalActions:       r.TotalActions,
		StudiesCompleted:   r.StudiesCompleted,
	}, nil
}

// StudyCatalogEntry is one study in the listed catalog.
type StudyCatalogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Sessions    int    `json:"sessions"`
	Duration    string `json:"duration"`
	XPReward    int    `json:"xp_reward"`
}

// StudiesView is either the resumed in-progress session or the catalog.
type StudiesView struct {
	Type    string              `json:"type"`
	Session *StudySessionView   `json:"session,omitempty"`
	Studies []StudyCatalogEntry `json:"studies,omitempty"`
}

// GetStudies resumes the session's in-progress study, or lists the catalog
// when nothing is in progress.
func (e *Engine) GetStudies(sessionID string) (StudiesView, error) {
	r, err := e.view(sessionID)
	if err != nil {
		return StudiesView{}, err
	}

	if session, ok := CurrentStudySession(r); ok {
		return StudiesView{Type: ResultStudySession, Session: &session}, nil
	}

	catalog := []StudyCatalogEntry{}
	for _, id := range content.StudyIDs() {
		study, _ := content.StudyByID(id)
		catalog = append(catalog, StudyCatalogEntry{
			ID:          study.ID,
			Title:       study.Title,
			Description: study.Description,
			Sessions:    study.SessionCount(),
			Duration:    study.Duration,
			XPReward:    study.XPReward,
		})
	}
	return StudiesView{Type: ResultStudyList, Studies: catalog}, nil
}

// StartStudy begins (or restarts) a study for this session.
func (e *Engine) StartStudy(sessionID, studyID string) error {
	return e.update(sessionID, func(r *Record) error {
		return StartStudy(r, studyID)
	})
}

// CompleteStudySession records one finished study session.
func (e *Engine) CompleteStudySession(sessionID, studyID string, sessionNumber int, answers []string) (StudySessionResult, error) {
	var result StudySessionResult
	err := e.update(sessionID, func(r *Record) error {
		var err error
		result, err = CompleteStudySession(r, studyID, sessionNumber, answers)
		return err
	})
	return result, err
}

func normalizeMood(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}
