package progress

import (
	"errors"
	"fmt"

	"github.com/gabelabs/gabe-web/internal/content"
)

var (
	// ErrStudyNotFound means the study id is not in the catalog.
	ErrStudyNotFound = errors.New("study not found")
	// ErrStudyNotStarted means the session never started the study.
	ErrStudyNotStarted = errors.New("study not started")
	// ErrSessionNotFound means the session number is outside the study.
	ErrSessionNotFound = errors.New("study session not found")
)

// StudySessionView is the payload for the session a user should do next.
type StudySessionView struct {
	StudyID            string   `json:"study_id"`
	Title              string   `json:"title"`
	SessionNumber      int      `json:"session_number"`
	ScriptureReference string   `json:"scripture_reference"`
	ScriptureText      string   `json:"scripture_text"`
	Questions          []string `json:"questions"`
	XPReward           int      `json:"xp_reward"`
}

// StudySessionResult reports the outcome of completing one study session.
type StudySessionResult struct {
	Success       bool     `json:"success"`
	XPEarned      int      `json:"xp_earned"`
	NewLevel      string   `json:"new_level"`
	NewBadges     []string `json:"new_badges"`
	TotalXP       int      `json:"total_xp"`
	StudyComplete bool     `json:"study_complete"`
	Message       string   `json:"message"`
}

// StartStudy begins (or restarts) a study for this record. Any prior
// progress for the study is discarded; there is no resume guard.
func StartStudy(r *Record, studyID string) error {
	if _, ok := content.StudyByID(studyID); !ok {
		return ErrStudyNotFound
	}
	r.Studies[studyID] = &StudyProgress{
		CurrentSession:    1,
		CompletedSessions: []int{},
		Answers:           map[string][]string{},
	}
	return nil
}

// CurrentStudySession scans the record's studies in catalog-id order and
// returns the next session of the first one still in progress. Only one
// in-progress study is ever surfaced; if a user starts a second study the
// first (by id order) keeps resuming until it is finished. Known
// limitation, kept from the original design.
func CurrentStudySession(r *Record) (StudySessionView, bool) {
	for _, id := range content.StudyIDs() {
		sp, ok := r.Studies[id]
		if !ok {
			continue
		}
		study, ok := content.StudyByID(id)
		if !ok {
			continue
		}
		session, ok := study.Session(sp.CurrentSession)
		if !ok {
			continue
		}
		return StudySessionView{
			StudyID:            id,
			Title:              study.Title,
			SessionNumber:      session.Number,
			ScriptureReference: session.ScriptureReference,
			ScriptureText:      session.ScriptureText,
			Questions:          session.Questions,
			XPReward:           session.XPReward,
		}, true
	}
	return StudySessionView{}, false
}

// CompleteStudySession records the answers for one session, marks it done,
// awards the session's XP, and advances the study pointer. The pointer
// always moves to sessionNumber+1 even when earlier sessions were skipped,
// so it can run ahead of the completed set; the study only counts as
// finished once the completed set covers every session, regardless of which
// numbers were done in what order.
func CompleteStudySession(r *Record, studyID string, sessionNumber int, answers []string) (StudySessionResult, error) {
	study, ok := content.StudyByID(studyID)
	if !ok {
		return StudySessionResult{}, ErrStudyNotFound
	}
	sp, ok := r.Studies[studyID]
	if !ok {
		return StudySessionResult{}, ErrStudyNotStarted
	}
	session, ok := study.Session(sessionNumber)
	if !ok {
		return StudySessionResult{}, ErrSessionNotFound
	}

	// Re-answering a session overwrites the prior answers.
	sp.Answers[fmt.Sprintf("session_%d", sessionNumber)] = answers

	done := false
	for _, n := range sp.CompletedSessions {
		if n == sessionNumber {
			done = true
			break
		}
	}
	if !done {
		sp.CompletedSessions = append(sp.CompletedSessions, sessionNumber)
	}

	AwardXP(r, session.XPReward)

	studyComplete := len(sp.CompletedSessions) >= study.SessionCount()
	if studyComplete {
		r.StudiesCompleted++
		sp.CurrentSession = study.SessionCount() + 1
	} else {
		sp.CurrentSession = sessionNumber + 1
	}

	newBadges := EvaluateBadges(r)

	message := "Great reflection! Your insights are valuable for spiritual growth."
	if studyComplete {
		message = fmt.Sprintf("Congratulations! You've completed the %q study!", study.Title)
	}

	return StudySessionResult{
		Success:       true,
		XPEarned:      session.XPReward,
		NewLevel:      r.Level,
		NewBadges:     newBadges,
		TotalXP:       r.XP,
		StudyComplete: studyComplete,
		Message:       message,
	}, nil
}
