package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStudyUnknown(t *testing.T) {
	r := NewRecord()
	err := StartStudy(r, "walking_on_water")
	assert.ErrorIs(t, err, ErrStudyNotFound)
}

func TestStartStudyRestartsProgress(t *testing.T) {
	r := NewRecord()
	require.NoError(t, StartStudy(r, "trusting_god"))

	_, err := CompleteStudySession(r, "trusting_god", 1, []string{"answer"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Studies["trusting_god"].CurrentSession)

	// Starting again discards everything; there is no resume guard.
	require.NoError(t, StartStudy(r, "trusting_god"))
	sp := r.Studies["trusting_god"]
	assert.Equal(t, 1, sp.CurrentSession)
	assert.Empty(t, sp.CompletedSessions)
	assert.Empty(t, sp.Answers)
}

func TestCompleteStudySessionNotStarted(t *testing.T) {
	r := NewRecord()
	_, err := CompleteStudySession(r, "trusting_god", 1, nil)
	assert.ErrorIs(t, err, ErrStudyNotStarted)
}

func TestCompleteStudySessionBadNumber(t *testing.T) {
	r := NewRecord()
	require.NoError(t, StartStudy(r, "trusting_god"))

	_, err := CompleteStudySession(r, "trusting_god", 99, nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStudyCompletionBoundary(t *testing.T) {
	r := NewRecord()
	require.NoError(t, StartStudy(r, "trusting_god"))

	res, err := CompleteStudySession(r, "trusting_god", 1, []string{"a"})
	require.NoError(t, err)
	assert.False(t, res.StudyComplete)
	assert.Equal(t, 4, res.XPEarned)
	assert.Equal(t, 0, r.StudiesCompleted)

	res, err = CompleteStudySession(r, "trusting_god", 2, []string{"b"})
	require.NoError(t, err)
	assert.False(t, res.StudyComplete)

	res, err = CompleteStudySession(r, "trusting_god", 3, []string{"c"})
	require.NoError(t, err)
	assert.True(t, res.StudyComplete)
	assert.Equal(t, 1, r.StudiesCompleted)
	assert.Equal(t, 4, r.Studies["trusting_god"].CurrentSession, "pointer moves past the end")
	assert.Contains(t, res.Message, "Congratulations")
}

// Completing a later session first must not error. The pointer follows
// whatever session was just done; completion only triggers once the
// completed set covers every session number.
func TestStudyOutOfOrderSessions(t *testing.T) {
	r := NewRecord()
	require.NoError(t, StartStudy(r, "trusting_god"))

	res, err := CompleteStudySession(r, "trusting_god", 3, []string{"c"})
	require.NoError(t, err)
	assert.False(t, res.StudyComplete)
	assert.Equal(t, 4, r.Studies["trusting_god"].CurrentSession,
		"pointer runs ahead of the completed set")

	res, err = CompleteStudySession(r, "trusting_god", 1, []string{"a"})
	require.NoError(t, err)
	assert.False(t, res.StudyComplete)
	assert.Equal(t, 2, r.Studies["trusting_god"].CurrentSession)

	res, err = CompleteStudySession(r, "trusting_god", 2, []string{"b"})
	require.NoError(t, err)
	assert.True(t, res.StudyComplete, "three distinct sessions complete the 3-session study")
	assert.Equal(t, 1, r.StudiesCompleted)
}

func TestStudyRepeatSessionDoesNotDoubleCount(t *testing.T) {
	r := NewRecord()
	require.NoError(t, StartStudy(r, "trusting_god"))

	_, err := CompleteStudySession(r, "trusting_god", 1, []string{"first"})
	require.NoError(t, err)
	res, err := CompleteStudySession(r, "trusting_god", 1, []string{"second"})
	require.NoError(t, err)

	sp := r.Studies["trusting_god"]
	assert.Equal(t, []int{1}, sp.CompletedSessions)
	assert.Equal(t, []string{"second"}, sp.Answers["session_1"], "re-answering overwrites")
	assert.False(t, res.StudyComplete)
	// XP is still awarded on the repeat; only the completed set dedupes.
	assert.Equal(t, 8, r.XP)
}

func TestCurrentStudySessionSingleActive(t *testing.T) {
	r := NewRecord()
	_, ok := CurrentStudySession(r)
	assert.False(t, ok, "nothing started, nothing to resume")

	require.NoError(t, StartStudy(r, "trusting_god"))
	require.NoError(t, StartStudy(r, "identity_in_christ"))

	// Only the first study in catalog-id order resumes.
	view, ok := CurrentStudySession(r)
	require.True(t, ok)
	assert.Equal(t, "identity_in_christ", view.StudyID)
	assert.Equal(t, 1, view.SessionNumber)
	assert.NotEmpty(t, view.Questions)

	// Finish it; the other study surfaces next.
	for n := 1; n <= 4; n++ {
		_, err := CompleteStudySession(r, "identity_in_christ", n, nil)
		require.NoError(t, err)
	}
	view, ok = CurrentStudySession(r)
	require.True(t, ok)
	assert.Equal(t, "trusting_god", view.StudyID)
}
