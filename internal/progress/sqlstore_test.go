package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabelabs/gabe-web/internal/database"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := database.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(db)
}

func TestSQLStoreGetOrCreate(t *testing.T) {
	store := newTestSQLStore(t)

	r, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, LevelSeed, r.Level)
	assert.Zero(t, r.XP)

	// The fresh record was persisted, not just returned
	again, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, r.Level, again.Level)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := newTestSQLStore(t)

	r, err := store.Load("s1")
	require.NoError(t, err)

	r.XP = 12
	r.Level = LevelShepherd
	r.Badges = append(r.Badges, BadgeFaithSeed)
	r.CompletedChallenges = append(r.CompletedChallenges, "prayer_2024-06-01")
	require.NoError(t, store.Save("s1", r))

	got, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.XP)
	assert.Equal(t, LevelShepherd, got.Level)
	assert.Equal(t, []string{BadgeFaithSeed}, got.Badges)
	assert.Equal(t, []string{"prayer_2024-06-01"}, got.CompletedChallenges)
}

func TestSQLStoreUpsertOverwrites(t *testing.T) {
	store := newTestSQLStore(t)

	r, err := store.Load("s1")
	require.NoError(t, err)

	r.XP = 5
	require.NoError(t, store.Save("s1", r))
	r.XP = 9
	require.NoError(t, store.Save("s1", r))

	got, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.XP)
}

func TestSQLStoreNormalizesOldRows(t *testing.T) {
	db, err := database.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := NewSQLStore(db)

	// A row written before the study fields existed
	oldShape := `{"xp": 7, "level": "Seed", "badges": null, "streak": {"devotion": 2}}`
	_, err = db.Exec(`INSERT INTO progress_records (session_id, data) VALUES (?, ?)`, "old", oldShape)
	require.NoError(t, err)

	r, err := store.Load("old")
	require.NoError(t, err)
	assert.Equal(t, 7, r.XP)
	assert.Equal(t, 2, r.Streaks.Devotion)
	assert.NotNil(t, r.Badges)
	assert.NotNil(t, r.Studies)
}
