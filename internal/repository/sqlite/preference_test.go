package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *PreferenceRepo {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "prefs", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPreferenceRepo(db)
}

func TestPreferenceRepo_RoundTrip(t *testing.T) {
	repo := openTestDB(t)

	_, found, err := repo.GetPreference(1, "writingSystem")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetPreference(1, "writingSystem", "hiragana"))
	require.NoError(t, repo.SetPreference(1, "writingSystem", "romaji"))
	require.NoError(t, repo.SetPreference(2, "writingSystem", "kanji"))

	value, found, err := repo.GetPreference(1, "writingSystem")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "romaji", value)

	value, found, err = repo.GetPreference(2, "writingSystem")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kanji", value)
}

func TestPreferenceRepo_CleanStalePreferences(t *testing.T) {
	repo := openTestDB(t)

	// user 1 is active: an old word selection next to a fresh setting
	require.NoError(t, repo.SetPreference(1, "selectedWords", `["食べる"]`))
	require.NoError(t, repo.SetPreference(1, "writingSystem", "romaji"))
	_, err := repo.db.Exec(`UPDATE preferences SET updated_at = datetime('now', '-200 days') WHERE user_id = 1 AND key = 'selectedWords'`)
	require.NoError(t, err)

	// user 2 has not touched anything for a long time
	require.NoError(t, repo.SetPreference(2, "answerMode", "reveal"))
	require.NoError(t, repo.SetPreference(2, "selectedWords", `["見る"]`))
	_, err = repo.db.Exec(`UPDATE preferences SET updated_at = datetime('now', '-400 days') WHERE user_id = 2`)
	require.NoError(t, err)

	require.NoError(t, repo.CleanStalePreferences(180))

	value, found, err := repo.GetPreference(1, "selectedWords")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["食べる"]`, value)

	_, found, err = repo.GetPreference(1, "writingSystem")
	require.NoError(t, err)
	assert.True(t, found)

	for _, key := range []string{"answerMode", "selectedWords"} {
		_, found, err = repo.GetPreference(2, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}
