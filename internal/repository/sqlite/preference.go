package sqlite

import (
	"database/sql"
	"fmt"
)

// PreferenceRepo implements repository.PreferenceRepository on SQLite
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreference returns the stored value for a user's key
func (r *PreferenceRepo) GetPreference(userID int64, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM preferences WHERE user_id = ? AND key = ?`
	err := r.db.QueryRow(query, userID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// SetPreference inserts or overwrites a user's key
func (r *PreferenceRepo) SetPreference(userID int64, key, value string) error {
	query := `
		INSERT INTO preferences (user_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.Exec(query, userID, key, value)
	return err
}

// CleanStalePreferences deletes every preference of users whose newest row
// is older than the given number of days
func (r *PreferenceRepo) CleanStalePreferences(days int) error {
	query := `
		DELETE FROM preferences
		WHERE user_id IN (
			SELECT user_id FROM preferences
			GROUP BY user_id
			HAVING MAX(updated_at) < datetime('now', ?)
		)
	`
	_, err := r.db.Exec(query, fmt.Sprintf("-%d days", days))
	return err
}
