package postgres

import (
	"database/sql"
)

// PreferenceRepo implements repository.PreferenceRepository
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
	query := `SELECT value FROM preferences WHERE user_id = $1 AND key = $2`
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
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
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
			HAVING MAX(updated_at) < NOW() - INTERVAL '1 day' * $1
		)
	`
	_, err := r.db.Exec(query, days)
	return err
}
