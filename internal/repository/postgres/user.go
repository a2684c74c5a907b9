package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user has entered the bot password
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized, last_seen_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE, last_seen_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates the user on first contact and refreshes last_seen_at
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized, last_seen_at)
		VALUES ($1, FALSE, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET last_seen_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}
