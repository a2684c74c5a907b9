package repository

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// PreferenceRepository stores string preferences per user
type PreferenceRepository interface {
	// GetPreference returns found=false when the key was never set
	GetPreference(userID int64, key string) (value string, found bool, err error)
	SetPreference(userID int64, key, value string) error
	CleanStalePreferences(days int) error
}
