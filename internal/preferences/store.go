package preferences

import (
	"sync"

	"conjugator/internal/repository"

	"go.uber.org/zap"
)

// Store is a string key-value preference store.
// Reads and writes never fail from the caller's point of view.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore keeps preferences in memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// RepoStore exposes one user's rows of a PreferenceRepository as a Store.
// Repository errors are logged and treated as absent values or dropped writes.
type RepoStore struct {
	repo   repository.PreferenceRepository
	userID int64
	logger *zap.Logger
}

// NewRepoStore creates a store bound to userID
func NewRepoStore(repo repository.PreferenceRepository, userID int64, logger *zap.Logger) *RepoStore {
	return &RepoStore{
		repo:   repo,
		userID: userID,
		logger: logger,
	}
}

func (s *RepoStore) Get(key string) (string, bool) {
	value, found, err := s.repo.GetPreference(s.userID, key)
	if err != nil {
		s.logger.Warn("Failed to read preference, using default",
			zap.Int64("user_id", s.userID),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}
	return value, found
}

func (s *RepoStore) Set(key, value string) {
	if err := s.repo.SetPreference(s.userID, key, value); err != nil {
		s.logger.Warn("Failed to save preference",
			zap.Int64("user_id", s.userID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
