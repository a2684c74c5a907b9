package service

import (
	"time"

	"conjugator/internal/repository"

	"go.uber.org/zap"
)

// preferenceRetentionDays is how long untouched preferences are kept
const preferenceRetentionDays = 180

// MaintenanceService drops idle sessions and stale preferences
type MaintenanceService struct {
	prefRepo    repository.PreferenceRepository
	quiz        *QuizService
	sessionIdle time.Duration
	logger      *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	prefRepo repository.PreferenceRepository,
	quiz *QuizService,
	sessionIdle time.Duration,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		prefRepo:    prefRepo,
		quiz:        quiz,
		sessionIdle: sessionIdle,
		logger:      logger,
	}
}

// Cleanup prunes idle in-memory sessions, then stale preference rows
func (s *MaintenanceService) Cleanup() error {
	pruned := s.quiz.PruneIdle(s.sessionIdle)
	s.logger.Info("Pruned idle sessions",
		zap.Int("pruned", pruned),
		zap.Duration("max_idle", s.sessionIdle),
	)

	s.logger.Info("Starting cleanup of stale preferences", zap.Int("retention_days", preferenceRetentionDays))

	if err := s.prefRepo.CleanStalePreferences(preferenceRetentionDays); err != nil {
		s.logger.Error("Failed to cleanup stale preferences", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
