package service

import (
	"fmt"
	"sync"
	"time"

	"conjugator/internal/dataset"
	"conjugator/internal/domain"
	"conjugator/internal/preferences"
	"conjugator/internal/quiz"

	"go.uber.org/zap"
)

// StoreFactory returns the preference store for a user
type StoreFactory func(userID int64) preferences.Store

// NothingToQuizMessage tells the user that no card fits the current settings
const NothingToQuizMessage = "No conjugations available for these settings."

// Snapshot is a read-only copy of a user's quiz state
type Snapshot struct {
	Config     domain.PracticeConfig
	Card       *domain.QuizCard
	Evaluation *domain.Evaluation
	// NothingToQuiz is set when the latest draw found no usable card.
	// Card then still holds the previous card, if any.
	NothingToQuiz bool
}

type session struct {
	mu       sync.Mutex
	store    preferences.Store
	config   domain.PracticeConfig
	selected map[string]struct{}
	card     *domain.QuizCard
	eval     *domain.Evaluation
	nothing  bool
	lastSeen time.Time
}

// QuizService runs quiz sessions for many users
type QuizService struct {
	engine *quiz.Engine
	stores StoreFactory
	logger *zap.Logger
	now    func() time.Time

	sessions map[int64]*session
	mu       sync.Mutex
}

// NewQuizService creates a new quiz service
func NewQuizService(engine *quiz.Engine, stores StoreFactory, logger *zap.Logger) *QuizService {
	return &QuizService{
		engine:   engine,
		stores:   stores,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[int64]*session),
	}
}

// Words returns the whole dataset
func (s *QuizService) Words() []domain.WordEntry {
	return s.engine.Words()
}

// Current returns the user's state, drawing a first card if there is none
func (s *QuizService) Current(userID int64) Snapshot {
	return s.with(userID, func(sess *session) {
		if sess.card == nil {
			s.draw(userID, sess)
		}
	})
}

// NextCard draws a new card. The previous card stays when nothing is usable.
func (s *QuizService) NextCard(userID int64) Snapshot {
	return s.with(userID, func(sess *session) {
		s.draw(userID, sess)
	})
}

// SubmitAnswer checks input against the current card in type mode
func (s *QuizService) SubmitAnswer(userID int64, input string) Snapshot {
	return s.with(userID, func(sess *session) {
		if sess.card == nil || sess.card.Revealed || sess.config.AnswerMode != domain.AnswerType {
			return
		}

		sess.card.Input = input
		ev := quiz.Evaluate(sess.card, sess.config)
		sess.card.Verdict = ev.Verdict
		sess.card.Revealed = true
		sess.eval = &ev

		s.logger.Debug("Answer checked",
			zap.Int64("user_id", userID),
			zap.String("word", sess.card.Word.Key()),
			zap.String("category", string(sess.card.Category)),
			zap.Stringer("verdict", ev.Verdict),
		)
	})
}

// Reveal shows the expected answer without judging it
func (s *QuizService) Reveal(userID int64) Snapshot {
	return s.with(userID, func(sess *session) {
		if sess.card == nil || sess.card.Revealed {
			return
		}

		sess.card.Revealed = true
		sess.eval = &domain.Evaluation{
			Verdict:  domain.VerdictUnknown,
			Expected: quiz.Expected(sess.card, sess.config),
		}
	})
}

// SetPracticeMode switches between all and specific categories and draws a new card
func (s *QuizService) SetPracticeMode(userID int64, mode domain.PracticeMode) (Snapshot, error) {
	if mode != domain.ModeAll && mode != domain.ModeSpecific {
		return Snapshot{}, fmt.Errorf("unknown practice mode %q", mode)
	}
	return s.reconfigure(userID, func(cfg domain.PracticeConfig) domain.PracticeConfig {
		cfg.Mode = mode
		return cfg
	}, true), nil
}

// ToggleCategory adds or removes a category from the specific selection and draws a new card
func (s *QuizService) ToggleCategory(userID int64, cat domain.Category) (Snapshot, error) {
	if _, ok := domain.ParseCategory(string(cat)); !ok {
		return Snapshot{}, fmt.Errorf("unknown category %q", cat)
	}
	return s.reconfigure(userID, func(cfg domain.PracticeConfig) domain.PracticeConfig {
		return cfg.ToggleCategory(cat)
	}, true), nil
}

// RemoveCategory removes a category from the specific selection and draws a new card
func (s *QuizService) RemoveCategory(userID int64, cat domain.Category) Snapshot {
	return s.reconfigure(userID, func(cfg domain.PracticeConfig) domain.PracticeConfig {
		return cfg.RemoveCategory(cat)
	}, true)
}

// SetWritingSystem changes the quiz script and draws a new card
func (s *QuizService) SetWritingSystem(userID int64, ws domain.WritingSystem) (Snapshot, error) {
	if _, ok := domain.ParseWritingSystem(string(ws)); !ok {
		return Snapshot{}, fmt.Errorf("unknown writing system %q", ws)
	}
	return s.reconfigure(userID, func(cfg domain.PracticeConfig) domain.PracticeConfig {
		cfg.WritingSystem = ws
		return cfg
	}, true), nil
}

// SetAnswerMode switches between typing and revealing; the current card is kept
func (s *QuizService) SetAnswerMode(userID int64, mode domain.AnswerMode) (Snapshot, error) {
	if mode != domain.AnswerType && mode != domain.AnswerReveal {
		return Snapshot{}, fmt.Errorf("unknown answer mode %q", mode)
	}
	return s.reconfigure(userID, func(cfg domain.PracticeConfig) domain.PracticeConfig {
		cfg.AnswerMode = mode
		return cfg
	}, false), nil
}

// ToggleWord adds or removes a word from the practice selection.
// Unknown keys are ignored. Returns the selection in dataset order.
func (s *QuizService) ToggleWord(userID int64, key string) []string {
	var keys []string
	s.with(userID, func(sess *session) {
		if _, known := dataset.Find(s.engine.Words(), key); known {
			if _, ok := sess.selected[key]; ok {
				delete(sess.selected, key)
			} else {
				sess.selected[key] = struct{}{}
			}
			keys = s.orderedSelection(sess)
			preferences.SaveSelectedWords(sess.store, keys)
			return
		}
		keys = s.orderedSelection(sess)
	})
	return keys
}

// ClearWords resets the selection so the whole dataset is practiced
func (s *QuizService) ClearWords(userID int64) {
	s.with(userID, func(sess *session) {
		sess.selected = make(map[string]struct{})
		preferences.SaveSelectedWords(sess.store, nil)
	})
}

// SelectedWords returns the selected keys in dataset order; empty means all words
func (s *QuizService) SelectedWords(userID int64) []string {
	var keys []string
	s.with(userID, func(sess *session) {
		keys = s.orderedSelection(sess)
	})
	return keys
}

// PruneIdle drops sessions not used for longer than maxIdle and returns how many were dropped
func (s *QuizService) PruneIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, userID)
			pruned++
		}
	}
	return pruned
}

func (s *QuizService) reconfigure(userID int64, change func(domain.PracticeConfig) domain.PracticeConfig, redraw bool) Snapshot {
	return s.with(userID, func(sess *session) {
		sess.config = change(sess.config.Clone())
		preferences.SaveConfig(sess.store, sess.config)

		s.logger.Info("Practice configuration changed",
			zap.Int64("user_id", userID),
			zap.String("mode", string(sess.config.Mode)),
			zap.String("writing_system", string(sess.config.WritingSystem)),
			zap.String("answer_mode", string(sess.config.AnswerMode)),
			zap.Int("categories", len(sess.config.Categories)),
		)

		if redraw {
			s.draw(userID, sess)
		}
	})
}

func (s *QuizService) draw(userID int64, sess *session) {
	card := s.engine.Next(sess.selected, sess.config)
	if card == nil {
		sess.nothing = true
		s.logger.Info("No usable card for configuration",
			zap.Int64("user_id", userID),
			zap.String("mode", string(sess.config.Mode)),
			zap.String("writing_system", string(sess.config.WritingSystem)),
			zap.Int("selected_words", len(sess.selected)),
		)
		return
	}

	sess.card = card
	sess.eval = nil
	sess.nothing = false
}

func (s *QuizService) orderedSelection(sess *session) []string {
	keys := make([]string, 0, len(sess.selected))
	for _, w := range s.engine.Words() {
		if _, ok := sess.selected[w.Key()]; ok {
			keys = append(keys, w.Key())
		}
	}
	return keys
}

// with runs fn under the user's session lock and returns the resulting snapshot
func (s *QuizService) with(userID int64, fn func(sess *session)) Snapshot {
	sess := s.session(userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess)
	sess.lastSeen = s.now()

	return sess.snapshot()
}

func (s *QuizService) session(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	store := s.stores(userID)
	sess := &session{
		store:    store,
		config:   preferences.LoadConfig(store),
		selected: preferences.LoadSelectedWords(store),
		lastSeen: s.now(),
	}
	s.sessions[userID] = sess
	return sess
}

func (sess *session) snapshot() Snapshot {
	snap := Snapshot{
		Config:        sess.config.Clone(),
		NothingToQuiz: sess.nothing,
	}
	if sess.card != nil {
		card := *sess.card
		snap.Card = &card
	}
	if sess.eval != nil {
		ev := *sess.eval
		snap.Evaluation = &ev
	}
	return snap
}
