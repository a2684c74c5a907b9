package quiz

import "conjugator/internal/domain"

// Selector picks the next card
type Selector struct {
	choose Chooser
}

// NewSelector creates a selector; a nil chooser uses a clock-seeded random source
func NewSelector(choose Chooser) *Selector {
	if choose == nil {
		choose = NewRandomChooser()
	}
	return &Selector{choose: choose}
}

// SelectCard picks a random word and then a random usable category for it.
// Returns nil when nothing in words can be quizzed under cfg.
func (s *Selector) SelectCard(words []domain.WordEntry, cfg domain.PracticeConfig) *domain.QuizCard {
	scope := cfg.Scope()

	eligible := make([]domain.WordEntry, 0, len(words))
	for _, w := range words {
		if len(UsableCategories(w, scope, cfg.WritingSystem)) > 0 {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	word := eligible[s.choose(len(eligible))]
	candidates := UsableCategories(word, scope, cfg.WritingSystem)
	category := candidates[s.choose(len(candidates))]

	return domain.NewQuizCard(word, category)
}

// UsableCategories returns the categories of scope that word can be quizzed on in ws, in scope order
func UsableCategories(word domain.WordEntry, scope []domain.Category, ws domain.WritingSystem) []domain.Category {
	var usable []domain.Category
	for _, c := range scope {
		if word.Conjugation(c).Usable(ws) {
			usable = append(usable, c)
		}
	}
	return usable
}
