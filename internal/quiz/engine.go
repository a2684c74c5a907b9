package quiz

import "conjugator/internal/domain"

// Engine holds the dataset and draws cards from it
type Engine struct {
	words    []domain.WordEntry
	selector *Selector
}

// NewEngine creates an engine over words
func NewEngine(words []domain.WordEntry, choose Chooser) *Engine {
	return &Engine{
		words:    words,
		selector: NewSelector(choose),
	}
}

// Words returns the full dataset
func (e *Engine) Words() []domain.WordEntry {
	return e.words
}

// Next filters the dataset by selected keys and picks a card, or nil if none is usable
func (e *Engine) Next(selected map[string]struct{}, cfg domain.PracticeConfig) *domain.QuizCard {
	return e.selector.SelectCard(Filter(e.words, selected), cfg)
}
