package quiz

import (
	"strings"

	"conjugator/internal/domain"
)

// Expected returns the answer for the card in the active writing system
func Expected(card *domain.QuizCard, cfg domain.PracticeConfig) string {
	if card == nil {
		return ""
	}
	return card.Word.Conjugation(card.Category).Forms.In(cfg.WritingSystem)
}

// Evaluate compares the card's input with the expected answer.
// Both sides are trimmed; the comparison is otherwise exact.
func Evaluate(card *domain.QuizCard, cfg domain.PracticeConfig) domain.Evaluation {
	if card == nil {
		return domain.Evaluation{Verdict: domain.VerdictUnknown}
	}

	expected := Expected(card, cfg)
	verdict := domain.VerdictIncorrect
	if strings.TrimSpace(card.Input) == strings.TrimSpace(expected) {
		verdict = domain.VerdictCorrect
	}

	return domain.Evaluation{Verdict: verdict, Expected: expected}
}
