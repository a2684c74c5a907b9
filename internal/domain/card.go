package domain

// Verdict is the tri-state result of checking an answer
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// QuizCard is a word and category shown for one round, plus its transient state
type QuizCard struct {
	Word     WordEntry
	Category Category
	Input    string
	Revealed bool
	Verdict  Verdict
}

// NewQuizCard returns a fresh card with no input and no verdict
func NewQuizCard(word WordEntry, cat Category) *QuizCard {
	return &QuizCard{
		Word:     word,
		Category: cat,
		Verdict:  VerdictUnknown,
	}
}

// Evaluation is the result of checking or revealing a card
type Evaluation struct {
	Verdict  Verdict
	Expected string
}
