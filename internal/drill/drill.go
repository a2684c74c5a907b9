// Package drill runs the quiz as a line-oriented session over a reader and a writer.
package drill

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"conjugator/internal/domain"
	"conjugator/internal/quiz"
	"conjugator/internal/service"

	"go.uber.org/zap"
)

// QuitCommand ends a drill early
const QuitCommand = ":q"

// Stats counts the outcome of one drill run
type Stats struct {
	Cards     int
	Correct   int
	Incorrect int
	Revealed  int
}

// Drill quizzes a single local user
type Drill struct {
	quiz   *service.QuizService
	userID int64
	logger *zap.Logger
}

// New creates a drill for userID
func New(quizService *service.QuizService, userID int64, logger *zap.Logger) *Drill {
	return &Drill{
		quiz:   quizService,
		userID: userID,
		logger: logger,
	}
}

// Run shows cards until rounds are done, the input ends or the user quits.
// rounds <= 0 means no limit.
func (d *Drill) Run(ctx context.Context, in io.Reader, out io.Writer, rounds int) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(in)

	snap := d.quiz.Current(d.userID)
	for rounds <= 0 || stats.Cards < rounds {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if snap.Card == nil {
			fmt.Fprintln(out, service.NothingToQuizMessage)
			return stats, nil
		}

		fmt.Fprint(out, prompt(snap))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return stats, scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == QuitCommand {
			return stats, nil
		}

		if snap.Config.AnswerMode == domain.AnswerReveal {
			snap = d.quiz.Reveal(d.userID)
			stats.Revealed++
		} else {
			snap = d.quiz.SubmitAnswer(d.userID, line)
			if snap.Card.Verdict == domain.VerdictCorrect {
				stats.Correct++
			} else {
				stats.Incorrect++
			}
		}
		stats.Cards++
		fmt.Fprintln(out, feedback(snap))

		d.logger.Debug("Card finished",
			zap.String("word", snap.Card.Word.Key()),
			zap.String("category", string(snap.Card.Category)),
			zap.Stringer("verdict", snap.Card.Verdict),
		)

		snap = d.quiz.NextCard(d.userID)
		if snap.NothingToQuiz {
			fmt.Fprintln(out, service.NothingToQuizMessage)
			return stats, nil
		}
	}

	return stats, nil
}

// Summary formats stats for the end of a run
func Summary(stats Stats) string {
	if stats.Correct+stats.Incorrect == 0 {
		return fmt.Sprintf("Cards: %d", stats.Cards)
	}
	return fmt.Sprintf("Cards: %d, correct: %d/%d", stats.Cards, stats.Correct, stats.Correct+stats.Incorrect)
}

func prompt(snap service.Snapshot) string {
	card := snap.Card
	ws := snap.Config.WritingSystem

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(card.Word.Word.In(ws))
	if ws != domain.PrimaryScript {
		fmt.Fprintf(&b, " (%s)", card.Word.Key())
	}
	fmt.Fprintf(&b, "\nConjugate to: %s\n", card.Category)

	if snap.Config.AnswerMode == domain.AnswerReveal {
		b.WriteString("[Enter to reveal] ")
	} else {
		b.WriteString("> ")
	}
	return b.String()
}

func feedback(snap service.Snapshot) string {
	card := snap.Card
	expected := quiz.Expected(card, snap.Config)
	if snap.Evaluation != nil {
		expected = snap.Evaluation.Expected
	}
	if ws := snap.Config.WritingSystem; ws != domain.PrimaryScript {
		if primary := card.Word.Conjugation(card.Category).Forms.In(domain.PrimaryScript); primary != "" {
			expected = fmt.Sprintf("%s (%s)", expected, primary)
		}
	}

	switch card.Verdict {
	case domain.VerdictCorrect:
		return "✅ Correct! " + expected
	case domain.VerdictIncorrect:
		return "❌ Not quite right. The correct answer is: " + expected
	default:
		return "💡 Answer: " + expected
	}
}
