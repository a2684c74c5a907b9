package handler

import (
	"fmt"
	"strings"

	"conjugator/internal/domain"
	"conjugator/internal/quiz"
	"conjugator/internal/service"
)

const wordsPageSize = 8

const msgLoading = "Nothing to practice yet. Open ⚙️ Settings to widen your selection."

var writingSystemLabels = map[domain.WritingSystem]string{
	domain.Kanji:    "漢字 Kanji",
	domain.Hiragana: "ひらがな Hiragana",
	domain.Romaji:   "Romaji",
}

var answerModeLabels = map[domain.AnswerMode]string{
	domain.AnswerType:   "Type Answer",
	domain.AnswerReveal: "Reveal Answer",
}

var practiceModeLabels = map[domain.PracticeMode]string{
	domain.ModeAll:      "Random Practice",
	domain.ModeSpecific: "Specific Practice",
}

// renderCard builds the card message for a snapshot
func renderCard(snap service.Snapshot) string {
	card := snap.Card
	if card == nil {
		return msgLoading
	}
	ws := snap.Config.WritingSystem

	var b strings.Builder
	b.WriteString("📝 ")
	b.WriteString(card.Word.Word.In(ws))
	if primary := card.Word.Key(); ws != domain.PrimaryScript && primary != "" {
		fmt.Fprintf(&b, "\n(%s)", primary)
	}
	fmt.Fprintf(&b, "\n\nConjugate to: %s", card.Category)

	if !card.Revealed {
		if snap.Config.AnswerMode == domain.AnswerType {
			b.WriteString("\n\n✍️ Type your answer")
		}
		return b.String()
	}

	expected := quiz.Expected(card, snap.Config)
	if snap.Evaluation != nil {
		expected = snap.Evaluation.Expected
	}

	b.WriteString("\n\n")
	switch {
	case snap.Config.AnswerMode == domain.AnswerReveal || card.Verdict == domain.VerdictUnknown:
		fmt.Fprintf(&b, "💡 Answer: %s", expected)
	case card.Verdict == domain.VerdictCorrect:
		fmt.Fprintf(&b, "✅ Correct!\nThe correct answer is: %s", expected)
	default:
		fmt.Fprintf(&b, "❌ Not quite right.\nThe correct answer is: %s", expected)
	}

	if ws != domain.PrimaryScript {
		if primary := card.Word.Conjugation(card.Category).Forms.In(domain.PrimaryScript); primary != "" {
			fmt.Fprintf(&b, " (%s)", primary)
		}
	}

	return b.String()
}

// renderSettings builds the settings message
func renderSettings(cfg domain.PracticeConfig, selectedWords int) string {
	var b strings.Builder
	b.WriteString("⚙️ Settings\n\n")
	fmt.Fprintf(&b, "Practice: %s\n", practiceModeLabels[cfg.Mode])
	if cfg.Mode == domain.ModeSpecific {
		fmt.Fprintf(&b, "Conjugations: %d selected\n", len(cfg.Scope()))
	}
	fmt.Fprintf(&b, "Script: %s\n", writingSystemLabels[cfg.WritingSystem])
	fmt.Fprintf(&b, "Answer: %s\n", answerModeLabels[cfg.AnswerMode])
	b.WriteString(wordsSummary(selectedWords))
	return b.String()
}

// renderWords builds the header of the word selection page
func renderWords(selectedWords, page, totalPages int) string {
	return fmt.Sprintf("📚 Words (page %d/%d)\n\n%s", page, totalPages, wordsSummary(selectedWords))
}

func wordsSummary(selected int) string {
	if selected == 0 {
		return "Words: all"
	}
	return fmt.Sprintf("Words: %d selected", selected)
}

// wordsPageBounds clamps page into range and returns the slice bounds for it
func wordsPageBounds(total, page int) (start, end, clamped, totalPages int) {
	totalPages = (total + wordsPageSize - 1) / wordsPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start = (page - 1) * wordsPageSize
	end = start + wordsPageSize
	if end > total {
		end = total
	}
	return start, end, page, totalPages
}

func checkmark(on bool, label string) string {
	if on {
		return "✓ " + label
	}
	return label
}

func bullet(on bool, label string) string {
	if on {
		return "• " + label
	}
	return label
}

// wordLabel shows the word in the active script with its primary form
func wordLabel(w domain.WordEntry, ws domain.WritingSystem) string {
	shown := w.Word.In(ws)
	if shown == "" || ws == domain.PrimaryScript {
		return w.Key()
	}
	return fmt.Sprintf("%s (%s)", w.Key(), shown)
}
