package testutil

import (
	"conjugator/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestVerb creates a word from kanji, hiragana, romaji triples.
// forms follow category order; categories past the last form are not applicable.
func NewTestVerb(word [3]string, forms ...[3]string) domain.WordEntry {
	entry := domain.WordEntry{
		Word:         text(word),
		Conjugations: make(map[domain.Category]domain.Conjugation, len(domain.Categories)),
	}
	for i, c := range domain.Categories {
		if i < len(forms) {
			entry.Conjugations[c] = domain.Forms(text(forms[i]))
			continue
		}
		entry.Conjugations[c] = domain.NotApplicable()
	}
	return entry
}

// NewTestDataset returns two verbs; 見る has no Te Form
func NewTestDataset() []domain.WordEntry {
	return []domain.WordEntry{
		NewTestVerb(
			[3]string{"食べる", "たべる", "taberu"},
			[3]string{"食べます", "たべます", "tabemasu"},
			[3]string{"食べません", "たべません", "tabemasen"},
			[3]string{"食べました", "たべました", "tabemashita"},
			[3]string{"食べませんでした", "たべませんでした", "tabemasendeshita"},
			[3]string{"食べて", "たべて", "tabete"},
		),
		NewTestVerb(
			[3]string{"見る", "みる", "miru"},
			[3]string{"見ます", "みます", "mimasu"},
			[3]string{"見ません", "みません", "mimasen"},
			[3]string{"見ました", "みました", "mimashita"},
			[3]string{"見ませんでした", "みませんでした", "mimasendeshita"},
		),
	}
}

// FirstChoice always picks index 0
func FirstChoice(n int) int {
	return 0
}

func text(v [3]string) domain.Text {
	return domain.Text{
		domain.Kanji:    v[0],
		domain.Hiragana: v[1],
		domain.Romaji:   v[2],
	}
}
