package quiz

import (
	"math/rand"
	"testing"

	"conjugator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_SelectCard(t *testing.T) {
	words := []domain.WordEntry{taberu(), iku(), suru()}

	tests := []struct {
		name             string
		cfg              domain.PracticeConfig
		picks            []int
		expectedWord     string
		expectedCategory domain.Category
		expectedBounds   []int
	}{
		{
			name:             "all mode picks word then category",
			cfg:              domain.PracticeConfig{Mode: domain.ModeAll, WritingSystem: domain.Romaji},
			picks:            []int{1, 1},
			expectedWord:     "行く",
			expectedCategory: domain.PresentNegative,
			expectedBounds:   []int{3, 2},
		},
		{
			name:             "empty script value is not a candidate",
			cfg:              domain.PracticeConfig{Mode: domain.ModeAll, WritingSystem: domain.Hiragana},
			picks:            []int{1, 0},
			expectedWord:     "行く",
			expectedCategory: domain.PresentAffirmative,
			expectedBounds:   []int{3, 1},
		},
		{
			name: "specific mode limits words and categories",
			cfg: domain.PracticeConfig{
				Mode:          domain.ModeSpecific,
				Categories:    []domain.Category{domain.TeForm},
				WritingSystem: domain.Kanji,
			},
			picks:            []int{0, 0},
			expectedWord:     "食べる",
			expectedCategory: domain.TeForm,
			expectedBounds:   []int{1, 1},
		},
		{
			name: "specific mode keeps selection order",
			cfg: domain.PracticeConfig{
				Mode:          domain.ModeSpecific,
				Categories:    []domain.Category{domain.PastAffirmative, domain.PresentAffirmative},
				WritingSystem: domain.Kanji,
			},
			picks:            []int{0, 1},
			expectedWord:     "食べる",
			expectedCategory: domain.PresentAffirmative,
			expectedBounds:   []int{3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choose, bounds := sequence(tt.picks...)
			selector := NewSelector(choose)

			card := selector.SelectCard(words, tt.cfg)

			require.NotNil(t, card)
			assert.Equal(t, tt.expectedWord, card.Word.Key())
			assert.Equal(t, tt.expectedCategory, card.Category)
			assert.Equal(t, tt.expectedBounds, *bounds)
			assert.Empty(t, card.Input)
			assert.False(t, card.Revealed)
			assert.Equal(t, domain.VerdictUnknown, card.Verdict)
		})
	}
}

func TestSelector_SelectCardReturnsNilWhenNothingUsable(t *testing.T) {
	tests := []struct {
		name  string
		words []domain.WordEntry
		cfg   domain.PracticeConfig
	}{
		{
			name:  "empty dataset",
			words: nil,
			cfg:   domain.DefaultPracticeConfig(),
		},
		{
			name:  "selected category not applicable anywhere",
			words: []domain.WordEntry{iku(), suru()},
			cfg: domain.PracticeConfig{
				Mode:          domain.ModeSpecific,
				Categories:    []domain.Category{domain.TeForm},
				WritingSystem: domain.Romaji,
			},
		},
		{
			name:  "script missing for every form",
			words: []domain.WordEntry{suru()},
			cfg:   domain.PracticeConfig{Mode: domain.ModeAll, WritingSystem: "cyrillic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choose, bounds := sequence(0)
			selector := NewSelector(choose)

			assert.NotPanics(t, func() {
				assert.Nil(t, selector.SelectCard(tt.words, tt.cfg))
			})
			assert.Empty(t, *bounds)
		})
	}
}

func TestSelector_ScenarioA(t *testing.T) {
	word := domain.WordEntry{
		Word: domain.Text{domain.Kanji: "食べる", domain.Romaji: "taberu"},
		Conjugations: map[domain.Category]domain.Conjugation{
			domain.PresentAffirmative: domain.Forms(domain.Text{domain.Romaji: "taberu"}),
			domain.TeForm:             domain.NotApplicable(),
		},
	}
	cfg := domain.PracticeConfig{Mode: domain.ModeAll, WritingSystem: domain.Romaji}
	selector := NewSelector(RandomChooser(rand.New(rand.NewSource(7))))

	for i := 0; i < 50; i++ {
		card := selector.SelectCard([]domain.WordEntry{word}, cfg)
		require.NotNil(t, card)
		assert.Equal(t, domain.PresentAffirmative, card.Category)
	}
}

func TestSelector_ScenarioB(t *testing.T) {
	word := domain.WordEntry{
		Word: domain.Text{domain.Kanji: "食べる", domain.Romaji: "taberu"},
		Conjugations: map[domain.Category]domain.Conjugation{
			domain.PresentAffirmative: domain.Forms(domain.Text{domain.Romaji: "taberu"}),
			domain.TeForm:             domain.NotApplicable(),
		},
	}
	cfg := domain.PracticeConfig{
		Mode:          domain.ModeSpecific,
		Categories:    []domain.Category{domain.TeForm},
		WritingSystem: domain.Romaji,
	}
	selector := NewSelector(nil)

	assert.Nil(t, selector.SelectCard([]domain.WordEntry{word}, cfg))
}

func TestSelector_SelectedCardIsAlwaysUsable(t *testing.T) {
	words := []domain.WordEntry{taberu(), iku(), suru()}
	selector := NewSelector(RandomChooser(rand.New(rand.NewSource(42))))

	configs := []domain.PracticeConfig{
		{Mode: domain.ModeAll, WritingSystem: domain.Kanji},
		{Mode: domain.ModeAll, WritingSystem: domain.Hiragana},
		{Mode: domain.ModeSpecific, Categories: []domain.Category{domain.PresentNegative, domain.TeForm}, WritingSystem: domain.Hiragana},
		{Mode: domain.ModeSpecific, Categories: []domain.Category{domain.PastAffirmative}, WritingSystem: domain.Romaji},
	}

	for _, cfg := range configs {
		for i := 0; i < 200; i++ {
			card := selector.SelectCard(words, cfg)
			require.NotNil(t, card)
			assert.Contains(t, cfg.Scope(), card.Category)
			assert.True(t, card.Word.Conjugation(card.Category).Usable(cfg.WritingSystem))
		}
	}
}

func TestUsableCategories(t *testing.T) {
	result := UsableCategories(iku(), domain.Categories, domain.Romaji)
	assert.Equal(t, []domain.Category{domain.PresentAffirmative, domain.PresentNegative}, result)

	assert.Empty(t, UsableCategories(suru(), []domain.Category{domain.TeForm}, domain.Kanji))
}
