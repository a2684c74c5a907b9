package preferences

import (
	"encoding/json"

	"conjugator/internal/domain"
)

// Preference keys
const (
	KeyWritingSystem        = "writingSystem"
	KeySelectedWords        = "selectedWords"
	KeyPracticeMode         = "practiceMode"
	KeySelectedConjugations = "selectedConjugations"
	KeyAnswerMode           = "answerMode"
)

// LoadConfig builds a practice configuration from s.
// Each missing or unparseable value falls back to its default on its own.
func LoadConfig(s Store) domain.PracticeConfig {
	cfg := domain.DefaultPracticeConfig()

	if v, ok := s.Get(KeyWritingSystem); ok {
		if ws, ok := domain.ParseWritingSystem(v); ok {
			cfg.WritingSystem = ws
		}
	}

	if v, ok := s.Get(KeyPracticeMode); ok {
		switch domain.PracticeMode(v) {
		case domain.ModeAll, domain.ModeSpecific:
			cfg.Mode = domain.PracticeMode(v)
		}
	}

	if v, ok := s.Get(KeyAnswerMode); ok {
		switch domain.AnswerMode(v) {
		case domain.AnswerType, domain.AnswerReveal:
			cfg.AnswerMode = domain.AnswerMode(v)
		}
	}

	if v, ok := s.Get(KeySelectedConjugations); ok {
		if cats := parseCategories(v); len(cats) > 0 {
			cfg.Categories = cats
		}
	}

	return cfg
}

// SaveConfig writes every configuration key to s
func SaveConfig(s Store, cfg domain.PracticeConfig) {
	s.Set(KeyWritingSystem, string(cfg.WritingSystem))
	s.Set(KeyPracticeMode, string(cfg.Mode))
	s.Set(KeyAnswerMode, string(cfg.AnswerMode))

	names := make([]string, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		names = append(names, string(c))
	}
	s.Set(KeySelectedConjugations, encodeStrings(names))
}

// LoadSelectedWords returns the selected primary-script keys; empty means the whole dataset
func LoadSelectedWords(s Store) map[string]struct{} {
	selected := make(map[string]struct{})

	v, ok := s.Get(KeySelectedWords)
	if !ok {
		return selected
	}

	var keys []string
	if err := json.Unmarshal([]byte(v), &keys); err != nil {
		return selected
	}
	for _, k := range keys {
		selected[k] = struct{}{}
	}
	return selected
}

// SaveSelectedWords writes the selected keys as a JSON array
func SaveSelectedWords(s Store, keys []string) {
	s.Set(KeySelectedWords, encodeStrings(keys))
}

func parseCategories(v string) []domain.Category {
	var names []string
	if err := json.Unmarshal([]byte(v), &names); err != nil {
		return nil
	}

	seen := make(map[domain.Category]bool, len(names))
	cats := make([]domain.Category, 0, len(names))
	for _, n := range names {
		c, ok := domain.ParseCategory(n)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		cats = append(cats, c)
	}
	return cats
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	// marshalling a []string cannot fail
	data, _ := json.Marshal(values)
	return string(data)
}
