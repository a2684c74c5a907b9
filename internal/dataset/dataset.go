package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"conjugator/internal/domain"
)

//go:embed data/verbs.json
var files embed.FS

const (
	defaultFile = "data/verbs.json"
	wordKey     = "Word"
)

// Default returns the dataset bundled with the binary
func Default() ([]domain.WordEntry, error) {
	data, err := files.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded dataset: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Load reads the dataset at path, or the bundled one when path is empty
func Load(path string) ([]domain.WordEntry, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a JSON array of word records.
// A category that is null or missing is not applicable for that word.
func Decode(r io.Reader) ([]domain.WordEntry, error) {
	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	words := make([]domain.WordEntry, 0, len(raw))
	for i, record := range raw {
		word, err := decodeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("decode dataset entry %d: %w", i, err)
		}
		words = append(words, word)
	}

	return words, nil
}

func decodeRecord(record map[string]json.RawMessage) (domain.WordEntry, error) {
	entry := domain.WordEntry{
		Word:         domain.Text{},
		Conjugations: make(map[domain.Category]domain.Conjugation, len(domain.Categories)),
	}

	if msg, ok := record[wordKey]; ok {
		text, present, err := decodeText(msg)
		if err != nil {
			return entry, fmt.Errorf("%s: %w", wordKey, err)
		}
		if present {
			entry.Word = text
		}
	}

	for _, c := range domain.Categories {
		msg, ok := record[string(c)]
		if !ok {
			entry.Conjugations[c] = domain.NotApplicable()
			continue
		}

		text, present, err := decodeText(msg)
		if err != nil {
			return entry, fmt.Errorf("%s: %w", c, err)
		}
		if !present {
			entry.Conjugations[c] = domain.NotApplicable()
			continue
		}
		entry.Conjugations[c] = domain.Forms(text)
	}

	return entry, nil
}

// decodeText reports present=false for a JSON null
func decodeText(msg json.RawMessage) (domain.Text, bool, error) {
	var forms map[string]string
	if err := json.Unmarshal(msg, &forms); err != nil {
		return nil, false, err
	}
	if forms == nil {
		return nil, false, nil
	}

	text := make(domain.Text, len(forms))
	for k, v := range forms {
		text[domain.WritingSystem(k)] = v
	}
	return text, true, nil
}

// Keys returns the primary-script keys of words in order
func Keys(words []domain.WordEntry) []string {
	keys := make([]string, 0, len(words))
	for _, w := range words {
		keys = append(keys, w.Key())
	}
	return keys
}

// Find returns the word with the given primary-script key
func Find(words []domain.WordEntry, key string) (domain.WordEntry, bool) {
	for _, w := range words {
		if w.Key() == key {
			return w, true
		}
	}
	return domain.WordEntry{}, false
}
