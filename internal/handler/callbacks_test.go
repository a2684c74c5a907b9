package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		prefix   string
		n        int
		expected int
		ok       bool
	}{
		{name: "first index", data: "cat_0", prefix: prefixCategory, n: 5, expected: 0, ok: true},
		{name: "last index", data: "cat_4", prefix: prefixCategory, n: 5, expected: 4, ok: true},
		{name: "out of range", data: "cat_5", prefix: prefixCategory, n: 5, ok: false},
		{name: "negative", data: "word_-1", prefix: prefixWord, n: 3, ok: false},
		{name: "not a number", data: "word_abc", prefix: prefixWord, n: 3, ok: false},
		{name: "wrong prefix", data: "ws_kanji", prefix: prefixCategory, n: 5, ok: false},
		{name: "empty payload", data: "cat_", prefix: prefixCategory, n: 5, ok: false},
		{name: "badge removal", data: "catrm_2", prefix: prefixCategoryDrop, n: 5, expected: 2, ok: true},
		{name: "badge data is not a toggle", data: "catrm_2", prefix: prefixCategory, n: 5, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := parseIndex(tt.data, tt.prefix, tt.n)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, i)
			}
		})
	}
}

func TestCleanCallbackData_DynamicButton(t *testing.T) {
	assert.Equal(t, "wpage_2", cleanCallbackData("\fwpage_2"))
}
