package preferences

import (
	"fmt"
	"testing"

	"conjugator/internal/domain"
	"conjugator/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestRepoStore_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockValue     string
		mockFound     bool
		mockError     error
		expectedValue string
		expectedFound bool
	}{
		{
			name:          "stored value",
			mockValue:     "romaji",
			mockFound:     true,
			expectedValue: "romaji",
			expectedFound: true,
		},
		{
			name:          "missing value",
			expectedFound: false,
		},
		{
			name:          "repository error reads as absent",
			mockValue:     "romaji",
			mockFound:     true,
			mockError:     fmt.Errorf("db error"),
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockPreferenceRepository)
			mockRepo.On("GetPreference", int64(42), KeyWritingSystem).Return(tt.mockValue, tt.mockFound, tt.mockError)

			store := NewRepoStore(mockRepo, 42, testutil.NewTestLogger())

			value, found := store.Get(KeyWritingSystem)

			assert.Equal(t, tt.expectedValue, value)
			assert.Equal(t, tt.expectedFound, found)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRepoStore_SetSwallowsErrors(t *testing.T) {
	mockRepo := new(testutil.MockPreferenceRepository)
	mockRepo.On("SetPreference", int64(42), KeyAnswerMode, "reveal").Return(fmt.Errorf("db error"))

	store := NewRepoStore(mockRepo, 42, testutil.NewTestLogger())

	assert.NotPanics(t, func() {
		store.Set(KeyAnswerMode, "reveal")
	})
	mockRepo.AssertExpectations(t)
}

func TestRepoStore_LoadConfigFallsBackOnErrors(t *testing.T) {
	mockRepo := new(testutil.MockPreferenceRepository)
	mockRepo.On("GetPreference", int64(7), KeyWritingSystem).Return("hiragana", true, nil)
	mockRepo.On("GetPreference", int64(7), KeyPracticeMode).Return("", false, fmt.Errorf("timeout"))
	mockRepo.On("GetPreference", int64(7), KeyAnswerMode).Return("", false, nil)
	mockRepo.On("GetPreference", int64(7), KeySelectedConjugations).Return("", false, nil)

	cfg := LoadConfig(NewRepoStore(mockRepo, 7, testutil.NewTestLogger()))

	assert.Equal(t, domain.Hiragana, cfg.WritingSystem)
	assert.Equal(t, domain.ModeAll, cfg.Mode)
	mockRepo.AssertExpectations(t)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("k", "v")
	v, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
