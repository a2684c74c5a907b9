package handler

import (
	"strconv"
	"strings"
	"unicode"

	"conjugator/internal/domain"
	"conjugator/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseIndex extracts the number after prefix and checks it is in [0, n)
func parseIndex(data, prefix string, n int) (int, bool) {
	if !strings.HasPrefix(data, prefix) {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Re-rendering an unchanged card or menu is not a failure
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case btnPractice.Unique:
		return h.handlePractice(c)
	case btnNext.Unique:
		return h.handleNext(c)
	case btnReveal.Unique:
		return h.handleReveal(c)
	case btnSettings.Unique:
		return h.handleSettings(c)
	case btnWords.Unique:
		return h.handleWords(c)
	case btnAllWords.Unique:
		return h.handleAllWords(c)
	case btnModeAll.Unique:
		return h.handleModeAll(c)
	case btnModeSpecific.Unique:
		return h.handleModeSpecific(c)
	case btnAnswerType.Unique:
		return h.handleAnswerType(c)
	case btnAnswerReveal.Unique:
		return h.handleAnswerReveal(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, prefixCategoryDrop):
		return h.handleCategoryDrop(c, data)
	case strings.HasPrefix(data, prefixCategory):
		return h.handleCategory(c, data)
	case strings.HasPrefix(data, prefixWritingSystem):
		return h.handleWritingSystem(c, data)
	case strings.HasPrefix(data, prefixWordsPage):
		return h.handleWordsPage(c, data)
	case strings.HasPrefix(data, prefixWord):
		return h.handleWordToggle(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

func (h *Handler) handleModeAll(c tele.Context) error {
	return h.applyPracticeMode(c, domain.ModeAll)
}

func (h *Handler) handleModeSpecific(c tele.Context) error {
	return h.applyPracticeMode(c, domain.ModeSpecific)
}

func (h *Handler) applyPracticeMode(c tele.Context, mode domain.PracticeMode) error {
	userID := c.Sender().ID
	snap, err := h.quizService.SetPracticeMode(userID, mode)
	return h.afterSettingChange(c, userID, snap, err)
}

func (h *Handler) handleAnswerType(c tele.Context) error {
	return h.applyAnswerMode(c, domain.AnswerType)
}

func (h *Handler) handleAnswerReveal(c tele.Context) error {
	return h.applyAnswerMode(c, domain.AnswerReveal)
}

func (h *Handler) applyAnswerMode(c tele.Context, mode domain.AnswerMode) error {
	userID := c.Sender().ID
	snap, err := h.quizService.SetAnswerMode(userID, mode)
	return h.afterSettingChange(c, userID, snap, err)
}

// handleCategory toggles one conjugation category in specific practice
func (h *Handler) handleCategory(c tele.Context, data string) error {
	userID := c.Sender().ID

	i, ok := parseIndex(data, prefixCategory, len(domain.Categories))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown conjugation"})
	}

	snap, err := h.quizService.ToggleCategory(userID, domain.Categories[i])
	return h.afterSettingChange(c, userID, snap, err)
}

// handleCategoryDrop removes a category badge; the last one stays selected
func (h *Handler) handleCategoryDrop(c tele.Context, data string) error {
	userID := c.Sender().ID

	i, ok := parseIndex(data, prefixCategoryDrop, len(domain.Categories))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown conjugation"})
	}

	return h.showSettings(c, userID, h.quizService.RemoveCategory(userID, domain.Categories[i]))
}

// handleWritingSystem switches the quiz script
func (h *Handler) handleWritingSystem(c tele.Context, data string) error {
	userID := c.Sender().ID

	ws, ok := domain.ParseWritingSystem(strings.TrimPrefix(data, prefixWritingSystem))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown script"})
	}

	snap, err := h.quizService.SetWritingSystem(userID, ws)
	return h.afterSettingChange(c, userID, snap, err)
}

// handleWordsPage handles page navigation in the word list
func (h *Handler) handleWordsPage(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefixWordsPage))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showWordsPage(c, c.Sender().ID, page)
}

// handleWordToggle adds or removes a word from the practice selection
func (h *Handler) handleWordToggle(c tele.Context, data string) error {
	userID := c.Sender().ID
	words := h.quizService.Words()

	i, ok := parseIndex(data, prefixWord, len(words))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	selected := h.quizService.ToggleWord(userID, words[i].Key())
	h.logger.Info("Word selection changed",
		zap.Int64("user_id", userID),
		zap.String("word", words[i].Key()),
		zap.Int("selected", len(selected)),
	)

	return h.showWordsPage(c, userID, i/wordsPageSize+1)
}

// handleAllWords clears the selection so every word is practiced
func (h *Handler) handleAllWords(c tele.Context) error {
	userID := c.Sender().ID
	h.quizService.ClearWords(userID)
	return h.showWordsPage(c, userID, h.GetState(userID).WordsPage)
}

func (h *Handler) afterSettingChange(c tele.Context, userID int64, snap service.Snapshot, err error) error {
	if err != nil {
		h.logger.Warn("Rejected setting change", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown setting"})
	}
	return h.showSettings(c, userID, snap)
}
