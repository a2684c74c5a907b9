package handler

import (
	"conjugator/internal/domain"
	"conjugator/internal/middleware"
	"conjugator/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !middleware.IsAuthorized(c) {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send(middleware.PasswordPrompt)
	}

	h.ResetState(userID)
	return h.show(c, userID, "🏠 Main menu\n\nPractice verb conjugations. Choose an action:", mainMenuMarkup(), "")
}

// handlePractice shows the current card, drawing one if needed
func (h *Handler) handlePractice(c tele.Context) error {
	userID := c.Sender().ID

	snap := h.quizService.Current(userID)
	h.SetState(userID, &domain.StateData{State: domain.StatePracticing})

	return h.showCard(c, userID, snap)
}

// handleNext draws a new card; the old one stays on screen when nothing is usable
func (h *Handler) handleNext(c tele.Context) error {
	userID := c.Sender().ID

	snap := h.quizService.NextCard(userID)
	if snap.NothingToQuiz {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: service.NothingToQuizMessage, ShowAlert: true})
		}
		return c.Send(service.NothingToQuizMessage)
	}

	return h.showCard(c, userID, snap)
}

// handleReveal shows the answer in reveal mode
func (h *Handler) handleReveal(c tele.Context) error {
	userID := c.Sender().ID
	return h.showCard(c, userID, h.quizService.Reveal(userID))
}

// handleSettings shows the settings menu
func (h *Handler) handleSettings(c tele.Context) error {
	userID := c.Sender().ID
	return h.showSettings(c, userID, h.quizService.Current(userID))
}

// handleWords shows the first page of the word selection
func (h *Handler) handleWords(c tele.Context) error {
	return h.showWordsPage(c, c.Sender().ID, 1)
}

func (h *Handler) showCard(c tele.Context, userID int64, snap service.Snapshot) error {
	notice := ""
	if snap.NothingToQuiz {
		notice = service.NothingToQuizMessage
	}
	return h.show(c, userID, renderCard(snap), cardMarkup(snap), notice)
}

func (h *Handler) showSettings(c tele.Context, userID int64, snap service.Snapshot) error {
	notice := ""
	if snap.NothingToQuiz {
		notice = service.NothingToQuizMessage
	}
	text := renderSettings(snap.Config, len(h.quizService.SelectedWords(userID)))
	return h.show(c, userID, text, settingsMarkup(snap.Config), notice)
}

func (h *Handler) showWordsPage(c tele.Context, userID int64, page int) error {
	words := h.quizService.Words()
	keys := h.quizService.SelectedWords(userID)
	cfg := h.quizService.Current(userID).Config

	selected := make(map[string]bool, len(keys))
	for _, k := range keys {
		selected[k] = true
	}

	_, _, page, totalPages := wordsPageBounds(len(words), page)
	h.SetState(userID, &domain.StateData{State: h.GetState(userID).State, WordsPage: page})

	text := renderWords(len(keys), page, totalPages)
	return h.show(c, userID, text, wordsMarkup(words, selected, cfg.WritingSystem, page), "")
}

// show edits the message behind a callback, or sends a new one for commands.
// notice is shown as a callback toast when set.
func (h *Handler) show(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup, notice string) error {
	if c.Callback() == nil {
		if notice != "" {
			if err := c.Send(notice); err != nil {
				return err
			}
		}
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}

	if notice != "" {
		return c.Respond(&tele.CallbackResponse{Text: notice, ShowAlert: true})
	}
	return c.Respond()
}
