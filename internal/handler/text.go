package handler

import (
	"strings"

	"conjugator/internal/domain"
	"conjugator/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles passwords from new users and answers from authorized ones
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	if !middleware.IsAuthorized(c) {
		ok, err := h.authService.Authorize(userID, strings.TrimSpace(text))
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("Something went wrong. Please try again later.")
		}
		if !ok {
			return c.Send("Wrong password.")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send(
			"✅ Access granted!\n\n🏠 Main menu\n\nPractice verb conjugations. Choose an action:",
			mainMenuMarkup(),
		)
	}

	snap := h.quizService.Current(userID)
	h.SetState(userID, &domain.StateData{State: domain.StatePracticing})

	switch {
	case snap.Card == nil:
		return c.Send(msgLoading, cardMarkup(snap))
	case snap.Card.Revealed:
		return c.Send("Press ➡️ Next Card for a new word.", cardMarkup(snap))
	case snap.Config.AnswerMode == domain.AnswerReveal:
		return c.Send("Reveal mode is on. Press 👁 Reveal Answer, or switch to Type Answer in ⚙️ Settings.", cardMarkup(snap))
	}

	snap = h.quizService.SubmitAnswer(userID, text)

	h.logger.Info("Answer submitted",
		zap.Int64("user_id", userID),
		zap.String("word", snap.Card.Word.Key()),
		zap.String("category", string(snap.Card.Category)),
		zap.Stringer("verdict", snap.Card.Verdict),
	)

	return c.Send(renderCard(snap), cardMarkup(snap))
}
