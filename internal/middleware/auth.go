package middleware

import (
	"strings"

	"conjugator/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthorizedKey is the context key holding the sender's authorization flag
const AuthorizedKey = "authorized"

// PasswordPrompt is sent to users who have not entered the bot password yet
const PasswordPrompt = "👋 Hi! This bot is private. Please enter the password:"

const msgInternalError = "Something went wrong. Please try again later."

// IsAuthorized reports whether AuthMiddleware marked the sender as authorized
func IsAuthorized(c tele.Context) bool {
	authorized, _ := c.Get(AuthorizedKey).(bool)
	return authorized
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Debug("Skipping update without sender")
				return nil
			}
			userID := sender.ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(msgInternalError)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(msgInternalError)
			}
			c.Set(AuthorizedKey, authorized)

			// User is authorized or using /start, continue
			if authorized || c.Text() == "/start" {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: PasswordPrompt, ShowAlert: true})
			}

			// Plain text from an unauthorized user is a password attempt
			if text := strings.TrimSpace(c.Text()); text != "" && !strings.HasPrefix(text, "/") {
				return next(c)
			}

			return c.Send(PasswordPrompt)
		}
	}
}
