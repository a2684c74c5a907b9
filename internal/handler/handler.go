package handler

import (
	"strconv"
	"sync"

	"conjugator/internal/domain"
	"conjugator/internal/middleware"
	"conjugator/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	quizService *service.QuizService
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	quizService *service.QuizService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		quizService: quizService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.AuthMiddleware(h.authService, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/quiz", h.handlePractice)
	h.bot.Handle("/settings", h.handleSettings)
	h.bot.Handle("/words", h.handleWords)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPractice, h.handlePractice)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnSettings, h.handleSettings)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnAllWords, h.handleAllWords)
	h.bot.Handle(&btnModeAll, h.handleModeAll)
	h.bot.Handle(&btnModeSpecific, h.handleModeSpecific)
	h.bot.Handle(&btnAnswerType, h.handleAnswerType)
	h.bot.Handle(&btnAnswerReveal, h.handleAnswerReveal)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "▶️ Practice",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Next Card",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👁 Reveal Answer",
	}
	btnSettings = tele.Btn{
		Unique: "settings",
		Text:   "⚙️ Settings",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📚 Words",
	}
	btnAllWords = tele.Btn{
		Unique: "all_words",
		Text:   "Use all words",
	}
	btnModeAll = tele.Btn{
		Unique: "mode_all",
	}
	btnModeSpecific = tele.Btn{
		Unique: "mode_specific",
	}
	btnAnswerType = tele.Btn{
		Unique: "answer_type",
	}
	btnAnswerReveal = tele.Btn{
		Unique: "answer_reveal",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// Prefixes of dynamic callback data
const (
	prefixCategory      = "cat_"
	prefixCategoryDrop  = "catrm_"
	prefixWritingSystem = "ws_"
	prefixWord          = "word_"
	prefixWordsPage     = "wpage_"
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPractice),
		menu.Row(btnSettings),
	)
	return menu
}

// cardMarkup returns the buttons under a card
func cardMarkup(snap service.Snapshot) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	switch {
	case snap.Card == nil:
	case snap.Card.Revealed:
		rows = append(rows, markup.Row(btnNext))
	case snap.Config.AnswerMode == domain.AnswerReveal:
		rows = append(rows, markup.Row(btnReveal))
	}

	rows = append(rows, markup.Row(btnSettings))
	markup.Inline(rows...)
	return markup
}

// settingsMarkup returns the settings keyboard for cfg
func settingsMarkup(cfg domain.PracticeConfig) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	modeAll := btnModeAll
	modeAll.Text = bullet(cfg.Mode == domain.ModeAll, practiceModeLabels[domain.ModeAll])
	modeSpecific := btnModeSpecific
	modeSpecific.Text = bullet(cfg.Mode == domain.ModeSpecific, practiceModeLabels[domain.ModeSpecific])
	rows = append(rows, markup.Row(modeAll, modeSpecific))

	if cfg.Mode == domain.ModeSpecific {
		for i, c := range domain.Categories {
			btn := markup.Data(checkmark(cfg.HasCategory(c), string(c)), prefixCategory+strconv.Itoa(i))
			rows = append(rows, markup.Row(btn))
		}

		// Selected categories as removable badges
		badges := tele.Row{}
		for i, c := range domain.Categories {
			if cfg.HasCategory(c) {
				badges = append(badges, markup.Data("✕ "+string(c), prefixCategoryDrop+strconv.Itoa(i)))
			}
		}
		if len(badges) > 0 {
			rows = append(rows, badges)
		}
	}

	scripts := tele.Row{}
	for _, ws := range domain.WritingSystems {
		scripts = append(scripts, markup.Data(bullet(cfg.WritingSystem == ws, writingSystemLabels[ws]), prefixWritingSystem+string(ws)))
	}
	rows = append(rows, scripts)

	answerType := btnAnswerType
	answerType.Text = bullet(cfg.AnswerMode == domain.AnswerType, answerModeLabels[domain.AnswerType])
	answerReveal := btnAnswerReveal
	answerReveal.Text = bullet(cfg.AnswerMode == domain.AnswerReveal, answerModeLabels[domain.AnswerReveal])
	rows = append(rows, markup.Row(answerType, answerReveal))

	rows = append(rows, markup.Row(btnWords))
	rows = append(rows, markup.Row(btnPractice))

	markup.Inline(rows...)
	return markup
}

// wordsMarkup returns one page of word toggles
func wordsMarkup(words []domain.WordEntry, selected map[string]bool, ws domain.WritingSystem, page int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	start, end, page, totalPages := wordsPageBounds(len(words), page)
	for i := start; i < end; i++ {
		w := words[i]
		btn := markup.Data(checkmark(selected[w.Key()], wordLabel(w, ws)), prefixWord+strconv.Itoa(i))
		rows = append(rows, markup.Row(btn))
	}

	// Add pagination buttons
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", prefixWordsPage+strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", prefixWordsPage+strconv.Itoa(page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnAllWords))
	rows = append(rows, markup.Row(btnSettings, btnPractice))

	markup.Inline(rows...)
	return markup
}
