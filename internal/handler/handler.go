package handler

import (
	"github.com/go-telegram/bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/config"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/service"
)

// Handler holds all dependencies needed by command and callback
// handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	users       *service.UserService
	tasks       *service.TaskService
	submissions *service.SubmissionService
	preview     *service.PreviewService
	conv        *conversation.Registry
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Users       *service.UserService
	Tasks       *service.TaskService
	Submissions *service.SubmissionService
	Preview     *service.PreviewService
	Conv        *conversation.Registry
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		users:       deps.Users,
		tasks:       deps.Tasks,
		submissions: deps.Submissions,
		preview:     deps.Preview,
		conv:        deps.Conv,
	}
}
