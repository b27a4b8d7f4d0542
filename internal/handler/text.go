package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

// handleMessage is the catch-all for message updates. A photo has empty
// text and still matches the empty-prefix registration, so photo
// routing lives here rather than in a default handler.
func (h *Handler) handleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	if len(update.Message.Photo) > 0 {
		h.HandlePhoto(ctx, b, update)
		return
	}
	// Commands have their own handlers
	if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
		return
	}
	h.HandleText(ctx, b, update)
}

// HandleText is the catch-all for non-command text. A live
// conversational binding takes priority over menu dispatch and is
// consumed by this message alone; with no binding, the text is matched
// against the menu labels and otherwise discarded.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	text := strings.TrimSpace(update.Message.Text)
	if strings.HasPrefix(text, "/") {
		return
	}
	chatID := update.Message.Chat.ID

	if binding, ok := h.conv.Take(chatID); ok {
		h.resumeText(ctx, b, chatID, text, binding)
		return
	}

	switch text {
	case labelTasks:
		h.showTasks(ctx, b, chatID)
	case labelBalance:
		h.showBalance(ctx, b, chatID)
	case labelWithdraw:
		h.startWithdraw(ctx, b, chatID)
	case labelLanguage:
		h.showLanguage(ctx, b, chatID)
	case labelBack:
		h.sendUserMenu(ctx, b, chatID, "Choose an option:")

	case labelAddTask:
		if h.cfg.IsAdmin(chatID) {
			h.startAddTask(ctx, b, chatID)
		}
	case labelRemoveTask:
		if h.cfg.IsAdmin(chatID) {
			h.startRemoveTask(ctx, b, chatID)
		}
	case labelReview:
		if h.cfg.IsAdmin(chatID) {
			h.showReview(ctx, b, chatID)
		}
	case labelUsers:
		if h.cfg.IsAdmin(chatID) {
			h.showUsers(ctx, b, chatID)
		}
	case labelBroadcast:
		if h.cfg.IsAdmin(chatID) {
			h.startBroadcast(ctx, b, chatID)
		}
	}
}

// resumeText dispatches a consumed binding with the text that resumed
// it. A screenshot binding resumed by text is a content-type mismatch:
// the user is told and must re-initiate via the upload button — the
// binding is not re-armed.
func (h *Handler) resumeText(ctx context.Context, b *bot.Bot, chatID int64, text string, binding conversation.Binding) {
	switch binding.Kind {
	case conversation.AwaitScreenshot:
		telegram.Notify(ctx, b, chatID, "Image only. Tap Upload Screenshot to try again.")
	case conversation.AwaitTaskTitle:
		h.continueAddTask(ctx, b, chatID, text)
	case conversation.AwaitTaskLink:
		h.finishAddTask(ctx, b, chatID, binding.Title, text)
	case conversation.AwaitRemoveID:
		h.finishRemoveTask(ctx, b, chatID, text)
	case conversation.AwaitUPI:
		h.finishWithdraw(ctx, b, chatID, text)
	case conversation.AwaitBroadcast:
		h.finishBroadcast(ctx, b, chatID, text)
	}
}
