package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	// A command abandons any flow in progress.
	h.conv.Clear(chatID)

	h.sendUserMenu(ctx, b, chatID, "Welcome! Choose an option:")
}

func (h *Handler) handleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	// Non-admins get no reply at all: the admin surface stays
	// indistinguishable from an unrecognized command.
	if !h.cfg.IsAdmin(chatID) {
		return
	}

	h.conv.Clear(chatID)
	h.sendAdminMenu(ctx, b, chatID)
}
