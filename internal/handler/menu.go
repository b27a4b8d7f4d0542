package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

// Reply-keyboard labels, matched exactly in HandleText.
const (
	labelTasks    = "📋 Tasks"
	labelBalance  = "💰 Balance"
	labelWithdraw = "📤 Withdraw"
	labelLanguage = "🌐 Language"

	labelAddTask    = "➕ Add Task"
	labelRemoveTask = "🗑 Remove Task"
	labelReview     = "✔ Approve Screenshots"
	labelUsers      = "📊 Users"
	labelBroadcast  = "📢 Broadcast"
	labelBack       = "⬅️ Back"
)

func (h *Handler) sendUserMenu(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: telegram.ReplyKeyboard(
			[]string{labelTasks, labelBalance},
			[]string{labelWithdraw, labelLanguage},
		),
	})
	if err != nil {
		slog.Warn("send user menu", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) sendAdminMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Admin Panel:",
		ReplyMarkup: telegram.ReplyKeyboard(
			[]string{labelAddTask, labelRemoveTask},
			[]string{labelReview, labelUsers},
			[]string{labelBroadcast, labelBack},
		),
	})
	if err != nil {
		slog.Warn("send admin menu", "chat_id", chatID, "error", err)
	}
}
