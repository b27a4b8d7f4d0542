package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/i18n"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

func (h *Handler) showLanguage(ctx context.Context, b *bot.Bot, chatID int64) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Choose language:",
		ReplyMarkup: telegram.InlineKeyboard(
			telegram.ButtonRow(telegram.InlineButton(i18n.HI.DisplayName(), cbLang+string(i18n.HI))),
			telegram.ButtonRow(telegram.InlineButton(i18n.EN.DisplayName(), cbLang+string(i18n.EN))),
		),
	})
	if err != nil {
		slog.Warn("send language menu", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleLangSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	chatID := cb.From.ID
	lang := i18n.Parse(strings.TrimPrefix(cb.Data, cbLang))

	if err := h.users.SetLanguage(ctx, strconv.FormatInt(chatID, 10), lang); err != nil {
		slog.Error("set language", "chat_id", chatID, "error", err)
		telegram.AnswerCallback(ctx, b, cb.ID, "Something went wrong.")
		return
	}

	telegram.Notify(ctx, b, chatID, "Language updated.")
	telegram.AnswerCallback(ctx, b, cb.ID, "")
}
