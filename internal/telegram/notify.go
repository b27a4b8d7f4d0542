package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Notify sends a text message and swallows delivery failures. The
// contract is at-most-once with no retry: a blocked bot or deleted
// chat must never fail the flow that triggered the notification.
func Notify(ctx context.Context, b *bot.Bot, chatID any, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		slog.Warn("notification dropped", "chat_id", chatID, "error", err)
	}
}

// NotifyPhoto sends a photo by file id with a caption and optional
// keyboard. Returns false when delivery failed so the caller can fall
// back to a text rendering.
func NotifyPhoto(ctx context.Context, b *bot.Bot, chatID any, fileID, caption string, markup models.ReplyMarkup) bool {
	params := &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: fileID},
		Caption: caption,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := b.SendPhoto(ctx, params); err != nil {
		slog.Warn("photo notification dropped", "chat_id", chatID, "error", err)
		return false
	}
	return true
}

// EditCaption rewrites the caption of an existing message, dropping
// its keyboard. Best-effort: the message may be too old to edit or a
// plain-text fallback without a caption.
func EditCaption(ctx context.Context, b *bot.Bot, chatID any, messageID int, caption string) {
	_, err := b.EditMessageCaption(ctx, &bot.EditMessageCaptionParams{
		ChatID:    chatID,
		MessageID: messageID,
		Caption:   caption,
	})
	if err == nil {
		return
	}
	// Text-summary fallbacks have no caption; rewrite the text instead.
	_, terr := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      caption,
	})
	if terr != nil {
		slog.Warn("message edit dropped",
			"chat_id", chatID,
			"message_id", messageID,
			"error", terr,
		)
	}
}

// AnswerCallback clears the pending indicator on the actor's client,
// optionally flashing a short text.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		slog.Warn("callback answer dropped", "error", err)
	}
}
