package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

// showTasks opens the catalog at the first entry. Opening the list is
// the only thing that resets the advisory cursor.
func (h *Handler) showTasks(ctx context.Context, b *bot.Bot, chatID int64) {
	if err := h.users.SetCursor(ctx, strconv.FormatInt(chatID, 10), 0); err != nil {
		slog.Error("reset task cursor", "chat_id", chatID, "error", err)
	}
	h.presentTaskAt(ctx, b, chatID, 0)
}

// presentTaskAt renders one catalog entry with its actions. The Next
// button appears only when another entry exists.
func (h *Handler) presentTaskAt(ctx context.Context, b *bot.Bot, chatID int64, index int) {
	entries, err := h.tasks.List(ctx)
	if err != nil {
		slog.Error("list tasks", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}

	if len(entries) == 0 {
		telegram.Notify(ctx, b, chatID, "No tasks available.")
		return
	}
	if index < 0 || index >= len(entries) {
		telegram.Notify(ctx, b, chatID, "No more tasks.")
		return
	}

	entry := entries[index]
	rows := [][]models.InlineKeyboardButton{
		telegram.ButtonRow(telegram.URLButton("Open Link", entry.Link)),
		telegram.ButtonRow(telegram.InlineButton("Upload Screenshot", cbUpload+entry.ID)),
	}
	if index+1 < len(entries) {
		rows = append(rows, telegram.ButtonRow(
			telegram.InlineButton("Next ➡️", cbNext+strconv.Itoa(index+1)),
		))
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("🔗 %s\n👉 Open the link and upload a screenshot.", entry.Title),
		ReplyMarkup: telegram.InlineKeyboard(rows...),
	})
	if err != nil {
		slog.Warn("send task card", "chat_id", chatID, "error", err)
	}

	if err := h.users.SetCursor(ctx, strconv.FormatInt(chatID, 10), index); err != nil {
		slog.Error("persist task cursor", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleNext(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(cb.Data, cbNext))
	if err != nil {
		telegram.AnswerCallback(ctx, b, cb.ID, "")
		return
	}

	h.presentTaskAt(ctx, b, cb.From.ID, index)
	telegram.AnswerCallback(ctx, b, cb.ID, "")
}

// handleUpload arms the awaiting-screenshot binding for the pressing
// chat. The very next message decides the flow: a photo becomes a
// submission, anything else clears the binding.
func (h *Handler) handleUpload(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	chatID := cb.From.ID
	taskID := strings.TrimPrefix(cb.Data, cbUpload)

	if _, err := h.tasks.Get(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			telegram.AnswerCallback(ctx, b, cb.ID, "This task no longer exists.")
			return
		}
		slog.Error("get task", "task_id", taskID, "error", err)
		telegram.AnswerCallback(ctx, b, cb.ID, "Something went wrong.")
		return
	}

	h.conv.Bind(chatID, conversation.Binding{
		Kind:   conversation.AwaitScreenshot,
		TaskID: taskID,
	})
	telegram.Notify(ctx, b, chatID, "Upload screenshot now:")
	telegram.AnswerCallback(ctx, b, cb.ID, "")
}
