package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

// HandlePhoto routes an inbound photo. Only a chat with a live
// awaiting-screenshot binding turns it into a submission; the binding
// is consumed either way.
func (h *Handler) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || len(msg.Photo) == 0 {
		return
	}
	chatID := msg.Chat.ID

	binding, ok := h.conv.Take(chatID)
	if !ok {
		telegram.Notify(ctx, b, chatID, "You do not have any pending task.")
		return
	}
	if binding.Kind != conversation.AwaitScreenshot {
		telegram.Notify(ctx, b, chatID, "Text was expected here. Start over from the menu.")
		return
	}

	// The largest size is last; its file id is the proof reference.
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	userID := strconv.FormatInt(chatID, 10)

	id, err := h.submissions.Create(ctx, userID, binding.TaskID, fileID)
	if err != nil {
		slog.Error("create submission", "chat_id", chatID, "task_id", binding.TaskID, "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}

	telegram.Notify(ctx, b, chatID, "Screenshot submitted! Waiting for admin approval.")

	// Best-effort heads-up; the admin can always find the item via the
	// review listing.
	h.sendSubmissionCard(ctx, b, h.cfg.AdminID, id, domain.Submission{
		UserID: userID,
		TaskID: binding.TaskID,
		FileID: fileID,
	})
}
