package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

// showReview sends one card per pending submission, each with its
// proof image and approve/reject actions.
func (h *Handler) showReview(ctx context.Context, b *bot.Bot, chatID int64) {
	pending, err := h.submissions.Pending(ctx)
	if err != nil {
		slog.Error("list pending submissions", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}
	if len(pending) == 0 {
		telegram.Notify(ctx, b, chatID, "No pending screenshots.")
		return
	}

	for _, p := range pending {
		h.sendSubmissionCard(ctx, b, chatID, p.ID, p.Submission)
	}
}

// sendSubmissionCard renders a submission for the administrator,
// falling back to a text summary when the photo cannot be sent.
func (h *Handler) sendSubmissionCard(ctx context.Context, b *bot.Bot, chatID any, id string, sub domain.Submission) {
	caption := fmt.Sprintf("Submission #%s\nUser: %s\nTask: %s", id, sub.UserID, sub.TaskID)
	markup := telegram.InlineKeyboard(
		telegram.ButtonRow(telegram.InlineButton("✅ Approve", cbApprove+id)),
		telegram.ButtonRow(telegram.InlineButton("❌ Reject", cbReject+id)),
	)

	if telegram.NotifyPhoto(ctx, b, chatID, sub.FileID, caption, markup) {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        caption + "\n(screenshot unavailable)",
		ReplyMarkup: markup,
	})
	if err != nil {
		slog.Warn("submission card dropped", "submission_id", id, "error", err)
	}
}

func (h *Handler) handleApprove(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	if !h.cfg.IsAdmin(cb.From.ID) {
		return
	}
	id := strings.TrimPrefix(cb.Data, cbApprove)

	sub, err := h.submissions.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			telegram.AnswerCallback(ctx, b, cb.ID, "Already processed.")
			return
		}
		slog.Error("approve submission", "submission_id", id, "error", err)
		telegram.AnswerCallback(ctx, b, cb.ID, "Something went wrong.")
		return
	}

	// The submission and the credit are durable by now; notifications
	// come strictly after.
	telegram.Notify(ctx, b, sub.UserID, "Screenshot Approved! +1 Point")
	h.markDecided(ctx, b, cb, fmt.Sprintf("Submission #%s\nUser: %s\nTask: %s\n\n✅ Approved", id, sub.UserID, sub.TaskID))
	telegram.AnswerCallback(ctx, b, cb.ID, "Approved.")
}

func (h *Handler) handleReject(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	if !h.cfg.IsAdmin(cb.From.ID) {
		return
	}
	id := strings.TrimPrefix(cb.Data, cbReject)

	sub, err := h.submissions.Reject(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			telegram.AnswerCallback(ctx, b, cb.ID, "Already processed.")
			return
		}
		slog.Error("reject submission", "submission_id", id, "error", err)
		telegram.AnswerCallback(ctx, b, cb.ID, "Something went wrong.")
		return
	}

	telegram.Notify(ctx, b, sub.UserID, "Screenshot Rejected.")
	h.markDecided(ctx, b, cb, fmt.Sprintf("Submission #%s\nUser: %s\nTask: %s\n\n❌ Rejected", id, sub.UserID, sub.TaskID))
	telegram.AnswerCallback(ctx, b, cb.ID, "Rejected.")
}

// markDecided rewrites the admin's review card so it no longer offers
// a decision. Best-effort; a failed edit leaves a stale card whose
// buttons answer "already processed".
func (h *Handler) markDecided(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, text string) {
	msg := cb.Message.Message
	if msg == nil {
		return
	}
	telegram.EditCaption(ctx, b, msg.Chat.ID, msg.ID, text)
}
