package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

func (h *Handler) startWithdraw(ctx context.Context, b *bot.Bot, chatID int64) {
	h.conv.Bind(chatID, conversation.Binding{Kind: conversation.AwaitUPI})
	telegram.Notify(ctx, b, chatID, "Enter your UPI ID:")
}

// finishWithdraw records the payment destination and forwards it to
// the administrator. The user's confirmation does not depend on the
// admin notification going through.
func (h *Handler) finishWithdraw(ctx context.Context, b *bot.Bot, chatID int64, upi string) {
	if err := h.users.AddWithdrawal(ctx, strconv.FormatInt(chatID, 10), upi); err != nil {
		slog.Error("record withdrawal", "chat_id", chatID, "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}

	telegram.Notify(ctx, b, h.cfg.AdminID,
		fmt.Sprintf("Withdraw request from %d: %s", chatID, upi))
	telegram.Notify(ctx, b, chatID, "Withdrawal request sent.")
}
