package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/middleware"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

func (h *Handler) showBalance(ctx context.Context, b *bot.Bot, chatID int64) {
	user := middleware.GetUser(ctx)
	if user == nil {
		// Registration middleware failed; read the record directly.
		u, err := h.users.Get(ctx, strconv.FormatInt(chatID, 10))
		if err != nil {
			slog.Error("get user balance", "chat_id", chatID, "error", err)
			telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
			return
		}
		user = u
	}
	telegram.Notify(ctx, b, chatID, fmt.Sprintf("Your balance: %d Points", user.Balance))
}
