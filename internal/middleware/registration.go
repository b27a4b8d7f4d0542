package middleware

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/service"
)

type ctxKey string

const userKey ctxKey = "user"

// GetUser extracts the registered user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// ActorID returns the acting chat/account id for an update. Messages
// are keyed by chat id, button presses by the pressing account; in the
// private chats this bot lives in the two coincide.
func ActorID(update *models.Update) (int64, bool) {
	if update.Message != nil {
		return update.Message.Chat.ID, true
	}
	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID, true
	}
	return 0, false
}

// Registration returns middleware that guarantees a user record exists
// for the acting chat before any handler runs, and puts the record in
// the context. Any update can be an actor's first contact — a button
// press does not imply an earlier /start.
func Registration(users *service.UserService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			id, ok := ActorID(update)
			if !ok {
				next(ctx, b, update)
				return
			}

			user, err := users.EnsureRegistered(ctx, strconv.FormatInt(id, 10))
			if err != nil {
				slog.Error("ensure registered", "actor_id", id, "error", err)
				next(ctx, b, update)
				return
			}

			next(context.WithValue(ctx, userKey, user), b, update)
		}
	}
}
