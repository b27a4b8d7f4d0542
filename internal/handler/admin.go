package handler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/telegram"
)

func (h *Handler) startAddTask(ctx context.Context, b *bot.Bot, chatID int64) {
	h.conv.Bind(chatID, conversation.Binding{Kind: conversation.AwaitTaskTitle})
	telegram.Notify(ctx, b, chatID, "Send task title:")
}

func (h *Handler) continueAddTask(ctx context.Context, b *bot.Bot, chatID int64, title string) {
	h.conv.Bind(chatID, conversation.Binding{
		Kind:  conversation.AwaitTaskLink,
		Title: title,
	})
	telegram.Notify(ctx, b, chatID, "Send task link:")
}

func (h *Handler) finishAddTask(ctx context.Context, b *bot.Bot, chatID int64, title, link string) {
	id, err := h.tasks.Add(ctx, title, link)
	if err != nil {
		slog.Error("add task", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}

	reply := fmt.Sprintf("Task %s added!", id)
	if pageTitle, err := h.preview.PageTitle(ctx, link); err == nil {
		reply += fmt.Sprintf("\nPage: %s", pageTitle)
	} else {
		slog.Debug("link preview unavailable", "link", link, "error", err)
	}
	telegram.Notify(ctx, b, chatID, reply)
}

func (h *Handler) startRemoveTask(ctx context.Context, b *bot.Bot, chatID int64) {
	entries, err := h.tasks.List(ctx)
	if err != nil {
		slog.Error("list tasks", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}
	if len(entries) == 0 {
		telegram.Notify(ctx, b, chatID, "No tasks to remove.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Tasks:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s. %s\n", e.ID, e.Title)
	}
	sb.WriteString("\nSend task ID to remove:")

	h.conv.Bind(chatID, conversation.Binding{Kind: conversation.AwaitRemoveID})
	telegram.Notify(ctx, b, chatID, sb.String())
}

func (h *Handler) finishRemoveTask(ctx context.Context, b *bot.Bot, chatID int64, id string) {
	removed, err := h.tasks.Remove(ctx, strings.TrimSpace(id))
	if err != nil {
		slog.Error("remove task", "task_id", id, "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}
	if removed {
		telegram.Notify(ctx, b, chatID, "Task Removed.")
	} else {
		telegram.Notify(ctx, b, chatID, "Invalid ID.")
	}
}

func (h *Handler) showUsers(ctx context.Context, b *bot.Bot, chatID int64) {
	users, err := h.users.All(ctx)
	if err != nil {
		slog.Error("list users", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}
	if len(users) == 0 {
		telegram.Notify(ctx, b, chatID, "No users yet.")
		return
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString("Users List:\n")
	for _, id := range ids {
		fmt.Fprintf(&sb, "%s — %d Points\n", id, users[id].Balance)
	}
	telegram.Notify(ctx, b, chatID, sb.String())
}

func (h *Handler) startBroadcast(ctx context.Context, b *bot.Bot, chatID int64) {
	h.conv.Bind(chatID, conversation.Binding{Kind: conversation.AwaitBroadcast})
	telegram.Notify(ctx, b, chatID, "Send message to broadcast:")
}

// finishBroadcast fans the text out to every registered user. Per-user
// delivery failures are swallowed; the count reports attempts, not
// confirmed deliveries.
func (h *Handler) finishBroadcast(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	users, err := h.users.All(ctx)
	if err != nil {
		slog.Error("list users for broadcast", "error", err)
		telegram.Notify(ctx, b, chatID, "Something went wrong. Try again.")
		return
	}

	for id := range users {
		telegram.Notify(ctx, b, id, text)
	}
	telegram.Notify(ctx, b, chatID, fmt.Sprintf("Broadcast sent to %d users.", len(users)))
}
