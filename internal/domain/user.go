package domain

import "github.com/quotexbts78-art/telegram-task-bot/internal/i18n"

// User is a registered actor. ID is the decimal Telegram chat id and
// doubles as the record's key in the users collection.
type User struct {
	ID          string    `json:"id"`
	Balance     int       `json:"balance"`
	Language    i18n.Lang `json:"language"`
	Withdrawals []string  `json:"withdrawals,omitempty"`

	// TaskCursor is an advisory pointer into the catalog presentation
	// order. It is persisted after every render and reset to zero when
	// the task list is opened; nothing else reads it.
	TaskCursor int `json:"task_cursor"`
}
