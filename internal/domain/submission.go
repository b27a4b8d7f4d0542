package domain

import "time"

// Submission is a proof-of-completion awaiting the administrator's
// decision. Approved and rejected submissions are deleted, not
// archived, so presence in the collection means pending.
type Submission struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`

	// FileID is the Telegram file id of the uploaded screenshot. Only
	// the reference is stored, never the image bytes.
	FileID string `json:"file_id"`

	CreatedAt time.Time `json:"created_at"`
}
