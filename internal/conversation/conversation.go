// Package conversation tracks what the very next message from a chat
// means. Bindings live only in process memory; a restart drops them
// and the user re-initiates the flow.
package conversation

import "sync"

type Kind int

const (
	AwaitTaskTitle Kind = iota + 1
	AwaitTaskLink
	AwaitRemoveID
	AwaitUPI
	AwaitScreenshot
	AwaitBroadcast
)

// Binding is the pending continuation for one chat: the kind of input
// expected next plus the context captured so far.
type Binding struct {
	Kind Kind

	// TaskID is set for AwaitScreenshot.
	TaskID string

	// Title is set for AwaitTaskLink, carrying the first step of the
	// two-step add-task flow.
	Title string
}

type Registry struct {
	mu       sync.Mutex
	bindings map[int64]Binding
}

func NewRegistry() *Registry {
	return &Registry{bindings: make(map[int64]Binding)}
}

// Bind registers the continuation for a chat. Last write wins: an
// unconsumed earlier binding is silently replaced.
func (r *Registry) Bind(chatID int64, b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[chatID] = b
}

// Take consumes the chat's binding. One-shot and unconditional: after
// Take returns, the binding is gone whether or not the caller can use
// the input it received.
func (r *Registry) Take(chatID int64) (Binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[chatID]
	if ok {
		delete(r.bindings, chatID)
	}
	return b, ok
}

// Clear drops the chat's binding without dispatching it.
func (r *Registry) Clear(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, chatID)
}
