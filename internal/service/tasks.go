package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/store"
)

// TaskEntry pairs a catalog task with its identifier for ordered
// listings.
type TaskEntry struct {
	ID string
	domain.Task
}

type TaskService struct {
	tasks *store.Collection[domain.Task]
}

func NewTaskService(tasks *store.Collection[domain.Task]) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the catalog in insertion order (ascending numeric id).
func (s *TaskService) List(ctx context.Context) ([]TaskEntry, error) {
	var entries []TaskEntry
	err := s.tasks.View(ctx, func(m map[string]domain.Task) error {
		entries = make([]TaskEntry, 0, len(m))
		for id, t := range m {
			entries = append(entries, TaskEntry{ID: id, Task: t})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByNumericID(entries)
	return entries, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	found := false
	err := s.tasks.View(ctx, func(m map[string]domain.Task) error {
		t, found = m[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

// Add creates a task under the next sequential id and returns that id.
// Identifiers derive from the current catalog size, so an id freed by
// Remove can be handed out again later; see the conformance tests.
func (s *TaskService) Add(ctx context.Context, title, link string) (string, error) {
	var id string
	err := s.tasks.Update(ctx, func(m map[string]domain.Task) error {
		id = nextSequentialID(len(m), func(candidate string) bool {
			_, exists := m[candidate]
			return exists
		})
		m[id] = domain.Task{Title: title, Link: link}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Remove deletes the task and reports whether it existed. An unknown
// id is actor input, not an error.
func (s *TaskService) Remove(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.tasks.Update(ctx, func(m map[string]domain.Task) error {
		if _, ok := m[id]; ok {
			delete(m, id)
			removed = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// nextSequentialID starts at count+1 and walks forward past any id
// still in use, so identifiers stay unique among live records even
// after deletions create gaps.
func nextSequentialID(count int, exists func(string) bool) string {
	n := count + 1
	for exists(strconv.Itoa(n)) {
		n++
	}
	return strconv.Itoa(n)
}

func sortByNumericID(entries []TaskEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, aerr := strconv.Atoi(entries[i].ID)
		b, berr := strconv.Atoi(entries[j].ID)
		if aerr != nil || berr != nil {
			return entries[i].ID < entries[j].ID
		}
		return a < b
	})
}
