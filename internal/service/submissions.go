package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/quotexbts78-art/telegram-task-bot/internal/config"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/store"
)

// PendingSubmission pairs a pending submission with its identifier.
type PendingSubmission struct {
	ID string
	domain.Submission
}

// SubmissionService owns the approval queue. A submission exists only
// while pending; approve and reject both delete it, and deletion under
// the collection lock is the guard that makes either decision
// effective at most once.
type SubmissionService struct {
	submissions *store.Collection[domain.Submission]
	users       *UserService
}

func NewSubmissionService(submissions *store.Collection[domain.Submission], users *UserService) *SubmissionService {
	return &SubmissionService{submissions: submissions, users: users}
}

// Create records a new pending submission and returns its id. The
// caller persisted nothing before this; the record is durable before
// any confirmation or admin notification goes out.
func (s *SubmissionService) Create(ctx context.Context, userID, taskID, fileID string) (string, error) {
	var id string
	err := s.submissions.Update(ctx, func(m map[string]domain.Submission) error {
		id = nextSequentialID(len(m), func(candidate string) bool {
			_, exists := m[candidate]
			return exists
		})
		m[id] = domain.Submission{
			UserID:    userID,
			TaskID:    taskID,
			FileID:    fileID,
			CreatedAt: time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("create submission: %w", err)
	}
	return id, nil
}

// Pending lists the queue in ascending numeric id order.
func (s *SubmissionService) Pending(ctx context.Context) ([]PendingSubmission, error) {
	var entries []PendingSubmission
	err := s.submissions.View(ctx, func(m map[string]domain.Submission) error {
		entries = make([]PendingSubmission, 0, len(m))
		for id, sub := range m {
			entries = append(entries, PendingSubmission{ID: id, Submission: sub})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		a, aerr := strconv.Atoi(entries[i].ID)
		b, berr := strconv.Atoi(entries[j].ID)
		if aerr != nil || berr != nil {
			return entries[i].ID < entries[j].ID
		}
		return a < b
	})
	return entries, nil
}

// Approve claims the submission and credits the submitter. A second
// decision on the same id finds nothing to claim and reports
// domain.ErrSubmissionNotFound, which the caller surfaces as "already
// processed". The claim happens before the credit so racing
// administrator taps cannot credit twice.
func (s *SubmissionService) Approve(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.claim(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Credit(ctx, sub.UserID, config.RewardPoints); err != nil {
		return nil, err
	}
	return sub, nil
}

// Reject claims the submission without touching the balance.
func (s *SubmissionService) Reject(ctx context.Context, id string) (*domain.Submission, error) {
	return s.claim(ctx, id)
}

func (s *SubmissionService) claim(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	err := s.submissions.Update(ctx, func(m map[string]domain.Submission) error {
		existing, ok := m[id]
		if !ok {
			return domain.ErrSubmissionNotFound
		}
		sub = existing
		delete(m, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
