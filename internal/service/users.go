package service

import (
	"context"
	"fmt"

	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/i18n"
	"github.com/quotexbts78-art/telegram-task-bot/internal/store"
)

type UserService struct {
	users       *store.Collection[domain.User]
	defaultLang i18n.Lang
}

func NewUserService(users *store.Collection[domain.User], defaultLang i18n.Lang) *UserService {
	return &UserService{users: users, defaultLang: defaultLang}
}

// EnsureRegistered creates the user record on first contact and is a
// no-op afterwards. Every operation that touches a user field runs
// through this first: an inline button press can be an actor's very
// first update.
func (s *UserService) EnsureRegistered(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.users.Update(ctx, func(m map[string]domain.User) error {
		existing, ok := m[id]
		if ok {
			u = existing
			return nil
		}
		u = domain.User{
			ID:       id,
			Language: s.defaultLang,
		}
		m[id] = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	found := false
	err := s.users.View(ctx, func(m map[string]domain.User) error {
		u, found = m[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// All returns a copy of every user record, keyed by id.
func (s *UserService) All(ctx context.Context) (map[string]domain.User, error) {
	out := map[string]domain.User{}
	err := s.users.View(ctx, func(m map[string]domain.User) error {
		for id, u := range m {
			out[id] = u
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Credit adds points to the user's balance, registering the user first
// if the record is somehow missing.
func (s *UserService) Credit(ctx context.Context, id string, points int) (*domain.User, error) {
	var u domain.User
	err := s.users.Update(ctx, func(m map[string]domain.User) error {
		existing, ok := m[id]
		if !ok {
			existing = domain.User{ID: id, Language: s.defaultLang}
		}
		existing.Balance += points
		m[id] = existing
		u = existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("credit user %s: %w", id, err)
	}
	return &u, nil
}

func (s *UserService) SetLanguage(ctx context.Context, id string, lang i18n.Lang) error {
	return s.mutate(ctx, id, func(u *domain.User) {
		u.Language = lang
	})
}

// SetCursor persists the advisory task-catalog cursor.
func (s *UserService) SetCursor(ctx context.Context, id string, cursor int) error {
	return s.mutate(ctx, id, func(u *domain.User) {
		u.TaskCursor = cursor
	})
}

// AddWithdrawal appends a payment destination to the user's withdrawal
// list. The list is append-only; execution is manual and out of scope.
func (s *UserService) AddWithdrawal(ctx context.Context, id, destination string) error {
	return s.mutate(ctx, id, func(u *domain.User) {
		u.Withdrawals = append(u.Withdrawals, destination)
	})
}

func (s *UserService) mutate(ctx context.Context, id string, fn func(*domain.User)) error {
	return s.users.Update(ctx, func(m map[string]domain.User) error {
		u, ok := m[id]
		if !ok {
			u = domain.User{ID: id, Language: s.defaultLang}
		}
		fn(&u)
		m[id] = u
		return nil
	})
}
