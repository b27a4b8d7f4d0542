package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/i18n"
	"github.com/quotexbts78-art/telegram-task-bot/internal/store"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	users := store.NewCollection[domain.User](s, "users")
	return NewUserService(users, i18n.HI)
}

func TestEnsureRegistered_FirstContact(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.EnsureRegistered(ctx, "100")
	require.NoError(t, err)

	assert.Equal(t, "100", u.ID)
	assert.Equal(t, 0, u.Balance)
	assert.Equal(t, i18n.HI, u.Language)
	assert.Empty(t, u.Withdrawals)
	assert.Equal(t, 0, u.TaskCursor)
}

func TestEnsureRegistered_Idempotent(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.EnsureRegistered(ctx, "100")
	require.NoError(t, err)
	_, err = svc.Credit(ctx, "100", 5)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		u, err := svc.EnsureRegistered(ctx, "100")
		require.NoError(t, err)
		assert.Equal(t, 5, u.Balance)
	}

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGet_Unknown(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Get(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCredit_Accumulates(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.EnsureRegistered(ctx, "100")
	require.NoError(t, err)

	u, err := svc.Credit(ctx, "100", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, u.Balance)

	u, err = svc.Credit(ctx, "100", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, u.Balance)
}

func TestCredit_RegistersMissingUser(t *testing.T) {
	svc := newUserService(t)

	u, err := svc.Credit(context.Background(), "999", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, u.Balance)
	assert.Equal(t, i18n.HI, u.Language)
}

func TestSetLanguage(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.EnsureRegistered(ctx, "100")
	require.NoError(t, err)

	require.NoError(t, svc.SetLanguage(ctx, "100", i18n.EN))

	u, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, i18n.EN, u.Language)
}

func TestAddWithdrawal_AppendOnly(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddWithdrawal(ctx, "100", "alice@upi"))
	require.NoError(t, svc.AddWithdrawal(ctx, "100", "alice@okbank"))

	u, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@upi", "alice@okbank"}, u.Withdrawals)
}

func TestSetCursor(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetCursor(ctx, "100", 2))

	u, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, 2, u.TaskCursor)

	require.NoError(t, svc.SetCursor(ctx, "100", 0))
	u, err = svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, 0, u.TaskCursor)
}
