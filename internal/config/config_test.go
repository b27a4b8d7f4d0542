package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "6111048950")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, int64(6111048950), cfg.AdminID)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "hi", cfg.DefaultLanguage)
	assert.False(t, cfg.DropPendingUpdates)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("ADMIN_ID", "1")
	// t.Setenv registers the restore; unset to guarantee absence even
	// when the test environment carries a token.
	t.Setenv("BOT_TOKEN", "")
	os.Unsetenv("BOT_TOKEN")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskbot")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminID: 42}

	assert.True(t, cfg.IsAdmin(42))
	assert.False(t, cfg.IsAdmin(43))
	assert.False(t, cfg.IsAdmin(0))
}
