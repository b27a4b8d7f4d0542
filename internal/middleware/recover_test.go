package middleware

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestRecover_SwallowsPanic(t *testing.T) {
	wrapped := Recover()(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		wrapped(context.Background(), nil, &models.Update{
			ID:      7,
			Message: &models.Message{Chat: models.Chat{ID: 42}},
		})
	})
}

func TestRecover_PassesThrough(t *testing.T) {
	called := false
	wrapped := Recover()(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		called = true
	})

	wrapped(context.Background(), nil, &models.Update{})
	assert.True(t, called)
}

func TestActorID(t *testing.T) {
	id, ok := ActorID(&models.Update{Message: &models.Message{Chat: models.Chat{ID: 42}}})
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	id, ok = ActorID(&models.Update{CallbackQuery: &models.CallbackQuery{From: models.User{ID: 7}}})
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok = ActorID(&models.Update{})
	assert.False(t, ok)
}
