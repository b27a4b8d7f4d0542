package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	taskbot "github.com/quotexbts78-art/telegram-task-bot"
	"github.com/quotexbts78-art/telegram-task-bot/internal/config"
	"github.com/quotexbts78-art/telegram-task-bot/internal/conversation"
	"github.com/quotexbts78-art/telegram-task-bot/internal/domain"
	"github.com/quotexbts78-art/telegram-task-bot/internal/handler"
	"github.com/quotexbts78-art/telegram-task-bot/internal/i18n"
	"github.com/quotexbts78-art/telegram-task-bot/internal/middleware"
	"github.com/quotexbts78-art/telegram-task-bot/internal/service"
	"github.com/quotexbts78-art/telegram-task-bot/internal/store"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the store backend
	st, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Collections and services
	users := store.NewCollection[domain.User](st, config.CollectionUsers)
	tasks := store.NewCollection[domain.Task](st, config.CollectionTasks)
	submissions := store.NewCollection[domain.Submission](st, config.CollectionSubmissions)

	userService := service.NewUserService(users, i18n.Parse(cfg.DefaultLanguage))
	taskService := service.NewTaskService(tasks)
	submissionService := service.NewSubmissionService(submissions, userService)
	previewService := service.NewPreviewService(cfg.PreviewTimeout)

	conv := conversation.NewRegistry()

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.Registration(userService),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	// Initialize handler and register all routes
	h := handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Users:       userService,
		Tasks:       taskService,
		Submissions: submissionService,
		Preview:     previewService,
		Conv:        conv,
	})
	h.Register()

	// Start bot
	slog.Info("starting bot", "admin_id", cfg.AdminID, "store", cfg.StoreBackend)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		return store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.BackendPostgres:
		migrationsFS, err := fs.Sub(taskbot.MigrationsFS, "migrations")
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(ctx, cfg.DatabaseURL, migrationsFS)
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}
