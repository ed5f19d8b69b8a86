package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/arabizi-coach/internal/config"
	"github.com/aliskhannn/arabizi-coach/internal/delivery/telegram"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
	"github.com/aliskhannn/arabizi-coach/internal/logger"
	"github.com/aliskhannn/arabizi-coach/internal/matcher"
	"github.com/aliskhannn/arabizi-coach/internal/repository"
	"github.com/aliskhannn/arabizi-coach/internal/service"
	"github.com/aliskhannn/arabizi-coach/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "practice", Description: "Get a word to practice"},
		{Command: "repeat", Description: "Show the current word again"},
		{Command: "skip", Description: "Reveal the answer"},
		{Command: "stats", Description: "Show your stats"},
		{Command: "history", Description: "Recent attempts (add \"misses\" for mistakes only)"},
		{Command: "mode", Description: "Prompt with English or Arabic script"},
		{Command: "reset", Description: "Reset your progress"},
		{Command: "help", Description: "Help"},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Initialize repositories and services.
	lexiconRepo, err := repository.NewLexiconRepository(cfg.LexiconJSONPath)
	if err != nil {
		return err
	}
	lg.Info("lexicon loaded", zap.Int("entries", lexiconRepo.Len()))

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		lg.Info("database migrated")
	}

	tr := postgres.NewTransactor(pool)
	prompts := storage.NewPromptStorage()

	userRepo := pgrepo.NewUserRepository(pool)
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	progressRepo := pgrepo.NewProgressRepository(pool)
	attemptRepo := pgrepo.NewAttemptRepository(pool)

	m := matcher.New(
		matcher.WithAcceptThreshold(cfg.Matcher.AcceptThreshold),
		matcher.WithPartialThreshold(cfg.Matcher.PartialThreshold),
		matcher.WithCrossLexicon(cfg.Matcher.CrossLexicon),
	)

	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	statsService := service.NewStatsService(attemptRepo, progressRepo)
	resetService := service.NewResetService(tr, prompts)
	practiceService := service.NewPracticeService(
		tr,
		lexiconRepo,
		m,
		prompts,
		progressRepo,
		settingsService,
		service.WithMasteryThreshold(cfg.Practice.MasteryCorrect),
		service.WithSuggestions(cfg.Practice.Suggestions),
	)

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		practiceService,
		statsService,
		settingsService,
		resetService,
	)

	return handler.Run(ctx)
}
