package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/engine"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/service"
	"quizforge/internal/session"
	"quizforge/internal/telegram"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSqliteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DB.MigrationsDir); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	appLogger.Info("Database ready", zap.String("path", cfg.DB.Path))

	draftRepository := repository.NewDraftDatabaseAdapter(db)
	store := session.NewStore()
	authoring := service.NewAuthoringService(store, engine.New(), draftRepository)

	bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.PollTimeout, authoring)
	if err != nil {
		appLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot.Run(ctx)
	appLogger.Info("Bot stopped")
}
