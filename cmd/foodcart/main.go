package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linemk/foodcart/internal/app"
	"github.com/linemk/foodcart/internal/config"
	"github.com/linemk/foodcart/internal/lib/logger"
	"github.com/pkg/errors"
)

func main() {
	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting foodcart client",
		slog.String("env", cfg.Env),
		slog.String("gateway", cfg.Gateway.BaseURL),
	)

	// загружаем объект приложения: сессия и клиент внешнего API
	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}

	// завершение по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Error("client stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("client stopped")
}
