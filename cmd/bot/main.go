package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iteachuz/enrollbot/internal/bot"
	"github.com/iteachuz/enrollbot/internal/config"
	"github.com/iteachuz/enrollbot/internal/logger"
	"github.com/iteachuz/enrollbot/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("bot: %v", err)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	app, err := bot.Bootstrap(cfg)
	if err != nil {
		return err
	}

	runOpts := app.RunOptions()

	logger.APP.Info("app ready",
		slog.String("event", "ready"),
		slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = telegram.Run(ctx, runOpts)

	logger.APP.Info("shutting down",
		slog.String("event", "shutdown"),
	)
	return err
}
