package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"playo/internal/app"
	"playo/internal/config"
	"playo/internal/observability"
)

func main() {
	log.Init(logrus.InfoLevel)

	// missing .env is fine, the environment itself may carry the config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	if cfg.JaegerEndpoint != "" {
		tp, err := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to configure tracing")
		}
		defer func() {
			_ = tp.Shutdown(context.Background())
		}()
	}

	watermillLogger := watermill.NewStdLogger(false, false)

	a, err := app.NewApp(cfg, watermillLogger)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize the app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("App run error")
	}
}
