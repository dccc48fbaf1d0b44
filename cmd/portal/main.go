package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mshakil/ictportal/internal/config"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/portal"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := portal.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
