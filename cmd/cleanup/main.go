// Command cleanup purges read messages older than the retention period. It
// is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/message"
	"github.com/ricmershon/dwellio-sub005/internal/app"
	"github.com/ricmershon/dwellio-sub005/internal/config"
)

func main() {
	days := flag.Int("days", 180, "retention period for read messages, in days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *days < 1 {
		logger.Error("retention must be at least one day", slog.Int("days", *days))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -*days)

	deleted, err := message.New(pool).DeleteReadBefore(ctx, threshold)
	if err != nil {
		logger.Error("message cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("message cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
