package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/examdesk/quiz/internal/infrastructure/config"
	"github.com/examdesk/quiz/internal/service"
	"github.com/examdesk/quiz/internal/store"
	"github.com/examdesk/quiz/internal/terminal"
)

// Details go to the log; the notice itself stays non-technical.
const noticeStoreDown = "The exam database is unavailable. Questions may be missing and your result may not be saved."

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ui := terminal.New(os.Stdin, os.Stdout)
	ctx := context.Background()

	// ── Store ───────────────────────────────────────────────────────
	// A store that cannot be opened or initialized is reported and the
	// session carries on without exam content.
	var db store.Store
	sqlStore, err := store.NewSQL(store.Driver(cfg.DBDriver), cfg.DBDSN, logger)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		ui.Notify(noticeStoreDown)
		db = store.Unavailable{Cause: err}
	} else {
		db = sqlStore
		initCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		if err := db.Initialize(initCtx); err != nil {
			logger.Error("failed to initialize database", "driver", cfg.DBDriver, "error", err)
			ui.Notify(noticeStoreDown)
		}
		cancel()
	}
	defer db.Close()

	// ── Session ─────────────────────────────────────────────────────
	exams := service.NewExamService(db, logger)
	results := service.NewResultService(db, logger)
	runner := service.NewRunner(exams, results, ui, logger)

	if _, err := runner.Run(ctx, cfg.ExamTitle); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Info("input closed before the exam finished")
			return
		}
		logger.Error("exam session aborted", "error", err)
		db.Close()
		os.Exit(1)
	}
}
