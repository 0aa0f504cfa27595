package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"scanintake/internal/config"
	"scanintake/internal/observability/logging"
	"scanintake/internal/observability/metrics"
	"scanintake/internal/observability/middleware"
	"scanintake/internal/roster"
	"scanintake/internal/service"
	"scanintake/internal/store"
	httptransport "scanintake/internal/transport/http"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "scanintake",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	db, err := store.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Error("database open", "error", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.Init(context.Background()); err != nil {
		logger.Error("schema init", "error", err)
		os.Exit(1)
	}

	metrics.MustRegister("scanintake")

	svc := service.New(st, roster.New(cfg.RosterPath))

	mux := httptransport.NewRouter(svc, cfg)
	handler := middleware.WithRequestAndTrace(middleware.WithMetrics(mux))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("scan intake listening", "addr", srv.Addr, "driver", cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
