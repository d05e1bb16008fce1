package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"quest-board/internal/config"
	"quest-board/internal/logger"
	"quest-board/internal/router"
	"quest-board/internal/service"
	"quest-board/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("timezone load failed", "err", err)
		os.Exit(1)
	}
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}
	if err := st.Seed(context.Background()); err != nil {
		slog.Error("db seed failed", "err", err)
		os.Exit(1)
	}

	svc := service.New(st, loc)
	r := router.New(svc)

	slog.Info("server starting", "addr", cfg.Addr(), "timezone", cfg.Timezone)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
