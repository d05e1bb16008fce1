// Command seed provisions the database without starting the server: it runs
// migrations, creates the two players and the level 1-50 reward table on an
// empty database, and repairs zeroed stat columns on an existing one.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"quest-board/internal/config"
	"quest-board/internal/logger"
	"quest-board/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

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
	slog.Info("seed complete")
}
