package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"quiz-forge/database/migrations"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: migrate [-steps n] up|down|version\n")
	flag.PrintDefaults()
}

func main() {
	steps := flag.Int("steps", 1, "number of migrations to revert with down; 0 reverts all")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.NewSQLXOracleDB(ctx, database.DSN(cfg.DB))
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	m, err := database.NewMigrator(db, migrations.FS, ".", l)
	if err != nil {
		l.Fatal("Failed to open migrations", zap.Error(err))
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			l.Fatal("Migration failed", zap.Int("applied", n), zap.Error(err))
		}
		l.Info("Migrations applied", zap.Int("applied", n))
	case "down":
		n, err := m.Down(ctx, *steps)
		if err != nil {
			l.Fatal("Rollback failed", zap.Int("reverted", n), zap.Error(err))
		}
		l.Info("Migrations reverted", zap.Int("reverted", n))
	case "version":
		v, dirty, ok, err := m.Version(ctx)
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		if !ok {
			l.Info("No migration applied yet")
			return
		}
		l.Info("Schema version", zap.Uint("version", v), zap.Bool("dirty", dirty))
	default:
		l.Error("Unknown command", zap.String("command", cmd))
		usage()
		os.Exit(2)
	}
}
