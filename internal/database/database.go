package database

import (
	"context"
	"fmt"

	"quiz-forge/internal/config"

	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"
)

// DSN builds a go-ora connection URL, escaping credentials.
func DSN(cfg config.DBConfig) string {
	return go_ora.BuildUrl(cfg.Host, cfg.Port, cfg.DBName, cfg.User, cfg.Password, nil)
}

// NewSQLXOracleDB opens and pings an Oracle connection pool.
func NewSQLXOracleDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}
	return db, nil
}
