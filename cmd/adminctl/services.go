package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/dmitrijs2005/foliovault/internal/server/migrations"
	"github.com/dmitrijs2005/foliovault/internal/server/sections"
	"github.com/dmitrijs2005/foliovault/internal/server/users"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// newLogger writes JSON lines to stderr so command output on stdout
// stays clean.
func newLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}

// newUserService wires the same user store the server would use for the
// given configuration. The returned closer releases the DB connection
// when PostgreSQL is configured.
func newUserService(cfg *config.Config, log logging.Logger) (*users.Service, func(), error) {
	var repo users.Repository
	closer := func() {}

	if cfg.DatabaseDSN == "" {
		key := cryptox.DeriveKey(cfg.AuthEncryptionKey)
		repo = users.NewFileRepository(cfg.DataDir, key, log)
	} else {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db init error: %w", err)
		}
		if err := migrations.Run(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("db migration error: %w", err)
		}
		repo = users.NewPostgresRepository(db)
		closer = func() { db.Close() }
	}

	svc, err := users.NewService(repo, cfg, log)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return svc, closer, nil
}

func newSectionService(cfg *config.Config, log logging.Logger) *sections.Service {
	return sections.NewService(cfg.DataDir, cryptox.DeriveKey(cfg.DBEncryptionKey), log)
}
