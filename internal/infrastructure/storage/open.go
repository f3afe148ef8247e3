package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"garmentsync/internal/config"
	"garmentsync/internal/infrastructure/mysql"
	"garmentsync/internal/infrastructure/sqlite"
	"garmentsync/internal/repository"
	"garmentsync/internal/repository/memory"
	"garmentsync/internal/repository/sqlstore"
)

// Open returns the store selected by cfg.Driver with its schema in place.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case "memory":
		logger.Info("using in-memory store")
		return memory.New(), nil

	case "mysql":
		db, err := mysql.NewConnection(cfg, logger)
		if err != nil {
			return nil, err
		}
		store := sqlstore.New(db, sqlstore.DialectMySQL)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrating mysql schema: %w", err)
		}
		logger.Info("connected to mysql", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
		return store, nil

	case "sqlite":
		db, err := sqlite.NewConnection(cfg.Path)
		if err != nil {
			return nil, err
		}
		store := sqlstore.New(db, sqlstore.DialectSQLite)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrating sqlite schema: %w", err)
		}
		logger.Info("opened sqlite database", zap.String("path", cfg.Path))
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
