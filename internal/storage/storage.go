// Package storage selects and constructs slot store backends.
package storage

import (
	"context"
	"fmt"

	"github.com/entnt/dentalcare-server/internal/config"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/storage/file"
	"github.com/entnt/dentalcare-server/internal/storage/memory"
	"github.com/entnt/dentalcare-server/internal/storage/postgres"
	"github.com/entnt/dentalcare-server/internal/storage/sqlite"
)

// Open constructs the slot store named by cfg.Driver.
func Open(ctx context.Context, cfg config.Storage) (model.SlotStore, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "file":
		return file.New(cfg.FileRoot)
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		return postgres.New(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
