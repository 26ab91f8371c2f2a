package storage

import (
	"fmt"

	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/config"
)

// Open builds the repository the config asks for.
func Open(cfg *config.Config) (action.Repository, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return NewFileStore(cfg.StorePath), nil
	case config.StoragePostgres:
		pool, err := Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}
