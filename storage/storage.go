package storage

import (
	"fmt"

	"medicare/config"
)

// New builds the driver selected by cfg.StorageDriver.
func New(cfg config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "memory":
		return NewMemoryStorage(), nil
	case "", "file":
		return NewFileStorage(cfg.StoragePath, cfg.StorageKey)
	case "redis":
		return NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}
}
