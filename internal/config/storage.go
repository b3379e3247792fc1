package config

import "strings"

const (
	envStorageDriver = "STORAGE_DRIVER"
	envStoragePath   = "STORAGE_PATH"

	defaultStorageDriver = StorageMemory
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// StorageConfig selects where session and dream team state is persisted.
type StorageConfig struct {
	Driver string
	Path   string
}

func loadStorage() StorageConfig {
	driver := strings.ToLower(strings.TrimSpace(envOrDefault(envStorageDriver, defaultStorageDriver)))
	path := envOrDefault(envStoragePath, "")
	if path == "" {
		path = defaultStoragePath(driver)
	}
	return StorageConfig{Driver: driver, Path: path}
}

func defaultStoragePath(driver string) string {
	switch driver {
	case StorageFile:
		return "data/storage.json"
	case StorageSQLite:
		return "data/storage.db"
	default:
		return ""
	}
}
