package config

import (
	"log"
	"os"

	"mvpi-scorecard/app/storage"
)

type Config struct {
	Store   storage.Store
	DataDir string
}

var AppConfig *Config

// InitStorage opens the file-backed slot store. The data directory defaults
// to ./data and can be overridden with MVPI_DATA_DIR.
func InitStorage() {
	dataDir := os.Getenv("MVPI_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}

	AppConfig = &Config{
		Store:   store,
		DataDir: dataDir,
	}
	log.Printf("Storage initialized at %s", dataDir)
}

func GetStore() storage.Store {
	return AppConfig.Store
}
