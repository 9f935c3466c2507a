// Command migrate promotes data stored under the misspelled legacy "mpvi-"
// slot keys to the canonical "mvpi-" keys. The server runs the same
// migration on startup; this tool exists for migrating a data directory
// without starting the server.
package main

import (
	"log"

	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/storage"
)

func main() {
	log.Println("Starting storage key migration...")

	config.InitStorage()
	store := config.GetStore()

	if err := storage.MigrateLegacyKeys(store); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Storage key migration completed successfully!")
}
