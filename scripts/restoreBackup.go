package main

import (
	"encoding/json"
	"log"
	"os"

	"eduverse/config"
	"eduverse/engine"
	"eduverse/store"
)

// Restores a backup snapshot (written by the backup scheduler) into the
// configured store. Usage: go run scripts/restoreBackup.go <backup.json>
func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: restoreBackup <backup.json>")
	}

	config.LoadConfig()

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read backup file: %v", err)
	}

	var snapshot engine.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Fatalf("Failed to parse backup file: %v", err)
	}

	var st store.Store
	if config.AppConfig.StoreBackend == "gorm" {
		st, err = store.OpenGormStore(config.AppConfig.DBDriver, config.AppConfig.DSN)
	} else {
		st, err = store.NewFileStore(config.AppConfig.DataDir)
	}
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if err := engine.RestoreSnapshot(st, snapshot); err != nil {
		log.Fatalf("Failed to restore snapshot: %v", err)
	}

	log.Printf("Restored %d users, %d courses, %d enrollments, %d certificates from %s",
		len(snapshot.Users), len(snapshot.Courses), len(snapshot.Enrollments), len(snapshot.Certificates), os.Args[1])
}
