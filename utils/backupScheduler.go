package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"eduverse/engine"

	"github.com/robfig/cron/v3"
)

// logBackup logs backup scheduler events with timestamp
func logBackup(message string) {
	log.Printf("[BACKUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeBackupScheduler sets up the periodic state snapshot job. The
// snapshot is a second line of defense behind the store; it captures the
// full engine state as one timestamped JSON document.
func InitializeBackupScheduler(e *engine.Engine, dir, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		logBackup("No schedule configured, backups disabled.")
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := WriteBackup(e, dir); err != nil {
			logBackup(fmt.Sprintf("Backup failed: %v", err))
			return
		}
		logBackup("Backup written.")
	})
	if err != nil {
		return nil, fmt.Errorf("schedule backup job: %w", err)
	}

	c.Start()
	logBackup(fmt.Sprintf("Scheduler started with schedule %q.", schedule))
	return c, nil
}

// WriteBackup dumps the engine snapshot to a timestamped file in dir.
func WriteBackup(e *engine.Engine, dir string) error {
	snapshot := e.Snapshot()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	name := fmt.Sprintf("eduverse-%s.json", time.Now().Format("20060102-150405"))
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
