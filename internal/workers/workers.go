package workers

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles all background workers enabled by configuration.
// A zero backup interval disables the backup worker, leaving the aggregate
// empty (Run is then a no-op).
func NewWorkers(cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.BackupInterval > 0 {
		ws.workers = append(ws.workers, NewBackupWorker(
			cfg.Storage.DB.DSN,
			cfg.Workers.BackupDir,
			cfg.Workers.BackupInterval,
			logger,
		))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
