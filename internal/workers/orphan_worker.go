package workers

import (
	"context"
	"time"

	"notake_backend/internal/logger"
	"notake_backend/internal/repositories"
	"notake_backend/internal/storage"

	"gorm.io/gorm"
)

// OrphanWorker periodically sweeps the metadata ledger for rows whose blob
// has gone missing. It only reports; reconciliation stays a manual call.
type OrphanWorker struct {
	db       *gorm.DB
	store    storage.Storage
	fileRepo repositories.FileMetadataRepository
	interval time.Duration
}

func NewOrphanWorker(db *gorm.DB, store storage.Storage, fileRepo repositories.FileMetadataRepository, interval time.Duration) *OrphanWorker {
	return &OrphanWorker{
		db:       db,
		store:    store,
		fileRepo: fileRepo,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (w *OrphanWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("orphan sweeper started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("orphan sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OrphanWorker) sweep(ctx context.Context) {
	rows, err := w.fileRepo.FindAll(w.db)
	if err != nil {
		logger.Error("orphan sweep: listing ledger failed", "error", err)
		return
	}

	var orphans int
	for i := range rows {
		exists, err := w.store.Exists(ctx, rows[i].FilePath)
		if err != nil {
			logger.Warn("orphan sweep: blob check failed",
				"fileId", rows[i].ID, "path", rows[i].FilePath, "error", err)
			continue
		}
		if !exists {
			orphans++
			logger.Warn("orphan sweep: ledger row without blob",
				"fileId", rows[i].ID, "userId", rows[i].UserID, "path", rows[i].FilePath)
		}
	}

	logger.Info("orphan sweep finished", "rows", len(rows), "orphans", orphans)
}
