package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/importers"
)

// importTimeout bounds one import run, both as the queue's task timeout and
// as the processor's context deadline. NewImportDirectoryQueue sets it from
// configuration before the queue is registered.
var importTimeout = DefaultConfig().TaskTimeout

// ImportDirectoryTask runs the import pipeline over every CSV file in Dir.
type ImportDirectoryTask struct {
	Dir         string `json:"dir"`
	Clear       bool   `json:"clear"`
	DryRun      bool   `json:"dry_run"`
	RequestedBy string `json:"requested_by"` // "api" or "schedule"
}

// Config returns the queue configuration. Import runs are not retried: a
// failed run usually leaves partial data that needs a human to look at it.
func (t ImportDirectoryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "import_directory",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     importTimeout,
		Retention: &backlite.Retention{
			Duration:   7 * 24 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// Importer runs a directory import.
type Importer interface {
	Run(ctx context.Context, opts importers.RunOptions) (importers.Summary, error)
}

// ImportDirectoryProcessor returns a processor that runs imp for each task.
// A run in which any entity errored marks the task as failed.
func ImportDirectoryProcessor(imp Importer, timeout time.Duration, log *zap.Logger) backlite.QueueProcessor[ImportDirectoryTask] {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, task ImportDirectoryTask) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		log.Info("processing import task",
			zap.String("dir", task.Dir),
			zap.Bool("clear", task.Clear),
			zap.Bool("dry_run", task.DryRun),
			zap.String("requested_by", task.RequestedBy),
		)

		summary, err := imp.Run(ctx, importers.RunOptions{
			Dir:    task.Dir,
			Clear:  task.Clear,
			DryRun: task.DryRun,
		})
		if err != nil {
			return fmt.Errorf("import of %s failed: %w", task.Dir, err)
		}
		if summary.HasErrors() {
			return fmt.Errorf("import run %s finished with %d errored records and %d unreadable files",
				summary.RunID, summary.Errored, len(summary.FileErrors))
		}
		return nil
	}
}

// NewImportDirectoryQueue creates the queue for directory imports. A positive
// timeout replaces the default run timeout.
func NewImportDirectoryQueue(imp Importer, timeout time.Duration, log *zap.Logger) backlite.Queue {
	if timeout > 0 {
		importTimeout = timeout
	}
	return backlite.NewQueue(ImportDirectoryProcessor(imp, timeout, log))
}

// EnqueueImport adds a directory import and returns its task ID.
func (c *Client) EnqueueImport(task ImportDirectoryTask) (string, error) {
	ids, err := c.Add(task).Save()
	if err != nil {
		return "", fmt.Errorf("failed to enqueue import: %w", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("failed to enqueue import: no task id returned")
	}
	return ids[0], nil
}
