package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/tasks"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSchedule reports whether schedule is a five-field cron expression
// or a descriptor such as "@daily".
func ValidateSchedule(schedule string) error {
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// Enqueuer hands import runs to the task queue.
type Enqueuer interface {
	EnqueueImport(task tasks.ImportDirectoryTask) (string, error)
}

// ImportScheduler enqueues a directory import on a cron schedule.
type ImportScheduler struct {
	enqueuer Enqueuer
	dir      string
	schedule string
	log      *zap.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewImportScheduler(enqueuer Enqueuer, dir, schedule string, log *zap.Logger) *ImportScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportScheduler{
		enqueuer: enqueuer,
		dir:      dir,
		schedule: schedule,
		log:      log,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start begins the scheduler. An empty schedule leaves it disabled.
func (s *ImportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		s.log.Info("import scheduler disabled")
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.enqueue("schedule"); err != nil {
			s.log.Error("scheduled import failed to enqueue", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule import job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info("import scheduler started",
		zap.String("schedule", s.schedule),
		zap.String("dir", s.dir),
		zap.Time("next_run", s.cron.Entry(entryID).Next),
	)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job to finish and stops the scheduler.
func (s *ImportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	s.log.Info("import scheduler stopped")
}

// RunNow enqueues an import outside the schedule.
func (s *ImportScheduler) RunNow() (string, error) {
	return s.enqueue("manual")
}

func (s *ImportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next import will be enqueued, or nil when the
// scheduler is stopped.
func (s *ImportScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		return nil
	}
	return &next
}

func (s *ImportScheduler) enqueue(requestedBy string) (string, error) {
	id, err := s.enqueuer.EnqueueImport(tasks.ImportDirectoryTask{
		Dir:         s.dir,
		RequestedBy: requestedBy,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("import enqueued",
		zap.String("task_id", id),
		zap.String("dir", s.dir),
		zap.String("requested_by", requestedBy),
	)
	return id, nil
}
