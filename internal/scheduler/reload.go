package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"salesdash/internal/sales/usecase"
)

type Reloader interface {
	Reload(ctx context.Context) (*usecase.Snapshot, error)
}

// ReloadScheduler re-reads the dataset on a cron schedule.
type ReloadScheduler struct {
	cron     *cron.Cron
	reloader Reloader
	timeout  time.Duration
	logger   *zap.Logger
	entryID  cron.EntryID
}

// NewReloadScheduler returns nil when spec is empty; a nil scheduler is a
// valid no-op for Start and Stop.
func NewReloadScheduler(spec string, reloader Reloader, timeout time.Duration, logger *zap.Logger) (*ReloadScheduler, error) {
	if spec == "" {
		return nil, nil
	}

	s := &ReloadScheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		reloader: reloader,
		timeout:  timeout,
		logger:   logger,
	}

	id, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}
	s.entryID = id
	return s, nil
}

func (s *ReloadScheduler) Start() {
	if s == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("dataset reload scheduled", zap.Time("nextRun", s.cron.Entry(s.entryID).Next))
}

// Stop waits for a running reload to finish or ctx to expire.
func (s *ReloadScheduler) Stop(ctx context.Context) {
	if s == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("reload scheduler stop timed out")
	}
}

func (s *ReloadScheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// Reload logs its own failures and keeps the previous snapshot.
	_, _ = s.reloader.Reload(ctx)
}
