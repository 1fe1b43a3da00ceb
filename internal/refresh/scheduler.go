package refresh

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"clmi/internal/ws"
)

// Refresher re-pulls upstream snapshots and reports which collections
// actually changed hands.
type Refresher interface {
	Refresh(ctx context.Context) ([]string, error)
}

type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
	logger    *log.Logger
}

func NewScheduler(refresher Refresher, timeout time.Duration, logger *log.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start registers the refresh job under the given cron spec and launches
// the scheduler. An empty spec disables periodic refresh entirely.
func (s *Scheduler) Start(spec string) error {
	if s == nil || s.refresher == nil || spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	if s.logger != nil {
		s.logger.Printf("[Refresh] Scheduler started | spec=%q", spec)
	}
	return nil
}

func (s *Scheduler) Stop() {
	if s == nil || s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	refreshed, err := s.refresher.Refresh(ctx)
	if err != nil && s.logger != nil {
		s.logger.Printf("[Refresh] Partial refresh | error=%v", err)
	}
	for _, collection := range refreshed {
		ws.NotifySnapshotRefreshed(collection)
	}
	if s.logger != nil {
		s.logger.Printf("[Refresh] Completed | collections=%d duration=%s", len(refreshed), time.Since(started).Round(time.Millisecond))
	}
}
