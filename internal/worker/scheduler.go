package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/usecase/commands"

	"github.com/adhocore/gronx"
)

// passTimeout bounds one scheduling pass so a hung directory query cannot
// stall the loop past the next tick.
const passTimeout = 5 * time.Minute

// Scheduler runs a scheduling pass on every tick of a cron expression. Each
// pass is idempotent, so ticks may be missed or repeated safely.
type Scheduler struct {
	commands commands.SchedulingCommands
	cron     string
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler(cmds commands.SchedulingCommands, cron string, clk clock.Clock, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		commands: cmds,
		cron:     cron,
		clock:    clk,
		logger:   logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)
	s.logger.Info("scheduler started", "cron", s.cron)
}

// Stop cancels the loop and waits for an in-flight pass, or until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	if err := waitGroup(ctx, &s.wg); err != nil {
		s.logger.Warn("scheduler did not stop in time", "error", err)
		return err
	}
	s.logger.Info("scheduler stopped")
	return nil
}

// RunOnce runs a single pass at the current clock time.
func (s *Scheduler) RunOnce(ctx context.Context) (*commands.PassResult, error) {
	ctx, cancel := context.WithTimeout(ctx, passTimeout)
	defer cancel()
	return s.commands.RunSchedulingPass(ctx, s.clock.Now())
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	// Catch up immediately in case the process restarted inside the window.
	s.tick(ctx)

	for {
		next, err := gronx.NextTickAfter(s.cron, s.clock.Now(), false)
		if err != nil {
			s.logger.Error("failed to compute next tick", "cron", s.cron, "error", err)
			return
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("scheduling pass failed", "error", err)
	}
}

func waitGroup(ctx context.Context, wg *sync.WaitGroup) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
