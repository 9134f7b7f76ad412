package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"firm-digest/internal/usecase/commands"
)

// Poller runs delivery batches on a fixed interval. A batch that fills up is
// followed immediately by another so a backlog drains without waiting.
type Poller struct {
	commands  commands.DeliveryCommands
	interval  time.Duration
	batchSize int
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewPoller(cmds commands.DeliveryCommands, interval time.Duration, batchSize int, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		commands:  cmds,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger.With("component", "delivery_poller"),
	}
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.running = true
	p.cancel = cancel

	p.wg.Add(1)
	go p.run(ctx)
	p.logger.Info("delivery poller started", "interval", p.interval.String(), "batch_size", p.batchSize)
}

// Stop stops claiming new jobs and waits for in-flight deliveries to record
// their outcome, or until ctx ends.
func (p *Poller) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.cancel()
	p.mu.Unlock()

	if err := waitGroup(ctx, &p.wg); err != nil {
		p.logger.Warn("delivery poller did not drain in time", "error", err)
		return err
	}
	p.logger.Info("delivery poller stopped")
	return nil
}

func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		for p.runBatch(ctx) {
			if ctx.Err() != nil {
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// runBatch reports whether the batch was full and another should follow.
func (p *Poller) runBatch(ctx context.Context) bool {
	res, err := p.commands.RunWorkerBatch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("delivery batch failed", "error", err)
		}
		return false
	}
	// Skipped-only batches mean other workers hold the rows; back off.
	return res.Listed >= p.batchSize && res.Claimed > 0
}
