package battle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

const (
	// DefaultSweepInterval is how often idle battles are flagged
	DefaultSweepInterval = 5 * time.Second

	// DefaultEvictInterval is how often stale battles are removed
	DefaultEvictInterval = time.Minute
)

// SweeperConfig holds the dependencies for the sweeper
type SweeperConfig struct {
	Service       Service
	SweepInterval time.Duration
	EvictInterval time.Duration
}

// Validate validates the config
func (c *SweeperConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.SweepInterval < 0 {
		vb.Fieldf("SweepInterval", "must not be negative, got %s", c.SweepInterval)
	}
	if c.EvictInterval < 0 {
		vb.Fieldf("EvictInterval", "must not be negative, got %s", c.EvictInterval)
	}

	return vb.Build()
}

// Sweeper runs the flag and evict phases on their own tickers until
// stopped
type Sweeper struct {
	service       Service
	sweepInterval time.Duration
	evictInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a stopped sweeper
func NewSweeper(cfg *SweeperConfig) (*Sweeper, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Sweeper{
		service:       cfg.Service,
		sweepInterval: cfg.SweepInterval,
		evictInterval: cfg.EvictInterval,
	}
	if s.sweepInterval == 0 {
		s.sweepInterval = DefaultSweepInterval
	}
	if s.evictInterval == 0 {
		s.evictInterval = DefaultEvictInterval
	}
	return s, nil
}

// Start launches the background loop. Calling Start on a running sweeper
// does nothing.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	slog.InfoContext(ctx, "Battle sweeper started",
		"sweep_interval", s.sweepInterval.String(),
		"evict_interval", s.evictInterval.String())
}

// Stop cancels the loop and waits for it to exit
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	slog.Info("Battle sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	sweep := time.NewTicker(s.sweepInterval)
	defer sweep.Stop()
	evict := time.NewTicker(s.evictInterval)
	defer evict.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweep.C:
			s.Sweep(ctx)
		case <-evict.C:
			s.Evict(ctx)
		}
	}
}

// Sweep runs one flag pass
func (s *Sweeper) Sweep(ctx context.Context) {
	if _, err := s.service.SweepIdle(ctx, &SweepIdleInput{}); err != nil {
		slog.ErrorContext(ctx, "Battle sweep failed", "error", err)
	}
}

// Evict runs one eviction pass
func (s *Sweeper) Evict(ctx context.Context) {
	if _, err := s.service.EvictStale(ctx, &EvictStaleInput{}); err != nil {
		slog.ErrorContext(ctx, "Battle eviction failed", "error", err)
	}
}
