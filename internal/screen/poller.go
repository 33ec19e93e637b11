// Package screen holds the state of the explorer, accounts, transfer and
// header screens. Each screen owns an explicit state struct that only
// changes through dispatched events, and polls its data while mounted.
package screen

import (
	"context"
	"sync"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"

	"github.com/rs/zerolog"
)

// FetchFunc loads fresh data for a screen
type FetchFunc func(ctx context.Context) error

// Poller runs a fetch immediately on Mount and then on a fixed interval until Unmount.
// Pollers of different screens are independent.
type Poller struct {
	name     string
	interval time.Duration
	fetch    FetchFunc
	logger   zerolog.Logger
	metrics  *metrics.Metrics

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a stopped poller
func NewPoller(name string, interval time.Duration, fetch FetchFunc, logger zerolog.Logger, m *metrics.Metrics) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{
		name:     name,
		interval: interval,
		fetch:    fetch,
		logger:   logger.With().Str(logging.FieldScreen, name).Logger(),
		metrics:  m,
	}
}

// Mount starts polling. Mounting a mounted poller is a no-op
func (p *Poller) Mount(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.loop(ctx)

	p.logger.Debug().Dur(logging.FieldDuration, p.interval).Msg("screen mounted")
}

// Unmount stops polling and waits for an in-flight fetch to return
func (p *Poller) Unmount() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()

	p.logger.Debug().Msg("screen unmounted")
}

// Mounted reports whether the poller is running
func (p *Poller) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) loop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	err := p.fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	p.metrics.ObservePoll(p.name, err)
	if err != nil {
		p.logger.Debug().Err(err).Msg("poll failed")
	}
}
