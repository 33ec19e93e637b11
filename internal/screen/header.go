package screen

import (
	"context"
	"sync"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

// DisconnectedBanner is shown while the node cannot be reached
const DisconnectedBanner = "unable to connect to the blockchain node"

// HeaderState is the state of the status header
type HeaderState struct {
	// Status is the last status received, kept while disconnected
	Status    *model.NodeStatus
	Banner    string
	UpdatedAt time.Time
}

// Connected reports whether the last poll succeeded
func (s HeaderState) Connected() bool {
	return s.Status != nil && s.Banner == ""
}

// HeaderEvent changes the header state
type HeaderEvent interface {
	applyHeader(*HeaderState)
}

// StatusLoaded is dispatched after a successful status poll
type StatusLoaded struct {
	Status *model.NodeStatus
	At     time.Time
}

func (e StatusLoaded) applyHeader(s *HeaderState) {
	s.Status = e.Status
	s.Banner = ""
	s.UpdatedAt = e.At
}

// StatusFailed is dispatched after a failed status poll
type StatusFailed struct{}

func (StatusFailed) applyHeader(s *HeaderState) {
	s.Banner = DisconnectedBanner
}

// HeaderScreen shows node status and a connectivity banner
type HeaderScreen struct {
	source StatusSource
	poller *Poller

	mu    sync.RWMutex
	state HeaderState
}

// NewHeaderScreen creates a header polling source every interval
func NewHeaderScreen(source StatusSource, interval time.Duration, logger zerolog.Logger, m *metrics.Metrics) *HeaderScreen {
	h := &HeaderScreen{source: source}
	h.poller = NewPoller(NameHeader, interval, h.Refresh, logger, m)
	return h
}

// Mount starts the status poll
func (h *HeaderScreen) Mount(ctx context.Context) { h.poller.Mount(ctx) }

// Unmount stops the status poll
func (h *HeaderScreen) Unmount() { h.poller.Unmount() }

// Refresh loads node status once
func (h *HeaderScreen) Refresh(ctx context.Context) error {
	status, err := h.source.GetNodeStatus(ctx)
	if err != nil {
		h.Dispatch(StatusFailed{})
		return err
	}
	h.Dispatch(StatusLoaded{Status: status, At: time.Now()})
	return nil
}

// Dispatch applies ev to the state
func (h *HeaderScreen) Dispatch(ev HeaderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ev.applyHeader(&h.state)
}

// State returns a copy of the current state
func (h *HeaderScreen) State() HeaderState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}
