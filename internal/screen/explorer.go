package screen

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ExplorerState is the state of the block explorer screen
type ExplorerState struct {
	Blocks     []model.Block
	Validators []model.Validator
	// Loading is true until the first poll finishes
	Loading   bool
	UpdatedAt time.Time

	Query     string
	Searching bool
	Search    *model.SearchResult
}

// ExplorerEvent changes the explorer state
type ExplorerEvent interface {
	applyExplorer(*ExplorerState)
}

// ChainLoaded is dispatched after blocks and validators were fetched
type ChainLoaded struct {
	Blocks     []model.Block
	Validators []model.Validator
	At         time.Time
}

func (e ChainLoaded) applyExplorer(s *ExplorerState) {
	s.Blocks = e.Blocks
	s.Validators = e.Validators
	s.Loading = false
	s.UpdatedAt = e.At
}

// ChainLoadFailed is dispatched after a failed poll; previous data stays visible
type ChainLoadFailed struct{}

func (ChainLoadFailed) applyExplorer(s *ExplorerState) {
	s.Loading = false
}

// SearchStarted is dispatched when a search is submitted
type SearchStarted struct {
	Query string
}

func (e SearchStarted) applyExplorer(s *ExplorerState) {
	s.Query = e.Query
	s.Searching = true
	s.Search = nil
}

// SearchFinished carries the outcome of a search
type SearchFinished struct {
	Result *model.SearchResult
}

func (e SearchFinished) applyExplorer(s *ExplorerState) {
	s.Searching = false
	s.Search = e.Result
}

// SearchCleared hides the search result
type SearchCleared struct{}

func (SearchCleared) applyExplorer(s *ExplorerState) {
	s.Query = ""
	s.Searching = false
	s.Search = nil
}

// ExplorerScreen shows the latest blocks, the validator set and search results
type ExplorerScreen struct {
	chain    ChainSource
	searcher SearchSource
	limit    int
	poller   *Poller

	mu    sync.RWMutex
	state ExplorerState
}

// NewExplorerScreen creates an explorer screen listing limit blocks
func NewExplorerScreen(
	chain ChainSource,
	searcher SearchSource,
	limit int,
	interval time.Duration,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *ExplorerScreen {
	e := &ExplorerScreen{
		chain:    chain,
		searcher: searcher,
		limit:    limit,
		state:    ExplorerState{Loading: true},
	}
	e.poller = NewPoller(NameExplorer, interval, e.Refresh, logger, m)
	return e
}

// Mount starts the block and validator poll
func (e *ExplorerScreen) Mount(ctx context.Context) { e.poller.Mount(ctx) }

// Unmount stops the block and validator poll
func (e *ExplorerScreen) Unmount() { e.poller.Unmount() }

// Refresh fetches blocks and validators in parallel
func (e *ExplorerScreen) Refresh(ctx context.Context) error {
	var (
		blocks     []model.Block
		validators []model.Validator
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocks, err = e.chain.GetBlocks(gctx, e.limit)
		return err
	})
	g.Go(func() error {
		var err error
		validators, err = e.chain.GetValidators(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		e.Dispatch(ChainLoadFailed{})
		return err
	}
	e.Dispatch(ChainLoaded{Blocks: blocks, Validators: validators, At: time.Now()})
	return nil
}

// Search runs query through the search classifier and keeps the result.
// An empty query does nothing.
func (e *ExplorerScreen) Search(ctx context.Context, query string) *model.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	e.Dispatch(SearchStarted{Query: query})
	res := e.searcher.Search(ctx, query)
	e.Dispatch(SearchFinished{Result: res})
	return res
}

// Dispatch applies ev to the state
func (e *ExplorerScreen) Dispatch(ev ExplorerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev.applyExplorer(&e.state)
}

// State returns a copy of the current state
func (e *ExplorerScreen) State() ExplorerState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.state
	s.Blocks = append([]model.Block(nil), e.state.Blocks...)
	s.Validators = append([]model.Validator(nil), e.state.Validators...)
	return s
}
