package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/internal/storage"
	"github.com/AlexZinkM/leochain-explorer/leochain"

	"github.com/rs/zerolog"
)

const (
	bobMnemonic   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	carolMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"
)

var errUnreachable = errors.New("connection refused")

type fakeSource struct {
	mu sync.Mutex

	status    *model.NodeStatus
	statusErr error

	blocks     []model.Block
	validators []model.Validator
	chainErr   error

	balances      map[string][]model.Balance
	balanceCalls  int
	searchQueries []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		status:   &model.NodeStatus{SyncInfo: model.SyncInfo{LatestBlockHeight: 7}},
		balances: make(map[string][]model.Balance),
	}
}

func (f *fakeSource) GetNodeStatus(context.Context) (*model.NodeStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.status, nil
}

func (f *fakeSource) GetBlocks(context.Context, int) ([]model.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chainErr != nil {
		return nil, f.chainErr
	}
	return f.blocks, nil
}

func (f *fakeSource) GetValidators(context.Context) ([]model.Validator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chainErr != nil {
		return nil, f.chainErr
	}
	return f.validators, nil
}

func (f *fakeSource) GetBalances(_ context.Context, address string) []model.Balance {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balanceCalls++
	return f.balances[address]
}

func (f *fakeSource) Search(_ context.Context, query string) *model.SearchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchQueries = append(f.searchQueries, query)
	return &model.SearchResult{Query: query, Kind: model.SearchNotFound}
}

func (f *fakeSource) setStatusErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusErr = err
}

func (f *fakeSource) setBalances(address string, balances []model.Balance) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[address] = balances
}

type fakeRunner struct {
	result *model.TransferResult
	block  chan struct{}

	mu       sync.Mutex
	requests []model.TransferRequest
}

func (f *fakeRunner) Transfer(_ context.Context, req model.TransferRequest, observe leochain.Observer) *model.TransferResult {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	observe(model.TransferValidating)
	observe(model.TransferSubmitting)
	if f.block != nil {
		<-f.block
	}
	observe(f.result.State)
	return f.result
}

func (f *fakeRunner) FeeLabel() string {
	return "500 stake"
}

func newStore() *leochain.AccountStore {
	return leochain.NewAccountStore(storage.NewMemoryStorage(), "leo", zerolog.Nop())
}
