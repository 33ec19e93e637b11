package handler

import (
	"context"
	"sync"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/internal/storage"
	"github.com/AlexZinkM/leochain-explorer/leochain"

	"github.com/rs/zerolog"
)

const (
	testPrefix   = "leo"
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

type fakeChain struct {
	status    *model.NodeStatus
	statusErr error

	blocks    map[int64]model.Block
	blocksErr error
	limit     int

	validators []model.Validator
	balances   map[string][]model.Balance
	tokens     map[string]string
	txs        map[string]model.Transaction
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		status:   &model.NodeStatus{NodeInfo: model.NodeInfo{Network: "leochain"}, SyncInfo: model.SyncInfo{LatestBlockHeight: 3}},
		blocks:   map[int64]model.Block{1: {Height: 1}, 2: {Height: 2}, 3: {Height: 3}},
		balances: make(map[string][]model.Balance),
		tokens:   make(map[string]string),
		txs:      make(map[string]model.Transaction),
	}
}

func (f *fakeChain) GetNodeStatus(context.Context) (*model.NodeStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.status, nil
}

func (f *fakeChain) GetBlock(_ context.Context, height int64) (*model.Block, error) {
	if f.blocksErr != nil {
		return nil, f.blocksErr
	}
	b, ok := f.blocks[height]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &b, nil
}

func (f *fakeChain) GetBlocks(_ context.Context, limit int) ([]model.Block, error) {
	f.limit = limit
	if f.blocksErr != nil {
		return nil, f.blocksErr
	}
	out := make([]model.Block, 0, limit)
	for h := f.status.SyncInfo.LatestBlockHeight; h > 0 && len(out) < limit; h-- {
		out = append(out, f.blocks[h])
	}
	return out, nil
}

func (f *fakeChain) GetValidators(context.Context) ([]model.Validator, error) {
	return f.validators, nil
}

func (f *fakeChain) GetBalances(_ context.Context, address string) []model.Balance {
	if b, ok := f.balances[address]; ok {
		return b
	}
	return []model.Balance{}
}

func (f *fakeChain) GetTokenBalance(_ context.Context, address, denom string) string {
	if v, ok := f.tokens[address+"/"+denom]; ok {
		return v
	}
	return "0"
}

func (f *fakeChain) GetTransaction(_ context.Context, hash string) *model.Transaction {
	tx, ok := f.txs[hash]
	if !ok {
		return nil
	}
	return &tx
}

func (f *fakeChain) GetRecentTransactions(_ context.Context, limit int) []model.Transaction {
	f.limit = limit
	return []model.Transaction{}
}

type fakeSearcher struct {
	results map[string]*model.SearchResult
}

func (f *fakeSearcher) Search(_ context.Context, query string) *model.SearchResult {
	if res, ok := f.results[query]; ok {
		return res
	}
	return &model.SearchResult{Query: query, Kind: model.SearchNotFound, Error: leochain.NoResultsMessage}
}

type fakeTransferer struct {
	mu       sync.Mutex
	requests []model.TransferRequest
	result   *model.TransferResult
}

func (f *fakeTransferer) Transfer(_ context.Context, req model.TransferRequest, _ leochain.Observer) *model.TransferResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.result
}

func newAccountStore() *leochain.AccountStore {
	return leochain.NewAccountStore(storage.NewMemoryStorage(), testPrefix, zerolog.Nop())
}
