package leochain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
)

const (
	// BIP39 test vector for all-zero 256-bit entropy
	bobMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	// BIP39 test vector for all-zero 128-bit entropy
	carolMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

var errUnreachable = errors.New("connection refused")

// fakeChain implements ChainRPC and ChainREST in memory
type fakeChain struct {
	mu sync.Mutex

	status    *model.NodeStatus
	statusErr error

	blocks     map[int64]*model.Block
	blockCalls []int64

	validators []model.Validator

	balances    map[string][]model.Balance
	balancesErr error

	tokenBalance string
	tokenErr     error

	txs       map[string]*model.Transaction
	txErr     error
	txLookups int

	accounts map[string]*model.AccountInfo

	// onBroadcast decides the CheckTx result; nil accepts with code 0
	onBroadcast func(txBytes []byte) (*model.BroadcastResult, error)
	broadcasts  [][]byte

	calls int
}

var (
	_ ChainRPC  = (*fakeChain)(nil)
	_ ChainREST = (*fakeChain)(nil)
)

func newFakeChain(latest int64) *fakeChain {
	f := &fakeChain{
		status: &model.NodeStatus{
			NodeInfo: model.NodeInfo{Network: "leochain", Moniker: "node0"},
			SyncInfo: model.SyncInfo{LatestBlockHeight: latest},
		},
		blocks:   make(map[int64]*model.Block),
		balances: make(map[string][]model.Balance),
		txs:      make(map[string]*model.Transaction),
		accounts: make(map[string]*model.AccountInfo),
	}
	for h := int64(1); h <= latest; h++ {
		f.blocks[h] = &model.Block{Height: h, Hash: fmt.Sprintf("HASH%d", h)}
	}
	return f
}

func (f *fakeChain) NodeStatus(context.Context) (*model.NodeStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	status := *f.status
	return &status, nil
}

func (f *fakeChain) Block(_ context.Context, height int64) (*model.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.blockCalls = append(f.blockCalls, height)
	b, ok := f.blocks[height]
	if !ok {
		return nil, model.ErrNotFound
	}
	block := *b
	return &block, nil
}

func (f *fakeChain) Validators(context.Context) ([]model.Validator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.validators, nil
}

func (f *fakeChain) Transaction(_ context.Context, hash string) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.txLookups++
	if f.txErr != nil {
		return nil, f.txErr
	}
	tx, ok := f.txs[strings.ToUpper(hash)]
	if !ok {
		return nil, model.ErrNotFound
	}
	return tx, nil
}

func (f *fakeChain) RecentTransactions(_ context.Context, limit int) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.txErr != nil {
		return nil, f.txErr
	}
	txs := make([]model.Transaction, 0, len(f.txs))
	for _, tx := range f.txs {
		if len(txs) == limit {
			break
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

func (f *fakeChain) BroadcastTxSync(_ context.Context, txBytes []byte) (*model.BroadcastResult, error) {
	f.mu.Lock()
	onBroadcast := f.onBroadcast
	f.calls++
	f.broadcasts = append(f.broadcasts, txBytes)
	f.mu.Unlock()

	if onBroadcast == nil {
		return &model.BroadcastResult{Hash: "ABCDEF"}, nil
	}
	return onBroadcast(txBytes)
}

func (f *fakeChain) Balances(_ context.Context, address string) ([]model.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.balancesErr != nil {
		return nil, f.balancesErr
	}
	return f.balances[address], nil
}

func (f *fakeChain) TokenBalance(context.Context, string, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.tokenBalance, nil
}

func (f *fakeChain) Account(_ context.Context, address string) (*model.AccountInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	info, ok := f.accounts[address]
	if !ok {
		return nil, &model.UpstreamError{Surface: "rest", Endpoint: "account", Err: model.ErrNotFound}
	}
	return info, nil
}

func (f *fakeChain) addTx(tx *model.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs[strings.ToUpper(tx.Hash)] = tx
}

func (f *fakeChain) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeChain) broadcastCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.broadcasts)
}
