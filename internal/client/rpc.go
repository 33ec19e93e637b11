package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	abcitypes "github.com/cometbft/cometbft/abci/types"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/rs/zerolog"
)

const (
	surfaceRPC = "rpc"

	// recentTxQuery matches every indexed transaction
	recentTxQuery = "tx.height>0"
)

// NodeRPC is the subset of the CometBFT RPC client used by the explorer.
// *rpchttp.HTTP satisfies it.
type NodeRPC interface {
	Status(ctx context.Context) (*coretypes.ResultStatus, error)
	Block(ctx context.Context, height *int64) (*coretypes.ResultBlock, error)
	Validators(ctx context.Context, height *int64, page, perPage *int) (*coretypes.ResultValidators, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)
	TxSearch(ctx context.Context, query string, prove bool, page, perPage *int, orderBy string) (*coretypes.ResultTxSearch, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error)
}

var _ NodeRPC = (*rpchttp.HTTP)(nil)

// RPCClient is a client for the node's CometBFT RPC surface.
// Every call is a single attempt bounded by the configured timeout.
type RPCClient struct {
	node    NodeRPC
	timeout time.Duration
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewRPCClient creates a client for the RPC surface at rpcURL
func NewRPCClient(rpcURL string, timeout time.Duration, logger zerolog.Logger, m *metrics.Metrics) (*RPCClient, error) {
	node, err := rpchttp.NewWithTimeout(rpcURL, "/websocket", uint(timeout/time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to create CometBFT client: %w", err)
	}
	return NewRPCClientWithNode(node, timeout, logger, m), nil
}

// NewRPCClientWithNode wraps an existing NodeRPC implementation
func NewRPCClientWithNode(node NodeRPC, timeout time.Duration, logger zerolog.Logger, m *metrics.Metrics) *RPCClient {
	return &RPCClient{
		node:    node,
		timeout: timeout,
		logger:  logging.ForComponent(logger, "rpc_client").With().Str(logging.FieldSurface, surfaceRPC).Logger(),
		metrics: m,
	}
}

// NodeStatus gets node info and sync info
func (c *RPCClient) NodeStatus(ctx context.Context) (*model.NodeStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.node.Status(ctx)
	c.observe("status", err)
	if err != nil {
		return nil, c.wrap("status", err)
	}
	if res == nil {
		return nil, c.wrap("status", fmt.Errorf("empty status response"))
	}

	c.metrics.SetLatestHeight(res.SyncInfo.LatestBlockHeight)
	return &model.NodeStatus{
		NodeInfo: model.NodeInfo{
			Network: res.NodeInfo.Network,
			Version: res.NodeInfo.Version,
			Moniker: res.NodeInfo.Moniker,
		},
		SyncInfo: model.SyncInfo{
			LatestBlockHeight: res.SyncInfo.LatestBlockHeight,
			LatestBlockTime:   res.SyncInfo.LatestBlockTime,
			CatchingUp:        res.SyncInfo.CatchingUp,
		},
	}, nil
}

// Block gets the block at height
func (c *RPCClient) Block(ctx context.Context, height int64) (*model.Block, error) {
	if height <= 0 {
		return nil, fmt.Errorf("block %d: %w", height, model.ErrNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.node.Block(ctx, &height)
	c.observe("block", err)
	if err != nil {
		if isHeightUnavailable(err) {
			return nil, fmt.Errorf("block %d: %w", height, model.ErrNotFound)
		}
		return nil, c.wrap("block", err)
	}
	// The node answers with an empty block when it has no meta for the height
	if res == nil || res.Block == nil {
		return nil, fmt.Errorf("block %d: %w", height, model.ErrNotFound)
	}

	return toBlock(res), nil
}

// Validators gets the current validator set in the order the node returns it
func (c *RPCClient) Validators(ctx context.Context) ([]model.Validator, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.node.Validators(ctx, nil, nil, nil)
	c.observe("validators", err)
	if err != nil {
		return nil, c.wrap("validators", err)
	}

	validators := make([]model.Validator, 0, len(res.Validators))
	for _, v := range res.Validators {
		if v == nil {
			continue
		}
		validators = append(validators, model.Validator{
			Address:          v.Address.String(),
			VotingPower:      v.VotingPower,
			ProposerPriority: v.ProposerPriority,
		})
	}
	return validators, nil
}

// Transaction gets an executed transaction by its hex hash (with or without 0x)
func (c *RPCClient) Transaction(ctx context.Context, hash string) (*model.Transaction, error) {
	bz, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(hash, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hash: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.node.Tx(ctx, bz, false)
	c.observe("tx", err)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
		}
		return nil, c.wrap("tx", err)
	}
	if res == nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
	}
	return toTransaction(res), nil
}

// RecentTransactions gets up to limit indexed transactions, newest first
func (c *RPCClient) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	page := 1
	res, err := c.node.TxSearch(ctx, recentTxQuery, false, &page, &limit, "desc")
	c.observe("tx_search", err)
	if err != nil {
		return nil, c.wrap("tx_search", err)
	}

	txs := make([]model.Transaction, 0, len(res.Txs))
	for _, tx := range res.Txs {
		if tx == nil {
			continue
		}
		t := toTransaction(tx)
		t.Events = nil
		txs = append(txs, *t)
	}
	return txs, nil
}

// BroadcastTxSync submits signed tx bytes and returns the CheckTx result
func (c *RPCClient) BroadcastTxSync(ctx context.Context, txBytes []byte) (*model.BroadcastResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.node.BroadcastTxSync(ctx, txBytes)
	c.observe("broadcast_tx_sync", err)
	if err != nil {
		return nil, c.wrap("broadcast_tx_sync", err)
	}
	return &model.BroadcastResult{
		Hash:      res.Hash.String(),
		Code:      res.Code,
		Codespace: res.Codespace,
		Log:       res.Log,
	}, nil
}

func (c *RPCClient) observe(endpoint string, err error) {
	c.metrics.ObserveUpstream(surfaceRPC, endpoint, err)
	if err != nil {
		c.logger.Debug().Err(err).Str(logging.FieldEndpoint, endpoint).Msg("rpc call failed")
	}
}

func (c *RPCClient) wrap(endpoint string, err error) error {
	return &model.UpstreamError{Surface: surfaceRPC, Endpoint: endpoint, Err: err}
}

// isHeightUnavailable matches the node's errors for heights above the head or below the base
func isHeightUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "must be less than or equal to the current blockchain height") ||
		strings.Contains(msg, "is not available, lowest height is")
}

func toBlock(res *coretypes.ResultBlock) *model.Block {
	header := res.Block.Header
	return &model.Block{
		Height:   header.Height,
		Hash:     res.BlockID.Hash.String(),
		Time:     header.Time,
		Proposer: header.ProposerAddress.String(),
		TxCount:  len(res.Block.Data.Txs),
	}
}

func toTransaction(res *coretypes.ResultTx) *model.Transaction {
	return &model.Transaction{
		Hash:      res.Hash.String(),
		Height:    res.Height,
		Code:      res.TxResult.Code,
		GasUsed:   res.TxResult.GasUsed,
		GasWanted: res.TxResult.GasWanted,
		Events:    toEvents(res.TxResult.Events),
	}
}

func toEvents(events []abcitypes.Event) []model.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		attrs := make([]model.EventAttribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, model.EventAttribute{Key: a.Key, Value: a.Value})
		}
		out = append(out, model.Event{Type: e.Type, Attributes: attrs})
	}
	return out
}
