// Package leochain implements the explorer, search, local accounts and
// token transfers of a LeoChain node.
package leochain

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

// ChainRPC is the node's RPC surface as used by the explorer and transfers
type ChainRPC interface {
	NodeStatus(ctx context.Context) (*model.NodeStatus, error)
	Block(ctx context.Context, height int64) (*model.Block, error)
	Validators(ctx context.Context) ([]model.Validator, error)
	Transaction(ctx context.Context, hash string) (*model.Transaction, error)
	RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	BroadcastTxSync(ctx context.Context, txBytes []byte) (*model.BroadcastResult, error)
}

// ChainREST is the node's REST surface
type ChainREST interface {
	Balances(ctx context.Context, address string) ([]model.Balance, error)
	TokenBalance(ctx context.Context, address, denom string) (string, error)
	Account(ctx context.Context, address string) (*model.AccountInfo, error)
}

// Explorer exposes read-only chain data. Lookups that feed the screens
// degrade to empty values instead of failing.
type Explorer struct {
	rpc    ChainRPC
	rest   ChainREST
	logger zerolog.Logger
}

// NewExplorer creates a new Explorer
func NewExplorer(rpc ChainRPC, rest ChainREST, logger zerolog.Logger) *Explorer {
	return &Explorer{
		rpc:    rpc,
		rest:   rest,
		logger: logging.ForComponent(logger, "explorer"),
	}
}

// GetNodeStatus gets node info and sync info
func (e *Explorer) GetNodeStatus(ctx context.Context) (*model.NodeStatus, error) {
	status, err := e.rpc.NodeStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get node status: %w", err)
	}
	return status, nil
}

// GetBlock gets a single block by height
func (e *Explorer) GetBlock(ctx context.Context, height int64) (*model.Block, error) {
	block, err := e.rpc.Block(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("failed to get block %d: %w", height, err)
	}
	return block, nil
}

// GetBlocks gets up to limit blocks, newest first, starting at the latest height.
// Heights that fail to load are skipped
func (e *Explorer) GetBlocks(ctx context.Context, limit int) ([]model.Block, error) {
	status, err := e.GetNodeStatus(ctx)
	if err != nil {
		return nil, err
	}

	latest := status.SyncInfo.LatestBlockHeight
	blocks := make([]model.Block, 0, max(0, min(int64(limit), latest)))

	// Fetch one height at a time, newest first
	for i := int64(0); i < int64(limit) && latest-i > 0; i++ {
		height := latest - i
		block, err := e.rpc.Block(ctx, height)
		if err != nil {
			if ctx.Err() != nil {
				return blocks, ctx.Err()
			}
			e.logger.Warn().Err(err).Int64(logging.FieldHeight, height).Msg("failed to get block")
			continue
		}
		blocks = append(blocks, *block)
	}

	return blocks, nil
}

// GetValidators gets the active validator set
func (e *Explorer) GetValidators(ctx context.Context) ([]model.Validator, error) {
	validators, err := e.rpc.Validators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get validators: %w", err)
	}
	return validators, nil
}

// GetBalances gets all balances of address, or an empty list on any failure
func (e *Explorer) GetBalances(ctx context.Context, address string) []model.Balance {
	balances, err := e.rest.Balances(ctx, address)
	if err != nil {
		e.logger.Warn().Err(err).Str(logging.FieldAddress, address).Msg("failed to get balances")
		return []model.Balance{}
	}
	return balances
}

// GetTokenBalance gets the token module balance of one denom, or "0" on any failure
func (e *Explorer) GetTokenBalance(ctx context.Context, address, denom string) string {
	balance, err := e.rest.TokenBalance(ctx, address, denom)
	if err != nil {
		e.logger.Warn().Err(err).
			Str(logging.FieldAddress, address).
			Str(logging.FieldDenom, denom).
			Msg("failed to get token balance")
		return "0"
	}
	return balance
}

// GetTransaction gets a transaction by hash. Returns nil when it is unknown or the lookup fails
func (e *Explorer) GetTransaction(ctx context.Context, hash string) *model.Transaction {
	tx, err := e.rpc.Transaction(ctx, hash)
	if err != nil {
		e.logger.Debug().Err(err).Str(logging.FieldTxHash, hash).Msg("failed to get transaction")
		return nil
	}
	return tx
}

// GetRecentTransactions gets up to limit recent transactions, or an empty list on any failure
func (e *Explorer) GetRecentTransactions(ctx context.Context, limit int) []model.Transaction {
	txs, err := e.rpc.RecentTransactions(ctx, limit)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to get recent transactions")
		return []model.Transaction{}
	}
	return txs
}
