package leochain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/common"
	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	clienttx "github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/rs/zerolog"
)

// MnemonicResolver looks up the mnemonic of a local account
type MnemonicResolver interface {
	Mnemonic(address string) (string, bool, error)
}

// Observer receives every state the transfer moves through
type Observer func(state model.TransferState)

// TransferConfig holds the fee and confirmation settings of transfers
type TransferConfig struct {
	// ChainID is read from the node status when empty
	ChainID        string
	AddressPrefix  string
	FeeDenom       string
	FeeAmount      int64
	GasLimit       uint64
	ConfirmTimeout time.Duration
	ConfirmPoll    time.Duration
}

// Transferer signs and submits single-message bank transfers from local accounts
type Transferer struct {
	accounts MnemonicResolver
	rpc      ChainRPC
	rest     ChainREST
	encoding *crypto.Encoding
	cfg      TransferConfig
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// NewTransferer creates a new Transferer
func NewTransferer(
	accounts MnemonicResolver,
	rpc ChainRPC,
	rest ChainREST,
	encoding *crypto.Encoding,
	cfg TransferConfig,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *Transferer {
	return &Transferer{
		accounts: accounts,
		rpc:      rpc,
		rest:     rest,
		encoding: encoding,
		cfg:      cfg,
		logger:   logging.ForComponent(logger, "transfer"),
		metrics:  m,
	}
}

// transfer tracks one run of the state machine
type transfer struct {
	state   model.TransferState
	observe Observer
}

func (t *transfer) move(state model.TransferState) {
	t.state = state
	if t.observe != nil {
		t.observe(state)
	}
}

// FeeLabel returns the fee attached to every transfer
func (t *Transferer) FeeLabel() string {
	return common.FeeLabel(t.cfg.FeeAmount, t.cfg.FeeDenom)
}

// Transfer sends amount of denom from a local account to toAddress.
// It always returns a terminal result; failures are reported in the result.
func (t *Transferer) Transfer(ctx context.Context, req model.TransferRequest, observe Observer) *model.TransferResult {
	run := &transfer{state: model.TransferIdle, observe: observe}

	res := t.run(ctx, run, req)
	run.move(res.State)
	t.metrics.ObserveTransfer(string(res.State))

	level := zerolog.InfoLevel
	if !res.Success() {
		level = zerolog.WarnLevel
	}
	t.logger.WithLevel(level).
		Str(logging.FieldAddress, req.FromAddress).
		Str(logging.FieldState, string(res.State)).
		Str(logging.FieldTxHash, res.TxHash).
		Uint32(logging.FieldCode, res.Code).
		Str(logging.FieldReason, res.Error).
		Msg("transfer finished")
	return res
}

func (t *Transferer) run(ctx context.Context, run *transfer, req model.TransferRequest) *model.TransferResult {
	run.move(model.TransferValidating)

	// Validate input before touching the network
	from := strings.TrimSpace(req.FromAddress)
	to := strings.TrimSpace(req.ToAddress)
	denom := strings.TrimSpace(req.Denom)

	if from == "" || to == "" || denom == "" || strings.TrimSpace(req.Amount) == "" {
		return failed("please fill in all fields")
	}
	amount, err := common.ParseBaseUnits(req.Amount)
	if err != nil {
		return failed(err.Error())
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return failed(fmt.Sprintf("invalid denom: %v", err))
	}
	if err := crypto.ValidateAddress(to, t.cfg.AddressPrefix); err != nil {
		return failed(fmt.Sprintf("invalid recipient: %v", err))
	}

	run.move(model.TransferSubmitting)

	// Resolve the signing key of the sender
	mnemonic, ok, err := t.accounts.Mnemonic(from)
	if err != nil {
		return failed(fmt.Sprintf("failed to read accounts: %v", err))
	}
	if !ok {
		return failed("account mnemonic not found")
	}

	signer, err := crypto.NewSigner(mnemonic, t.cfg.AddressPrefix, t.encoding.Codec)
	if err != nil {
		return failed(fmt.Sprintf("failed to create signer: %v", err))
	}
	defer signer.Close()

	if signer.Address() != from {
		return failed("account mnemonic does not match address")
	}

	// Build, sign and broadcast exactly once
	txBytes, err := t.buildTx(ctx, signer, from, to, sdk.NewCoin(denom, amount))
	if err != nil {
		return failed(err.Error())
	}

	broadcast, err := t.rpc.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return failed(fmt.Sprintf("failed to broadcast transaction: %v", err))
	}
	if broadcast.Code != 0 {
		chainErr := &model.ChainError{Code: broadcast.Code, Codespace: broadcast.Codespace, Log: broadcast.Log}
		return &model.TransferResult{
			State:  model.TransferFailed,
			TxHash: broadcast.Hash,
			Code:   broadcast.Code,
			Error:  chainErr.Error(),
		}
	}

	return t.awaitInclusion(ctx, broadcast.Hash)
}

// buildTx builds a signed single MsgSend with the configured fee and gas
func (t *Transferer) buildTx(ctx context.Context, signer *crypto.Signer, from, to string, coin sdk.Coin) ([]byte, error) {
	account, err := t.rest.Account(ctx, from)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("sender account does not exist on chain")
		}
		return nil, fmt.Errorf("failed to get account: %v", err)
	}

	chainID, err := t.chainID(ctx)
	if err != nil {
		return nil, err
	}

	txConfig := t.encoding.TxConfig
	txBuilder := txConfig.NewTxBuilder()

	msg := &banktypes.MsgSend{
		FromAddress: from,
		ToAddress:   to,
		Amount:      sdk.NewCoins(coin),
	}
	if err := txBuilder.SetMsgs(msg); err != nil {
		return nil, fmt.Errorf("failed to set message: %v", err)
	}
	txBuilder.SetGasLimit(t.cfg.GasLimit)
	txBuilder.SetFeeAmount(sdk.NewCoins(sdk.NewInt64Coin(t.cfg.FeeDenom, t.cfg.FeeAmount)))

	txFactory := clienttx.Factory{}.
		WithChainID(chainID).
		WithTxConfig(txConfig).
		WithAccountNumber(account.AccountNumber).
		WithSequence(account.Sequence).
		WithGas(t.cfg.GasLimit).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT)

	if err := signer.Sign(ctx, txFactory, txBuilder); err != nil {
		return nil, err
	}

	txBytes, err := txConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %v", err)
	}
	return txBytes, nil
}

func (t *Transferer) chainID(ctx context.Context) (string, error) {
	if t.cfg.ChainID != "" {
		return t.cfg.ChainID, nil
	}
	status, err := t.rpc.NodeStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get chain id: %v", err)
	}
	if status.NodeInfo.Network == "" {
		return "", errors.New("node reported an empty chain id")
	}
	return status.NodeInfo.Network, nil
}

// awaitInclusion polls the transaction by hash until it is committed or the timeout elapses
func (t *Transferer) awaitInclusion(ctx context.Context, hash string) *model.TransferResult {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(t.cfg.ConfirmPoll)
	defer ticker.Stop()

	for {
		tx, err := t.rpc.Transaction(ctx, hash)
		switch {
		case err == nil && tx != nil:
			if tx.Succeeded() {
				return &model.TransferResult{State: model.TransferSucceeded, TxHash: hash}
			}
			return &model.TransferResult{
				State:  model.TransferFailed,
				TxHash: hash,
				Code:   tx.Code,
				Error:  (&model.ChainError{Code: tx.Code}).Error(),
			}
		case err != nil && !errors.Is(err, model.ErrNotFound) && ctx.Err() == nil:
			t.logger.Debug().Err(err).Str(logging.FieldTxHash, hash).Msg("inclusion check failed")
		}

		select {
		case <-ctx.Done():
			reason := fmt.Sprintf("transaction %s was not included within %s", hash, t.cfg.ConfirmTimeout)
			if errors.Is(ctx.Err(), context.Canceled) {
				// The transaction was broadcast and may still be committed.
				reason = fmt.Sprintf("stopped waiting for transaction %s: %v", hash, ctx.Err())
			}
			return &model.TransferResult{State: model.TransferFailed, TxHash: hash, Error: reason}
		case <-ticker.C:
		}
	}
}

func failed(reason string) *model.TransferResult {
	return &model.TransferResult{State: model.TransferFailed, Error: reason}
}
