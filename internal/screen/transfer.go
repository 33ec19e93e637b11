package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/common"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

// ErrTransferInProgress is returned when a transfer is submitted while another one runs
var ErrTransferInProgress = errors.New("a transfer is already in progress")

// TransferState is the state of the transfer screen
type TransferState struct {
	Accounts []model.Account
	From     string
	Balances []model.Balance
	Denom    string
	FeeLabel string

	// Recipient and Amount hold the unsent form input
	Recipient string
	Amount    string

	Progress model.TransferState
	Message  *Message
	TxHash   string
}

// Submitting reports whether a transfer is running
func (s TransferState) Submitting() bool {
	return s.Progress == model.TransferValidating || s.Progress == model.TransferSubmitting
}

// Balance returns the sender balance of denom, "0" when it holds none
func (s TransferState) Balance(denom string) string {
	for _, b := range s.Balances {
		if b.Denom == denom {
			return b.Amount
		}
	}
	return "0"
}

// Exceeds reports whether the drafted amount is larger than the sender balance of the selected denom
func (s TransferState) Exceeds() bool {
	if s.Amount == "" {
		return false
	}
	cmp, err := common.CompareAmounts(s.Amount, s.Balance(s.Denom))
	return err == nil && cmp > 0
}

// TransferEvent changes the transfer state
type TransferEvent interface {
	applyTransfer(*TransferState)
}

// SendersLoaded replaces the sender list. The first account is selected by default.
type SendersLoaded struct {
	Accounts []model.Account
}

func (e SendersLoaded) applyTransfer(s *TransferState) {
	s.Accounts = e.Accounts
	if !containsAccount(e.Accounts, s.From) {
		s.From = ""
		s.Balances = nil
		if len(e.Accounts) > 0 {
			s.From = e.Accounts[0].Address
		}
	}
}

// SenderSelected changes the sender
type SenderSelected struct {
	Address string
}

func (e SenderSelected) applyTransfer(s *TransferState) {
	if e.Address == s.From || !containsAccount(s.Accounts, e.Address) {
		return
	}
	s.From = e.Address
	s.Balances = nil
}

// SenderBalancesLoaded carries the balances of the sender.
// An empty denom is preselected from the first balance.
type SenderBalancesLoaded struct {
	Address  string
	Balances []model.Balance
}

func (e SenderBalancesLoaded) applyTransfer(s *TransferState) {
	if e.Address != s.From {
		return
	}
	s.Balances = e.Balances
	if s.Denom == "" && len(e.Balances) > 0 {
		s.Denom = e.Balances[0].Denom
	}
}

// DenomSelected changes the denom to send
type DenomSelected struct {
	Denom string
}

func (e DenomSelected) applyTransfer(s *TransferState) {
	s.Denom = e.Denom
}

// DraftChanged keeps the recipient and amount typed into the form
type DraftChanged struct {
	Recipient string
	Amount    string
}

func (e DraftChanged) applyTransfer(s *TransferState) {
	s.Recipient = e.Recipient
	s.Amount = e.Amount
}

// AllBalanceSelected sets the amount to the whole sender balance of the selected denom
type AllBalanceSelected struct{}

func (AllBalanceSelected) applyTransfer(s *TransferState) {
	s.Amount = s.Balance(s.Denom)
}

// TransferProgressed carries a state change of the running transfer
type TransferProgressed struct {
	State model.TransferState
}

func (e TransferProgressed) applyTransfer(s *TransferState) {
	s.Progress = e.State
	if e.State == model.TransferValidating {
		s.Message = nil
		s.TxHash = ""
	}
}

// TransferFinished carries the result of a transfer
type TransferFinished struct {
	Result *model.TransferResult
}

func (e TransferFinished) applyTransfer(s *TransferState) {
	s.Progress = e.Result.State
	s.TxHash = e.Result.TxHash
	if e.Result.Success() {
		s.Recipient = ""
		s.Amount = ""
		s.Message = successMessage("Transfer succeeded")
		return
	}
	text := e.Result.Error
	if text == "" {
		text = "transfer failed"
	}
	s.Message = errorMessage(text)
}

// TransferMessage sets or clears (nil) the screen message
type TransferMessage struct {
	Message *Message
}

func (e TransferMessage) applyTransfer(s *TransferState) {
	s.Message = e.Message
}

// TransferScreen sends tokens from a local account
type TransferScreen struct {
	accounts AccountManager
	chain    ChainSource
	runner   TransferRunner
	poller   *Poller
	logger   zerolog.Logger

	// submitMu serializes transfers started from this screen
	submitMu sync.Mutex

	mu    sync.RWMutex
	state TransferState
}

// NewTransferScreen creates a transfer screen polling sender balances every interval
func NewTransferScreen(
	accounts AccountManager,
	chain ChainSource,
	runner TransferRunner,
	defaultDenom string,
	interval time.Duration,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *TransferScreen {
	t := &TransferScreen{
		accounts: accounts,
		chain:    chain,
		runner:   runner,
		logger:   logger.With().Str(logging.FieldScreen, NameTransfer).Logger(),
		state: TransferState{
			Denom:    defaultDenom,
			FeeLabel: runner.FeeLabel(),
			Progress: model.TransferIdle,
		},
	}
	t.poller = NewPoller(NameTransfer, interval, t.RefreshBalances, logger, m)
	return t
}

// Mount loads the senders and starts the balance poll
func (t *TransferScreen) Mount(ctx context.Context) {
	if err := t.Reload(); err != nil {
		t.logger.Warn().Err(err).Msg("failed to load accounts")
	}
	t.poller.Mount(ctx)
}

// Unmount stops the balance poll
func (t *TransferScreen) Unmount() { t.poller.Unmount() }

// Reload reads the sender list from the account store
func (t *TransferScreen) Reload() error {
	accounts, err := t.accounts.List()
	if err != nil {
		return err
	}
	t.Dispatch(SendersLoaded{Accounts: accounts})
	return nil
}

// RefreshBalances loads the balances of the sender
func (t *TransferScreen) RefreshBalances(ctx context.Context) error {
	from := t.State().From
	if from == "" {
		return nil
	}
	balances := t.chain.GetBalances(ctx, from)
	t.Dispatch(SenderBalancesLoaded{Address: from, Balances: balances})
	return nil
}

// SelectSender changes the sender and loads its balances
func (t *TransferScreen) SelectSender(ctx context.Context, address string) {
	t.Dispatch(SenderSelected{Address: address})
	_ = t.RefreshBalances(ctx)
}

// SelectDenom changes the denom to send
func (t *TransferScreen) SelectDenom(denom string) {
	t.Dispatch(DenomSelected{Denom: denom})
}

// SelectAllBalance fills the amount with the sender balance of the selected denom
func (t *TransferScreen) SelectAllBalance() {
	t.Dispatch(AllBalanceSelected{})
}

// Submit sends amount to toAddress from the selected sender with the selected denom.
// Empty denom and sender fall back to the screen selection.
func (t *TransferScreen) Submit(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error) {
	if !t.submitMu.TryLock() {
		return nil, ErrTransferInProgress
	}
	defer t.submitMu.Unlock()

	state := t.State()
	if req.FromAddress == "" {
		req.FromAddress = state.From
	}
	if req.Denom == "" {
		req.Denom = state.Denom
	}
	if req.Denom != state.Denom {
		t.Dispatch(DenomSelected{Denom: req.Denom})
	}

	res := t.runner.Transfer(ctx, req, func(s model.TransferState) {
		if !s.Terminal() {
			t.Dispatch(TransferProgressed{State: s})
		}
	})
	t.Dispatch(TransferFinished{Result: res})

	if res.Success() {
		_ = t.RefreshBalances(ctx)
	}
	return res, nil
}

// DismissMessage clears the screen message
func (t *TransferScreen) DismissMessage() {
	t.Dispatch(TransferMessage{})
}

// Dispatch applies ev to the state
func (t *TransferScreen) Dispatch(ev TransferEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.applyTransfer(&t.state)
}

// State returns a copy of the current state
func (t *TransferScreen) State() TransferState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s := t.state
	s.Accounts = append([]model.Account(nil), t.state.Accounts...)
	s.Balances = append([]model.Balance(nil), t.state.Balances...)
	return s
}
