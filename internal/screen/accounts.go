package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

// AccountsState is the state of the account management screen
type AccountsState struct {
	Accounts []model.Account
	Selected string
	Balances []model.Balance
	// Mnemonic is shown exactly once after a create or export
	Mnemonic string
	Message  *Message
}

// AccountsEvent changes the accounts state
type AccountsEvent interface {
	applyAccounts(*AccountsState)
}

// AccountsLoaded replaces the account list. The selection falls back to the first account.
type AccountsLoaded struct {
	Accounts []model.Account
}

func (e AccountsLoaded) applyAccounts(s *AccountsState) {
	s.Accounts = e.Accounts
	if !containsAccount(e.Accounts, s.Selected) {
		s.Selected = ""
		s.Balances = nil
		if len(e.Accounts) > 0 {
			s.Selected = e.Accounts[0].Address
		}
	}
}

// AccountSelected changes the selected account
type AccountSelected struct {
	Address string
}

func (e AccountSelected) applyAccounts(s *AccountsState) {
	if e.Address == s.Selected || !containsAccount(s.Accounts, e.Address) {
		return
	}
	s.Selected = e.Address
	s.Balances = nil
}

// BalancesLoaded carries the balances of one account
type BalancesLoaded struct {
	Address  string
	Balances []model.Balance
}

func (e BalancesLoaded) applyAccounts(s *AccountsState) {
	// Ignore answers for an account that is no longer selected
	if e.Address != s.Selected {
		return
	}
	s.Balances = e.Balances
}

// MnemonicRevealed shows a mnemonic once
type MnemonicRevealed struct {
	Mnemonic string
}

func (e MnemonicRevealed) applyAccounts(s *AccountsState) {
	s.Mnemonic = e.Mnemonic
}

// MnemonicHidden clears a shown mnemonic
type MnemonicHidden struct{}

func (MnemonicHidden) applyAccounts(s *AccountsState) {
	s.Mnemonic = ""
}

// AccountsMessage sets or clears (nil) the screen message
type AccountsMessage struct {
	Message *Message
}

func (e AccountsMessage) applyAccounts(s *AccountsState) {
	s.Message = e.Message
}

// AccountsScreen manages local accounts and shows the balances of the selection
type AccountsScreen struct {
	accounts AccountManager
	chain    ChainSource
	poller   *Poller
	logger   zerolog.Logger

	mu    sync.RWMutex
	state AccountsState
}

// NewAccountsScreen creates an accounts screen polling balances every interval
func NewAccountsScreen(accounts AccountManager, chain ChainSource, interval time.Duration, logger zerolog.Logger, m *metrics.Metrics) *AccountsScreen {
	a := &AccountsScreen{
		accounts: accounts,
		chain:    chain,
		logger:   logger.With().Str(logging.FieldScreen, NameAccounts).Logger(),
	}
	a.poller = NewPoller(NameAccounts, interval, a.RefreshBalances, logger, m)
	return a
}

// Mount loads the accounts and starts the balance poll
func (a *AccountsScreen) Mount(ctx context.Context) {
	if err := a.Reload(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to load accounts")
	}
	a.poller.Mount(ctx)
}

// Unmount stops the balance poll
func (a *AccountsScreen) Unmount() { a.poller.Unmount() }

// Reload reads the account list from the store
func (a *AccountsScreen) Reload() error {
	accounts, err := a.accounts.List()
	if err != nil {
		a.Dispatch(AccountsMessage{Message: errorMessage(err.Error())})
		return err
	}
	a.Dispatch(AccountsLoaded{Accounts: accounts})
	return nil
}

// RefreshBalances loads the balances of the selected account
func (a *AccountsScreen) RefreshBalances(ctx context.Context) error {
	selected := a.State().Selected
	if selected == "" {
		return nil
	}
	balances := a.chain.GetBalances(ctx, selected)
	a.Dispatch(BalancesLoaded{Address: selected, Balances: balances})
	return nil
}

// Select changes the selected account and loads its balances
func (a *AccountsScreen) Select(ctx context.Context, address string) {
	a.Dispatch(AccountSelected{Address: address})
	_ = a.RefreshBalances(ctx)
}

// Create creates an account, selects it and reveals its mnemonic for backup
func (a *AccountsScreen) Create(ctx context.Context, name string) (*model.Account, error) {
	account, err := a.accounts.Create(name)
	if err != nil {
		a.Dispatch(AccountsMessage{Message: errorMessage(err.Error())})
		return nil, err
	}

	mnemonic, _, err := a.accounts.ExportMnemonic(account.Address)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to read new mnemonic")
	}

	a.afterAdd(ctx, account)
	if mnemonic != "" {
		a.Dispatch(MnemonicRevealed{Mnemonic: mnemonic})
	}
	a.Dispatch(AccountsMessage{Message: successMessage("Account created. Back up the mnemonic now!")})
	return account, nil
}

// Import imports an account from a mnemonic and selects it
func (a *AccountsScreen) Import(ctx context.Context, name, mnemonic string) (*model.Account, error) {
	account, err := a.accounts.Import(name, mnemonic)
	if err != nil {
		text := err.Error()
		if errors.Is(err, model.ErrInvalidMnemonic) {
			text = "invalid mnemonic"
		}
		a.Dispatch(AccountsMessage{Message: errorMessage(text)})
		return nil, err
	}

	a.afterAdd(ctx, account)
	a.Dispatch(AccountsMessage{Message: successMessage("Account imported")})
	return account, nil
}

// Delete removes an account
func (a *AccountsScreen) Delete(ctx context.Context, address string) error {
	if err := a.accounts.Delete(address); err != nil {
		a.Dispatch(AccountsMessage{Message: errorMessage(err.Error())})
		return err
	}
	if err := a.Reload(); err != nil {
		return err
	}
	_ = a.RefreshBalances(ctx)
	a.Dispatch(AccountsMessage{Message: successMessage("Account deleted")})
	return nil
}

// Export reveals the mnemonic of address
func (a *AccountsScreen) Export(address string) (string, error) {
	mnemonic, ok, err := a.accounts.ExportMnemonic(address)
	if err != nil {
		a.Dispatch(AccountsMessage{Message: errorMessage(err.Error())})
		return "", err
	}
	if !ok {
		a.Dispatch(AccountsMessage{Message: errorMessage(model.ErrAccountNotFound.Error())})
		return "", model.ErrAccountNotFound
	}
	a.Dispatch(MnemonicRevealed{Mnemonic: mnemonic})
	return mnemonic, nil
}

// TakeMnemonic returns the revealed mnemonic and hides it
func (a *AccountsScreen) TakeMnemonic() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	mnemonic := a.state.Mnemonic
	MnemonicHidden{}.applyAccounts(&a.state)
	return mnemonic
}

// DismissMessage clears the screen message
func (a *AccountsScreen) DismissMessage() {
	a.Dispatch(AccountsMessage{})
}

func (a *AccountsScreen) afterAdd(ctx context.Context, account *model.Account) {
	if err := a.Reload(); err != nil {
		return
	}
	a.Select(ctx, account.Address)
}

// Dispatch applies ev to the state
func (a *AccountsScreen) Dispatch(ev AccountsEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ev.applyAccounts(&a.state)
}

// State returns a copy of the current state
func (a *AccountsScreen) State() AccountsState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := a.state
	s.Accounts = append([]model.Account(nil), a.state.Accounts...)
	s.Balances = append([]model.Balance(nil), a.state.Balances...)
	return s
}
