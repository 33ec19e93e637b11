package leochain

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/internal/storage"

	"github.com/rs/zerolog"
)

// AccountsStorageKey is the storage key holding the JSON array of local accounts
const AccountsStorageKey = "leochain_accounts"

// AccountStore manages local accounts and their mnemonics.
// All mutations of the stored list are serialized by the store.
type AccountStore struct {
	mu      sync.Mutex
	storage storage.LocalStorage
	prefix  string
	logger  zerolog.Logger
}

// NewAccountStore creates an AccountStore deriving addresses with the given bech32 prefix
func NewAccountStore(s storage.LocalStorage, prefix string, logger zerolog.Logger) *AccountStore {
	return &AccountStore{
		storage: s,
		prefix:  prefix,
		logger:  logging.ForComponent(logger, "accounts"),
	}
}

// List returns name and address of every local account in insertion order
func (s *AccountStore) List() ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(stored))
	for _, a := range stored {
		accounts = append(accounts, a.Public())
	}
	return accounts, nil
}

// Create generates a new 24-word mnemonic and saves the account under name
func (s *AccountStore) Create(name string) (*model.Account, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	mnemonic, err := crypto.NewMnemonic()
	if err != nil {
		return nil, err
	}

	return s.save(name, mnemonic)
}

// Import saves an account restored from mnemonic. Nothing is written if the mnemonic is invalid
func (s *AccountStore) Import(name, mnemonic string) (*model.Account, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	mnemonic = crypto.NormalizeMnemonic(mnemonic)
	if err := crypto.ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	return s.save(name, mnemonic)
}

// Delete removes every account with address. Deleting an unknown address is a no-op
func (s *AccountStore) Delete(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return err
	}

	filtered := stored[:0]
	for _, a := range stored {
		if a.Address != address {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(stored) {
		return nil
	}

	if err := s.store(filtered); err != nil {
		return err
	}
	s.logger.Info().Str(logging.FieldAddress, address).Int(logging.FieldCount, len(stored)-len(filtered)).Msg("account deleted")
	return nil
}

// ExportMnemonic returns the mnemonic of the first account with address for backup
func (s *AccountStore) ExportMnemonic(address string) (string, bool, error) {
	mnemonic, ok, err := s.Mnemonic(address)
	if err == nil && ok {
		s.logger.Info().Str(logging.FieldAddress, address).Msg("mnemonic exported")
	}
	return mnemonic, ok, err
}

// Mnemonic returns the mnemonic of the first account with address
func (s *AccountStore) Mnemonic(address string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return "", false, err
	}

	for _, a := range stored {
		if a.Address == address && a.Mnemonic != "" {
			return a.Mnemonic, true, nil
		}
	}
	return "", false, nil
}

// save derives the address and appends the account
func (s *AccountStore) save(name, mnemonic string) (*model.Account, error) {
	address, err := crypto.DeriveAddress(mnemonic, s.prefix)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return nil, err
	}

	account := model.StoredAccount{Name: name, Address: address, Mnemonic: mnemonic}
	stored = append(stored, account)
	if err := s.store(stored); err != nil {
		return nil, err
	}

	s.logger.Info().Str(logging.FieldAddress, address).Msg("account saved")
	public := account.Public()
	return &public, nil
}

// load reads the stored list. A missing or empty key is an empty list. Callers hold s.mu
func (s *AccountStore) load() ([]model.StoredAccount, error) {
	raw, ok, err := s.storage.GetItem(AccountsStorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.StoredAccount{}, nil
	}

	var stored []model.StoredAccount
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}
	return stored, nil
}

// store replaces the stored list. Callers hold s.mu
func (s *AccountStore) store(accounts []model.StoredAccount) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.storage.SetItem(AccountsStorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.NewValidationError("name", "must not be empty")
	}
	return name, nil
}
