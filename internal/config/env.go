package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the storage password is prompted at runtime and kept in memory - use GetStoragePasswordBytes()
type Config struct {
	// Host is the listen address. An empty HOST listens on all interfaces.
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port string `envconfig:"PORT" default:"3000"`

	RPCURL             string `envconfig:"RPC_URL" default:"http://localhost:26657"`
	RESTURL            string `envconfig:"REST_URL" default:"http://localhost:1317"`
	HTTPTimeoutSeconds uint   `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10"`

	ChainID       string `envconfig:"CHAIN_ID"`
	AddressPrefix string `envconfig:"ADDRESS_PREFIX" default:"leo"`

	FeeDenom     string `envconfig:"FEE_DENOM" default:"stake"`
	FeeAmount    int64  `envconfig:"FEE_AMOUNT" default:"500"`
	GasLimit     uint64 `envconfig:"GAS_LIMIT" default:"200000"`
	DefaultDenom string `envconfig:"DEFAULT_DENOM" default:"leotoken"`

	AccountsFile   string `envconfig:"ACCOUNTS_FILE" default:"./leochain_accounts.json"`
	EncryptStorage bool   `envconfig:"ENCRYPT_STORAGE" default:"false"`

	StatusPollSeconds   int `envconfig:"STATUS_POLL_SECONDS" default:"5"`
	ExplorerPollSeconds int `envconfig:"EXPLORER_POLL_SECONDS" default:"6"`
	BalancePollSeconds  int `envconfig:"BALANCE_POLL_SECONDS" default:"5"`
	BlockListLimit      int `envconfig:"BLOCK_LIST_LIMIT" default:"10"`

	TxConfirmTimeoutSeconds int `envconfig:"TX_CONFIRM_TIMEOUT_SECONDS" default:"60"`
	TxConfirmPollMillis     int `envconfig:"TX_CONFIRM_POLL_MILLIS" default:"1000"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

// Set installs c as the global configuration. Used by tests and embedders.
func Set(c *Config) {
	cfg = c
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks values envconfig cannot check by itself.
func (c *Config) Validate() error {
	if c.AddressPrefix == "" {
		return errors.New("ADDRESS_PREFIX must not be empty")
	}
	if c.HTTPTimeoutSeconds == 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.FeeAmount <= 0 {
		return errors.New("FEE_AMOUNT must be positive")
	}
	if c.GasLimit == 0 {
		return errors.New("GAS_LIMIT must be positive")
	}
	if c.StatusPollSeconds <= 0 || c.ExplorerPollSeconds <= 0 || c.BalancePollSeconds <= 0 {
		return errors.New("poll intervals must be positive")
	}
	if c.BlockListLimit <= 0 {
		return errors.New("BLOCK_LIST_LIMIT must be positive")
	}
	if c.TxConfirmTimeoutSeconds <= 0 || c.TxConfirmPollMillis <= 0 {
		return errors.New("transaction confirmation settings must be positive")
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return errors.New("LOG_FORMAT must be console or json")
	}
	return nil
}

// HTTPTimeout returns the fixed timeout applied to every upstream call
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// StatusPollInterval returns the header status poll interval
func (c *Config) StatusPollInterval() time.Duration {
	return time.Duration(c.StatusPollSeconds) * time.Second
}

// ExplorerPollInterval returns the explorer screen poll interval
func (c *Config) ExplorerPollInterval() time.Duration {
	return time.Duration(c.ExplorerPollSeconds) * time.Second
}

// BalancePollInterval returns the balance poll interval of the accounts and transfer screens
func (c *Config) BalancePollInterval() time.Duration {
	return time.Duration(c.BalancePollSeconds) * time.Second
}

// TxConfirmTimeout returns how long a broadcast transfer waits for inclusion
func (c *Config) TxConfirmTimeout() time.Duration {
	return time.Duration(c.TxConfirmTimeoutSeconds) * time.Second
}

// TxConfirmPoll returns the interval between inclusion checks
func (c *Config) TxConfirmPoll() time.Duration {
	return time.Duration(c.TxConfirmPollMillis) * time.Millisecond
}

var passwordBytes []byte

// PromptForPassword reads the storage password from the terminal without echo and keeps it in memory.
// With confirm set the password is asked twice, used before a new encrypted file is created.
func PromptForPassword(confirm bool) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}

	raw, err := readPassword(fd, "Enter storage password: ")
	if err != nil {
		return err
	}
	defer clear(raw)
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	if confirm {
		again, err := readPassword(fd, "Repeat storage password: ")
		if err != nil {
			return err
		}
		defer clear(again)
		if !bytes.Equal(raw, again) {
			return errors.New("passwords do not match")
		}
	}

	passwordBytes = append([]byte(nil), raw...)
	return nil
}

func readPassword(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return raw, nil
}

// GetStoragePasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use.
func GetStoragePasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
