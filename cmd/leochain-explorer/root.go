package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AlexZinkM/leochain-explorer/internal/config"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/storage"
	"github.com/AlexZinkM/leochain-explorer/leochain"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is initialized in the root PersistentPreRunE
var logger = zerolog.Nop()

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leochain-explorer",
		Short: "LeoChain block explorer and local wallet",
		Long: `LeoChain block explorer and local wallet.

Without a subcommand the explorer is served over HTTP (same as "serve").
Configuration is read from environment variables (RPC_URL, REST_URL, PORT, ACCOUNTS_FILE, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		RunE: runServe,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAccountsCmd())

	return rootCmd
}

// openAccountStore opens the accounts file, prompting for the password when encryption is on
func openAccountStore(cfg *config.Config) (*leochain.AccountStore, error) {
	var opts []storage.Option
	if cfg.EncryptStorage {
		password, err := config.GetStoragePasswordBytes()
		if err != nil {
			_, statErr := os.Stat(cfg.AccountsFile)
			if err := config.PromptForPassword(errors.Is(statErr, fs.ErrNotExist)); err != nil {
				return nil, err
			}
			if password, err = config.GetStoragePasswordBytes(); err != nil {
				return nil, err
			}
		}
		defer clear(password)
		opts = append(opts, storage.WithPassword(password))
	}

	s, err := storage.NewFileStorage(cfg.AccountsFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts file: %w", err)
	}
	logger.Debug().Str(logging.FieldPath, s.Path()).Bool("encrypted", s.Encrypted()).Msg("accounts file opened")
	return leochain.NewAccountStore(s, cfg.AddressPrefix, logger), nil
}
