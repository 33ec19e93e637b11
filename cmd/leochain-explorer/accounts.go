package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/AlexZinkM/leochain-explorer/internal/config"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the local accounts file",
	}

	accountsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List local accounts",
		Args:  cobra.NoArgs,
		RunE:  runAccountsList,
	})
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create an account with a new 24-word mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE:  runAccountsCreate,
	})
	accountsCmd.AddCommand(&cobra.Command{
		Use:     "import [name]",
		Short:   "Import an account from a mnemonic read from stdin",
		Args:    cobra.ExactArgs(1),
		Example: `echo "word1 word2 ... word24" | leochain-explorer accounts import alice`,
		RunE:    runAccountsImport,
	})
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "delete [address]",
		Short: "Delete every local account with the address",
		Args:  cobra.ExactArgs(1),
		RunE:  runAccountsDelete,
	})
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "export [address]",
		Short: "Print the mnemonic of a local account",
		Args:  cobra.ExactArgs(1),
		RunE:  runAccountsExport,
	})

	return accountsCmd
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	store, err := openAccountStore(config.Get())
	if err != nil {
		return err
	}
	accounts, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tADDRESS")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\n", a.Name, a.Address)
	}
	return w.Flush()
}

func runAccountsCreate(cmd *cobra.Command, args []string) error {
	store, err := openAccountStore(config.Get())
	if err != nil {
		return err
	}
	account, err := store.Create(args[0])
	if err != nil {
		return err
	}
	mnemonic, _, err := store.ExportMnemonic(account.Address)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s %s\n", account.Name, account.Address)
	fmt.Fprintf(out, "mnemonic: %s\n", mnemonic)
	fmt.Fprintln(cmd.ErrOrStderr(), "Back up the mnemonic now. It is the only way to recover the account.")
	return nil
}

func runAccountsImport(cmd *cobra.Command, args []string) error {
	mnemonic, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	if strings.TrimSpace(mnemonic) == "" {
		return model.NewValidationError("mnemonic", "must not be empty")
	}

	store, err := openAccountStore(config.Get())
	if err != nil {
		return err
	}
	account, err := store.Import(args[0], mnemonic)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %s %s\n", account.Name, account.Address)
	return nil
}

func runAccountsDelete(cmd *cobra.Command, args []string) error {
	store, err := openAccountStore(config.Get())
	if err != nil {
		return err
	}
	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func runAccountsExport(cmd *cobra.Command, args []string) error {
	store, err := openAccountStore(config.Get())
	if err != nil {
		return err
	}
	mnemonic, ok, err := store.ExportMnemonic(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAccountNotFound
	}
	fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
	return nil
}
