package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/api"
	"github.com/AlexZinkM/leochain-explorer/internal/client"
	"github.com/AlexZinkM/leochain-explorer/internal/config"
	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/handler"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/screen"
	"github.com/AlexZinkM/leochain-explorer/internal/ui"
	"github.com/AlexZinkM/leochain-explorer/leochain"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer screens and the JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Get()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	accounts, err := openAccountStore(cfg)
	if err != nil {
		return err
	}

	m := metrics.New()
	encoding, err := crypto.NewEncoding(cfg.AddressPrefix)
	if err != nil {
		return err
	}
	rpc, err := client.NewRPCClient(cfg.RPCURL, cfg.HTTPTimeout(), logger, m)
	if err != nil {
		return err
	}
	rest := client.NewRESTClient(cfg.RESTURL, cfg.HTTPTimeout(), logger, m)

	explorer := leochain.NewExplorer(rpc, rest, logger)
	searcher := leochain.NewSearcher(explorer, cfg.AddressPrefix, logger)
	transferer := leochain.NewTransferer(accounts, rpc, rest, encoding, leochain.TransferConfig{
		ChainID:        cfg.ChainID,
		AddressPrefix:  cfg.AddressPrefix,
		FeeDenom:       cfg.FeeDenom,
		FeeAmount:      cfg.FeeAmount,
		GasLimit:       cfg.GasLimit,
		ConfirmTimeout: cfg.TxConfirmTimeout(),
		ConfirmPoll:    cfg.TxConfirmPoll(),
	}, logger, m)

	screens := ui.Screens{
		Header:   screen.NewHeaderScreen(explorer, cfg.StatusPollInterval(), logger, m),
		Explorer: screen.NewExplorerScreen(explorer, searcher, cfg.BlockListLimit, cfg.ExplorerPollInterval(), logger, m),
		Accounts: screen.NewAccountsScreen(accounts, explorer, cfg.BalancePollInterval(), logger, m),
		Transfer: screen.NewTransferScreen(accounts, explorer, transferer, cfg.DefaultDenom, cfg.BalancePollInterval(), logger, m),
	}
	pages, err := ui.NewHandler(screens, logger)
	if err != nil {
		return err
	}

	router := api.SetupRouter(api.Handlers{
		Explorer: handler.NewExplorerHandler(explorer, searcher, cfg.BlockListLimit, cfg.DefaultDenom),
		Accounts: handler.NewAccountsHandler(accounts),
		Transfer: handler.NewTransferHandler(transferer, cfg.DefaultDenom),
		UI:       pages,
		Metrics:  m,
	}, logger)

	screens.Header.Mount(ctx)
	screens.Explorer.Mount(ctx)
	screens.Accounts.Mount(ctx)
	screens.Transfer.Mount(ctx)
	defer func() {
		screens.Transfer.Unmount()
		screens.Accounts.Unmount()
		screens.Explorer.Unmount()
		screens.Header.Unmount()
	}()

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if ip := net.ParseIP(cfg.Host); cfg.Host != "localhost" && (ip == nil || !ip.IsLoopback()) {
		logger.Warn().Str("addr", server.Addr).Msg("listening beyond loopback: local accounts are reachable from the network")
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("rpc", cfg.RPCURL).Str("rest", cfg.RESTURL).Msg("serving explorer")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
