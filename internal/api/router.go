package api

import (
	"net/http"

	_ "github.com/AlexZinkM/leochain-explorer/docs"
	"github.com/AlexZinkM/leochain-explorer/internal/handler"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/ui"

	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups everything served by the router
type Handlers struct {
	Explorer *handler.ExplorerHandler
	Accounts *handler.AccountsHandler
	Transfer *handler.TransferHandler
	UI       *ui.Handler
	Metrics  *metrics.Metrics
}

// SetupRouter sets up router with handlers
func SetupRouter(h Handlers, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	if h.Metrics != nil {
		mux.Handle("/metrics", h.Metrics.Handler())
	}

	// Explorer endpoints
	mux.HandleFunc("/api/status", h.Explorer.Status)
	mux.HandleFunc("/api/blocks", h.Explorer.Blocks)
	mux.HandleFunc("/api/block", h.Explorer.Block)
	mux.HandleFunc("/api/validators", h.Explorer.Validators)
	mux.HandleFunc("/api/balances", h.Explorer.Balances)
	mux.HandleFunc("/api/token-balance", h.Explorer.TokenBalance)
	mux.HandleFunc("/api/tx", h.Explorer.Transaction)
	mux.HandleFunc("/api/txs/recent", h.Explorer.RecentTransactions)
	mux.HandleFunc("/api/search", h.Explorer.Search)

	// Account endpoints
	mux.HandleFunc("/api/accounts", h.Accounts.List)
	mux.HandleFunc("/api/accounts/create", h.Accounts.Create)
	mux.HandleFunc("/api/accounts/import", h.Accounts.Import)
	mux.HandleFunc("/api/accounts/delete", h.Accounts.Delete)
	mux.HandleFunc("/api/accounts/export", h.Accounts.Export)
	mux.HandleFunc("/api/accounts/qr", h.Accounts.QRCode)

	// Transfer endpoints
	mux.HandleFunc("/api/transfer", h.Transfer.Transfer)

	// Screens
	if h.UI != nil {
		mux.HandleFunc("/", h.UI.Explorer)
		mux.HandleFunc("/accounts", h.UI.Accounts)
		mux.HandleFunc("/transfer", h.UI.Transfer)
		mux.HandleFunc("/ui/search", h.UI.Search)
		mux.HandleFunc("/ui/accounts/create", h.UI.CreateAccount)
		mux.HandleFunc("/ui/accounts/import", h.UI.ImportAccount)
		mux.HandleFunc("/ui/accounts/delete", h.UI.DeleteAccount)
		mux.HandleFunc("/ui/accounts/export", h.UI.ExportAccount)
		mux.HandleFunc("/ui/accounts/select", h.UI.SelectAccount)
		mux.HandleFunc("/ui/accounts/dismiss", h.UI.DismissAccountsMessage)
		mux.HandleFunc("/ui/transfer", h.UI.SubmitTransfer)
		mux.HandleFunc("/ui/transfer/sender", h.UI.SelectSender)
		mux.HandleFunc("/ui/transfer/dismiss", h.UI.DismissTransferMessage)
	}

	return withRequestLog(withSameOrigin(mux, logger), logger)
}
