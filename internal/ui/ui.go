// Package ui renders the explorer, accounts and transfer screens as HTML.
// Form posts dispatch screen actions and redirect back to the page.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZinkM/leochain-explorer/internal/common"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/internal/screen"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"truncateHash":    common.TruncateHash,
	"truncateAddress": common.TruncateAddress,
	"formatTime":      common.FormatTime,
}

// Screens groups the screens rendered by the UI
type Screens struct {
	Header   *screen.HeaderScreen
	Explorer *screen.ExplorerScreen
	Accounts *screen.AccountsScreen
	Transfer *screen.TransferScreen
}

// Handler serves the HTML screens
type Handler struct {
	screens Screens
	pages   map[string]*template.Template
	logger  zerolog.Logger
}

// NewHandler parses the embedded templates
func NewHandler(screens Screens, logger zerolog.Logger) (*Handler, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{"explorer", "accounts", "transfer"} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Handler{
		screens: screens,
		pages:   pages,
		logger:  logging.ForComponent(logger, "ui"),
	}, nil
}

// page is the data passed to every template
type page struct {
	Active string
	Header screen.HeaderState

	Explorer screen.ExplorerState
	Accounts screen.AccountsState
	Transfer screen.TransferState

	// Mnemonic is revealed once on the accounts page
	Mnemonic string
}

// Explorer handles GET /
func (h *Handler) Explorer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowGet(w, r) {
		return
	}

	h.render(w, "explorer", page{
		Active:   screen.NameExplorer,
		Header:   h.screens.Header.State(),
		Explorer: h.screens.Explorer.State(),
	})
}

// Accounts handles GET /accounts
func (h *Handler) Accounts(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if err := h.screens.Accounts.Reload(); err != nil {
		h.logger.Warn().Err(err).Msg("failed to reload accounts")
	}
	w.Header().Set("Cache-Control", "no-store")
	h.render(w, "accounts", page{
		Active:   screen.NameAccounts,
		Header:   h.screens.Header.State(),
		Accounts: h.screens.Accounts.State(),
		Mnemonic: h.screens.Accounts.TakeMnemonic(),
	})
}

// Transfer handles GET /transfer
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if err := h.screens.Transfer.Reload(); err != nil {
		h.logger.Warn().Err(err).Msg("failed to reload senders")
	}
	h.render(w, "transfer", page{
		Active:   screen.NameTransfer,
		Header:   h.screens.Header.State(),
		Transfer: h.screens.Transfer.State(),
	})
}

// Search handles POST /ui/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	if r.PostFormValue("clear") != "" {
		h.screens.Explorer.Dispatch(screen.SearchCleared{})
	} else {
		h.screens.Explorer.Search(r.Context(), r.PostFormValue("q"))
	}
	redirect(w, r, "/")
}

// CreateAccount handles POST /ui/accounts/create
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	_, _ = h.screens.Accounts.Create(r.Context(), r.PostFormValue("name"))
	redirect(w, r, "/accounts")
}

// ImportAccount handles POST /ui/accounts/import
func (h *Handler) ImportAccount(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	_, _ = h.screens.Accounts.Import(r.Context(), r.PostFormValue("name"), r.PostFormValue("mnemonic"))
	redirect(w, r, "/accounts")
}

// DeleteAccount handles POST /ui/accounts/delete
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	_ = h.screens.Accounts.Delete(r.Context(), r.PostFormValue("address"))
	redirect(w, r, "/accounts")
}

// ExportAccount handles POST /ui/accounts/export
func (h *Handler) ExportAccount(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	_, _ = h.screens.Accounts.Export(r.PostFormValue("address"))
	redirect(w, r, "/accounts")
}

// SelectAccount handles POST /ui/accounts/select
func (h *Handler) SelectAccount(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	h.screens.Accounts.Select(r.Context(), r.PostFormValue("address"))
	redirect(w, r, "/accounts")
}

// DismissAccountsMessage handles POST /ui/accounts/dismiss
func (h *Handler) DismissAccountsMessage(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	h.screens.Accounts.DismissMessage()
	redirect(w, r, "/accounts")
}

// SelectSender handles POST /ui/transfer/sender
func (h *Handler) SelectSender(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	h.screens.Transfer.SelectSender(r.Context(), r.PostFormValue("from"))
	if denom := strings.TrimSpace(r.PostFormValue("denom")); denom != "" {
		h.screens.Transfer.SelectDenom(denom)
	}
	redirect(w, r, "/transfer")
}

// SubmitTransfer handles POST /ui/transfer. The "max" action fills the amount instead of sending.
func (h *Handler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	req := model.TransferRequest{
		FromAddress: strings.TrimSpace(r.PostFormValue("from")),
		ToAddress:   strings.TrimSpace(r.PostFormValue("to")),
		Amount:      strings.TrimSpace(r.PostFormValue("amount")),
		Denom:       strings.TrimSpace(r.PostFormValue("denom")),
	}
	if req.FromAddress != "" {
		h.screens.Transfer.SelectSender(r.Context(), req.FromAddress)
	}
	h.screens.Transfer.Dispatch(screen.DraftChanged{Recipient: req.ToAddress, Amount: req.Amount})

	if r.PostFormValue("action") == "max" {
		if req.Denom != "" {
			h.screens.Transfer.SelectDenom(req.Denom)
		}
		h.screens.Transfer.SelectAllBalance()
		redirect(w, r, "/transfer")
		return
	}

	if _, err := h.screens.Transfer.Submit(r.Context(), req); err != nil {
		h.screens.Transfer.Dispatch(screen.TransferMessage{Message: &screen.Message{Kind: screen.MessageError, Text: err.Error()}})
	}
	redirect(w, r, "/transfer")
}

// DismissTransferMessage handles POST /ui/transfer/dismiss
func (h *Handler) DismissTransferMessage(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}
	h.screens.Transfer.DismissMessage()
	redirect(w, r, "/transfer")
}

func (h *Handler) render(w http.ResponseWriter, name string, data page) {
	var buf bytes.Buffer
	if err := h.pages[name].Execute(&buf, data); err != nil {
		h.logger.Error().Err(err).Str(logging.FieldScreen, name).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func allowPost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, (&url.URL{Path: path}).String(), http.StatusSeeOther)
}
