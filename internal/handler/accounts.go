package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/leochain"
)

// AccountStore manages local accounts
type AccountStore interface {
	List() ([]model.Account, error)
	Create(name string) (*model.Account, error)
	Import(name, mnemonic string) (*model.Account, error)
	Delete(address string) error
	ExportMnemonic(address string) (string, bool, error)
}

// AccountsHandler serves local account management
type AccountsHandler struct {
	store AccountStore
}

// NewAccountsHandler creates a new AccountsHandler
func NewAccountsHandler(store AccountStore) *AccountsHandler {
	return &AccountsHandler{store: store}
}

// List handles GET /api/accounts
// @Summary      List local accounts
// @Description  Gets name and address of every local account. Mnemonics are never included
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  model.AccountsResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	accounts, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AccountsResponse{Accounts: accounts})
}

// Create handles POST /api/accounts/create
// @Summary      Create account
// @Description  Generates a new 24-word mnemonic and saves the derived account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateAccountRequest  true  "Account name"
// @Success      200      {object}  model.AccountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      415  {object}  model.ErrorResponse
// @Router       /api/accounts/create [post]
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) || !requireJSON(w, r) {
		return
	}

	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	account, err := h.store.Create(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeAccount(w, "Account created successfully. Export and back up the mnemonic", account)
}

// Import handles POST /api/accounts/import
// @Summary      Import account
// @Description  Restores an account from a BIP39 mnemonic. Nothing is saved when the mnemonic is invalid
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportAccountRequest  true  "Account name and mnemonic"
// @Success      200      {object}  model.AccountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      415  {object}  model.ErrorResponse
// @Router       /api/accounts/import [post]
func (h *AccountsHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) || !requireJSON(w, r) {
		return
	}

	var req model.ImportAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	account, err := h.store.Import(req.Name, req.Mnemonic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeAccount(w, "Account imported successfully", account)
}

// Delete handles POST /api/accounts/delete
// @Summary      Delete account
// @Description  Removes every local account with the address. Unknown addresses are a no-op
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Account address"
// @Success      200      {object}  model.AccountsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      415  {object}  model.ErrorResponse
// @Router       /api/accounts/delete [post]
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) || !requireJSON(w, r) {
		return
	}

	address, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(address); err != nil {
		writeError(w, err)
		return
	}

	accounts, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AccountsResponse{Accounts: accounts})
}

// Export handles POST /api/accounts/export
// @Summary      Export mnemonic
// @Description  Returns the mnemonic of a local account for backup
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Account address"
// @Success      200      {object}  model.ExportResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      415  {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /api/accounts/export [post]
func (h *AccountsHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) || !requireJSON(w, r) {
		return
	}

	address, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	mnemonic, found, err := h.store.ExportMnemonic(address)
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		writeError(w, model.ErrAccountNotFound)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, model.ExportResponse{Address: address, Mnemonic: mnemonic})
}

// QRCode handles GET /api/accounts/qr
// @Summary      Address QR code
// @Description  Renders an address as a PNG QR code
// @Tags         accounts
// @Produce      png
// @Param        address  query     string  true  "Account address"
// @Success      200      {file}    binary
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/accounts/qr [get]
func (h *AccountsHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeBadRequest(w, "address is required")
		return
	}

	png, err := leochain.AddressQRCode(address)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req model.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err.Error())
		return "", false
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		writeBadRequest(w, "address is required")
		return "", false
	}
	return address, true
}

func writeAccount(w http.ResponseWriter, message string, account *model.Account) {
	resp := model.AccountResponse{
		Success: true,
		Message: message,
		Name:    account.Name,
		Address: account.Address,
	}
	// The QR code is optional; the account is already saved
	if qr, err := leochain.AddressQRCodeBase64(account.Address); err == nil {
		resp.QR = qr
	}
	writeJSON(w, http.StatusOK, resp)
}
