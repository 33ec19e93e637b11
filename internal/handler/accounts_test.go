package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func post(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCreateAccount(t *testing.T) {
	h := NewAccountsHandler(newAccountStore())

	rec := post(t, h.Create, "/api/accounts/create", model.CreateAccountRequest{Name: "alice"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "alice", resp.Name)
	require.NoError(t, crypto.ValidateAddress(resp.Address, testPrefix))

	qr, err := base64.StdEncoding.DecodeString(resp.QR)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(qr, pngMagic))

	rec = serve(t, h.List, http.MethodGet, "/api/accounts")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "mnemonic")

	var list model.AccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, []model.Account{{Name: "alice", Address: resp.Address}}, list.Accounts)
}

func TestCreateAccountRequiresName(t *testing.T) {
	h := NewAccountsHandler(newAccountStore())

	rec := post(t, h.Create, "/api/accounts/create", model.CreateAccountRequest{Name: "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, model.CodeValidation, decodeError(t, rec).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/create", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.Create(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h.Create, http.MethodGet, "/api/accounts/create")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestImportAndExport(t *testing.T) {
	h := NewAccountsHandler(newAccountStore())
	want, err := crypto.DeriveAddress(testMnemonic, testPrefix)
	require.NoError(t, err)

	rec := post(t, h.Import, "/api/accounts/import", model.ImportAccountRequest{Name: "bob", Mnemonic: "  " + testMnemonic + "\n"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, want, resp.Address)

	rec = post(t, h.Export, "/api/accounts/export", model.AddressRequest{Address: want})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var export model.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	require.Equal(t, testMnemonic, export.Mnemonic)

	rec = post(t, h.Export, "/api/accounts/export", model.AddressRequest{Address: "leo1unknown"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = post(t, h.Export, "/api/accounts/export", model.AddressRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportInvalidMnemonic(t *testing.T) {
	store := newAccountStore()
	h := NewAccountsHandler(store)

	rec := post(t, h.Import, "/api/accounts/import", model.ImportAccountRequest{Name: "bob", Mnemonic: "not a real mnemonic"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, model.CodeValidation, decodeError(t, rec).Code)

	accounts, err := store.List()
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestDeleteAccount(t *testing.T) {
	store := newAccountStore()
	h := NewAccountsHandler(store)
	bob, err := store.Import("bob", testMnemonic)
	require.NoError(t, err)
	alice, err := store.Create("alice")
	require.NoError(t, err)

	rec := post(t, h.Delete, "/api/accounts/delete", model.AddressRequest{Address: bob.Address})
	require.Equal(t, http.StatusOK, rec.Code)
	var list model.AccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, []model.Account{*alice}, list.Accounts)

	rec = post(t, h.Delete, "/api/accounts/delete", model.AddressRequest{Address: "leo1unknown"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Accounts, 1)
}

func TestQRCode(t *testing.T) {
	h := NewAccountsHandler(newAccountStore())

	rec := serve(t, h.QRCode, http.MethodGet, "/api/accounts/qr?address=leo1abc")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), pngMagic))

	rec = serve(t, h.QRCode, http.MethodGet, "/api/accounts/qr")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountMutationsRequireJSONContentType(t *testing.T) {
	store := newAccountStore()
	h := NewAccountsHandler(store)
	bob, err := store.Import("bob", testMnemonic)
	require.NoError(t, err)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
	}{
		{"create", h.Create, `{"name":"mallory"}`},
		{"import", h.Import, `{"name":"mallory","mnemonic":"` + testMnemonic + `"}`},
		{"delete", h.Delete, `{"address":"` + bob.Address + `"}`},
		{"export", h.Export, `{"address":"` + bob.Address + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/accounts/"+tt.name, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "text/plain")
			rec := httptest.NewRecorder()
			tt.handler(rec, req)
			require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
			require.NotContains(t, rec.Body.String(), "abandon")
		})
	}

	accounts, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []model.Account{*bob}, accounts)
}
