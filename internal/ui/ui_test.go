package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/internal/screen"
	"github.com/AlexZinkM/leochain-explorer/internal/storage"
	"github.com/AlexZinkM/leochain-explorer/leochain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type fakeChain struct {
	statusErr error
}

func (f *fakeChain) GetNodeStatus(context.Context) (*model.NodeStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &model.NodeStatus{
		NodeInfo: model.NodeInfo{Network: "leochain-1"},
		SyncInfo: model.SyncInfo{LatestBlockHeight: 42},
	}, nil
}

func (f *fakeChain) GetBlocks(context.Context, int) ([]model.Block, error) {
	return []model.Block{{
		Height:   42,
		Hash:     "ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789",
		Proposer: "AABBCCDDEEFF00112233",
		TxCount:  3,
	}}, nil
}

func (f *fakeChain) GetValidators(context.Context) ([]model.Validator, error) {
	return []model.Validator{{Address: "AABBCCDDEEFF00112233", VotingPower: 100}}, nil
}

func (f *fakeChain) GetBalances(context.Context, string) []model.Balance {
	return []model.Balance{{Denom: "stake", Amount: "1000"}}
}

func (f *fakeChain) Search(_ context.Context, query string) *model.SearchResult {
	if query == "42" {
		return &model.SearchResult{Query: query, Kind: model.SearchBlock, Block: &model.Block{Height: 42}}
	}
	return &model.SearchResult{Query: query, Kind: model.SearchNotFound, Error: leochain.NoResultsMessage}
}

type fakeRunner struct {
	requests []model.TransferRequest
}

func (f *fakeRunner) Transfer(_ context.Context, req model.TransferRequest, observe leochain.Observer) *model.TransferResult {
	f.requests = append(f.requests, req)
	if observe != nil {
		observe(model.TransferValidating)
		observe(model.TransferSubmitting)
	}
	return &model.TransferResult{State: model.TransferSucceeded, TxHash: "FEEDBEEF"}
}

func (f *fakeRunner) FeeLabel() string { return "500 stake" }

type fixture struct {
	handler  *Handler
	screens  Screens
	accounts *leochain.AccountStore
	runner   *fakeRunner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	chain := &fakeChain{}
	accounts := leochain.NewAccountStore(storage.NewMemoryStorage(), "leo", zerolog.Nop())
	runner := &fakeRunner{}

	screens := Screens{
		Header:   screen.NewHeaderScreen(chain, time.Hour, zerolog.Nop(), nil),
		Explorer: screen.NewExplorerScreen(chain, chain, 10, time.Hour, zerolog.Nop(), nil),
		Accounts: screen.NewAccountsScreen(accounts, chain, time.Hour, zerolog.Nop(), nil),
		Transfer: screen.NewTransferScreen(accounts, chain, runner, "stake", time.Hour, zerolog.Nop(), nil),
	}
	h, err := NewHandler(screens, zerolog.Nop())
	require.NoError(t, err)
	return &fixture{handler: h, screens: screens, accounts: accounts, runner: runner}
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func postForm(h http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestExplorerPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.screens.Header.Refresh(ctx))
	require.NoError(t, f.screens.Explorer.Refresh(ctx))

	rec := get(f.handler.Explorer, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	require.Contains(t, body, "leochain-1")
	require.Contains(t, body, "Height: 42")
	require.Contains(t, body, "ABCDEF01...23456789")
	require.Contains(t, body, "AABBCCDDEE...112233")
	require.NotContains(t, body, "Loading...")
	require.NotContains(t, body, screen.DisconnectedBanner)
}

func TestExplorerPageDisconnected(t *testing.T) {
	f := newFixture(t)
	f.screens.Header.Dispatch(screen.StatusFailed{})

	rec := get(f.handler.Explorer, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), screen.DisconnectedBanner)
}

func TestExplorerUnknownPath(t *testing.T) {
	f := newFixture(t)
	rec := get(f.handler.Explorer, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchRedirects(t *testing.T) {
	f := newFixture(t)

	rec := postForm(f.handler.Search, "/ui/search", url.Values{"q": {"42"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.Equal(t, model.SearchBlock, f.screens.Explorer.State().Search.Kind)

	rec = get(f.handler.Explorer, "/")
	require.Contains(t, rec.Body.String(), "Block 42")

	postForm(f.handler.Search, "/ui/search", url.Values{"q": {"zzz"}})
	rec = get(f.handler.Explorer, "/")
	require.Contains(t, rec.Body.String(), leochain.NoResultsMessage)

	postForm(f.handler.Search, "/ui/search", url.Values{"clear": {"1"}})
	require.Nil(t, f.screens.Explorer.State().Search)

	rec = get(f.handler.Search, "/ui/search")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCreateAccountShowsMnemonicOnce(t *testing.T) {
	f := newFixture(t)

	rec := postForm(f.handler.CreateAccount, "/ui/accounts/create", url.Values{"name": {"alice"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/accounts", rec.Header().Get("Location"))

	rec = get(f.handler.Accounts, "/accounts")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	require.Contains(t, body, "alice")
	require.Contains(t, body, `id="mnemonic"`)

	rec = get(f.handler.Accounts, "/accounts")
	require.NotContains(t, rec.Body.String(), `id="mnemonic"`)
}

func TestImportExportDeleteAccount(t *testing.T) {
	f := newFixture(t)

	postForm(f.handler.ImportAccount, "/ui/accounts/import", url.Values{"name": {"bob"}, "mnemonic": {testMnemonic}})
	accounts, err := f.accounts.List()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	address := accounts[0].Address

	postForm(f.handler.ExportAccount, "/ui/accounts/export", url.Values{"address": {address}})
	rec := get(f.handler.Accounts, "/accounts")
	require.Contains(t, rec.Body.String(), testMnemonic)

	postForm(f.handler.DeleteAccount, "/ui/accounts/delete", url.Values{"address": {address}})
	accounts, err = f.accounts.List()
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestImportInvalidMnemonicShowsError(t *testing.T) {
	f := newFixture(t)

	postForm(f.handler.ImportAccount, "/ui/accounts/import", url.Values{"name": {"bob"}, "mnemonic": {"one two three"}})
	msg := f.screens.Accounts.State().Message
	require.NotNil(t, msg)
	require.Equal(t, screen.MessageError, msg.Kind)

	rec := get(f.handler.Accounts, "/accounts")
	require.Contains(t, rec.Body.String(), `class="message error"`)

	postForm(f.handler.DismissAccountsMessage, "/ui/accounts/dismiss", nil)
	require.Nil(t, f.screens.Accounts.State().Message)
}

func TestTransferPage(t *testing.T) {
	f := newFixture(t)

	rec := get(f.handler.Transfer, "/transfer")
	require.Contains(t, rec.Body.String(), "Create or import an account first.")

	bob, err := f.accounts.Import("bob", testMnemonic)
	require.NoError(t, err)

	rec = get(f.handler.Transfer, "/transfer")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `id="transfer"`)
	require.Contains(t, body, "Fee: 500 stake")

	rec = postForm(f.handler.SubmitTransfer, "/ui/transfer", url.Values{
		"from":   {bob.Address},
		"to":     {"leo1recipient"},
		"amount": {"10"},
		"denom":  {"stake"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/transfer", rec.Header().Get("Location"))

	require.Len(t, f.runner.requests, 1)
	require.Equal(t, model.TransferRequest{FromAddress: bob.Address, ToAddress: "leo1recipient", Amount: "10", Denom: "stake"}, f.runner.requests[0])

	state := f.screens.Transfer.State()
	require.Equal(t, model.TransferSucceeded, state.Progress)
	require.Equal(t, "FEEDBEEF", state.TxHash)

	rec = get(f.handler.Transfer, "/transfer")
	require.Contains(t, rec.Body.String(), "FEEDBEEF")

	postForm(f.handler.DismissTransferMessage, "/ui/transfer/dismiss", nil)
	require.Nil(t, f.screens.Transfer.State().Message)
}

func TestTransferMaxFillsBalance(t *testing.T) {
	f := newFixture(t)
	bob, err := f.accounts.Import("bob", testMnemonic)
	require.NoError(t, err)
	require.NoError(t, f.screens.Transfer.Reload())

	rec := postForm(f.handler.SubmitTransfer, "/ui/transfer", url.Values{
		"from":   {bob.Address},
		"to":     {"leo1recipient"},
		"amount": {"3"},
		"denom":  {"stake"},
		"action": {"max"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Empty(t, f.runner.requests)

	state := f.screens.Transfer.State()
	require.Equal(t, "1000", state.Amount)
	require.Equal(t, "leo1recipient", state.Recipient)

	body := get(f.handler.Transfer, "/transfer").Body.String()
	require.Contains(t, body, `name="amount" placeholder="Amount" value="1000"`)
	require.Contains(t, body, `value="leo1recipient"`)
	require.Contains(t, body, `value="max">Max</button>`)
	require.NotContains(t, body, `id="insufficient"`)
}

func TestTransferWarnsWhenAmountExceedsBalance(t *testing.T) {
	f := newFixture(t)
	bob, err := f.accounts.Import("bob", testMnemonic)
	require.NoError(t, err)
	require.NoError(t, f.screens.Transfer.Reload())
	f.screens.Transfer.SelectSender(context.Background(), bob.Address)

	f.screens.Transfer.Dispatch(screen.DraftChanged{Recipient: "leo1recipient", Amount: "1001"})
	body := get(f.handler.Transfer, "/transfer").Body.String()
	require.Contains(t, body, `id="insufficient"`)
	require.Contains(t, body, "available balance of 1000 stake")
}

func TestSelectSender(t *testing.T) {
	f := newFixture(t)
	bob, err := f.accounts.Import("bob", testMnemonic)
	require.NoError(t, err)
	require.NoError(t, f.screens.Transfer.Reload())

	rec := postForm(f.handler.SelectSender, "/ui/transfer/sender", url.Values{"from": {bob.Address}, "denom": {"stake"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	state := f.screens.Transfer.State()
	require.Equal(t, bob.Address, state.From)
	require.Equal(t, "stake", state.Denom)
	require.Equal(t, "1000", state.Balance("stake"))
}
