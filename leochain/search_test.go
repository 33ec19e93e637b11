package leochain

import (
	"context"
	"strings"
	"testing"

	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(chain *fakeChain) *Searcher {
	return NewSearcher(NewExplorer(chain, chain, zerolog.Nop()), "leo", zerolog.Nop())
}

func TestSearchHeightAboveLatestIsNotFound(t *testing.T) {
	chain := newFakeChain(100)
	res := newTestSearcher(chain).Search(context.Background(), "12345")

	require.Equal(t, model.SearchNotFound, res.Kind)
	require.False(t, res.Found())
	require.Equal(t, NoResultsMessage, res.Error)
	require.Empty(t, chain.blockCalls)
}

func TestSearchHeight(t *testing.T) {
	chain := newFakeChain(100)
	res := newTestSearcher(chain).Search(context.Background(), " 42 ")

	require.Equal(t, model.SearchBlock, res.Kind)
	require.Equal(t, int64(42), res.Block.Height)
	require.Equal(t, "42", res.Query)
}

func TestSearchHeightZeroIsNotFound(t *testing.T) {
	chain := newFakeChain(100)
	res := newTestSearcher(chain).Search(context.Background(), "0")

	require.Equal(t, model.SearchNotFound, res.Kind)
	require.Empty(t, chain.blockCalls)
}

func TestSearchNumericHashFallsThroughToTx(t *testing.T) {
	chain := newFakeChain(100)
	hash := strings.Repeat("1", 64)
	chain.addTx(&model.Transaction{Hash: hash, Height: 7})

	res := newTestSearcher(chain).Search(context.Background(), hash)
	require.Equal(t, model.SearchTx, res.Kind)
	require.Equal(t, int64(7), res.Tx.Height)
	require.Empty(t, chain.blockCalls)
}

func TestSearchAddress(t *testing.T) {
	address, err := crypto.DeriveAddress(bobMnemonic, "leo")
	require.NoError(t, err)

	chain := newFakeChain(1)
	chain.balances[address] = []model.Balance{{Denom: "leotoken", Amount: "100"}}

	res := newTestSearcher(chain).Search(context.Background(), address)
	require.Equal(t, model.SearchAccount, res.Kind)
	require.Equal(t, address, res.Account.Address)
	require.Equal(t, "100", res.Account.Balances[0].Amount)
}

func TestSearchAddressBalancesDegrade(t *testing.T) {
	address, err := crypto.DeriveAddress(bobMnemonic, "leo")
	require.NoError(t, err)

	chain := newFakeChain(1)
	chain.balancesErr = errUnreachable

	res := newTestSearcher(chain).Search(context.Background(), address)
	require.Equal(t, model.SearchAccount, res.Kind)
	require.Empty(t, res.Account.Balances)
}

func TestSearchRejectsMalformedAddress(t *testing.T) {
	other, err := crypto.DeriveAddress(bobMnemonic, "cosmos")
	require.NoError(t, err)

	chain := newFakeChain(1)
	searcher := newTestSearcher(chain)

	require.Equal(t, model.SearchNotFound, searcher.Search(context.Background(), "leo1notanaddress").Kind)
	require.Equal(t, model.SearchNotFound, searcher.Search(context.Background(), other).Kind)
	require.Zero(t, chain.callCount())
}

func TestSearchUnknownTx(t *testing.T) {
	chain := newFakeChain(1)
	res := newTestSearcher(chain).Search(context.Background(), strings.Repeat("ab", 32))

	require.Equal(t, model.SearchNotFound, res.Kind)
	require.Equal(t, 1, chain.txLookups)
}

func TestSearchEmptyQueryMakesNoCalls(t *testing.T) {
	chain := newFakeChain(1)
	searcher := newTestSearcher(chain)

	require.Equal(t, model.SearchNotFound, searcher.Search(context.Background(), "").Kind)
	require.Equal(t, model.SearchNotFound, searcher.Search(context.Background(), "   ").Kind)
	require.Zero(t, chain.callCount())
}

func TestSearchStatusFailureMissesHeight(t *testing.T) {
	chain := newFakeChain(10)
	chain.statusErr = errUnreachable

	res := newTestSearcher(chain).Search(context.Background(), "5")
	require.Equal(t, model.SearchNotFound, res.Kind)
	require.Empty(t, chain.blockCalls)
}
