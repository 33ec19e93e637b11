package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init())
	c := Get()
	require.Equal(t, "127.0.0.1", c.Host)
	require.Equal(t, "3000", c.Port)
	require.Equal(t, "http://localhost:26657", c.RPCURL)
	require.Equal(t, "http://localhost:1317", c.RESTURL)
	require.Equal(t, "leo", c.AddressPrefix)
	require.Equal(t, "stake", c.FeeDenom)
	require.Equal(t, int64(500), c.FeeAmount)
	require.Equal(t, uint64(200000), c.GasLimit)
	require.Equal(t, 10*time.Second, c.HTTPTimeout())
	require.Equal(t, 5*time.Second, c.StatusPollInterval())
	require.Equal(t, 6*time.Second, c.ExplorerPollInterval())
	require.Equal(t, time.Second, c.TxConfirmPoll())
}

func TestInitOverrides(t *testing.T) {
	t.Setenv("RPC_URL", "http://node:26657")
	t.Setenv("ADDRESS_PREFIX", "cosmos")
	t.Setenv("BLOCK_LIST_LIMIT", "3")

	require.NoError(t, Init())
	require.Equal(t, "http://node:26657", Get().RPCURL)
	require.Equal(t, "cosmos", Get().AddressPrefix)
	require.Equal(t, 3, Get().BlockListLimit)
}

func TestInitRejectsInvalid(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	require.Error(t, Init())

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("FEE_AMOUNT", "0")
	require.Error(t, Init())
}

func TestGetStoragePasswordBytesUnset(t *testing.T) {
	passwordBytes = nil
	_, err := GetStoragePasswordBytes()
	require.Error(t, err)

	passwordBytes = []byte("secret")
	out, err := GetStoragePasswordBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), out)

	clear(out)
	require.Equal(t, []byte("secret"), passwordBytes)
	passwordBytes = nil
}
