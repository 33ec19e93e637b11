package screen

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHeaderBannerPersistsUntilSuccess(t *testing.T) {
	source := newFakeSource()
	h := NewHeaderScreen(source, time.Hour, zerolog.Nop(), nil)
	ctx := context.Background()

	require.NoError(t, h.Refresh(ctx))
	require.True(t, h.State().Connected())
	require.Equal(t, int64(7), h.State().Status.SyncInfo.LatestBlockHeight)

	source.setStatusErr(errUnreachable)
	require.Error(t, h.Refresh(ctx))
	require.Error(t, h.Refresh(ctx))
	state := h.State()
	require.False(t, state.Connected())
	require.Equal(t, DisconnectedBanner, state.Banner)
	require.NotNil(t, state.Status)

	source.setStatusErr(nil)
	require.NoError(t, h.Refresh(ctx))
	require.Empty(t, h.State().Banner)
}

func TestHeaderMountPolls(t *testing.T) {
	h := NewHeaderScreen(newFakeSource(), time.Hour, zerolog.Nop(), nil)

	h.Mount(context.Background())
	defer h.Unmount()
	require.Eventually(t, func() bool { return h.State().Connected() }, time.Second, 5*time.Millisecond)
}
