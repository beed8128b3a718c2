package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/streampaynet/streampay/testutil/keeper"
	"github.com/streampaynet/streampay/x/streampay/keeper"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func setupMsgServer(t testing.TB) (keeper.Keeper, types.MsgServer, sdk.Context) {
	k, ctx := keepertest.StreampayKeeper(t)
	return k, keeper.NewMsgServerImpl(k), ctx
}

func setupMsgServerWithMocks(t testing.TB) (keeper.Keeper, types.MsgServer, sdk.Context, keepertest.StreampayMocks) {
	k, ctx, mocks := keepertest.StreampayKeeperReturningMocks(t)
	return k, keeper.NewMsgServerImpl(k), ctx, mocks
}

func TestMsgServer(t *testing.T) {
	k, ms, ctx := setupMsgServer(t)
	require.NotNil(t, ms)
	require.NotNil(t, ctx)
	require.NotEmpty(t, k)
}
