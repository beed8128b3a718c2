package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func TestQueryParams(t *testing.T) {
	k, _, ctx, _ := setupMsgServerWithMocks(t)

	resp, err := k.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)
}

func TestQueryStream(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	midCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	resp, err := k.Stream(midCtx, &types.QueryStreamRequest{StreamId: streamId})
	require.NoError(t, err)
	require.Equal(t, streamId, resp.Stream.Id)
	require.Equal(t, math.NewInt(500), resp.Unlocked)
	require.Equal(t, math.NewInt(500), resp.Withdrawable)
}

func TestQueryStreamNotFound(t *testing.T) {
	k, _, ctx, _ := setupMsgServerWithMocks(t)

	_, err := k.Stream(ctx, &types.QueryStreamRequest{StreamId: 42})
	require.Error(t, err)
}

func TestQueryStreamsPaginated(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	for i := 0; i < 5; i++ {
		createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)
	}

	resp, err := k.Streams(ctx, &types.QueryStreamsRequest{
		Pagination: &query.PageRequest{Limit: 3},
	})
	require.NoError(t, err)
	require.Len(t, resp.Streams, 3)
	require.NotNil(t, resp.Pagination.NextKey)

	rest, err := k.Streams(ctx, &types.QueryStreamsRequest{
		Pagination: &query.PageRequest{Key: resp.Pagination.NextKey},
	})
	require.NoError(t, err)
	require.Len(t, rest.Streams, 2)
}

func TestQueryAdminAndCheckRole(t *testing.T) {
	k, ms, ctx, _ := setupMsgServerWithMocks(t)

	_, err := k.Admin(ctx, &types.QueryAdminRequest{})
	require.Error(t, err)

	admin := sample.AccAddress()
	_, err = ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	resp, err := k.Admin(ctx, &types.QueryAdminRequest{})
	require.NoError(t, err)
	require.Equal(t, admin, resp.Admin)

	check, err := k.CheckRole(ctx, &types.QueryCheckRoleRequest{Principal: admin, Role: types.Role_ROLE_ADMIN})
	require.NoError(t, err)
	require.True(t, check.HasRole)

	check, err = k.CheckRole(ctx, &types.QueryCheckRoleRequest{Principal: sample.AccAddress(), Role: types.Role_ROLE_ADMIN})
	require.NoError(t, err)
	require.False(t, check.HasRole)
}

func TestQuerySoulboundStreams(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	receiver := sample.AccAddress()
	_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:     sample.AccAddress(),
		Receiver:    receiver,
		Token:       testDenom,
		Amount:      math.NewInt(1000),
		StartTime:   1000,
		EndTime:     2000,
		IsSoulbound: true,
	})
	require.NoError(t, err)

	createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	resp, err := k.SoulboundStreams(ctx, &types.QuerySoulboundStreamsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Streams, 1)
	require.Equal(t, receiver, resp.Streams[0].Receiver)

	filtered, err := k.SoulboundStreams(ctx, &types.QuerySoulboundStreamsRequest{Receiver: sample.AccAddress()})
	require.NoError(t, err)
	require.Empty(t, filtered.Streams)
}

func TestQuerySoulboundStreamsPaginated(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	for i := 0; i < 5; i++ {
		_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
			Creator:     sample.AccAddress(),
			Receiver:    sample.AccAddress(),
			Token:       testDenom,
			Amount:      math.NewInt(1000),
			StartTime:   1000,
			EndTime:     2000,
			IsSoulbound: true,
		})
		require.NoError(t, err)
	}

	resp, err := k.SoulboundStreams(ctx, &types.QuerySoulboundStreamsRequest{
		Pagination: &query.PageRequest{Limit: 3},
	})
	require.NoError(t, err)
	require.Len(t, resp.Streams, 3)
	require.Equal(t, uint64(5), resp.Pagination.Total)

	rest, err := k.SoulboundStreams(ctx, &types.QuerySoulboundStreamsRequest{
		Pagination: &query.PageRequest{Offset: 3, Limit: 3},
	})
	require.NoError(t, err)
	require.Len(t, rest.Streams, 2)
}
