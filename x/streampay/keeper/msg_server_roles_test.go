package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func TestInitializeSetsAdmin(t *testing.T) {
	k, ms, ctx := setupMsgServer(t)

	admin := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	stored, found := k.GetAdmin(ctx)
	require.True(t, found)
	require.Equal(t, admin, stored)

	// the bootstrap grants the admin every role
	require.True(t, k.HasRole(ctx, admin, types.Role_ROLE_ADMIN))
	require.True(t, k.HasRole(ctx, admin, types.Role_ROLE_PAUSER))
	require.True(t, k.HasRole(ctx, admin, types.Role_ROLE_TREASURY_MANAGER))
}

func TestBootstrapAdminCanPauseStreams(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	admin := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	_, err = ms.PauseStream(ctx, &types.MsgPauseStream{Creator: admin, StreamId: streamId})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.IsPaused)
}

func TestInitializeTwice(t *testing.T) {
	_, ms, ctx := setupMsgServer(t)

	admin := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	_, err = ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: sample.AccAddress()})
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)
}

func TestGrantAndRevokeRole(t *testing.T) {
	k, ms, ctx := setupMsgServer(t)

	admin := sample.AccAddress()
	pauser := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{Creator: admin, Principal: pauser, Role: types.Role_ROLE_PAUSER})
	require.NoError(t, err)
	require.True(t, k.HasRole(ctx, pauser, types.Role_ROLE_PAUSER))
	require.False(t, k.HasRole(ctx, pauser, types.Role_ROLE_TREASURY_MANAGER))

	_, err = ms.RevokeRole(ctx, &types.MsgRevokeRole{Creator: admin, Principal: pauser, Role: types.Role_ROLE_PAUSER})
	require.NoError(t, err)
	require.False(t, k.HasRole(ctx, pauser, types.Role_ROLE_PAUSER))
}

func TestGrantRoleRequiresAdmin(t *testing.T) {
	_, ms, ctx := setupMsgServer(t)

	admin := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{
		Creator:   sample.AccAddress(),
		Principal: sample.AccAddress(),
		Role:      types.Role_ROLE_PAUSER,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestGrantRoleBeforeInitialize(t *testing.T) {
	_, ms, ctx := setupMsgServer(t)

	_, err := ms.GrantRole(ctx, &types.MsgGrantRole{
		Creator:   sample.AccAddress(),
		Principal: sample.AccAddress(),
		Role:      types.Role_ROLE_PAUSER,
	})
	require.ErrorIs(t, err, types.ErrAdminNotSet)
}

func TestGrantedAdminCanGrant(t *testing.T) {
	k, ms, ctx := setupMsgServer(t)

	admin := sample.AccAddress()
	second := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)

	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{Creator: admin, Principal: second, Role: types.Role_ROLE_ADMIN})
	require.NoError(t, err)

	pauser := sample.AccAddress()
	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{Creator: second, Principal: pauser, Role: types.Role_ROLE_PAUSER})
	require.NoError(t, err)
	require.True(t, k.HasRole(ctx, pauser, types.Role_ROLE_PAUSER))
}

func TestPauserRoleCanPauseAnyStream(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	admin := sample.AccAddress()
	pauser := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)
	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{Creator: admin, Principal: pauser, Role: types.Role_ROLE_PAUSER})
	require.NoError(t, err)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	_, err = ms.PauseStream(ctx, &types.MsgPauseStream{Creator: pauser, StreamId: streamId})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.IsPaused)
}
