package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	keepertest "github.com/streampaynet/streampay/testutil/keeper"
	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/streampaynet/streampay/x/streampay/types"
)

const testDenom = "ustream"

func fundedMocks(mocks keepertest.StreampayMocks, amount int64) {
	mocks.BankKeeper.ExpectAnySpendable(sdk.NewCoins(sdk.NewInt64Coin(testDenom, amount)))
	mocks.CustodyKeeper.ExpectAnyCustody()
}

func createStream(t *testing.T, ms types.MsgServer, ctx sdk.Context, sender, receiver string, amount int64, start, end int64) uint64 {
	t.Helper()
	resp, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:   sender,
		Receiver:  receiver,
		Token:     testDenom,
		Amount:    math.NewInt(amount),
		StartTime: start,
		EndTime:   end,
		CurveType: types.CurveType_CURVE_TYPE_LINEAR,
	})
	require.NoError(t, err)
	return resp.StreamId
}

func TestCreateStream(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()

	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)
	require.Equal(t, uint64(1), streamId)

	stream, found := k.GetStream(ctx, streamId)
	require.True(t, found)
	require.Equal(t, sender, stream.Sender)
	require.Equal(t, receiver, stream.Receiver)
	require.Equal(t, math.NewInt(1000), stream.TotalAmount)
	require.True(t, stream.WithdrawnAmount.IsZero())
	require.False(t, stream.IsPaused)
	require.False(t, stream.Cancelled)

	receipt, found := k.GetReceipt(ctx, streamId)
	require.True(t, found)
	require.Equal(t, receiver, receipt.Owner)

	// ids are sequential
	second := createStream(t, ms, ctx, sender, receiver, 500, 1000, 2000)
	require.Equal(t, uint64(2), second)
}

func TestCreateStreamInsufficientFunds(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	mocks.BankKeeper.ExpectAnySpendable(sdk.NewCoins(sdk.NewInt64Coin(testDenom, 10)))

	_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:   sample.AccAddress(),
		Receiver:  sample.AccAddress(),
		Token:     testDenom,
		Amount:    math.NewInt(1000),
		StartTime: 1000,
		EndTime:   2000,
	})
	require.Error(t, err)
}

func TestCreateStreamBelowMinDuration(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	require.NoError(t, k.SetParams(ctx, types.NewParams(nil, 600)))

	_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:   sample.AccAddress(),
		Receiver:  sample.AccAddress(),
		Token:     testDenom,
		Amount:    math.NewInt(1000),
		StartTime: 1000,
		EndTime:   1100,
	})
	require.ErrorIs(t, err, types.ErrInvalidTimeRange)
}

func TestCreateStreamEndBeforeStart(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	// the keeper guards the inverted range itself, without relying on
	// ValidateBasic having run
	_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:   sample.AccAddress(),
		Receiver:  sample.AccAddress(),
		Token:     testDenom,
		Amount:    math.NewInt(1000),
		StartTime: 2000,
		EndTime:   1000,
	})
	require.ErrorIs(t, err, types.ErrInvalidTimeRange)
}

func TestCreateStreamVaultNotAllowed(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	_, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:      sample.AccAddress(),
		Receiver:     sample.AccAddress(),
		Token:        testDenom,
		Amount:       math.NewInt(1000),
		StartTime:    1000,
		EndTime:      2000,
		VaultAddress: sample.AccAddress(),
	})
	require.ErrorIs(t, err, types.ErrVaultNotAllowed)
}

func TestCreateSoulboundStreamIndexed(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	resp, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:     sample.AccAddress(),
		Receiver:    sample.AccAddress(),
		Token:       testDenom,
		Amount:      math.NewInt(1000),
		StartTime:   1000,
		EndTime:     2000,
		IsSoulbound: true,
	})
	require.NoError(t, err)

	ids := k.GetSoulboundStreamIds(ctx)
	require.Equal(t, []uint64{resp.StreamId}, ids)
}

func TestCreateStreamWithMilestones(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	resp, err := ms.CreateStreamWithMilestones(ctx, &types.MsgCreateStreamWithMilestones{
		Creator:  sample.AccAddress(),
		Receiver: sample.AccAddress(),
		Token:    testDenom,
		Milestones: []types.Milestone{
			{Timestamp: 1500, Amount: math.NewInt(300)},
			{Timestamp: 2000, Amount: math.NewInt(700)},
		},
	})
	require.NoError(t, err)

	stream, found := k.GetStream(ctx, resp.StreamId)
	require.True(t, found)
	require.Equal(t, math.NewInt(1000), stream.TotalAmount)
	require.Equal(t, int64(1500), stream.StartTime)
	require.Equal(t, int64(2000), stream.EndTime)
	require.Len(t, stream.Milestones, 2)
}

func TestTopUpStreamExtendsEndTime(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	// 1000 tokens over 1000 seconds, flow rate 1/s
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 1000, 1000, 2000)

	resp, err := ms.TopUpStream(ctx, &types.MsgTopUpStream{
		Creator:  sender,
		StreamId: streamId,
		Amount:   math.NewInt(500),
	})
	require.NoError(t, err)
	require.Equal(t, int64(2500), resp.NewEndTime)

	stream, _ := k.GetStream(ctx, streamId)
	require.Equal(t, math.NewInt(1500), stream.TotalAmount)
	require.Equal(t, int64(2500), stream.EndTime)
}

func TestTopUpStreamZeroFlowRate(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	// 10 tokens over 1000 seconds rounds the flow rate down to zero
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 10, 1000, 2000)

	_, err := ms.TopUpStream(ctx, &types.MsgTopUpStream{
		Creator:  sender,
		StreamId: streamId,
		Amount:   math.NewInt(5),
	})
	require.ErrorIs(t, err, types.ErrZeroFlowRate)
}

func TestTopUpStreamUnauthorized(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	_, err := ms.TopUpStream(ctx, &types.MsgTopUpStream{
		Creator:  sample.AccAddress(),
		StreamId: streamId,
		Amount:   math.NewInt(500),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestTopUpByTreasuryManager(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	admin := sample.AccAddress()
	manager := sample.AccAddress()
	_, err := ms.Initialize(ctx, &types.MsgInitialize{Creator: admin, Admin: admin})
	require.NoError(t, err)
	_, err = ms.GrantRole(ctx, &types.MsgGrantRole{Creator: admin, Principal: manager, Role: types.Role_ROLE_TREASURY_MANAGER})
	require.NoError(t, err)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	_, err = ms.TopUpStream(ctx, &types.MsgTopUpStream{
		Creator:  manager,
		StreamId: streamId,
		Amount:   math.NewInt(500),
	})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.Equal(t, math.NewInt(1500), stream.TotalAmount)
}

func TestPauseAndUnpauseFreezesVesting(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 1000, 1000, 2000)

	pauseCtx := ctx.WithBlockTime(time.Unix(1200, 0))
	_, err := ms.PauseStream(pauseCtx, &types.MsgPauseStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.IsPaused)
	require.Equal(t, int64(1200), stream.PausedTime)

	// pausing twice is a no-op and keeps the original pause timestamp
	laterCtx := ctx.WithBlockTime(time.Unix(1300, 0))
	_, err = ms.PauseStream(laterCtx, &types.MsgPauseStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)
	stream, _ = k.GetStream(ctx, streamId)
	require.Equal(t, int64(1200), stream.PausedTime)

	resumeCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	_, err = ms.UnpauseStream(resumeCtx, &types.MsgUnpauseStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)

	stream, _ = k.GetStream(ctx, streamId)
	require.False(t, stream.IsPaused)
	require.Equal(t, int64(300), stream.TotalPausedDuration)
}

func TestUnpauseNotPausedIsNoop(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 1000, 1000, 2000)

	_, err := ms.UnpauseStream(ctx, &types.MsgUnpauseStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.False(t, stream.IsPaused)
	require.Zero(t, stream.TotalPausedDuration)
}

func TestWithdrawWhilePausedRejected(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)

	pauseCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	_, err := ms.PauseStream(pauseCtx, &types.MsgPauseStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)

	// 500 vested before the pause, but nothing is payable while paused
	lateCtx := ctx.WithBlockTime(time.Unix(1600, 0))
	_, err = ms.Withdraw(lateCtx, &types.MsgWithdraw{Creator: receiver, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrStreamPaused)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.WithdrawnAmount.IsZero())
}

func TestWithdrawPaysVestedAmount(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)

	midCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	resp, err := ms.Withdraw(midCtx, &types.MsgWithdraw{Creator: receiver, StreamId: streamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), resp.Amount)
	require.Equal(t, testDenom, resp.Denom)

	stream, _ := k.GetStream(ctx, streamId)
	require.Equal(t, math.NewInt(500), stream.WithdrawnAmount)

	// nothing more has vested
	_, err = ms.Withdraw(midCtx, &types.MsgWithdraw{Creator: receiver, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestWithdrawOnlyReceiver(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 1000, 1000, 2000)

	midCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	_, err := ms.Withdraw(midCtx, &types.MsgWithdraw{Creator: sender, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCancelStreamSplitsBalance(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)

	// 40% through the schedule
	cancelCtx := ctx.WithBlockTime(time.Unix(1400, 0))
	resp, err := ms.CancelStream(cancelCtx, &types.MsgCancelStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), resp.ToReceiver)
	require.Equal(t, math.NewInt(600), resp.ToSender)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.Cancelled)

	// every lifecycle operation is rejected afterwards
	_, err = ms.Withdraw(cancelCtx, &types.MsgWithdraw{Creator: receiver, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrAlreadyCancelled)
	_, err = ms.PauseStream(cancelCtx, &types.MsgPauseStream{Creator: sender, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrAlreadyCancelled)
	_, err = ms.CancelStream(cancelCtx, &types.MsgCancelStream{Creator: sender, StreamId: streamId})
	require.ErrorIs(t, err, types.ErrAlreadyCancelled)
}

func TestCancelStreamByReceiver(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)

	// either party may settle the stream
	cancelCtx := ctx.WithBlockTime(time.Unix(1400, 0))
	resp, err := ms.CancelStream(cancelCtx, &types.MsgCancelStream{Creator: receiver, StreamId: streamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), resp.ToReceiver)
	require.Equal(t, math.NewInt(600), resp.ToSender)

	stream, _ := k.GetStream(ctx, streamId)
	require.True(t, stream.Cancelled)
}

func TestCancelStreamByThirdParty(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	streamId := createStream(t, ms, ctx, sample.AccAddress(), sample.AccAddress(), 1000, 1000, 2000)

	_, err := ms.CancelStream(ctx, &types.MsgCancelStream{Creator: sample.AccAddress(), StreamId: streamId})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCancelAccountsForWithdrawals(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, receiver, 1000, 1000, 2000)

	midCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	_, err := ms.Withdraw(midCtx, &types.MsgWithdraw{Creator: receiver, StreamId: streamId})
	require.NoError(t, err)

	// 80% through, 500 already withdrawn
	cancelCtx := ctx.WithBlockTime(time.Unix(1800, 0))
	resp, err := ms.CancelStream(cancelCtx, &types.MsgCancelStream{Creator: sender, StreamId: streamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300), resp.ToReceiver)
	require.Equal(t, math.NewInt(200), resp.ToSender)
}

func TestCancelVaultStreamRedeemsAllShares(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	vault := sample.AccAddress()
	require.NoError(t, k.SetParams(ctx, types.NewParams([]string{vault}, 1)))

	sender := sample.AccAddress()
	receiver := sample.AccAddress()

	mocks.VaultKeeper.EXPECT().
		Deposit(gomock.Any(), vault, types.ModuleName, sdk.NewInt64Coin(testDenom, 1000)).
		Return(math.NewInt(1000), nil)

	resp, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:      sender,
		Receiver:     receiver,
		Token:        testDenom,
		Amount:       math.NewInt(1000),
		StartTime:    1000,
		EndTime:      2000,
		VaultAddress: vault,
	})
	require.NoError(t, err)

	// the vault earned 10% yield; cancellation redeems every share and the
	// surplus goes back to the sender
	mocks.VaultKeeper.EXPECT().
		Redeem(gomock.Any(), vault, types.ModuleName, testDenom, math.NewInt(1000)).
		Return(sdk.NewInt64Coin(testDenom, 1100), nil)

	cancelCtx := ctx.WithBlockTime(time.Unix(1400, 0))
	cancelResp, err := ms.CancelStream(cancelCtx, &types.MsgCancelStream{Creator: sender, StreamId: resp.StreamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), cancelResp.ToReceiver)
	require.Equal(t, math.NewInt(600), cancelResp.ToSender)

	require.True(t, k.GetVaultShares(ctx, resp.StreamId).IsZero())
}

func TestWithdrawFromVaultStreamPaysYield(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	vault := sample.AccAddress()
	require.NoError(t, k.SetParams(ctx, types.NewParams([]string{vault}, 1)))

	receiver := sample.AccAddress()

	mocks.VaultKeeper.EXPECT().
		Deposit(gomock.Any(), vault, types.ModuleName, sdk.NewInt64Coin(testDenom, 1000)).
		Return(math.NewInt(1000), nil)

	resp, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:      sample.AccAddress(),
		Receiver:     receiver,
		Token:        testDenom,
		Amount:       math.NewInt(1000),
		StartTime:    1000,
		EndTime:      2000,
		VaultAddress: vault,
	})
	require.NoError(t, err)

	// half the schedule vested, half the shares redeemed at a 10% premium
	mocks.VaultKeeper.EXPECT().
		Redeem(gomock.Any(), vault, types.ModuleName, testDenom, math.NewInt(500)).
		Return(sdk.NewInt64Coin(testDenom, 550), nil)

	midCtx := ctx.WithBlockTime(time.Unix(1500, 0))
	wResp, err := ms.Withdraw(midCtx, &types.MsgWithdraw{Creator: receiver, StreamId: resp.StreamId})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(550), wResp.Amount)

	require.Equal(t, math.NewInt(500), k.GetVaultShares(ctx, resp.StreamId))
}
