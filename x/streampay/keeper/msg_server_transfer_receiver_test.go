package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func TestTransferReceiver(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	newReceiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sender, sample.AccAddress(), 1000, 1000, 2000)

	_, err := ms.TransferReceiver(ctx, &types.MsgTransferReceiver{
		Creator:     sender,
		StreamId:    streamId,
		NewReceiver: newReceiver,
	})
	require.NoError(t, err)

	stream, _ := k.GetStream(ctx, streamId)
	require.Equal(t, newReceiver, stream.Receiver)
	require.Equal(t, newReceiver, stream.ReceiptOwner)

	receipt, found := k.GetReceipt(ctx, streamId)
	require.True(t, found)
	require.Equal(t, newReceiver, receipt.Owner)
}

func TestTransferReceiverOnlySender(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	receiver := sample.AccAddress()
	streamId := createStream(t, ms, ctx, sample.AccAddress(), receiver, 1000, 1000, 2000)

	// the receiver cannot reassign their own stream
	_, err := ms.TransferReceiver(ctx, &types.MsgTransferReceiver{
		Creator:     receiver,
		StreamId:    streamId,
		NewReceiver: sample.AccAddress(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestTransferSoulboundStream(t *testing.T) {
	_, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	resp, err := ms.CreateStream(ctx, &types.MsgCreateStream{
		Creator:     sender,
		Receiver:    sample.AccAddress(),
		Token:       testDenom,
		Amount:      math.NewInt(1000),
		StartTime:   1000,
		EndTime:     2000,
		IsSoulbound: true,
	})
	require.NoError(t, err)

	// rejected even for the sender, who would otherwise be authorized
	_, err = ms.TransferReceiver(ctx, &types.MsgTransferReceiver{
		Creator:     sender,
		StreamId:    resp.StreamId,
		NewReceiver: sample.AccAddress(),
	})
	require.ErrorIs(t, err, types.ErrStreamIsSoulbound)

	// the soulbound rejection fires even for callers with no claim on the
	// stream, ahead of the authorization check
	_, err = ms.TransferReceiver(ctx, &types.MsgTransferReceiver{
		Creator:     sample.AccAddress(),
		StreamId:    resp.StreamId,
		NewReceiver: sample.AccAddress(),
	})
	require.ErrorIs(t, err, types.ErrStreamIsSoulbound)
}
