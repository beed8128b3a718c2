package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) TransferReceiver(goCtx context.Context, msg *types.MsgTransferReceiver) (*types.MsgTransferReceiverResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	// The soulbound check comes before authorization so that callers cannot
	// probe whether they control a locked stream.
	if stream.IsSoulbound {
		return nil, errorsmod.Wrapf(types.ErrStreamIsSoulbound, "stream %d", msg.StreamId)
	}
	if err := k.Authorize(ctx, OpTransferReceiver, msg.Creator, &stream); err != nil {
		return nil, err
	}

	stream.Receiver = msg.NewReceiver
	stream.ReceiptOwner = msg.NewReceiver
	k.SetStream(ctx, stream)

	if receipt, ok := k.GetReceipt(ctx, msg.StreamId); ok {
		receipt.Owner = msg.NewReceiver
		k.SetReceipt(ctx, receipt)
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeReceiverTransferred,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyNewReceiver, msg.NewReceiver),
		),
	})

	return &types.MsgTransferReceiverResponse{}, nil
}
