package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) UnpauseStream(goCtx context.Context, msg *types.MsgUnpauseStream) (*types.MsgUnpauseStreamResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	if !stream.IsPaused {
		// Already in the target state, nothing to record.
		return &types.MsgUnpauseStreamResponse{}, nil
	}
	if err := k.Authorize(ctx, OpUnpause, msg.Creator, &stream); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	if now > stream.PausedTime {
		stream.TotalPausedDuration += now - stream.PausedTime
	}
	stream.IsPaused = false
	stream.PausedTime = 0
	k.SetStream(ctx, stream)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamUnpaused,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	})

	return &types.MsgUnpauseStreamResponse{}, nil
}
