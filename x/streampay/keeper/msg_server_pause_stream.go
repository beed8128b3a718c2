package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/calculations"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) PauseStream(goCtx context.Context, msg *types.MsgPauseStream) (*types.MsgPauseStreamResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	if stream.IsPaused {
		// Already in the target state, nothing to record.
		return &types.MsgPauseStreamResponse{}, nil
	}

	now := ctx.BlockTime().Unix()
	if calculations.EffectiveElapsed(&stream, now) >= stream.EndTime-stream.StartTime {
		return nil, errorsmod.Wrapf(types.ErrStreamEnded, "stream %d", msg.StreamId)
	}
	if err := k.Authorize(ctx, OpPause, msg.Creator, &stream); err != nil {
		return nil, err
	}

	stream.IsPaused = true
	stream.PausedTime = now
	k.SetStream(ctx, stream)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamPaused,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	})

	return &types.MsgPauseStreamResponse{}, nil
}
