package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/streampaynet/streampay/x/streampay/calculations"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	if stream.IsPaused {
		return nil, errorsmod.Wrapf(types.ErrStreamPaused, "stream %d", msg.StreamId)
	}
	if err := k.Authorize(ctx, OpWithdraw, msg.Creator, &stream); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	amount := calculations.Withdrawable(&stream, now)
	if amount.IsZero() {
		return nil, errorsmod.Wrapf(types.ErrInsufficientBalance, "stream %d", msg.StreamId)
	}

	receiverAddr, err := sdk.AccAddressFromBech32(stream.Receiver)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receiver address: %s", err)
	}

	memo := fmt.Sprintf("withdrawal from stream %d", msg.StreamId)
	paid, err := k.payOutFromStream(ctx, &stream, receiverAddr, amount, memo)
	if err != nil {
		return nil, err
	}

	stream.WithdrawnAmount = stream.WithdrawnAmount.Add(amount)
	k.SetStream(ctx, stream)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamWithdrawn,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyReceiver, stream.Receiver),
			sdk.NewAttribute(types.AttributeKeyAmount, paid.String()),
		),
	})

	k.Logger().Info("stream withdrawal",
		"stream_id", msg.StreamId,
		"receiver", stream.Receiver,
		"amount", paid.String(),
	)

	return &types.MsgWithdrawResponse{Amount: paid.Amount, Denom: paid.Denom}, nil
}
