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

func (k msgServer) TopUpStream(goCtx context.Context, msg *types.MsgTopUpStream) (*types.MsgTopUpStreamResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	if len(stream.Milestones) > 0 {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "milestone streams cannot be topped up")
	}

	now := ctx.BlockTime().Unix()
	duration := stream.EndTime - stream.StartTime
	if calculations.EffectiveElapsed(&stream, now) >= duration {
		return nil, errorsmod.Wrapf(types.ErrStreamEnded, "stream %d", msg.StreamId)
	}
	if err := k.Authorize(ctx, OpTopUp, msg.Creator, &stream); err != nil {
		return nil, err
	}

	extension, ok := calculations.StreamExtension(stream.TotalAmount, duration, msg.Amount)
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrZeroFlowRate, "stream %d", msg.StreamId)
	}

	creatorAddr, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	amount := sdk.NewCoin(stream.Token, msg.Amount)
	memo := fmt.Sprintf("top-up for stream %d", msg.StreamId)
	if err := k.custodyKeeper.SendCoinsFromAccountToModule(ctx, creatorAddr, types.ModuleName, sdk.NewCoins(amount), memo); err != nil {
		return nil, errorsmod.Wrap(err, "failed to escrow top-up")
	}

	if stream.VaultAddress != "" {
		shares, err := k.vaultKeeper.Deposit(ctx, stream.VaultAddress, types.ModuleName, amount)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to deposit top-up into vault")
		}
		k.SetVaultShares(ctx, stream.Id, k.GetVaultShares(ctx, stream.Id).Add(shares))
		stream.DepositedPrincipal = stream.DepositedPrincipal.Add(msg.Amount)
	}

	stream.TotalAmount = stream.TotalAmount.Add(msg.Amount)
	stream.EndTime += extension
	k.SetStream(ctx, stream)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamToppedUp,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNewEndTime, fmt.Sprintf("%d", stream.EndTime)),
		),
	})

	k.Logger().Info("stream topped up",
		"stream_id", msg.StreamId,
		"amount", amount.String(),
		"new_end_time", stream.EndTime,
	)

	return &types.MsgTopUpStreamResponse{NewEndTime: stream.EndTime}, nil
}
