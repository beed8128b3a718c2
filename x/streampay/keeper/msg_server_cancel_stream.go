package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/streampaynet/streampay/x/streampay/calculations"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) CancelStream(goCtx context.Context, msg *types.MsgCancelStream) (*types.MsgCancelStreamResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, msg.StreamId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrStreamNotFound, "stream %d", msg.StreamId)
	}
	if stream.Cancelled {
		return nil, types.ErrAlreadyCancelled
	}
	if err := k.Authorize(ctx, OpCancel, msg.Creator, &stream); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	unlocked := calculations.Unlocked(&stream, now)
	toReceiver := unlocked.Sub(stream.WithdrawnAmount)
	if toReceiver.IsNegative() {
		toReceiver = math.ZeroInt()
	}
	toSender := stream.TotalAmount.Sub(unlocked)

	receiverAddr, err := sdk.AccAddressFromBech32(stream.Receiver)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receiver address: %s", err)
	}
	senderAddr, err := sdk.AccAddressFromBech32(stream.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if stream.VaultAddress != "" {
		// Redeem everything still held for the stream; yield above the
		// remaining schedule goes back to the sender.
		shares := k.GetVaultShares(ctx, stream.Id)
		redeemed, err := k.vaultKeeper.Redeem(ctx, stream.VaultAddress, types.ModuleName, stream.Token, shares)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to redeem vault shares")
		}
		k.RemoveVaultShares(ctx, stream.Id)

		refund := redeemed.Amount.Sub(toReceiver)
		if refund.IsNegative() {
			refund = math.ZeroInt()
		}
		if toReceiver.IsPositive() {
			memo := fmt.Sprintf("cancellation payout for stream %d", msg.StreamId)
			if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiverAddr, sdk.NewCoins(sdk.NewCoin(stream.Token, toReceiver)), memo); err != nil {
				return nil, err
			}
		}
		if refund.IsPositive() {
			memo := fmt.Sprintf("cancellation refund for stream %d", msg.StreamId)
			if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, senderAddr, sdk.NewCoins(sdk.NewCoin(stream.Token, refund)), memo); err != nil {
				return nil, err
			}
		}
	} else {
		if toReceiver.IsPositive() {
			memo := fmt.Sprintf("cancellation payout for stream %d", msg.StreamId)
			if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiverAddr, sdk.NewCoins(sdk.NewCoin(stream.Token, toReceiver)), memo); err != nil {
				return nil, err
			}
		}
		if toSender.IsPositive() {
			memo := fmt.Sprintf("cancellation refund for stream %d", msg.StreamId)
			if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, senderAddr, sdk.NewCoins(sdk.NewCoin(stream.Token, toSender)), memo); err != nil {
				return nil, err
			}
		}
	}

	stream.Cancelled = true
	stream.WithdrawnAmount = unlocked
	k.SetStream(ctx, stream)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamCancelled,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", msg.StreamId)),
			sdk.NewAttribute(types.AttributeKeyToReceiver, toReceiver.String()),
			sdk.NewAttribute(types.AttributeKeyToSender, toSender.String()),
		),
	})

	k.Logger().Info("stream cancelled",
		"stream_id", msg.StreamId,
		"to_receiver", toReceiver.String(),
		"to_sender", toSender.String(),
	)

	return &types.MsgCancelStreamResponse{ToReceiver: toReceiver, ToSender: toSender}, nil
}
