package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// createEscrowedStream moves the stream's total amount from the sender into
// custody, deposits vault-backed principal, assigns the next id, mints the
// receipt and emits the creation events. The caller is responsible for
// validating the schedule.
func (k Keeper) createEscrowedStream(ctx sdk.Context, stream types.Stream) (uint64, error) {
	senderAddr, err := sdk.AccAddressFromBech32(stream.Sender)
	if err != nil {
		return 0, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	amount := sdk.NewCoin(stream.Token, stream.TotalAmount)
	spendable := k.bankKeeper.SpendableCoins(ctx, senderAddr)
	if !spendable.IsAllGTE(sdk.NewCoins(amount)) {
		return 0, errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "sender %s cannot fund %s", stream.Sender, amount)
	}

	if stream.VaultAddress != "" {
		if !k.isAllowedVault(ctx, stream.VaultAddress) {
			return 0, errorsmod.Wrapf(types.ErrVaultNotAllowed, "vault %s", stream.VaultAddress)
		}
	}

	memo := fmt.Sprintf("stream escrow from %s to %s", stream.Sender, stream.Receiver)
	if err := k.custodyKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, sdk.NewCoins(amount), memo); err != nil {
		return 0, errorsmod.Wrap(err, "failed to escrow stream funds")
	}

	streamId := k.AppendStream(ctx, stream)

	if stream.VaultAddress != "" {
		shares, err := k.vaultKeeper.Deposit(ctx, stream.VaultAddress, types.ModuleName, amount)
		if err != nil {
			return 0, errorsmod.Wrap(err, "failed to deposit stream principal into vault")
		}
		k.SetVaultShares(ctx, streamId, shares)
	}

	k.SetReceipt(ctx, types.StreamReceipt{
		StreamId: streamId,
		Owner:    stream.Receiver,
		MintedAt: ctx.BlockTime().Unix(),
	})

	events := sdk.Events{
		sdk.NewEvent(
			types.EventTypeStreamCreated,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", streamId)),
			sdk.NewAttribute(types.AttributeKeySender, stream.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, stream.Receiver),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	}
	if stream.IsSoulbound {
		k.AppendSoulboundStream(ctx, streamId)
		events = append(events, sdk.NewEvent(
			types.EventTypeSoulboundLocked,
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", streamId)),
			sdk.NewAttribute(types.AttributeKeyReceiver, stream.Receiver),
		))
	}
	ctx.EventManager().EmitEvents(events)

	k.Logger().Info("stream created",
		"stream_id", streamId,
		"sender", stream.Sender,
		"receiver", stream.Receiver,
		"amount", amount.String(),
		"soulbound", stream.IsSoulbound,
	)

	return streamId, nil
}

// payOutFromStream releases coins for a stream payout. Vault-backed streams
// redeem shares proportional to the scheduled amount; any redemption surplus
// above the scheduled amount is yield and follows the principal.
func (k Keeper) payOutFromStream(ctx sdk.Context, stream *types.Stream, recipient sdk.AccAddress, amount math.Int, memo string) (sdk.Coin, error) {
	if stream.VaultAddress != "" {
		remaining := stream.TotalAmount.Sub(stream.WithdrawnAmount)
		shares := k.GetVaultShares(ctx, stream.Id)
		sharesToRedeem := shares.Mul(amount).Quo(remaining)

		redeemed, err := k.vaultKeeper.Redeem(ctx, stream.VaultAddress, types.ModuleName, stream.Token, sharesToRedeem)
		if err != nil {
			return sdk.Coin{}, errorsmod.Wrap(err, "failed to redeem vault shares")
		}
		k.SetVaultShares(ctx, stream.Id, shares.Sub(sharesToRedeem))

		if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(redeemed), memo); err != nil {
			return sdk.Coin{}, err
		}
		return redeemed, nil
	}

	paid := sdk.NewCoin(stream.Token, amount)
	if err := k.custodyKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(paid), memo); err != nil {
		return sdk.Coin{}, err
	}
	return paid, nil
}

func (k Keeper) isAllowedVault(ctx sdk.Context, vaultAddr string) bool {
	for _, allowed := range k.GetParams(ctx).AllowedVaults {
		if allowed == vaultAddr {
			return true
		}
	}
	return false
}
