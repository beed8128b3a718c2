package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) CreateStream(goCtx context.Context, msg *types.MsgCreateStream) (*types.MsgCreateStreamResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	params := k.GetParams(ctx)
	duration := msg.EndTime - msg.StartTime
	if duration <= 0 || duration < int64(params.MinStreamDuration) {
		return nil, errorsmod.Wrapf(types.ErrInvalidTimeRange, "stream must run for at least %d seconds", params.MinStreamDuration)
	}

	stream := types.Stream{
		Sender:             msg.Creator,
		Receiver:           msg.Receiver,
		Token:              msg.Token,
		TotalAmount:        msg.Amount,
		StartTime:          msg.StartTime,
		EndTime:            msg.EndTime,
		WithdrawnAmount:    math.ZeroInt(),
		CurveType:          msg.CurveType,
		IsSoulbound:        msg.IsSoulbound,
		ReceiptOwner:       msg.Receiver,
		VaultAddress:       msg.VaultAddress,
		DepositedPrincipal: msg.Amount,
		PegUsd:             msg.PegUsd,
		OracleFeed:         msg.OracleFeed,
	}

	streamId, err := k.createEscrowedStream(ctx, stream)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateStreamResponse{StreamId: streamId}, nil
}
