package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) CreateStreamWithMilestones(goCtx context.Context, msg *types.MsgCreateStreamWithMilestones) (*types.MsgCreateStreamWithMilestonesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	total := math.ZeroInt()
	for _, milestone := range msg.Milestones {
		total = total.Add(milestone.Amount)
	}

	stream := types.Stream{
		Sender:             msg.Creator,
		Receiver:           msg.Receiver,
		Token:              msg.Token,
		TotalAmount:        total,
		StartTime:          msg.Milestones[0].Timestamp,
		EndTime:            msg.Milestones[len(msg.Milestones)-1].Timestamp,
		WithdrawnAmount:    math.ZeroInt(),
		IsSoulbound:        msg.IsSoulbound,
		ReceiptOwner:       msg.Receiver,
		DepositedPrincipal: total,
		Milestones:         msg.Milestones,
	}

	streamId, err := k.createEscrowedStream(ctx, stream)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateStreamWithMilestonesResponse{StreamId: streamId}, nil
}
