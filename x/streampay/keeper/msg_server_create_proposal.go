package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) CreateProposal(goCtx context.Context, msg *types.MsgCreateProposal) (*types.MsgCreateProposalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	now := ctx.BlockTime().Unix()
	if msg.Deadline <= now {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "deadline %d is not in the future", msg.Deadline)
	}
	if msg.EndTime <= msg.StartTime {
		return nil, errorsmod.Wrapf(types.ErrInvalidTimeRange, "end time %d must be after start time %d", msg.EndTime, msg.StartTime)
	}

	proposal := types.StreamProposal{
		Sender:            msg.Creator,
		Receiver:          msg.Receiver,
		Token:             msg.Token,
		TotalAmount:       msg.TotalAmount,
		StartTime:         msg.StartTime,
		EndTime:           msg.EndTime,
		Approvers:         msg.Approvers,
		RequiredApprovals: msg.RequiredApprovals,
		Deadline:          msg.Deadline,
	}
	id := k.AppendProposal(ctx, proposal)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeProposalCreated,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeySender, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.TotalAmount.String()),
		),
	})

	k.Logger().Info("funding proposal created",
		"proposal_id", id,
		"sender", msg.Creator,
		"approvers", len(msg.Approvers),
		"threshold", msg.RequiredApprovals,
	)

	return &types.MsgCreateProposalResponse{ProposalId: id}, nil
}
