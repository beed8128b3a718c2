package keeper

import (
	"context"
	"fmt"
	"slices"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) ApproveProposal(goCtx context.Context, msg *types.MsgApproveProposal) (*types.MsgApproveProposalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	proposal, found := k.GetProposal(ctx, msg.ProposalId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrProposalNotFound, "proposal %d", msg.ProposalId)
	}
	if proposal.Executed {
		return nil, errorsmod.Wrapf(types.ErrProposalAlreadyExecuted, "proposal %d", msg.ProposalId)
	}

	now := ctx.BlockTime().Unix()
	if now > proposal.Deadline {
		return nil, errorsmod.Wrapf(types.ErrProposalExpired, "proposal %d expired at %d", msg.ProposalId, proposal.Deadline)
	}

	if !slices.Contains(proposal.Approvers, msg.Creator) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s is not an approver of proposal %d", msg.Creator, msg.ProposalId)
	}
	if slices.Contains(proposal.Approvals, msg.Creator) {
		return nil, errorsmod.Wrapf(types.ErrAlreadyApproved, "%s already approved proposal %d", msg.Creator, msg.ProposalId)
	}

	proposal.Approvals = append(proposal.Approvals, msg.Creator)

	approvalEvent := sdk.NewEvent(
		types.EventTypeProposalApproved,
		sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", msg.ProposalId)),
		sdk.NewAttribute(types.AttributeKeyApprover, msg.Creator),
		sdk.NewAttribute(types.AttributeKeyApprovals, fmt.Sprintf("%d", len(proposal.Approvals))),
	)

	if uint64(len(proposal.Approvals)) < proposal.RequiredApprovals {
		k.SetProposal(ctx, proposal)
		ctx.EventManager().EmitEvents(sdk.Events{approvalEvent})
		return &types.MsgApproveProposalResponse{}, nil
	}

	// Threshold reached. Fund the stream from the proposal sender in the
	// same transaction as the final approval.
	stream := types.Stream{
		Sender:             proposal.Sender,
		Receiver:           proposal.Receiver,
		Token:              proposal.Token,
		TotalAmount:        proposal.TotalAmount,
		StartTime:          proposal.StartTime,
		EndTime:            proposal.EndTime,
		WithdrawnAmount:    math.ZeroInt(),
		CurveType:          types.CurveType_CURVE_TYPE_LINEAR,
		DepositedPrincipal: proposal.TotalAmount,
		ReceiptOwner:       proposal.Receiver,
	}
	streamId, err := k.createEscrowedStream(ctx, stream)
	if err != nil {
		return nil, err
	}

	proposal.Executed = true
	k.SetProposal(ctx, proposal)

	// The stream is created before the approval event goes out, so indexers
	// that follow approvals always see the executed state it refers to.
	ctx.EventManager().EmitEvents(sdk.Events{
		approvalEvent,
		sdk.NewEvent(
			types.EventTypeProposalExecuted,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", msg.ProposalId)),
			sdk.NewAttribute(types.AttributeKeyStreamId, fmt.Sprintf("%d", streamId)),
		),
	})

	k.Logger().Info("proposal executed",
		"proposal_id", msg.ProposalId,
		"stream_id", streamId,
	)

	return &types.MsgApproveProposalResponse{Executed: true, StreamId: streamId}, nil
}
