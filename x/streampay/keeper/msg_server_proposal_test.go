package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func createProposal(t *testing.T, ms types.MsgServer, ctx sdk.Context, sender string, approvers []string, threshold uint64) uint64 {
	t.Helper()
	resp, err := ms.CreateProposal(ctx, &types.MsgCreateProposal{
		Creator:           sender,
		Receiver:          sample.AccAddress(),
		Token:             testDenom,
		TotalAmount:       math.NewInt(1000),
		StartTime:         2000,
		EndTime:           3000,
		Approvers:         approvers,
		RequiredApprovals: threshold,
		Deadline:          5000,
	})
	require.NoError(t, err)
	return resp.ProposalId
}

func TestCreateProposal(t *testing.T) {
	k, ms, ctx, _ := setupMsgServerWithMocks(t)

	sender := sample.AccAddress()
	approvers := []string{sample.AccAddress(), sample.AccAddress(), sample.AccAddress()}
	proposalId := createProposal(t, ms, ctx, sender, approvers, 2)
	require.Equal(t, uint64(1), proposalId)

	proposal, found := k.GetProposal(ctx, proposalId)
	require.True(t, found)
	require.Equal(t, sender, proposal.Sender)
	require.Equal(t, approvers, proposal.Approvers)
	require.Equal(t, uint64(2), proposal.RequiredApprovals)
	require.False(t, proposal.Executed)
	require.Empty(t, proposal.Approvals)
}

func TestCreateProposalDeadlineInPast(t *testing.T) {
	_, ms, ctx, _ := setupMsgServerWithMocks(t)

	_, err := ms.CreateProposal(ctx, &types.MsgCreateProposal{
		Creator:           sample.AccAddress(),
		Receiver:          sample.AccAddress(),
		Token:             testDenom,
		TotalAmount:       math.NewInt(1000),
		StartTime:         2000,
		EndTime:           3000,
		Approvers:         []string{sample.AccAddress()},
		RequiredApprovals: 1,
		Deadline:          500,
	})
	require.Error(t, err)
}

func TestApproveProposalBelowThreshold(t *testing.T) {
	k, ms, ctx, _ := setupMsgServerWithMocks(t)

	approvers := []string{sample.AccAddress(), sample.AccAddress()}
	proposalId := createProposal(t, ms, ctx, sample.AccAddress(), approvers, 2)

	resp, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approvers[0], ProposalId: proposalId})
	require.NoError(t, err)
	require.False(t, resp.Executed)

	proposal, _ := k.GetProposal(ctx, proposalId)
	require.Equal(t, []string{approvers[0]}, proposal.Approvals)
	require.False(t, proposal.Executed)
}

func TestApproveProposalExecutesAtThreshold(t *testing.T) {
	k, ms, ctx, mocks := setupMsgServerWithMocks(t)
	fundedMocks(mocks, 1_000_000)

	sender := sample.AccAddress()
	approvers := []string{sample.AccAddress(), sample.AccAddress(), sample.AccAddress()}
	proposalId := createProposal(t, ms, ctx, sender, approvers, 2)

	_, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approvers[0], ProposalId: proposalId})
	require.NoError(t, err)

	resp, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approvers[1], ProposalId: proposalId})
	require.NoError(t, err)
	require.True(t, resp.Executed)
	require.Equal(t, uint64(1), resp.StreamId)

	proposal, _ := k.GetProposal(ctx, proposalId)
	require.True(t, proposal.Executed)

	// the stream is funded by the proposal sender
	stream, found := k.GetStream(ctx, resp.StreamId)
	require.True(t, found)
	require.Equal(t, sender, stream.Sender)
	require.Equal(t, math.NewInt(1000), stream.TotalAmount)

	// further approvals bounce off the executed proposal
	_, err = ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approvers[2], ProposalId: proposalId})
	require.ErrorIs(t, err, types.ErrProposalAlreadyExecuted)

	// the creation event precedes the final approval event, so indexers
	// following approvals always see the stream it refers to
	lastCreated, lastApproved := -1, -1
	for i, ev := range ctx.EventManager().Events() {
		switch ev.Type {
		case types.EventTypeStreamCreated:
			lastCreated = i
		case types.EventTypeProposalApproved:
			lastApproved = i
		}
	}
	require.GreaterOrEqual(t, lastCreated, 0)
	require.Greater(t, lastApproved, lastCreated)
}

func TestApproveProposalNotAnApprover(t *testing.T) {
	_, ms, ctx, _ := setupMsgServerWithMocks(t)

	proposalId := createProposal(t, ms, ctx, sample.AccAddress(), []string{sample.AccAddress()}, 1)

	_, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: sample.AccAddress(), ProposalId: proposalId})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestApproveProposalTwice(t *testing.T) {
	_, ms, ctx, _ := setupMsgServerWithMocks(t)

	approver := sample.AccAddress()
	proposalId := createProposal(t, ms, ctx, sample.AccAddress(), []string{approver, sample.AccAddress()}, 2)

	_, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approver, ProposalId: proposalId})
	require.NoError(t, err)
	_, err = ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: approver, ProposalId: proposalId})
	require.ErrorIs(t, err, types.ErrAlreadyApproved)
}

func TestApproveProposalExpired(t *testing.T) {
	_, ms, ctx, _ := setupMsgServerWithMocks(t)

	approver := sample.AccAddress()
	proposalId := createProposal(t, ms, ctx, sample.AccAddress(), []string{approver}, 1)

	lateCtx := ctx.WithBlockTime(time.Unix(6000, 0))
	_, err := ms.ApproveProposal(lateCtx, &types.MsgApproveProposal{Creator: approver, ProposalId: proposalId})
	require.ErrorIs(t, err, types.ErrProposalExpired)
}

func TestApproveProposalNotFound(t *testing.T) {
	_, ms, ctx, _ := setupMsgServerWithMocks(t)

	_, err := ms.ApproveProposal(ctx, &types.MsgApproveProposal{Creator: sample.AccAddress(), ProposalId: 42})
	require.ErrorIs(t, err, types.ErrProposalNotFound)
}
