package streampay_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/streampaynet/streampay/testutil/keeper"
	"github.com/streampaynet/streampay/testutil/sample"
	streampay "github.com/streampaynet/streampay/x/streampay/module"
	"github.com/streampaynet/streampay/x/streampay/types"
)

func TestGenesis(t *testing.T) {
	admin := sample.AccAddress()
	sender := sample.AccAddress()
	receiver := sample.AccAddress()

	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		Admin:  admin,
		Streams: []types.Stream{
			{
				Id:                 1,
				Sender:             sender,
				Receiver:           receiver,
				Token:              "ustream",
				TotalAmount:        math.NewInt(1000),
				StartTime:          1000,
				EndTime:            2000,
				WithdrawnAmount:    math.NewInt(250),
				DepositedPrincipal: math.NewInt(1000),
				ReceiptOwner:       receiver,
				IsSoulbound:        true,
			},
		},
		StreamCount: 1,
		Proposals: []types.StreamProposal{
			{
				Id:                1,
				Sender:            sender,
				Receiver:          receiver,
				Token:             "ustream",
				TotalAmount:       math.NewInt(500),
				StartTime:         3000,
				EndTime:           4000,
				Approvers:         []string{admin},
				RequiredApprovals: 1,
				Deadline:          2500,
			},
		},
		ProposalCount: 1,
		Receipts: []types.StreamReceipt{
			{StreamId: 1, Owner: receiver, MintedAt: 900},
		},
		RoleGrants: []types.RoleGrant{
			{Principal: sender, Role: types.Role_ROLE_PAUSER},
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.StreampayKeeper(t)

	streampay.InitGenesis(ctx, k, genesisState)
	got := streampay.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.Equal(t, genesisState.Admin, got.Admin)
	require.Equal(t, genesisState.Streams, got.Streams)
	require.Equal(t, genesisState.StreamCount, got.StreamCount)
	require.Equal(t, genesisState.Proposals, got.Proposals)
	require.Equal(t, genesisState.ProposalCount, got.ProposalCount)
	require.Equal(t, genesisState.Receipts, got.Receipts)
	require.Equal(t, genesisState.RoleGrants, got.RoleGrants)

	// the soulbound index is rebuilt from the imported streams
	require.Equal(t, []uint64{1}, k.GetSoulboundStreamIds(ctx))
	require.True(t, k.HasRole(ctx, sender, types.Role_ROLE_PAUSER))
}
