package streampay

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/keeper"
	"github.com/streampaynet/streampay/x/streampay/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Admin != "" {
		k.SetAdmin(ctx, genState.Admin)
	}

	for _, stream := range genState.Streams {
		k.SetStream(ctx, stream)
		if stream.IsSoulbound {
			k.AppendSoulboundStream(ctx, stream.Id)
		}
	}
	k.SetStreamCount(ctx, genState.StreamCount)

	for _, proposal := range genState.Proposals {
		k.SetProposal(ctx, proposal)
	}
	k.SetProposalCount(ctx, genState.ProposalCount)

	for _, receipt := range genState.Receipts {
		k.SetReceipt(ctx, receipt)
	}

	for _, grant := range genState.RoleGrants {
		k.GrantRole(ctx, grant.Principal, grant.Role)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	if admin, ok := k.GetAdmin(ctx); ok {
		genesis.Admin = admin
	}

	genesis.Streams = k.GetAllStreams(ctx)
	genesis.StreamCount = k.GetStreamCount(ctx)

	genesis.Proposals = k.GetAllProposals(ctx)
	genesis.ProposalCount = k.GetProposalCount(ctx)

	genesis.Receipts = k.GetAllReceipts(ctx)
	genesis.RoleGrants = k.GetAllRoleGrants(ctx)

	return genesis
}
