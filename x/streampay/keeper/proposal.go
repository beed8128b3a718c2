package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// GetProposalCount returns the number of proposals ever created
func (k Keeper) GetProposalCount(ctx sdk.Context) uint64 {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ProposalCountKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetProposalCount sets the proposal id counter
func (k Keeper) SetProposalCount(ctx sdk.Context, count uint64) {
	store := k.storeService.OpenKVStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	if err := store.Set(types.ProposalCountKey, bz); err != nil {
		panic(err)
	}
}

// AppendProposal assigns the next id to the proposal, stores it and returns
// the id. Ids start at one.
func (k Keeper) AppendProposal(ctx sdk.Context, proposal types.StreamProposal) uint64 {
	count := k.GetProposalCount(ctx) + 1
	proposal.Id = count
	k.SetProposal(ctx, proposal)
	k.SetProposalCount(ctx, count)
	return count
}

// SetProposal stores a proposal under its id
func (k Keeper) SetProposal(ctx sdk.Context, proposal types.StreamProposal) {
	store := k.storeService.OpenKVStore(ctx)
	bz := k.cdc.MustMarshal(&proposal)
	if err := store.Set(types.ProposalKey(proposal.Id), bz); err != nil {
		panic(err)
	}
}

// GetProposal retrieves a proposal by id
func (k Keeper) GetProposal(ctx sdk.Context, proposalId uint64) (types.StreamProposal, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ProposalKey(proposalId))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.StreamProposal{}, false
	}

	var proposal types.StreamProposal
	k.cdc.MustUnmarshal(bz, &proposal)
	return proposal, true
}

// GetAllProposals returns every stored proposal in id order
func (k Keeper) GetAllProposals(ctx sdk.Context) []types.StreamProposal {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.ProposalKeyPrefix, storePrefixEnd(types.ProposalKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var proposals []types.StreamProposal
	for ; iterator.Valid(); iterator.Next() {
		var proposal types.StreamProposal
		k.cdc.MustUnmarshal(iterator.Value(), &proposal)
		proposals = append(proposals, proposal)
	}
	return proposals
}
