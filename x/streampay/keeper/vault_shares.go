package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// SetVaultShares records the vault shares held on behalf of a stream.
func (k Keeper) SetVaultShares(ctx sdk.Context, streamId uint64, shares math.Int) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	if err := store.Set(types.VaultSharesKey(streamId), bz); err != nil {
		panic(err)
	}
}

// GetVaultShares returns the vault shares held on behalf of a stream.
func (k Keeper) GetVaultShares(ctx sdk.Context, streamId uint64) math.Int {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.VaultSharesKey(streamId))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// RemoveVaultShares deletes the share record for a stream.
func (k Keeper) RemoveVaultShares(ctx sdk.Context, streamId uint64) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Delete(types.VaultSharesKey(streamId)); err != nil {
		panic(err)
	}
}
