package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// AppendSoulboundStream adds a stream id to the append-only soulbound index.
func (k Keeper) AppendSoulboundStream(ctx sdk.Context, streamId uint64) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.SoulboundIndexKey)
	if err != nil {
		panic(err)
	}
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, streamId)
	if err := store.Set(types.SoulboundIndexKey, append(bz, idBz...)); err != nil {
		panic(err)
	}
}

// GetSoulboundStreamIds returns the ids of all soulbound streams in creation
// order.
func (k Keeper) GetSoulboundStreamIds(ctx sdk.Context) []uint64 {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.SoulboundIndexKey)
	if err != nil {
		panic(err)
	}

	ids := make([]uint64, 0, len(bz)/8)
	for i := 0; i+8 <= len(bz); i += 8 {
		ids = append(ids, binary.BigEndian.Uint64(bz[i:i+8]))
	}
	return ids
}
