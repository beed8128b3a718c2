package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// SetReceipt stores the receipt minted for a stream
func (k Keeper) SetReceipt(ctx sdk.Context, receipt types.StreamReceipt) {
	store := k.storeService.OpenKVStore(ctx)
	bz := k.cdc.MustMarshal(&receipt)
	if err := store.Set(types.ReceiptKey(receipt.StreamId), bz); err != nil {
		panic(err)
	}
}

// GetReceipt retrieves the receipt minted for a stream
func (k Keeper) GetReceipt(ctx sdk.Context, streamId uint64) (types.StreamReceipt, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ReceiptKey(streamId))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.StreamReceipt{}, false
	}

	var receipt types.StreamReceipt
	k.cdc.MustUnmarshal(bz, &receipt)
	return receipt, true
}

// GetAllReceipts returns every stored receipt in stream id order
func (k Keeper) GetAllReceipts(ctx sdk.Context) []types.StreamReceipt {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.ReceiptKeyPrefix, storePrefixEnd(types.ReceiptKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var receipts []types.StreamReceipt
	for ; iterator.Valid(); iterator.Next() {
		var receipt types.StreamReceipt
		k.cdc.MustUnmarshal(iterator.Value(), &receipt)
		receipts = append(receipts, receipt)
	}
	return receipts
}
