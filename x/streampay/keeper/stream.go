package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// GetStreamCount returns the number of streams ever created
func (k Keeper) GetStreamCount(ctx sdk.Context) uint64 {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.StreamCountKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetStreamCount sets the stream id counter
func (k Keeper) SetStreamCount(ctx sdk.Context, count uint64) {
	store := k.storeService.OpenKVStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	if err := store.Set(types.StreamCountKey, bz); err != nil {
		panic(err)
	}
}

// AppendStream assigns the next id to the stream, stores it and returns the
// id. Ids start at one, id zero is never a valid stream.
func (k Keeper) AppendStream(ctx sdk.Context, stream types.Stream) uint64 {
	count := k.GetStreamCount(ctx) + 1
	stream.Id = count
	k.SetStream(ctx, stream)
	k.SetStreamCount(ctx, count)
	return count
}

// SetStream stores a stream under its id
func (k Keeper) SetStream(ctx sdk.Context, stream types.Stream) {
	store := k.storeService.OpenKVStore(ctx)
	bz := k.cdc.MustMarshal(&stream)
	if err := store.Set(types.StreamKey(stream.Id), bz); err != nil {
		panic(err)
	}
}

// GetStream retrieves a stream by id
func (k Keeper) GetStream(ctx sdk.Context, streamId uint64) (types.Stream, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.StreamKey(streamId))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.Stream{}, false
	}

	var stream types.Stream
	k.cdc.MustUnmarshal(bz, &stream)
	return stream, true
}

// GetAllStreams returns every stored stream in id order
func (k Keeper) GetAllStreams(ctx sdk.Context) []types.Stream {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.StreamKeyPrefix, storePrefixEnd(types.StreamKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var streams []types.Stream
	for ; iterator.Valid(); iterator.Next() {
		var stream types.Stream
		k.cdc.MustUnmarshal(iterator.Value(), &stream)
		streams = append(streams, stream)
	}
	return streams
}

// storePrefixEnd returns the end of the iteration range for a prefix
func storePrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
