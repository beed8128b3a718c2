package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/streampaynet/streampay/x/streampay/calculations"
	"github.com/streampaynet/streampay/x/streampay/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Stream(goCtx context.Context, req *types.QueryStreamRequest) (*types.QueryStreamResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	stream, found := k.GetStream(ctx, req.StreamId)
	if !found {
		return nil, status.Error(codes.NotFound, "stream not found")
	}

	now := ctx.BlockTime().Unix()
	unlocked := calculations.Unlocked(&stream, now)
	withdrawable := calculations.Withdrawable(&stream, now)

	return &types.QueryStreamResponse{
		Stream:       stream,
		Unlocked:     unlocked,
		Withdrawable: withdrawable,
	}, nil
}

func (k Keeper) Streams(goCtx context.Context, req *types.QueryStreamsRequest) (*types.QueryStreamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	streamStore := prefix.NewStore(store, types.StreamKeyPrefix)

	var streams []types.Stream
	pageRes, err := query.Paginate(streamStore, req.Pagination, func(key []byte, value []byte) error {
		var stream types.Stream
		if err := k.cdc.Unmarshal(value, &stream); err != nil {
			return err
		}
		streams = append(streams, stream)
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryStreamsResponse{Streams: streams, Pagination: pageRes}, nil
}

func (k Keeper) Proposal(goCtx context.Context, req *types.QueryProposalRequest) (*types.QueryProposalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	proposal, found := k.GetProposal(ctx, req.ProposalId)
	if !found {
		return nil, status.Error(codes.NotFound, "proposal not found")
	}

	return &types.QueryProposalResponse{Proposal: proposal}, nil
}

func (k Keeper) Admin(goCtx context.Context, req *types.QueryAdminRequest) (*types.QueryAdminResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	admin, found := k.GetAdmin(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "admin not set")
	}

	return &types.QueryAdminResponse{Admin: admin}, nil
}

func (k Keeper) CheckRole(goCtx context.Context, req *types.QueryCheckRoleRequest) (*types.QueryCheckRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryCheckRoleResponse{HasRole: k.HasRole(ctx, req.Principal, req.Role)}, nil
}

func (k Keeper) SoulboundStreams(goCtx context.Context, req *types.QuerySoulboundStreamsRequest) (*types.QuerySoulboundStreamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	offset, limit := uint64(0), uint64(query.DefaultLimit)
	if req.Pagination != nil {
		if req.Pagination.Offset > 0 {
			offset = req.Pagination.Offset
		}
		if req.Pagination.Limit > 0 {
			limit = req.Pagination.Limit
		}
	}

	// The soulbound index is append-only and unbounded, so the walk pages
	// over matching ids rather than returning the whole set.
	var streams []types.Stream
	var matched uint64
	for _, id := range k.GetSoulboundStreamIds(ctx) {
		stream, found := k.GetStream(ctx, id)
		if !found {
			continue
		}
		if req.Receiver != "" && stream.Receiver != req.Receiver {
			continue
		}
		if matched >= offset && uint64(len(streams)) < limit {
			streams = append(streams, stream)
		}
		matched++
	}

	return &types.QuerySoulboundStreamsResponse{
		Streams:    streams,
		Pagination: &query.PageResponse{Total: matched},
	}, nil
}
