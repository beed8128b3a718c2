package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, ok := k.GetAdmin(ctx); ok {
		return nil, types.ErrAlreadyInitialized
	}

	k.SetAdmin(ctx, msg.Admin)

	// The bootstrap admin starts with every role so it can operate streams
	// before delegating to dedicated operators.
	k.Keeper.GrantRole(ctx, msg.Admin, types.Role_ROLE_ADMIN)
	k.Keeper.GrantRole(ctx, msg.Admin, types.Role_ROLE_PAUSER)
	k.Keeper.GrantRole(ctx, msg.Admin, types.Role_ROLE_TREASURY_MANAGER)

	k.Logger().Info("module initialized", "admin", msg.Admin)

	return &types.MsgInitializeResponse{}, nil
}
