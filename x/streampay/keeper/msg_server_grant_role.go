package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) GrantRole(goCtx context.Context, msg *types.MsgGrantRole) (*types.MsgGrantRoleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, ok := k.GetAdmin(ctx); !ok {
		return nil, types.ErrAdminNotSet
	}
	if !k.HasRole(ctx, msg.Creator, types.Role_ROLE_ADMIN) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s may not grant roles", msg.Creator)
	}

	k.Keeper.GrantRole(ctx, msg.Principal, msg.Role)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRoleGranted,
			sdk.NewAttribute(types.AttributeKeyPrincipal, msg.Principal),
			sdk.NewAttribute(types.AttributeKeyRole, msg.Role.String()),
		),
	})

	return &types.MsgGrantRoleResponse{}, nil
}
