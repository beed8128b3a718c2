package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

func (k msgServer) RevokeRole(goCtx context.Context, msg *types.MsgRevokeRole) (*types.MsgRevokeRoleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, ok := k.GetAdmin(ctx); !ok {
		return nil, types.ErrAdminNotSet
	}
	if !k.HasRole(ctx, msg.Creator, types.Role_ROLE_ADMIN) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s may not revoke roles", msg.Creator)
	}

	k.Keeper.RevokeRole(ctx, msg.Principal, msg.Role)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRoleRevoked,
			sdk.NewAttribute(types.AttributeKeyPrincipal, msg.Principal),
			sdk.NewAttribute(types.AttributeKeyRole, msg.Role.String()),
		),
	})

	return &types.MsgRevokeRoleResponse{}, nil
}
