package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// SetAdmin stores the bootstrap admin address
func (k Keeper) SetAdmin(ctx sdk.Context, admin string) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.AdminKey, []byte(admin)); err != nil {
		panic(err)
	}
}

// GetAdmin returns the bootstrap admin address, if the module was initialized
func (k Keeper) GetAdmin(ctx sdk.Context) (string, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.AdminKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// GrantRole records a (principal, role) membership
func (k Keeper) GrantRole(ctx sdk.Context, principal string, role types.Role) {
	store := k.storeService.OpenKVStore(ctx)
	grant := types.RoleGrant{Principal: principal, Role: role}
	bz := k.cdc.MustMarshal(&grant)
	if err := store.Set(types.RoleKey(role, principal), bz); err != nil {
		panic(err)
	}
}

// RevokeRole removes a (principal, role) membership. Revoking a grant that
// does not exist is a no-op.
func (k Keeper) RevokeRole(ctx sdk.Context, principal string, role types.Role) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Delete(types.RoleKey(role, principal)); err != nil {
		panic(err)
	}
}

// HasRole reports whether the principal holds the role. The bootstrap admin
// implicitly holds the admin role.
func (k Keeper) HasRole(ctx sdk.Context, principal string, role types.Role) bool {
	if role == types.Role_ROLE_ADMIN {
		if admin, ok := k.GetAdmin(ctx); ok && admin == principal {
			return true
		}
	}
	store := k.storeService.OpenKVStore(ctx)
	has, err := store.Has(types.RoleKey(role, principal))
	if err != nil {
		panic(err)
	}
	return has
}

// GetAllRoleGrants returns every explicit role grant
func (k Keeper) GetAllRoleGrants(ctx sdk.Context) []types.RoleGrant {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.RoleKeyPrefix, storePrefixEnd(types.RoleKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var grants []types.RoleGrant
	for ; iterator.Valid(); iterator.Next() {
		var grant types.RoleGrant
		k.cdc.MustUnmarshal(iterator.Value(), &grant)
		grants = append(grants, grant)
	}
	return grants
}
