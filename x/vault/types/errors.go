package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/vault module sentinel errors
var (
	ErrEmptyVault         = sdkerrors.Register(ModuleName, 1200, "vault holds no assets for denom")
	ErrInsufficientShares = sdkerrors.Register(ModuleName, 1201, "redeeming more shares than outstanding")
	ErrInvalidVault       = sdkerrors.Register(ModuleName, 1202, "invalid vault address")
)
