package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected interface for the Account module.
type AccountKeeper interface {
	GetAccount(context.Context, sdk.AccAddress) sdk.AccountI // only used for simulation
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SpendableCoins(context.Context, sdk.AccAddress) sdk.Coins
}

// CustodyKeeper moves escrowed balances between accounts and the module,
// logging every movement with a memo.
type CustodyKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
}

// VaultKeeper defines the expected interface for the external yield vault.
// Deposits principal in exchange for shares; redeeming shares may return more
// principal than was deposited.
type VaultKeeper interface {
	Deposit(ctx context.Context, vaultAddr string, fromModule string, principal sdk.Coin) (shares math.Int, err error)
	Redeem(ctx context.Context, vaultAddr string, toModule string, denom string, shares math.Int) (principal sdk.Coin, err error)
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
