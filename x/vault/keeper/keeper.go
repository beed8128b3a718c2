package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/shopspring/decimal"

	"github.com/streampaynet/streampay/x/vault/types"
)

// Keeper prices vault shares against the vault account's live balance. A
// vault is a plain account address holding pooled principal; anyone may
// donate to it, which raises the redemption value of outstanding shares.
type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger
	bankKeeper   types.BankKeeper
}

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	bankKeeper types.BankKeeper,
) Keeper {
	return Keeper{
		storeService: storeService,
		logger:       logger,
		bankKeeper:   bankKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetTotalShares returns the shares outstanding against a vault for a denom
func (k Keeper) GetTotalShares(ctx context.Context, vaultAddr, denom string) math.Int {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.TotalSharesKey(vaultAddr, denom))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

func (k Keeper) setTotalShares(ctx context.Context, vaultAddr, denom string, shares math.Int) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	if err := store.Set(types.TotalSharesKey(vaultAddr, denom), bz); err != nil {
		panic(err)
	}
}

// Deposit moves principal from the depositing module into the vault account
// and mints shares at the current share price. The first deposit prices one
// share per unit of principal.
func (k Keeper) Deposit(ctx context.Context, vaultAddr string, fromModule string, principal sdk.Coin) (math.Int, error) {
	vault, err := sdk.AccAddressFromBech32(vaultAddr)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidVault, "%s", err)
	}

	assetsBefore := k.bankKeeper.GetBalance(ctx, vault, principal.Denom).Amount
	totalShares := k.GetTotalShares(ctx, vaultAddr, principal.Denom)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, fromModule, vault, sdk.NewCoins(principal)); err != nil {
		return math.Int{}, err
	}

	var minted math.Int
	if totalShares.IsZero() || assetsBefore.IsZero() {
		minted = principal.Amount
	} else {
		sharePrice := decimal.NewFromBigInt(assetsBefore.BigInt(), 0).
			Div(decimal.NewFromBigInt(totalShares.BigInt(), 0))
		minted = math.NewIntFromBigInt(
			decimal.NewFromBigInt(principal.Amount.BigInt(), 0).Div(sharePrice).Floor().BigInt(),
		)
	}

	k.setTotalShares(ctx, vaultAddr, principal.Denom, totalShares.Add(minted))

	k.Logger().Info("vault deposit",
		"vault", vaultAddr,
		"denom", principal.Denom,
		"principal", principal.Amount.String(),
		"shares_minted", minted.String(),
	)

	return minted, nil
}

// Redeem burns shares and pays the redeeming module their pro rata slice of
// the vault's current balance, which includes any donated yield.
func (k Keeper) Redeem(ctx context.Context, vaultAddr string, toModule string, denom string, shares math.Int) (sdk.Coin, error) {
	vault, err := sdk.AccAddressFromBech32(vaultAddr)
	if err != nil {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrInvalidVault, "%s", err)
	}

	totalShares := k.GetTotalShares(ctx, vaultAddr, denom)
	if shares.GT(totalShares) {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrInsufficientShares, "redeeming %s of %s shares", shares, totalShares)
	}

	assets := k.bankKeeper.GetBalance(ctx, vault, denom).Amount
	if assets.IsZero() {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrEmptyVault, "vault %s denom %s", vaultAddr, denom)
	}

	value := math.NewIntFromBigInt(
		decimal.NewFromBigInt(assets.BigInt(), 0).
			Mul(decimal.NewFromBigInt(shares.BigInt(), 0)).
			Div(decimal.NewFromBigInt(totalShares.BigInt(), 0)).
			Floor().BigInt(),
	)

	payout := sdk.NewCoin(denom, value)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, vault, toModule, sdk.NewCoins(payout)); err != nil {
		return sdk.Coin{}, err
	}

	k.setTotalShares(ctx, vaultAddr, denom, totalShares.Sub(shares))

	k.Logger().Info("vault redemption",
		"vault", vaultAddr,
		"denom", denom,
		"shares_burned", shares.String(),
		"payout", value.String(),
	)

	return payout, nil
}

// Donate moves coins from a donor into the vault without minting shares,
// raising the share price for every holder.
func (k Keeper) Donate(ctx context.Context, vaultAddr string, donor sdk.AccAddress, amt sdk.Coin) error {
	vault, err := sdk.AccAddressFromBech32(vaultAddr)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidVault, "%s", err)
	}

	if err := k.bankKeeper.SendCoins(ctx, donor, vault, sdk.NewCoins(amt)); err != nil {
		return err
	}

	k.Logger().Info("vault donation",
		"vault", vaultAddr,
		"donor", donor.String(),
		"amount", amt.String(),
	)

	return nil
}
