package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/custody/types"
)

// Config controls how escrow movements are written to the audit log.
type Config struct {
	// DoubleEntry emits a debit and a credit line per coin moved.
	DoubleEntry bool
	// SimpleEntry emits a single fixed-width line per coin moved.
	SimpleEntry bool
}

// Keeper wraps the bank keeper so that every escrow movement carries a memo
// and lands in the audit log. It holds no state of its own.
type Keeper struct {
	logger     log.Logger
	bankKeeper types.BankKeeper
	config     Config
}

func NewKeeper(
	logger log.Logger,
	bankKeeper types.BankKeeper,
	config Config,
) Keeper {
	return Keeper{
		logger:     logger,
		bankKeeper: bankKeeper,
		config:     config,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(recipientModule, senderAddr.String(), coin, memo)
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(recipientAddr.String(), senderModule, coin, memo)
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, senderModule, recipientModule, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(recipientModule, senderModule, coin, memo)
	}
	return nil
}

func (k Keeper) logTransaction(to string, from string, coin sdk.Coin, memo string) {
	amount := coin.Amount.Int64()
	if k.config.DoubleEntry {
		k.Logger().Info("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", amount)
		k.Logger().Info("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", -amount)
	}
	if k.config.SimpleEntry {
		amountString := fmt.Sprintf("%d", amount)
		k.Logger().Info(fmt.Sprintf("TransactionEntry to=%-64s from=%-64s amount=%20s denom=%10s memo=%s", to, from, amountString, coin.Denom, memo))
	}
}
