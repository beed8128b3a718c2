package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/streampaynet/streampay/x/streampay/keeper"
	"github.com/streampaynet/streampay/x/streampay/types"
)

// StreampayMocks holds all the mock keepers for testing
type StreampayMocks struct {
	AccountKeeper *MockAccountKeeper
	BankKeeper    *MockBankKeeper
	CustodyKeeper *MockCustodyKeeper
	VaultKeeper   *MockVaultKeeper
}

func StreampayKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := StreampayKeeperReturningMocks(t)
	return k, ctx
}

func StreampayKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, StreampayMocks) {
	ctrl := gomock.NewController(t)
	mocks := StreampayMocks{
		AccountKeeper: NewMockAccountKeeper(ctrl),
		BankKeeper:    NewMockBankKeeper(ctrl),
		CustodyKeeper: NewMockCustodyKeeper(ctrl),
		VaultKeeper:   NewMockVaultKeeper(ctrl),
	}

	k, ctx := StreampayKeeperWithMocks(t, mocks)
	return k, ctx, mocks
}

func StreampayKeeperWithMocks(t testing.TB, mocks StreampayMocks) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		mocks.AccountKeeper,
		mocks.BankKeeper,
		mocks.CustodyKeeper,
		mocks.VaultKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1000, 0)}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}

// ExpectAnyCustody relaxes the custody mock for tests that do not assert on
// escrow movements.
func (m *MockCustodyKeeper) ExpectAnyCustody() {
	m.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

// ExpectAnySpendable makes every account look funded.
func (m *MockBankKeeper) ExpectAnySpendable(coins sdk.Coins) {
	m.EXPECT().SpendableCoins(gomock.Any(), gomock.Any()).Return(coins).AnyTimes()
}
