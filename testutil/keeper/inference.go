package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/infera-chain/infera/x/inference/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

// InferenceFixture bundles the inference keeper with the real auth and bank
// keepers backing it, so tests can fund accounts and check balances.
type InferenceFixture struct {
	Keeper        *keeper.Keeper
	Ctx           sdk.Context
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper
	Authority     string
}

// InferenceKeeper creates a test keeper for the inference module backed by
// real auth and bank keepers over an in-memory store.
func InferenceKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	f := NewInferenceFixture(t)
	return f.Keeper, f.Ctx
}

// NewInferenceFixture builds the full test fixture.
func NewInferenceFixture(t testing.TB) *InferenceFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           {authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		accountKeeper,
		bankKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0).UTC())

	return &InferenceFixture{
		Keeper:        k,
		Ctx:           ctx,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Authority:     authority.String(),
	}
}

// FundAccount mints coins and sends them to the given account.
func (f *InferenceFixture) FundAccount(t testing.TB, addr sdk.AccAddress, amount math.Int) {
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, amount))
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// Balance returns the account's balance in the stake denom.
func (f *InferenceFixture) Balance(t testing.TB, addr sdk.AccAddress) math.Int {
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	return f.BankKeeper.GetBalance(f.Ctx, addr, params.StakeDenom).Amount
}

// ModuleBalance returns the inference module account's balance.
func (f *InferenceFixture) ModuleBalance(t testing.TB) math.Int {
	return f.Balance(t, f.AccountKeeper.GetModuleAddress(types.ModuleName))
}
