package keeper

import (
	"testing"

	"cosmossdk.io/log"
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

	computekeeper "github.com/hoot-chain/hoot/x/compute/keeper"
	computetypes "github.com/hoot-chain/hoot/x/compute/types"
	quizkeeper "github.com/hoot-chain/hoot/x/quiz/keeper"
	quiztypes "github.com/hoot-chain/hoot/x/quiz/types"
)

// QuizFixture bundles the quiz keeper with the real keepers it depends on,
// all backed by a shared in-memory commit multistore.
type QuizFixture struct {
	Keeper        *quizkeeper.Keeper
	ComputeKeeper *computekeeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper
	Authority     sdk.AccAddress
	Ctx           sdk.Context
}

// QuizKeeper creates a test fixture for the quiz module. The compute keeper
// is real and has the quiz keeper registered for every quiz circuit, so tests
// can drive the full queue-and-callback path.
func QuizKeeper(t testing.TB) *QuizFixture {
	quizStoreKey := storetypes.NewKVStoreKey(quiztypes.StoreKey)
	computeStoreKey := storetypes.NewKVStoreKey(computetypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(quizStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(computeStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	computetypes.RegisterInterfaces(registry)
	quiztypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		quiztypes.ModuleName:       nil,
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

	computeKeeper := computekeeper.NewKeeper(
		cdc,
		computeStoreKey,
		authority.String(),
	)

	quizKeeper := quizkeeper.NewKeeper(
		cdc,
		quizStoreKey,
		bankKeeper,
		accountKeeper,
		computeKeeper,
		authority.String(),
	)

	for _, circuit := range quiztypes.Circuits() {
		computeKeeper.RegisterHandler(circuit, *quizKeeper)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, computeKeeper.SetParams(ctx, computetypes.DefaultParams()))
	require.NoError(t, quizKeeper.SetParams(ctx, quiztypes.DefaultParams()))

	return &QuizFixture{
		Keeper:        quizKeeper,
		ComputeKeeper: computeKeeper,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Authority:     authority,
		Ctx:           ctx,
	}
}

// FundAccount mints coins into the mint module account and moves them to addr.
func (f *QuizFixture) FundAccount(t testing.TB, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}
