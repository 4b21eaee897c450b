package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// Keeper of the compute store. The keeper is the gateway between on-chain
// messages and the external evaluator cluster: it queues work, records what
// is outstanding, and routes delivered results to the module that asked.
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	// handlers routes successful results by circuit name. Registered once at
	// app wiring time, before the first block.
	handlers map[string]types.ResultHandler

	metrics *GatewayMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new compute Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:  key,
		cdc:       cdc,
		authority: authority,
		handlers:  make(map[string]types.ResultHandler),
		metrics:   NewGatewayMetrics(),
	}
}

// GetAuthority returns the address allowed to govern the module.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// RegisterHandler binds a result handler to a circuit name. Registering the
// same circuit twice is a wiring bug and panics at startup.
func (k *Keeper) RegisterHandler(circuit string, handler types.ResultHandler) {
	if circuit == "" {
		panic("compute: empty circuit name in handler registration")
	}
	if _, exists := k.handlers[circuit]; exists {
		panic("compute: duplicate handler registration for circuit " + circuit)
	}
	k.handlers[circuit] = handler
}

// getStore returns the KVStore for the compute module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// Logger returns a module-tagged logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
