package keeper

import (
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// RegisterEvaluator adds a new evaluator to the registry. Only the chain
// authority may register; the new entry starts active.
func (k Keeper) RegisterEvaluator(ctx sdk.Context, authority, address, moniker string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if _, found := k.GetEvaluator(ctx, address); found {
		return types.ErrEvaluatorExists.Wrap(address)
	}

	k.SetEvaluator(ctx, types.Evaluator{
		Address: address,
		Moniker: moniker,
		Active:  true,
	})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEvaluatorRegistered,
			sdk.NewAttribute(types.AttributeKeyEvaluator, address),
			sdk.NewAttribute(types.AttributeKeyMoniker, moniker),
		),
	)
	return nil
}

// SetEvaluatorStatus flips an evaluator's active flag. Deactivated
// evaluators keep their stats but cannot deliver results.
func (k Keeper) SetEvaluatorStatus(ctx sdk.Context, authority, address string, active bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	evaluator, found := k.GetEvaluator(ctx, address)
	if !found {
		return types.ErrEvaluatorNotFound.Wrap(address)
	}

	evaluator.Active = active
	k.SetEvaluator(ctx, evaluator)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEvaluatorStatusSet,
			sdk.NewAttribute(types.AttributeKeyEvaluator, address),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", active)),
		),
	)
	return nil
}

// GetEvaluator returns a registry entry by address.
func (k Keeper) GetEvaluator(ctx sdk.Context, address string) (types.Evaluator, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.EvaluatorKey(address))
	if bz == nil {
		return types.Evaluator{}, false
	}
	var evaluator types.Evaluator
	if err := json.Unmarshal(bz, &evaluator); err != nil {
		panic(fmt.Sprintf("compute: corrupt evaluator record %s: %v", address, err))
	}
	return evaluator, true
}

// SetEvaluator stores a registry entry.
func (k Keeper) SetEvaluator(ctx sdk.Context, evaluator types.Evaluator) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(evaluator)
	if err != nil {
		panic(fmt.Sprintf("compute: marshal evaluator %s: %v", evaluator.Address, err))
	}
	store.Set(types.EvaluatorKey(evaluator.Address), bz)
}

// IterateEvaluators walks the registry. The callback returns true to stop.
func (k Keeper) IterateEvaluators(ctx sdk.Context, cb func(types.Evaluator) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.EvaluatorKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var evaluator types.Evaluator
		if err := json.Unmarshal(iterator.Value(), &evaluator); err != nil {
			panic(fmt.Sprintf("compute: corrupt evaluator record: %v", err))
		}
		if cb(evaluator) {
			break
		}
	}
}
