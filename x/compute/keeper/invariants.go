package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// RegisterInvariants registers all compute module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "identity-index",
		IdentityIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "id-counter",
		IDCounterInvariant(k))
}

// AllInvariants runs all invariants of the compute module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := IdentityIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return IDCounterInvariant(k)(ctx)
	}
}

// IdentityIndexInvariant checks that every pending computation resolves back
// to itself through the identity index.
func IdentityIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IteratePendingComputations(ctx, func(pending types.PendingComputation) bool {
			indexedID, found := k.getIdentityIndex(ctx, pending.IdentityHash)
			if !found {
				broken = true
				msg = fmt.Sprintf("pending computation %d has no identity index entry", pending.Id)
				return true
			}
			if indexedID != pending.Id {
				broken = true
				msg = fmt.Sprintf("identity index maps to %d, pending record is %d", indexedID, pending.Id)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "identity-index", msg), broken
	}
}

// IDCounterInvariant checks that no pending computation carries an id at or
// above the next-id counter.
func IDCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		nextID := k.peekNextComputationID(ctx)
		k.IteratePendingComputations(ctx, func(pending types.PendingComputation) bool {
			if pending.Id >= nextID {
				broken = true
				msg = fmt.Sprintf("pending computation %d at or above next id %d", pending.Id, nextID)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "id-counter", msg), broken
	}
}
