package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// InitGenesis initializes the compute module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("compute: invalid genesis: %v", err))
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, evaluator := range genState.Evaluators {
		k.SetEvaluator(ctx, evaluator)
	}
	for _, pending := range genState.PendingComputations {
		k.SetPendingComputation(ctx, pending)
		k.setIdentityIndex(ctx, pending.IdentityHash, pending.Id)
	}
	k.setNextComputationID(ctx, genState.NextComputationId)
}

// ExportGenesis exports the compute module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:            k.GetParams(ctx),
		NextComputationId: k.peekNextComputationID(ctx),
	}
	k.IterateEvaluators(ctx, func(evaluator types.Evaluator) bool {
		genState.Evaluators = append(genState.Evaluators, evaluator)
		return false
	})
	k.IteratePendingComputations(ctx, func(pending types.PendingComputation) bool {
		genState.PendingComputations = append(genState.PendingComputations, pending)
		return false
	})
	return genState
}
