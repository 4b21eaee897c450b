package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/compute/types"
)

// TestGenesis_RoundTrip tests that exported state seeds a fresh keeper
// identically, identity index included
func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	evaluator := sdk.AccAddress([]byte("test_evaluator_addr")).String()
	require.NoError(t, k.RegisterEvaluator(ctx, k.GetAuthority(), evaluator, "eval-1"))

	first := validQueueRequest()
	id1, err := k.Queue(ctx, first)
	require.NoError(t, err)

	second := validQueueRequest()
	second.QuestionIndex = 3
	_, err = k.Queue(ctx, second)
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.Len(t, exported.PendingComputations, 2)
	require.Len(t, exported.Evaluators, 1)
	require.Equal(t, uint64(3), exported.NextComputationId)

	fresh, freshCtx := testkeeper.ComputeKeeper(t)
	fresh.InitGenesis(freshCtx, *exported)

	// The identity index must be rebuilt: re-queueing returns the old id.
	again, err := fresh.Queue(freshCtx, first)
	require.NoError(t, err)
	require.Equal(t, id1, again)

	reexported := fresh.ExportGenesis(freshCtx)
	require.Equal(t, exported, reexported)
}

// TestGenesis_RejectsInvalidState tests that init panics on bad genesis
func TestGenesis_RejectsInvalidState(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	genState := types.DefaultGenesis()
	genState.PendingComputations = []types.PendingComputation{
		{Id: 5, IdentityHash: []byte("x"), Circuit: "validate_answer", Requester: "r"},
	}
	genState.NextComputationId = 1

	require.Panics(t, func() {
		k.InitGenesis(ctx, *genState)
	})
}
