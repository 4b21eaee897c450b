package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// TestGenesisState_Validate tests the compute genesis checks
func TestGenesisState_Validate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	pending := types.PendingComputation{
		Id:           1,
		IdentityHash: validRequest().IdentityHash(),
		Circuit:      "validate_answer",
		Requester:    testAddr("test_requester_addr"),
	}

	gs := types.GenesisState{
		Params:              types.DefaultParams(),
		Evaluators:          []types.Evaluator{{Address: testAddr("test_evaluator_addr"), Active: true}},
		PendingComputations: []types.PendingComputation{pending},
		NextComputationId:   2,
	}
	require.NoError(t, gs.Validate())

	// Pending id at or above the counter.
	bad := gs
	bad.NextComputationId = 1
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidGenesis)

	// Duplicate pending ids.
	bad = gs
	bad.PendingComputations = []types.PendingComputation{pending, pending}
	bad.NextComputationId = 3
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidGenesis)

	// Duplicate identity hashes on distinct ids.
	second := pending
	second.Id = 2
	bad = gs
	bad.PendingComputations = []types.PendingComputation{pending, second}
	bad.NextComputationId = 3
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidGenesis)

	// Missing identity hash.
	third := pending
	third.IdentityHash = nil
	bad = gs
	bad.PendingComputations = []types.PendingComputation{third}
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidGenesis)

	// Duplicate evaluators.
	bad = gs
	bad.Evaluators = append(bad.Evaluators, bad.Evaluators[0])
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidGenesis)
}
