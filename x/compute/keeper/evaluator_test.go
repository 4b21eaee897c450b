package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/compute/types"
)

// TestRegisterEvaluator_Valid tests successful registration
func TestRegisterEvaluator_Valid(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()

	require.NoError(t, k.RegisterEvaluator(ctx, k.GetAuthority(), addr, "eval-1"))

	evaluator, found := k.GetEvaluator(ctx, addr)
	require.True(t, found)
	require.Equal(t, addr, evaluator.Address)
	require.Equal(t, "eval-1", evaluator.Moniker)
	require.True(t, evaluator.Active)
}

// TestRegisterEvaluator_AuthorityOnly tests that only the chain authority may register
func TestRegisterEvaluator_AuthorityOnly(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()
	stranger := sdk.AccAddress([]byte("random_address")).String()

	err := k.RegisterEvaluator(ctx, stranger, addr, "eval-1")
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// TestRegisterEvaluator_Duplicate tests double registration
func TestRegisterEvaluator_Duplicate(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()

	require.NoError(t, k.RegisterEvaluator(ctx, k.GetAuthority(), addr, "eval-1"))
	err := k.RegisterEvaluator(ctx, k.GetAuthority(), addr, "eval-2")
	require.ErrorIs(t, err, types.ErrEvaluatorExists)
}

// TestSetEvaluatorStatus_TogglesActive tests the active flag round trip
func TestSetEvaluatorStatus_TogglesActive(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()
	require.NoError(t, k.RegisterEvaluator(ctx, k.GetAuthority(), addr, "eval-1"))

	require.NoError(t, k.SetEvaluatorStatus(ctx, k.GetAuthority(), addr, false))
	evaluator, found := k.GetEvaluator(ctx, addr)
	require.True(t, found)
	require.False(t, evaluator.Active)

	require.NoError(t, k.SetEvaluatorStatus(ctx, k.GetAuthority(), addr, true))
	evaluator, _ = k.GetEvaluator(ctx, addr)
	require.True(t, evaluator.Active)
}

// TestSetEvaluatorStatus_NotFound tests toggling an unknown address
func TestSetEvaluatorStatus_NotFound(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()

	err := k.SetEvaluatorStatus(ctx, k.GetAuthority(), addr, false)
	require.ErrorIs(t, err, types.ErrEvaluatorNotFound)
}
