package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/x/compute/types"
)

func testAddr(seed string) string {
	return sdk.AccAddress([]byte(seed)).String()
}

// TestMsgDeliverResult_ValidateBasic tests the success/output coupling
func TestMsgDeliverResult_ValidateBasic(t *testing.T) {
	evaluator := testAddr("test_evaluator_addr")

	msg := types.NewMsgDeliverResult(evaluator, 1, true, []byte{1})
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgDeliverResult(evaluator, 1, false, nil)
	require.NoError(t, msg.ValidateBasic())

	// Success without output.
	msg = types.NewMsgDeliverResult(evaluator, 1, true, nil)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidArgument)

	// Abort carrying output.
	msg = types.NewMsgDeliverResult(evaluator, 1, false, []byte{1})
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidArgument)

	msg = types.NewMsgDeliverResult("not-bech32", 1, true, []byte{1})
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

// TestMsgRegisterEvaluator_ValidateBasic tests registration checks
func TestMsgRegisterEvaluator_ValidateBasic(t *testing.T) {
	authority := testAddr("gov_module_address__")
	evaluator := testAddr("test_evaluator_addr")

	msg := types.NewMsgRegisterEvaluator(authority, evaluator, "eval-1")
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgRegisterEvaluator(authority, evaluator, "")
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidArgument)

	msg = types.NewMsgRegisterEvaluator(authority, "not-bech32", "eval-1")
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

// TestMsgSetEvaluatorStatus_ValidateBasic tests status toggle checks
func TestMsgSetEvaluatorStatus_ValidateBasic(t *testing.T) {
	authority := testAddr("gov_module_address__")
	evaluator := testAddr("test_evaluator_addr")

	msg := types.NewMsgSetEvaluatorStatus(authority, evaluator, false)
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgSetEvaluatorStatus("not-bech32", evaluator, false)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

// TestMsgUpdateParams_ValidateBasic tests parameter update checks
func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := &types.MsgUpdateParams{
		Authority: testAddr("gov_module_address__"),
		Params:    types.DefaultParams(),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Params.MaxPayloadBytes = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidParams)
}
