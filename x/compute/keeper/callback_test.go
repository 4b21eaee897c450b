package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/compute/keeper"
	"github.com/hoot-chain/hoot/x/compute/types"
)

// recordingHandler captures deliveries routed to it and can be told to fail.
type recordingHandler struct {
	deliveries []types.ResultDelivery
	err        error
}

func (h *recordingHandler) HandleComputationResult(_ sdk.Context, delivery types.ResultDelivery) error {
	if h.err != nil {
		return h.err
	}
	h.deliveries = append(h.deliveries, delivery)
	return nil
}

func setupEvaluator(t *testing.T, k *keeper.Keeper, ctx sdk.Context) string {
	t.Helper()
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()
	require.NoError(t, k.RegisterEvaluator(ctx, k.GetAuthority(), addr, "eval-1"))
	return addr
}

// TestDeliverResult_RoutesToHandler tests the success path end to end
func TestDeliverResult_RoutesToHandler(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	handler := &recordingHandler{}
	k.RegisterHandler("validate_answer", handler)
	evaluator := setupEvaluator(t, k, ctx)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	err = k.DeliverResult(ctx, evaluator, id, true, []byte{1})
	require.NoError(t, err)

	require.Len(t, handler.deliveries, 1)
	require.Equal(t, id, handler.deliveries[0].Pending.Id)
	require.Equal(t, []byte{1}, handler.deliveries[0].Output)

	_, found := k.GetPendingComputation(ctx, id)
	require.False(t, found)

	entry, found := k.GetEvaluator(ctx, evaluator)
	require.True(t, found)
	require.Equal(t, uint64(1), entry.Delivered)
}

// TestDeliverResult_ConsumesExactlyOnce tests that a duplicate delivery for a
// consumed id fails closed without reaching the handler
func TestDeliverResult_ConsumesExactlyOnce(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	handler := &recordingHandler{}
	k.RegisterHandler("validate_answer", handler)
	evaluator := setupEvaluator(t, k, ctx)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	require.NoError(t, k.DeliverResult(ctx, evaluator, id, true, []byte{1}))

	err = k.DeliverResult(ctx, evaluator, id, true, []byte{1})
	require.ErrorIs(t, err, types.ErrComputationNotFound)
	require.Len(t, handler.deliveries, 1)
}

// TestDeliverResult_UnknownComputation tests delivery for an id that was never queued
func TestDeliverResult_UnknownComputation(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	evaluator := setupEvaluator(t, k, ctx)

	err := k.DeliverResult(ctx, evaluator, 42, true, []byte{1})
	require.ErrorIs(t, err, types.ErrComputationNotFound)
}

// TestDeliverResult_RequiresRegisteredEvaluator tests sender gating
func TestDeliverResult_RequiresRegisteredEvaluator(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	stranger := sdk.AccAddress([]byte("random_address")).String()
	err = k.DeliverResult(ctx, stranger, id, true, []byte{1})
	require.ErrorIs(t, err, types.ErrEvaluatorNotFound)
}

// TestDeliverResult_RejectsInactiveEvaluator tests that deactivated evaluators
// cannot deliver
func TestDeliverResult_RejectsInactiveEvaluator(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	evaluator := setupEvaluator(t, k, ctx)
	require.NoError(t, k.SetEvaluatorStatus(ctx, k.GetAuthority(), evaluator, false))

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	err = k.DeliverResult(ctx, evaluator, id, true, []byte{1})
	require.ErrorIs(t, err, types.ErrEvaluatorInactive)

	_, found := k.GetPendingComputation(ctx, id)
	require.True(t, found)
}

// TestDeliverResult_Aborted tests that an aborted computation is consumed
// without reaching the handler
func TestDeliverResult_Aborted(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	handler := &recordingHandler{}
	k.RegisterHandler("validate_answer", handler)
	evaluator := setupEvaluator(t, k, ctx)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	err = k.DeliverResult(ctx, evaluator, id, false, nil)
	require.ErrorIs(t, err, types.ErrAbortedComputation)
	require.Empty(t, handler.deliveries)

	_, found := k.GetPendingComputation(ctx, id)
	require.False(t, found)

	entry, found := k.GetEvaluator(ctx, evaluator)
	require.True(t, found)
	require.Equal(t, uint64(1), entry.Aborted)
	require.Equal(t, uint64(0), entry.Delivered)
}

// TestDeliverResult_NoHandlerKeepsPending tests that a delivery for a circuit
// with no registered handler leaves the record for redelivery
func TestDeliverResult_NoHandlerKeepsPending(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	evaluator := setupEvaluator(t, k, ctx)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	err = k.DeliverResult(ctx, evaluator, id, true, []byte{1})
	require.ErrorIs(t, err, types.ErrNoHandler)

	_, found := k.GetPendingComputation(ctx, id)
	require.True(t, found)
}

// TestDeliverResult_HandlerErrorKeepsPending tests that a failed handler does
// not consume the record
func TestDeliverResult_HandlerErrorKeepsPending(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	handler := &recordingHandler{err: types.ErrInvalidArgument.Wrap("handler rejected")}
	k.RegisterHandler("validate_answer", handler)
	evaluator := setupEvaluator(t, k, ctx)

	id, err := k.Queue(ctx, validQueueRequest())
	require.NoError(t, err)

	err = k.DeliverResult(ctx, evaluator, id, true, []byte{1})
	require.Error(t, err)

	_, found := k.GetPendingComputation(ctx, id)
	require.True(t, found)

	entry, found := k.GetEvaluator(ctx, evaluator)
	require.True(t, found)
	require.Equal(t, uint64(0), entry.Delivered)
}

// TestDeliverResult_RequeueAfterConsume tests that the identity is released
// when the record is consumed, so a resubmission queues fresh work
func TestDeliverResult_RequeueAfterConsume(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)
	handler := &recordingHandler{}
	k.RegisterHandler("validate_answer", handler)
	evaluator := setupEvaluator(t, k, ctx)

	req := validQueueRequest()
	id1, err := k.Queue(ctx, req)
	require.NoError(t, err)
	require.NoError(t, k.DeliverResult(ctx, evaluator, id1, true, []byte{0}))

	id2, err := k.Queue(ctx, req)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	_, found := k.GetPendingComputation(ctx, id2)
	require.True(t, found)
}
