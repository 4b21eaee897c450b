package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// DeliverResult consumes the evaluator cluster's callback for one queued
// computation. Consumption is exactly-once: the pending record is deleted in
// the same state write as the effects of the result, so a duplicate or
// out-of-order delivery for a consumed id fails closed with
// ErrComputationNotFound and mutates nothing.
func (k Keeper) DeliverResult(ctx sdk.Context, evaluatorAddr string, computationID uint64, success bool, output []byte) error {
	evaluator, found := k.GetEvaluator(ctx, evaluatorAddr)
	if !found {
		return types.ErrEvaluatorNotFound.Wrap(evaluatorAddr)
	}
	if !evaluator.Active {
		return types.ErrEvaluatorInactive.Wrap(evaluatorAddr)
	}

	pending, found := k.GetPendingComputation(ctx, computationID)
	if !found {
		return types.ErrComputationNotFound.Wrapf("id %d", computationID)
	}

	if !success {
		k.removePendingComputation(ctx, pending)
		evaluator.Aborted++
		k.SetEvaluator(ctx, evaluator)
		k.metrics.ComputationsAborted.WithLabelValues(pending.Circuit).Inc()

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeComputationAborted,
				sdk.NewAttribute(types.AttributeKeyComputationID, fmt.Sprintf("%d", computationID)),
				sdk.NewAttribute(types.AttributeKeyCircuit, pending.Circuit),
				sdk.NewAttribute(types.AttributeKeyEvaluator, evaluatorAddr),
			),
		)
		return types.ErrAbortedComputation.Wrapf("computation %d", computationID)
	}

	handler, ok := k.handlers[pending.Circuit]
	if !ok {
		// Fail closed and keep the pending record; the result can be
		// redelivered once a handler exists.
		return types.ErrNoHandler.Wrap(pending.Circuit)
	}

	delivery := types.ResultDelivery{
		Pending: pending,
		Output:  output,
	}
	if err := handler.HandleComputationResult(ctx, delivery); err != nil {
		return err
	}

	k.removePendingComputation(ctx, pending)
	evaluator.Delivered++
	k.SetEvaluator(ctx, evaluator)
	k.metrics.ComputationsDelivered.WithLabelValues(pending.Circuit).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComputationDelivered,
			sdk.NewAttribute(types.AttributeKeyComputationID, fmt.Sprintf("%d", computationID)),
			sdk.NewAttribute(types.AttributeKeyCircuit, pending.Circuit),
			sdk.NewAttribute(types.AttributeKeyEvaluator, evaluatorAddr),
			sdk.NewAttribute(types.AttributeKeyOutputLen, fmt.Sprintf("%d", len(output))),
		),
	)
	return nil
}
