package keeper

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// Queue accepts work for the evaluator cluster and returns the computation
// id. Queueing is idempotent on request identity: a second call with the
// same logical content returns the id reserved by the first call and does
// not queue again.
func (k Keeper) Queue(ctx sdk.Context, req types.QueueRequest) (uint64, error) {
	params := k.GetParams(ctx)
	if err := req.Validate(params.MaxPayloadBytes); err != nil {
		return 0, err
	}

	identity := req.IdentityHash()
	if existingID, found := k.getIdentityIndex(ctx, identity); found {
		return existingID, nil
	}

	id := k.getNextComputationID(ctx)
	pending := types.PendingComputation{
		Id:             id,
		IdentityHash:   identity,
		Circuit:        req.Circuit,
		QuizId:         req.QuizId,
		QuestionIndex:  req.QuestionIndex,
		Requester:      req.Requester,
		PayloadLen:     uint32(len(req.Payload)),
		QueuedAtHeight: ctx.BlockHeight(),
	}
	k.SetPendingComputation(ctx, pending)
	k.setIdentityIndex(ctx, identity, id)

	k.metrics.ComputationsQueued.WithLabelValues(req.Circuit).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComputationQueued,
			sdk.NewAttribute(types.AttributeKeyComputationID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyCircuit, req.Circuit),
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", req.QuizId)),
			sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", req.QuestionIndex)),
			sdk.NewAttribute(types.AttributeKeyRequester, req.Requester),
		),
	)

	return id, nil
}

// GetPendingComputation returns the pending record for an id, if it exists.
func (k Keeper) GetPendingComputation(ctx sdk.Context, id uint64) (types.PendingComputation, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PendingComputationKey(id))
	if bz == nil {
		return types.PendingComputation{}, false
	}
	var pending types.PendingComputation
	if err := json.Unmarshal(bz, &pending); err != nil {
		panic(fmt.Sprintf("compute: corrupt pending computation %d: %v", id, err))
	}
	return pending, true
}

// SetPendingComputation stores a pending record.
func (k Keeper) SetPendingComputation(ctx sdk.Context, pending types.PendingComputation) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(pending)
	if err != nil {
		panic(fmt.Sprintf("compute: marshal pending computation %d: %v", pending.Id, err))
	}
	store.Set(types.PendingComputationKey(pending.Id), bz)
}

// removePendingComputation deletes a pending record and its identity index
// entry together. Both go or neither goes.
func (k Keeper) removePendingComputation(ctx sdk.Context, pending types.PendingComputation) {
	store := k.getStore(ctx)
	store.Delete(types.PendingComputationKey(pending.Id))
	store.Delete(types.IdentityIndexKey(pending.IdentityHash))
}

// IteratePendingComputations walks all pending records in id order. The
// callback returns true to stop.
func (k Keeper) IteratePendingComputations(ctx sdk.Context, cb func(types.PendingComputation) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PendingComputationKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pending types.PendingComputation
		if err := json.Unmarshal(iterator.Value(), &pending); err != nil {
			panic(fmt.Sprintf("compute: corrupt pending computation record: %v", err))
		}
		if cb(pending) {
			break
		}
	}
}

func (k Keeper) getIdentityIndex(ctx sdk.Context, identity []byte) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.IdentityIndexKey(identity))
	if len(bz) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

func (k Keeper) setIdentityIndex(ctx sdk.Context, identity []byte, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(types.IdentityIndexKey(identity), bz)
}

// getNextComputationID returns the next id and advances the counter.
func (k Keeper) getNextComputationID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	id := uint64(1)
	if bz := store.Get(types.NextComputationIDKey); len(bz) == 8 {
		id = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id+1)
	store.Set(types.NextComputationIDKey, next)
	return id
}

// setNextComputationID seeds the id counter, used at genesis.
func (k Keeper) setNextComputationID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(types.NextComputationIDKey, bz)
}

// peekNextComputationID reads the counter without advancing it.
func (k Keeper) peekNextComputationID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	if bz := store.Get(types.NextComputationIDKey); len(bz) == 8 {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}
