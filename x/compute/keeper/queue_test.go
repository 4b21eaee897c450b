package keeper_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/compute/types"
)

func validQueueRequest() types.QueueRequest {
	return types.QueueRequest{
		Circuit:       "validate_answer",
		QuizId:        7,
		QuestionIndex: 2,
		Requester:     sdk.AccAddress([]byte("test_requester_addr")).String(),
		Payload:       bytes.Repeat([]byte{0xAA}, 200),
		Nonce:         bytes.Repeat([]byte{0x01}, 16),
	}
}

// TestQueue_AssignsSequentialIDs tests that distinct requests get increasing ids
func TestQueue_AssignsSequentialIDs(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	first := validQueueRequest()
	id1, err := k.Queue(ctx, first)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id1)

	second := validQueueRequest()
	second.QuestionIndex = 3
	id2, err := k.Queue(ctx, second)
	require.NoError(t, err)
	require.Equal(t, uint64(2), id2)

	pending, found := k.GetPendingComputation(ctx, id1)
	require.True(t, found)
	require.Equal(t, first.Circuit, pending.Circuit)
	require.Equal(t, first.QuizId, pending.QuizId)
	require.Equal(t, first.QuestionIndex, pending.QuestionIndex)
	require.Equal(t, first.Requester, pending.Requester)
	require.Equal(t, uint32(len(first.Payload)), pending.PayloadLen)
}

// TestQueue_IdempotentOnIdentity tests that re-queueing the same logical
// request returns the existing id without queueing again
func TestQueue_IdempotentOnIdentity(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	req := validQueueRequest()
	id1, err := k.Queue(ctx, req)
	require.NoError(t, err)

	id2, err := k.Queue(ctx, req)
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	var count int
	k.IteratePendingComputations(ctx, func(types.PendingComputation) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

// TestQueue_IdentityIgnoresPayload tests that identity is derived from the
// request's logical content, not the payload bytes
func TestQueue_IdentityIgnoresPayload(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	req := validQueueRequest()
	id1, err := k.Queue(ctx, req)
	require.NoError(t, err)

	req.Payload = bytes.Repeat([]byte{0xBB}, 100)
	id2, err := k.Queue(ctx, req)
	require.NoError(t, err)
	require.Equal(t, id1, id2)
}

// TestQueue_DistinctRequestersGetDistinctIDs tests that identity includes the requester
func TestQueue_DistinctRequestersGetDistinctIDs(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	req := validQueueRequest()
	id1, err := k.Queue(ctx, req)
	require.NoError(t, err)

	req.Requester = sdk.AccAddress([]byte("other_user_address_")).String()
	id2, err := k.Queue(ctx, req)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
}

// TestQueue_RejectsOversizedPayload tests the payload size cap
func TestQueue_RejectsOversizedPayload(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	params := k.GetParams(ctx)
	req := validQueueRequest()
	req.Payload = make([]byte, params.MaxPayloadBytes+1)

	_, err := k.Queue(ctx, req)
	require.ErrorIs(t, err, types.ErrPayloadTooLarge)
}

// TestQueue_RejectsInvalidRequests tests basic request validation
func TestQueue_RejectsInvalidRequests(t *testing.T) {
	k, ctx := testkeeper.ComputeKeeper(t)

	req := validQueueRequest()
	req.Circuit = ""
	_, err := k.Queue(ctx, req)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	req = validQueueRequest()
	req.Requester = ""
	_, err = k.Queue(ctx, req)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	req = validQueueRequest()
	req.Payload = nil
	_, err = k.Queue(ctx, req)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}
