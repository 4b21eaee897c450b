package keeper_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	computetypes "github.com/hoot-chain/hoot/x/compute/types"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// TestSubmitAnswer_QueuesValidation tests that a submission lands in the
// compute queue with a fixed-width payload
func TestSubmitAnswer_QueuesValidation(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	computationID, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 2, "paris")
	require.NoError(t, err)

	pending, found := f.ComputeKeeper.GetPendingComputation(f.Ctx, computationID)
	require.True(t, found)
	require.Equal(t, types.CircuitValidateAnswer, pending.Circuit)
	require.Equal(t, id, pending.QuizId)
	require.Equal(t, uint32(2), pending.QuestionIndex)
	require.Equal(t, player, pending.Requester)
	require.Equal(t, types.DefaultMaxAnswerLength, pending.PayloadLen)
}

// TestSubmitAnswer_IdempotentPerQuestion tests that resubmitting the same
// question returns the id reserved by the first submission
func TestSubmitAnswer_IdempotentPerQuestion(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	first, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, "paris")
	require.NoError(t, err)

	// Identity is (circuit, quiz, index, requester, nonce); the answer text
	// does not open a second slot.
	second, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, "london")
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Another player gets their own slot for the same question.
	other := sdk.AccAddress([]byte("other_player_addr___")).String()
	third, err := f.Keeper.SubmitAnswer(f.Ctx, other, id, 1, "paris")
	require.NoError(t, err)
	require.NotEqual(t, first, third)
}

// TestSubmitAnswer_RequiresInitialized tests that answers wait for the full
// question inventory
func TestSubmitAnswer_RequiresInitialized(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	require.NoError(t, f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 1)))
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	_, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, "paris")
	require.ErrorIs(t, err, types.ErrQuizSetNotInitialized)
}

// TestSubmitAnswer_RejectsCompleted tests that a won quiz takes no more answers
func TestSubmitAnswer_RejectsCompleted(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 1, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 1)
	evaluator := registerTestEvaluator(t, f)
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	require.NoError(t, submitAndDeliver(t, f, evaluator, player, id, 1, true))

	other := sdk.AccAddress([]byte("other_player_addr___")).String()
	_, err := f.Keeper.SubmitAnswer(f.Ctx, other, id, 1, "paris")
	require.ErrorIs(t, err, types.ErrQuizCompleted)
}

// TestSubmitAnswer_Validation tests index, length, and existence gating
func TestSubmitAnswer_Validation(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	_, err := f.Keeper.SubmitAnswer(f.Ctx, player, 99, 1, "paris")
	require.ErrorIs(t, err, types.ErrQuizSetNotFound)

	_, err = f.Keeper.SubmitAnswer(f.Ctx, player, id, 0, "paris")
	require.ErrorIs(t, err, types.ErrInvalidQuestionIndex)

	_, err = f.Keeper.SubmitAnswer(f.Ctx, player, id, 4, "paris")
	require.ErrorIs(t, err, types.ErrInvalidQuestionIndex)

	long := strings.Repeat("a", int(types.DefaultMaxAnswerLength)+1)
	_, err = f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, long)
	require.ErrorIs(t, err, types.ErrTextTooLong)
}

// TestSubmitAnswer_AbortedComputationAllowsRetry tests that an aborted
// validation frees the identity slot for a fresh attempt
func TestSubmitAnswer_AbortedComputationAllowsRetry(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)
	evaluator := registerTestEvaluator(t, f)
	player := sdk.AccAddress([]byte("test_player_address_")).String()

	first, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, "paris")
	require.NoError(t, err)

	err = f.ComputeKeeper.DeliverResult(f.Ctx, evaluator, first, false, nil)
	require.ErrorIs(t, err, computetypes.ErrAbortedComputation)

	// The abort did not touch the quiz.
	quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
	require.Equal(t, uint32(0), quiz.CorrectAnswersCount)
	require.Empty(t, quiz.Winner)

	retry, err := f.Keeper.SubmitAnswer(f.Ctx, player, id, 1, "paris")
	require.NoError(t, err)
	require.NotEqual(t, first, retry)
}
