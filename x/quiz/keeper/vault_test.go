package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

func completeQuiz(t *testing.T, f *testkeeper.QuizFixture, questionCount uint32, reward int64) (uint64, sdk.AccAddress) {
	t.Helper()
	authority := fundedAddr(t, f, "quiz_author_address_", reward*2)
	id := createQuizSet(t, f, authority, questionCount, reward)
	addAllQuestionBlocks(t, f, authority.String(), id, questionCount)
	evaluator := registerTestEvaluator(t, f)

	winner := sdk.AccAddress([]byte("test_player_address_"))
	for i := uint32(1); i <= questionCount; i++ {
		require.NoError(t, submitAndDeliver(t, f, evaluator, winner.String(), id, i, true))
	}
	return id, winner
}

// TestClaimReward_PaysWinner tests the completed-to-settled transition
func TestClaimReward_PaysWinner(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	id, winner := completeQuiz(t, f, 2, 1_000_000)

	require.NoError(t, f.Keeper.ClaimReward(f.Ctx, winner, id))

	quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
	require.True(t, quiz.IsRewardClaimed)
	require.Equal(t, types.StatusSettled, quiz.Status())

	balance := f.BankKeeper.GetBalance(f.Ctx, winner, types.DefaultRewardDenom)
	require.Equal(t, math.NewInt(1_000_000), balance.Amount)
	require.True(t, f.Keeper.GetVaultBalance(f.Ctx).Amount.IsZero())
}

// TestClaimReward_ExactlyOnce tests that the claim can never repeat
func TestClaimReward_ExactlyOnce(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	id, winner := completeQuiz(t, f, 1, 1_000_000)

	require.NoError(t, f.Keeper.ClaimReward(f.Ctx, winner, id))

	err := f.Keeper.ClaimReward(f.Ctx, winner, id)
	require.ErrorIs(t, err, types.ErrRewardAlreadyClaimed)

	balance := f.BankKeeper.GetBalance(f.Ctx, winner, types.DefaultRewardDenom)
	require.Equal(t, math.NewInt(1_000_000), balance.Amount)
}

// TestClaimReward_NotWinner tests that only the winner may claim
func TestClaimReward_NotWinner(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	id, _ := completeQuiz(t, f, 1, 1_000_000)

	stranger := sdk.AccAddress([]byte("other_player_addr___"))
	err := f.Keeper.ClaimReward(f.Ctx, stranger, id)
	require.ErrorIs(t, err, types.ErrNotWinner)
	require.Equal(t, math.NewInt(1_000_000), f.Keeper.GetVaultBalance(f.Ctx).Amount)
}

// TestClaimReward_NotCompleted tests claiming before a winner exists
func TestClaimReward_NotCompleted(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)

	claimer := sdk.AccAddress([]byte("test_player_address_"))
	err := f.Keeper.ClaimReward(f.Ctx, claimer, id)
	require.ErrorIs(t, err, types.ErrQuizNotCompleted)
}

// TestClaimReward_UnknownQuiz tests claiming a quiz that does not exist
func TestClaimReward_UnknownQuiz(t *testing.T) {
	f := testkeeper.QuizKeeper(t)

	claimer := sdk.AccAddress([]byte("test_player_address_"))
	err := f.Keeper.ClaimReward(f.Ctx, claimer, 42)
	require.ErrorIs(t, err, types.ErrQuizSetNotFound)
}

// TestClaimReward_AfterForceComplete tests that a force-completed quiz pays
// out through the same path
func TestClaimReward_AfterForceComplete(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)

	winner := sdk.AccAddress([]byte("test_player_address_"))
	require.NoError(t, f.Keeper.ForceComplete(f.Ctx, f.Authority.String(), id, winner.String()))

	require.NoError(t, f.Keeper.ClaimReward(f.Ctx, winner, id))
	balance := f.BankKeeper.GetBalance(f.Ctx, winner, types.DefaultRewardDenom)
	require.Equal(t, math.NewInt(1_000_000), balance.Amount)
}
