package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/keeper"
)

// TestInvariants_HoldThroughFullLifecycle tests that every invariant holds at
// each phase of a contest
func TestInvariants_HoldThroughFullLifecycle(t *testing.T) {
	f := testkeeper.QuizKeeper(t)

	check := func(phase string) {
		msg, broken := keeper.AllInvariants(*f.Keeper)(f.Ctx)
		require.False(t, broken, "phase %s: %s", phase, msg)
	}
	check("empty")

	id, winner := completeQuiz(t, f, 2, 1_000_000)
	check("completed")

	require.NoError(t, f.Keeper.ClaimReward(f.Ctx, winner, id))
	check("settled")
}

// TestVaultBalanceInvariant_DetectsDrift tests that a quiz set stored without
// matching escrow trips the vault invariant
func TestVaultBalanceInvariant_DetectsDrift(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 2, 1_000_000)

	quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
	quiz.RewardAmount = quiz.RewardAmount.AddRaw(1)
	f.Keeper.SetQuizSet(f.Ctx, quiz)

	_, broken := keeper.VaultBalanceInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken)
}

// TestProgressBoundInvariant_DetectsMismatch tests that a counter out of sync
// with the credited markers trips the progress invariant
func TestProgressBoundInvariant_DetectsMismatch(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 2, 1_000_000)

	quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
	quiz.CorrectAnswersCount = 1
	f.Keeper.SetQuizSet(f.Ctx, quiz)

	_, broken := keeper.ProgressBoundInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken)
}
