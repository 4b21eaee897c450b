package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// TestGenesis_RoundTrip tests that exported quiz state seeds a fresh keeper
// identically, credited markers included
func TestGenesis_RoundTrip(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)
	addAllQuestionBlocks(t, f, authority.String(), id, 3)
	evaluator := registerTestEvaluator(t, f)
	player := fundedAddr(t, f, "test_player_address_", 1)

	require.NoError(t, submitAndDeliver(t, f, evaluator, player.String(), id, 2, true))

	exported := f.Keeper.ExportGenesis(f.Ctx)
	require.Len(t, exported.QuizSets, 1)
	require.Len(t, exported.QuestionBlocks, 3)
	require.Len(t, exported.AnsweredIndexes, 1)
	require.Equal(t, uint64(2), exported.NextQuizId)
	require.NoError(t, exported.Validate())

	fresh := testkeeper.QuizKeeper(t)
	fresh.Keeper.InitGenesis(fresh.Ctx, *exported)

	quiz, found := fresh.Keeper.GetQuizSet(fresh.Ctx, id)
	require.True(t, found)
	require.Equal(t, uint32(1), quiz.CorrectAnswersCount)
	require.Equal(t, uint32(1), fresh.Keeper.CountAnsweredIndexes(fresh.Ctx, id))

	reexported := fresh.Keeper.ExportGenesis(fresh.Ctx)
	require.Equal(t, exported, reexported)

	// The (authority, unique_id) index was rebuilt.
	_, err := fresh.Keeper.CreateQuizSet(fresh.Ctx, authority, "", "again", 3, quiz.RewardAmount, quiz.UniqueId)
	require.ErrorIs(t, err, types.ErrQuizSetExists)
}

// TestGenesis_RejectsProgressMismatch tests that init refuses state whose
// counters disagree with the credited markers
func TestGenesis_RejectsProgressMismatch(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	createQuizSet(t, f, authority, 3, 1_000_000)

	exported := f.Keeper.ExportGenesis(f.Ctx)
	exported.QuizSets[0].CorrectAnswersCount = 2
	require.Error(t, exported.Validate())

	fresh := testkeeper.QuizKeeper(t)
	require.Panics(t, func() {
		fresh.Keeper.InitGenesis(fresh.Ctx, *exported)
	})
}
