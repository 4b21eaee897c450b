package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// Helper functions shared by the quiz keeper tests.

func fundedAddr(t *testing.T, f *testkeeper.QuizFixture, name string, amount int64) sdk.AccAddress {
	t.Helper()
	addr := sdk.AccAddress([]byte(name))
	f.FundAccount(t, addr, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(amount))))
	return addr
}

func createQuizSet(t *testing.T, f *testkeeper.QuizFixture, authority sdk.AccAddress, questionCount uint32, reward int64) uint64 {
	t.Helper()
	id, err := f.Keeper.CreateQuizSet(f.Ctx, authority, "", "capital cities", questionCount, math.NewInt(reward), 1)
	require.NoError(t, err)
	return id
}

func validQuestionBlock(quizID uint64, questionIndex uint32) types.QuestionBlock {
	return types.QuestionBlock{
		QuizId:          quizID,
		QuestionIndex:   questionIndex,
		EncryptedX:      bytes.Repeat([]byte{0xA1}, types.MaxCiphertextBytes),
		EncryptedY:      bytes.Repeat([]byte{0xB2}, types.MaxCiphertextBytes),
		EvaluatorPubkey: bytes.Repeat([]byte{0xC3}, types.EvaluatorPubkeyLen),
		Nonce:           bytes.Repeat([]byte{byte(questionIndex)}, types.QuestionBlockNonceLen),
	}
}

func addAllQuestionBlocks(t *testing.T, f *testkeeper.QuizFixture, authority string, quizID uint64, questionCount uint32) {
	t.Helper()
	for i := uint32(1); i <= questionCount; i++ {
		require.NoError(t, f.Keeper.AddQuestionBlock(f.Ctx, authority, validQuestionBlock(quizID, i)))
	}
}

func registerTestEvaluator(t *testing.T, f *testkeeper.QuizFixture) string {
	t.Helper()
	addr := sdk.AccAddress([]byte("test_evaluator_addr")).String()
	require.NoError(t, f.ComputeKeeper.RegisterEvaluator(f.Ctx, f.Authority.String(), addr, "eval-1"))
	return addr
}

// submitAndDeliver submits an answer and immediately delivers its verdict.
func submitAndDeliver(t *testing.T, f *testkeeper.QuizFixture, evaluator, player string, quizID uint64, questionIndex uint32, correct bool) error {
	t.Helper()
	computationID, err := f.Keeper.SubmitAnswer(f.Ctx, player, quizID, questionIndex, "an answer")
	require.NoError(t, err)

	verdict := []byte{0}
	if correct {
		verdict = []byte{1}
	}
	return f.ComputeKeeper.DeliverResult(f.Ctx, evaluator, computationID, true, verdict)
}
