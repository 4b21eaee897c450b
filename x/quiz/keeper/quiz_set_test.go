package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// TestCreateQuizSet_EscrowsReward tests that creation moves the reward into
// the module vault
func TestCreateQuizSet_EscrowsReward(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)

	id := createQuizSet(t, f, authority, 3, 1_000_000)
	require.Equal(t, uint64(1), id)

	quiz, found := f.Keeper.GetQuizSet(f.Ctx, id)
	require.True(t, found)
	require.Equal(t, authority.String(), quiz.Authority)
	require.Equal(t, uint32(3), quiz.QuestionCount)
	require.Equal(t, math.NewInt(1_000_000), quiz.RewardAmount)
	require.False(t, quiz.IsInitialized)
	require.Equal(t, types.StatusOpen, quiz.Status())

	vault := f.Keeper.GetVaultBalance(f.Ctx)
	require.Equal(t, math.NewInt(1_000_000), vault.Amount)

	remaining := f.BankKeeper.GetBalance(f.Ctx, authority, types.DefaultRewardDenom)
	require.Equal(t, math.NewInt(4_000_000), remaining.Amount)
}

// TestCreateQuizSet_DuplicateUniqueID tests that the (authority, unique_id)
// pair addresses a quiz set at most once
func TestCreateQuizSet_DuplicateUniqueID(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)

	_, err := f.Keeper.CreateQuizSet(f.Ctx, authority, "", "first", 3, math.NewInt(1000), 9)
	require.NoError(t, err)

	_, err = f.Keeper.CreateQuizSet(f.Ctx, authority, "", "second", 3, math.NewInt(1000), 9)
	require.ErrorIs(t, err, types.ErrQuizSetExists)

	// A different authority may reuse the unique id.
	other := fundedAddr(t, f, "other_author_addr___", 5_000_000)
	_, err = f.Keeper.CreateQuizSet(f.Ctx, other, "", "third", 3, math.NewInt(1000), 9)
	require.NoError(t, err)
}

// TestCreateQuizSet_InsufficientFunds tests that a failed escrow leaves no state
func TestCreateQuizSet_InsufficientFunds(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 100)

	_, err := f.Keeper.CreateQuizSet(f.Ctx, authority, "", "broke", 3, math.NewInt(1_000_000), 1)
	require.Error(t, err)

	_, found := f.Keeper.GetQuizSet(f.Ctx, 1)
	require.False(t, found)
	require.True(t, f.Keeper.GetVaultBalance(f.Ctx).Amount.IsZero())

	// The unique id was not burned by the failed attempt.
	_, err = f.Keeper.CreateQuizSet(f.Ctx, authority, "", "cheap", 3, math.NewInt(50), 1)
	require.NoError(t, err)
}

// TestCreateQuizSet_InvalidInput tests reward and question count validation
func TestCreateQuizSet_InvalidInput(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)

	_, err := f.Keeper.CreateQuizSet(f.Ctx, authority, "", "no reward", 3, math.ZeroInt(), 1)
	require.ErrorIs(t, err, types.ErrInvalidRewardAmount)

	_, err = f.Keeper.CreateQuizSet(f.Ctx, authority, "", "no questions", 0, math.NewInt(1000), 1)
	require.ErrorIs(t, err, types.ErrInvalidQuestionCount)

	_, err = f.Keeper.CreateQuizSet(f.Ctx, authority, "", "too many", types.DefaultMaxQuestionCount+1, math.NewInt(1000), 1)
	require.ErrorIs(t, err, types.ErrInvalidQuestionCount)

	_, err = f.Keeper.CreateQuizSet(f.Ctx, authority, "", "", 3, math.NewInt(1000), 1)
	require.ErrorIs(t, err, types.ErrEmptyName)
}

// TestAddQuestionBlock_InitializesAtFullCount tests the open-to-active transition
func TestAddQuestionBlock_InitializesAtFullCount(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)

	for i := uint32(1); i <= 2; i++ {
		require.NoError(t, f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, i)))
		quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
		require.False(t, quiz.IsInitialized)
	}

	// Storing the block at question_count flips is_initialized.
	require.NoError(t, f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 3)))
	quiz, _ := f.Keeper.GetQuizSet(f.Ctx, id)
	require.True(t, quiz.IsInitialized)
	require.Equal(t, types.StatusActive, quiz.Status())

	// Initialization is permanent: no further blocks.
	err := f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 2))
	require.ErrorIs(t, err, types.ErrQuizSetAlreadyInitialized)
}

// TestAddQuestionBlock_Validation tests index and authorship gating
func TestAddQuestionBlock_Validation(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	authority := fundedAddr(t, f, "quiz_author_address_", 5_000_000)
	id := createQuizSet(t, f, authority, 3, 1_000_000)

	// Only the quiz authority adds blocks.
	other := sdk.AccAddress([]byte("other_user_address__")).String()
	err := f.Keeper.AddQuestionBlock(f.Ctx, other, validQuestionBlock(id, 1))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// Index above the question count.
	err = f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 4))
	require.ErrorIs(t, err, types.ErrInvalidQuestionIndex)

	// Index zero fails payload validation.
	err = f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 0))
	require.ErrorIs(t, err, types.ErrInvalidQuestionIndex)

	// Duplicate index.
	require.NoError(t, f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 1)))
	err = f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(id, 1))
	require.ErrorIs(t, err, types.ErrQuestionBlockExists)

	// Unknown quiz.
	err = f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), validQuestionBlock(99, 1))
	require.ErrorIs(t, err, types.ErrQuizSetNotFound)

	// Oversized ciphertext.
	block := validQuestionBlock(id, 2)
	block.EncryptedX = make([]byte, types.MaxCiphertextBytes+1)
	err = f.Keeper.AddQuestionBlock(f.Ctx, authority.String(), block)
	require.ErrorIs(t, err, types.ErrInvalidPayload)
}
