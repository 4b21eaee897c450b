package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

func validGenesis() *types.GenesisState {
	authority := sdk.AccAddress([]byte("quiz_author_address_")).String()
	return &types.GenesisState{
		Params: types.DefaultParams(),
		Topics: []types.Topic{
			{Owner: authority, Name: "geography", IsActive: true, MinRewardAmount: math.NewInt(100)},
		},
		QuizSets: []types.QuizSet{
			{
				Id: 1, Authority: authority, Topic: "geography", Name: "capitals",
				QuestionCount: 3, IsInitialized: true, RewardAmount: math.NewInt(1_000_000),
				CorrectAnswersCount: 1, UniqueId: 1,
			},
		},
		QuestionBlocks: []types.QuestionBlock{
			{
				QuizId: 1, QuestionIndex: 1,
				EncryptedX:      bytes.Repeat([]byte{0x01}, 32),
				EncryptedY:      bytes.Repeat([]byte{0x02}, 32),
				EvaluatorPubkey: bytes.Repeat([]byte{0x03}, types.EvaluatorPubkeyLen),
				Nonce:           bytes.Repeat([]byte{0x04}, types.QuestionBlockNonceLen),
			},
		},
		AnsweredIndexes: []types.AnsweredIndex{{QuizId: 1, QuestionIndex: 1}},
		NextQuizId:      2,
	}
}

// TestGenesisState_Validate tests that a consistent state passes
func TestGenesisState_Validate(t *testing.T) {
	require.NoError(t, validGenesis().Validate())
	require.NoError(t, types.DefaultGenesis().Validate())
}

// TestGenesisState_RejectsInconsistencies tests each cross-reference check
func TestGenesisState_RejectsInconsistencies(t *testing.T) {
	gs := validGenesis()
	gs.QuizSets = append(gs.QuizSets, gs.QuizSets[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.NextQuizId = 1
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.QuizSets[0].Topic = "missing"
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.QuestionBlocks[0].QuizId = 9
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.QuestionBlocks[0].QuestionIndex = 4
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	// Progress counter disagreeing with the credited markers.
	gs = validGenesis()
	gs.AnsweredIndexes = nil
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.AnsweredIndexes = append(gs.AnsweredIndexes, gs.AnsweredIndexes[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	gs = validGenesis()
	gs.AnsweredIndexes[0].QuestionIndex = 4
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)

	// Duplicate (authority, unique_id) pairs.
	gs = validGenesis()
	second := gs.QuizSets[0]
	second.Id = 2
	second.Topic = ""
	second.CorrectAnswersCount = 0
	gs.QuizSets = append(gs.QuizSets, second)
	gs.NextQuizId = 3
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)
}
