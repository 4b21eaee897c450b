package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

func testAddr(seed string) string {
	return sdk.AccAddress([]byte(seed)).String()
}

// TestMsgCreateTopic_ValidateBasic tests stateless topic creation checks
func TestMsgCreateTopic_ValidateBasic(t *testing.T) {
	msg := types.NewMsgCreateTopic(testAddr("topic_owner_address_"), "geography", math.NewInt(100), 2)
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgCreateTopic("not-bech32", "geography", math.NewInt(100), 2)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)

	msg = types.NewMsgCreateTopic(testAddr("topic_owner_address_"), "", math.NewInt(100), 2)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrEmptyName)

	msg = types.NewMsgCreateTopic(testAddr("topic_owner_address_"), "geography", math.NewInt(-1), 2)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidRewardAmount)

	// A zero minimum is allowed; it imposes no floor.
	msg = types.NewMsgCreateTopic(testAddr("topic_owner_address_"), "geography", math.ZeroInt(), 0)
	require.NoError(t, msg.ValidateBasic())
}

// TestMsgUpdateTopic_ValidateBasic tests the optional new owner field
func TestMsgUpdateTopic_ValidateBasic(t *testing.T) {
	msg := types.NewMsgUpdateTopic(testAddr("topic_owner_address_"), "geography", "", false)
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgUpdateTopic(testAddr("topic_owner_address_"), "geography", testAddr("next_owner_address__"), true)
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgUpdateTopic(testAddr("topic_owner_address_"), "geography", "not-bech32", true)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

// TestMsgCreateQuizSet_ValidateBasic tests stateless quiz set creation checks
func TestMsgCreateQuizSet_ValidateBasic(t *testing.T) {
	authority := testAddr("quiz_author_address_")

	msg := types.NewMsgCreateQuizSet(authority, "", "capitals", 3, math.NewInt(1_000_000), 1)
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgCreateQuizSet(authority, "", "", 3, math.NewInt(1), 1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrEmptyName)

	msg = types.NewMsgCreateQuizSet(authority, "", "capitals", 0, math.NewInt(1), 1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidQuestionCount)

	msg = types.NewMsgCreateQuizSet(authority, "", "capitals", 3, math.ZeroInt(), 1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidRewardAmount)

	msg = types.NewMsgCreateQuizSet(authority, "", "capitals", 3, math.Int{}, 1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidRewardAmount)
}

// TestMsgAddQuestionBlock_ValidateBasic tests that the payload constraints
// apply at the message boundary
func TestMsgAddQuestionBlock_ValidateBasic(t *testing.T) {
	msg := &types.MsgAddQuestionBlock{
		Authority:       testAddr("quiz_author_address_"),
		QuizId:          1,
		QuestionIndex:   1,
		EncryptedX:      bytes.Repeat([]byte{0x01}, 32),
		EncryptedY:      bytes.Repeat([]byte{0x02}, 32),
		EvaluatorPubkey: bytes.Repeat([]byte{0x03}, types.EvaluatorPubkeyLen),
		Nonce:           bytes.Repeat([]byte{0x04}, types.QuestionBlockNonceLen),
	}
	require.NoError(t, msg.ValidateBasic())

	bad := *msg
	bad.EncryptedX = make([]byte, types.MaxCiphertextBytes+1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidPayload)

	bad = *msg
	bad.QuestionIndex = 0
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidQuestionIndex)
}

// TestMsgSubmitAnswer_ValidateBasic tests stateless answer checks
func TestMsgSubmitAnswer_ValidateBasic(t *testing.T) {
	msg := types.NewMsgSubmitAnswer(testAddr("test_player_address_"), 1, 1, "paris")
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgSubmitAnswer("not-bech32", 1, 1, "paris")
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)

	msg = types.NewMsgSubmitAnswer(testAddr("test_player_address_"), 1, 0, "paris")
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidQuestionIndex)

	msg = types.NewMsgSubmitAnswer(testAddr("test_player_address_"), 1, 1, "")
	require.Error(t, msg.ValidateBasic())
}

// TestMsgForceComplete_ValidateBasic tests that both addresses are checked
func TestMsgForceComplete_ValidateBasic(t *testing.T) {
	msg := &types.MsgForceComplete{
		Authority: testAddr("gov_module_address__"),
		QuizId:    1,
		Winner:    testAddr("test_player_address_"),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Winner = "not-bech32"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

// TestMsgClaimReward_GetSigners tests signer derivation
func TestMsgClaimReward_GetSigners(t *testing.T) {
	claimer := sdk.AccAddress([]byte("test_player_address_"))
	msg := types.NewMsgClaimReward(claimer.String(), 7)
	require.NoError(t, msg.ValidateBasic())

	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, claimer, signers[0])
}
