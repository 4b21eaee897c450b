package types_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/x/compute/types"
)

func validRequest() types.QueueRequest {
	return types.QueueRequest{
		Circuit:       "validate_answer",
		QuizId:        7,
		QuestionIndex: 2,
		Requester:     sdk.AccAddress([]byte("test_requester_addr")).String(),
		Payload:       bytes.Repeat([]byte{0xAA}, 200),
		Nonce:         bytes.Repeat([]byte{0x01}, 16),
	}
}

// TestQueueRequest_IdentityHash tests that identity covers the logical
// content and nothing else
func TestQueueRequest_IdentityHash(t *testing.T) {
	base := validRequest()
	require.Len(t, base.IdentityHash(), 32)
	require.Equal(t, base.IdentityHash(), base.IdentityHash())

	// Payload is excluded from the identity.
	samePayloadless := validRequest()
	samePayloadless.Payload = []byte{0x01}
	require.Equal(t, base.IdentityHash(), samePayloadless.IdentityHash())

	// Each logical field contributes.
	req := validRequest()
	req.Circuit = "decrypt_question"
	require.NotEqual(t, base.IdentityHash(), req.IdentityHash())

	req = validRequest()
	req.QuizId = 8
	require.NotEqual(t, base.IdentityHash(), req.IdentityHash())

	req = validRequest()
	req.QuestionIndex = 3
	require.NotEqual(t, base.IdentityHash(), req.IdentityHash())

	req = validRequest()
	req.Requester = sdk.AccAddress([]byte("other_user_address_")).String()
	require.NotEqual(t, base.IdentityHash(), req.IdentityHash())

	req = validRequest()
	req.Nonce = bytes.Repeat([]byte{0x02}, 16)
	require.NotEqual(t, base.IdentityHash(), req.IdentityHash())
}

// TestQueueRequest_Validate tests the request checks
func TestQueueRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().Validate(types.DefaultMaxPayloadBytes))

	req := validRequest()
	req.Circuit = ""
	require.ErrorIs(t, req.Validate(types.DefaultMaxPayloadBytes), types.ErrInvalidArgument)

	req = validRequest()
	req.Requester = ""
	require.ErrorIs(t, req.Validate(types.DefaultMaxPayloadBytes), types.ErrInvalidArgument)

	req = validRequest()
	req.Payload = nil
	require.ErrorIs(t, req.Validate(types.DefaultMaxPayloadBytes), types.ErrInvalidArgument)

	req = validRequest()
	req.Payload = make([]byte, types.DefaultMaxPayloadBytes+1)
	require.ErrorIs(t, req.Validate(types.DefaultMaxPayloadBytes), types.ErrPayloadTooLarge)
}

// TestParams_Validate tests parameter validation
func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.MaxPayloadBytes = 0
	require.Error(t, params.Validate())
}
