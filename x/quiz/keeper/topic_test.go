package keeper_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/hoot-chain/hoot/testutil/keeper"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// TestCreateTopic_Valid tests topic creation
func TestCreateTopic_Valid(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()

	err := f.Keeper.CreateTopic(f.Ctx, owner, "geography", math.NewInt(500), 3)
	require.NoError(t, err)

	topic, found := f.Keeper.GetTopic(f.Ctx, "geography")
	require.True(t, found)
	require.Equal(t, owner, topic.Owner)
	require.True(t, topic.IsActive)
	require.Equal(t, math.NewInt(500), topic.MinRewardAmount)
	require.Equal(t, uint32(3), topic.MinQuestionCount)
}

// TestCreateTopic_Duplicate tests that topic names are unique
func TestCreateTopic_Duplicate(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()

	require.NoError(t, f.Keeper.CreateTopic(f.Ctx, owner, "geography", math.NewInt(1), 1))
	err := f.Keeper.CreateTopic(f.Ctx, owner, "geography", math.NewInt(1), 1)
	require.ErrorIs(t, err, types.ErrTopicExists)
}

// TestCreateTopic_NameTooLong tests the name length cap
func TestCreateTopic_NameTooLong(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()

	name := strings.Repeat("g", int(types.DefaultMaxNameLength)+1)
	err := f.Keeper.CreateTopic(f.Ctx, owner, name, math.NewInt(1), 1)
	require.ErrorIs(t, err, types.ErrNameTooLong)
}

// TestUpdateTopic_TransferAndDeactivate tests ownership transfer with deactivation
func TestUpdateTopic_TransferAndDeactivate(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()
	newOwner := sdk.AccAddress([]byte("next_owner_address__")).String()
	require.NoError(t, f.Keeper.CreateTopic(f.Ctx, owner, "geography", math.NewInt(1), 1))

	require.NoError(t, f.Keeper.UpdateTopic(f.Ctx, owner, "geography", newOwner, false))

	topic, found := f.Keeper.GetTopic(f.Ctx, "geography")
	require.True(t, found)
	require.Equal(t, newOwner, topic.Owner)
	require.False(t, topic.IsActive)

	// The old owner lost control with the transfer.
	err := f.Keeper.UpdateTopic(f.Ctx, owner, "geography", "", true)
	require.ErrorIs(t, err, types.ErrNotTopicOwner)
}

// TestUpdateTopic_KeepOwner tests that an empty new owner keeps the current one
func TestUpdateTopic_KeepOwner(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()
	require.NoError(t, f.Keeper.CreateTopic(f.Ctx, owner, "geography", math.NewInt(1), 1))

	require.NoError(t, f.Keeper.UpdateTopic(f.Ctx, owner, "geography", "", false))

	topic, _ := f.Keeper.GetTopic(f.Ctx, "geography")
	require.Equal(t, owner, topic.Owner)
	require.False(t, topic.IsActive)
}

// TestUpdateTopic_NotFound tests updating a missing topic
func TestUpdateTopic_NotFound(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := sdk.AccAddress([]byte("topic_owner_address_")).String()

	err := f.Keeper.UpdateTopic(f.Ctx, owner, "missing", "", true)
	require.ErrorIs(t, err, types.ErrTopicNotFound)
}

// TestCreateQuizSet_TopicPolicy tests that topic minimums gate quiz creation
func TestCreateQuizSet_TopicPolicy(t *testing.T) {
	f := testkeeper.QuizKeeper(t)
	owner := fundedAddr(t, f, "topic_owner_address_", 10_000_000)
	require.NoError(t, f.Keeper.CreateTopic(f.Ctx, owner.String(), "geography", math.NewInt(1000), 5))

	// Below the topic's reward minimum.
	_, err := f.Keeper.CreateQuizSet(f.Ctx, owner, "geography", "capitals", 5, math.NewInt(999), 1)
	require.ErrorIs(t, err, types.ErrBelowTopicMinimum)

	// Below the topic's question minimum.
	_, err = f.Keeper.CreateQuizSet(f.Ctx, owner, "geography", "capitals", 4, math.NewInt(1000), 1)
	require.ErrorIs(t, err, types.ErrBelowTopicMinimum)

	// Someone else's topic.
	other := fundedAddr(t, f, "other_user_address__", 10_000_000)
	_, err = f.Keeper.CreateQuizSet(f.Ctx, other, "geography", "capitals", 5, math.NewInt(1000), 1)
	require.ErrorIs(t, err, types.ErrNotTopicOwner)

	// Meeting both minimums works.
	id, err := f.Keeper.CreateQuizSet(f.Ctx, owner, "geography", "capitals", 5, math.NewInt(1000), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	// A deactivated topic refuses new quiz sets.
	require.NoError(t, f.Keeper.UpdateTopic(f.Ctx, owner.String(), "geography", "", false))
	_, err = f.Keeper.CreateQuizSet(f.Ctx, owner, "geography", "capitals", 5, math.NewInt(1000), 2)
	require.ErrorIs(t, err, types.ErrTopicNotActive)
}
