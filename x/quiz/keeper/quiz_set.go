package keeper

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// CreateQuizSet creates a quiz set and escrows its reward in the module
// account in the same call. The (authority, unique_id) pair addresses the
// quiz set uniquely; a repeat pair fails instead of creating a second set.
func (k Keeper) CreateQuizSet(
	ctx sdk.Context,
	authority sdk.AccAddress,
	topicName, name string,
	questionCount uint32,
	rewardAmount math.Int,
	uniqueID uint32,
) (uint64, error) {
	params := k.GetParams(ctx)
	if err := types.ValidateName(name, params.MaxNameLength); err != nil {
		return 0, err
	}
	if err := types.ValidateQuestionCount(questionCount, params.MaxQuestionCount); err != nil {
		return 0, err
	}
	if rewardAmount.IsNil() || !rewardAmount.IsPositive() {
		return 0, types.ErrInvalidRewardAmount
	}

	authorityStr := authority.String()
	if _, found := k.getQuizIDByAuthority(ctx, authorityStr, uniqueID); found {
		return 0, types.ErrQuizSetExists.Wrapf("authority %s, unique id %d", authorityStr, uniqueID)
	}

	if topicName != "" {
		topic, found := k.GetTopic(ctx, topicName)
		if !found {
			return 0, types.ErrTopicNotFound.Wrap(topicName)
		}
		if !topic.IsActive {
			return 0, types.ErrTopicNotActive.Wrap(topicName)
		}
		if topic.Owner != authorityStr {
			return 0, types.ErrNotTopicOwner.Wrapf("topic %q is owned by %s", topicName, topic.Owner)
		}
		if rewardAmount.LT(topic.MinRewardAmount) {
			return 0, types.ErrBelowTopicMinimum.Wrapf(
				"reward %s below topic minimum %s", rewardAmount, topic.MinRewardAmount)
		}
		if questionCount < topic.MinQuestionCount {
			return 0, types.ErrBelowTopicMinimum.Wrapf(
				"%d questions below topic minimum %d", questionCount, topic.MinQuestionCount)
		}
	}

	// Escrow before any state is written. A failed transfer leaves nothing
	// behind.
	if err := k.fundVault(ctx, authority, rewardAmount); err != nil {
		return 0, err
	}

	id := k.getNextQuizID(ctx)
	quiz := types.QuizSet{
		Id:            id,
		Authority:     authorityStr,
		Topic:         topicName,
		Name:          name,
		QuestionCount: questionCount,
		RewardAmount:  rewardAmount,
		UniqueId:      uniqueID,
		CreatedAt:     ctx.BlockTime().Unix(),
	}
	k.SetQuizSet(ctx, quiz)
	k.setQuizIDByAuthority(ctx, authorityStr, uniqueID, id)

	k.metrics.QuizSetsCreated.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeQuizSetCreated,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyAuthority, authorityStr),
			sdk.NewAttribute(types.AttributeKeyQuizName, name),
			sdk.NewAttribute(types.AttributeKeyQuestionCount, fmt.Sprintf("%d", questionCount)),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, rewardAmount.String()),
		),
	)
	return id, nil
}

// GetQuizSet returns a quiz set by id.
func (k Keeper) GetQuizSet(ctx sdk.Context, id uint64) (types.QuizSet, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.QuizSetKey(id))
	if bz == nil {
		return types.QuizSet{}, false
	}
	var quiz types.QuizSet
	if err := json.Unmarshal(bz, &quiz); err != nil {
		panic(fmt.Sprintf("quiz: corrupt quiz set record %d: %v", id, err))
	}
	return quiz, true
}

// SetQuizSet stores a quiz set.
func (k Keeper) SetQuizSet(ctx sdk.Context, quiz types.QuizSet) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(quiz)
	if err != nil {
		panic(fmt.Sprintf("quiz: marshal quiz set %d: %v", quiz.Id, err))
	}
	store.Set(types.QuizSetKey(quiz.Id), bz)
}

// IterateQuizSets walks all quiz sets in id order. The callback returns true
// to stop.
func (k Keeper) IterateQuizSets(ctx sdk.Context, cb func(types.QuizSet) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.QuizSetKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var quiz types.QuizSet
		if err := json.Unmarshal(iterator.Value(), &quiz); err != nil {
			panic(fmt.Sprintf("quiz: corrupt quiz set record: %v", err))
		}
		if cb(quiz) {
			break
		}
	}
}

func (k Keeper) getQuizIDByAuthority(ctx sdk.Context, authority string, uniqueID uint32) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.QuizSetByAuthorityIndexKey(authority, uniqueID))
	if len(bz) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

func (k Keeper) setQuizIDByAuthority(ctx sdk.Context, authority string, uniqueID uint32, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(types.QuizSetByAuthorityIndexKey(authority, uniqueID), bz)
}

// getNextQuizID returns the next id and advances the counter.
func (k Keeper) getNextQuizID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	id := uint64(1)
	if bz := store.Get(types.NextQuizIDKey); len(bz) == 8 {
		id = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id+1)
	store.Set(types.NextQuizIDKey, next)
	return id
}

// setNextQuizID seeds the id counter, used at genesis.
func (k Keeper) setNextQuizID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(types.NextQuizIDKey, bz)
}

// peekNextQuizID reads the counter without advancing it.
func (k Keeper) peekNextQuizID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	if bz := store.Get(types.NextQuizIDKey); len(bz) == 8 {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}
