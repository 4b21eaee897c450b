package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// CreateTopic creates a new active topic. Topic names are unique forever;
// topics are never deleted.
func (k Keeper) CreateTopic(ctx sdk.Context, owner, name string, minReward math.Int, minQuestions uint32) error {
	params := k.GetParams(ctx)
	if err := types.ValidateName(name, params.MaxNameLength); err != nil {
		return err
	}
	if _, found := k.GetTopic(ctx, name); found {
		return types.ErrTopicExists.Wrap(name)
	}
	if minQuestions > params.MaxQuestionCount {
		return types.ErrInvalidQuestionCount.Wrapf(
			"topic minimum %d above chain max %d", minQuestions, params.MaxQuestionCount)
	}

	k.SetTopic(ctx, types.Topic{
		Owner:            owner,
		Name:             name,
		IsActive:         true,
		MinRewardAmount:  minReward,
		MinQuestionCount: minQuestions,
		CreatedAt:        ctx.BlockTime().Unix(),
	})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTopicCreated,
			sdk.NewAttribute(types.AttributeKeyTopic, name),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
		),
	)
	return nil
}

// UpdateTopic transfers ownership and/or toggles the active flag. Only the
// current owner may update.
func (k Keeper) UpdateTopic(ctx sdk.Context, owner, name, newOwner string, active bool) error {
	topic, found := k.GetTopic(ctx, name)
	if !found {
		return types.ErrTopicNotFound.Wrap(name)
	}
	if topic.Owner != owner {
		return types.ErrNotTopicOwner.Wrapf("topic %q is owned by %s", name, topic.Owner)
	}

	if newOwner != "" {
		topic.Owner = newOwner
	}
	topic.IsActive = active
	k.SetTopic(ctx, topic)

	event := sdk.NewEvent(
		types.EventTypeTopicUpdated,
		sdk.NewAttribute(types.AttributeKeyTopic, name),
		sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", active)),
	)
	if newOwner != "" {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyNewOwner, newOwner))
	}
	ctx.EventManager().EmitEvent(event)
	return nil
}

// GetTopic returns a topic by name.
func (k Keeper) GetTopic(ctx sdk.Context, name string) (types.Topic, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.TopicKey(name))
	if bz == nil {
		return types.Topic{}, false
	}
	var topic types.Topic
	if err := json.Unmarshal(bz, &topic); err != nil {
		panic(fmt.Sprintf("quiz: corrupt topic record %q: %v", name, err))
	}
	return topic, true
}

// SetTopic stores a topic.
func (k Keeper) SetTopic(ctx sdk.Context, topic types.Topic) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(topic)
	if err != nil {
		panic(fmt.Sprintf("quiz: marshal topic %q: %v", topic.Name, err))
	}
	store.Set(types.TopicKey(topic.Name), bz)
}

// IterateTopics walks all topics in name order. The callback returns true to
// stop.
func (k Keeper) IterateTopics(ctx sdk.Context, cb func(types.Topic) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.TopicKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var topic types.Topic
		if err := json.Unmarshal(iterator.Value(), &topic); err != nil {
			panic(fmt.Sprintf("quiz: corrupt topic record: %v", err))
		}
		if cb(topic) {
			break
		}
	}
}
