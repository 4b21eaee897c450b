package keeper

import (
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	computetypes "github.com/hoot-chain/hoot/x/compute/types"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// AddQuestionBlock stores one encrypted question. Blocks can only be added
// while the quiz set is uninitialized; storing the block at index
// question_count flips is_initialized permanently.
func (k Keeper) AddQuestionBlock(ctx sdk.Context, authority string, block types.QuestionBlock) error {
	quiz, found := k.GetQuizSet(ctx, block.QuizId)
	if !found {
		return types.ErrQuizSetNotFound.Wrapf("id %d", block.QuizId)
	}
	if quiz.Authority != authority {
		return types.ErrUnauthorized.Wrapf("quiz %d belongs to %s", quiz.Id, quiz.Authority)
	}
	if quiz.IsInitialized {
		return types.ErrQuizSetAlreadyInitialized.Wrapf("quiz %d", quiz.Id)
	}
	if err := block.Validate(); err != nil {
		return err
	}
	if block.QuestionIndex > quiz.QuestionCount {
		return types.ErrInvalidQuestionIndex.Wrapf(
			"index %d above question count %d", block.QuestionIndex, quiz.QuestionCount)
	}
	if _, exists := k.GetQuestionBlock(ctx, block.QuizId, block.QuestionIndex); exists {
		return types.ErrQuestionBlockExists.Wrapf("quiz %d, index %d", block.QuizId, block.QuestionIndex)
	}

	block.CreatedAt = ctx.BlockTime().Unix()
	k.SetQuestionBlock(ctx, block)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeQuestionBlockAdded,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", block.QuizId)),
			sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", block.QuestionIndex)),
		),
	)

	if block.QuestionIndex == quiz.QuestionCount {
		quiz.IsInitialized = true
		k.SetQuizSet(ctx, quiz)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeQuizInitialized,
				sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quiz.Id)),
				sdk.NewAttribute(types.AttributeKeyQuestionCount, fmt.Sprintf("%d", quiz.QuestionCount)),
			),
		)
	}
	return nil
}

// GetQuestionBlock returns one question block.
func (k Keeper) GetQuestionBlock(ctx sdk.Context, quizID uint64, questionIndex uint32) (types.QuestionBlock, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.QuestionBlockKey(quizID, questionIndex))
	if bz == nil {
		return types.QuestionBlock{}, false
	}
	var block types.QuestionBlock
	if err := json.Unmarshal(bz, &block); err != nil {
		panic(fmt.Sprintf("quiz: corrupt question block %d/%d: %v", quizID, questionIndex, err))
	}
	return block, true
}

// SetQuestionBlock stores a question block.
func (k Keeper) SetQuestionBlock(ctx sdk.Context, block types.QuestionBlock) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(block)
	if err != nil {
		panic(fmt.Sprintf("quiz: marshal question block %d/%d: %v", block.QuizId, block.QuestionIndex, err))
	}
	store.Set(types.QuestionBlockKey(block.QuizId, block.QuestionIndex), bz)
}

// IterateQuestionBlocks walks the blocks of one quiz in index order. The
// callback returns true to stop.
func (k Keeper) IterateQuestionBlocks(ctx sdk.Context, quizID uint64, cb func(types.QuestionBlock) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.QuestionBlocksByQuizPrefix(quizID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var block types.QuestionBlock
		if err := json.Unmarshal(iterator.Value(), &block); err != nil {
			panic(fmt.Sprintf("quiz: corrupt question block record: %v", err))
		}
		if cb(block) {
			break
		}
	}
}

// IterateAllQuestionBlocks walks every stored question block.
func (k Keeper) IterateAllQuestionBlocks(ctx sdk.Context, cb func(types.QuestionBlock) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.QuestionBlockKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var block types.QuestionBlock
		if err := json.Unmarshal(iterator.Value(), &block); err != nil {
			panic(fmt.Sprintf("quiz: corrupt question block record: %v", err))
		}
		if cb(block) {
			break
		}
	}
}

// EncryptQuestion queues off-chain encryption of question material. The
// plaintext travels in the computation payload only; chain state never holds
// it.
func (k Keeper) EncryptQuestion(ctx sdk.Context, authority string, quizID uint64, questionIndex uint32, questionText string, nonce []byte) (uint64, error) {
	params := k.GetParams(ctx)
	if err := types.ValidateText(questionText, params.MaxQuestionTextLength); err != nil {
		return 0, err
	}
	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return 0, types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}
	if quiz.Authority != authority {
		return 0, types.ErrUnauthorized.Wrapf("quiz %d belongs to %s", quiz.Id, quiz.Authority)
	}
	if questionIndex == 0 || questionIndex > quiz.QuestionCount {
		return 0, types.ErrInvalidQuestionIndex.Wrapf(
			"index %d, quiz has %d questions", questionIndex, quiz.QuestionCount)
	}

	computationID, err := k.computeKeeper.Queue(ctx, computetypes.QueueRequest{
		Circuit:       types.CircuitEncryptQuestion,
		QuizId:        quizID,
		QuestionIndex: questionIndex,
		Requester:     authority,
		Payload:       []byte(questionText),
		Nonce:         nonce,
	})
	if err != nil {
		return 0, err
	}
	return computationID, nil
}

// DecryptQuestion queues off-chain decryption of a stored question block for
// the quiz authority.
func (k Keeper) DecryptQuestion(ctx sdk.Context, authority string, quizID uint64, questionIndex uint32) (uint64, error) {
	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return 0, types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}
	if quiz.Authority != authority {
		return 0, types.ErrUnauthorized.Wrapf("quiz %d belongs to %s", quiz.Id, quiz.Authority)
	}
	block, found := k.GetQuestionBlock(ctx, quizID, questionIndex)
	if !found {
		return 0, types.ErrQuestionBlockNotFound.Wrapf("quiz %d, index %d", quizID, questionIndex)
	}

	payload := make([]byte, 0, len(block.EncryptedX)+len(block.EncryptedY))
	payload = append(payload, block.EncryptedX...)
	payload = append(payload, block.EncryptedY...)

	computationID, err := k.computeKeeper.Queue(ctx, computetypes.QueueRequest{
		Circuit:       types.CircuitDecryptQuestion,
		QuizId:        quizID,
		QuestionIndex: questionIndex,
		Requester:     authority,
		Payload:       payload,
		Nonce:         block.Nonce,
	})
	if err != nil {
		return 0, err
	}
	return computationID, nil
}
