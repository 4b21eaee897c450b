package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	computetypes "github.com/hoot-chain/hoot/x/compute/types"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

var _ computetypes.ResultHandler = Keeper{}

// HandleComputationResult consumes successful evaluator results routed by
// the compute gateway. Answer verdicts settle the quiz; encrypt and decrypt
// results are informational and only emit events.
func (k Keeper) HandleComputationResult(ctx sdk.Context, delivery computetypes.ResultDelivery) error {
	switch delivery.Pending.Circuit {
	case types.CircuitValidateAnswer:
		return k.settleAnswer(ctx, delivery)
	case types.CircuitEncryptQuestion:
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeQuestionEncrypted,
				sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", delivery.Pending.QuizId)),
				sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", delivery.Pending.QuestionIndex)),
			),
		)
		return nil
	case types.CircuitDecryptQuestion:
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeQuestionDecrypted,
				sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", delivery.Pending.QuizId)),
				sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", delivery.Pending.QuestionIndex)),
			),
		)
		return nil
	default:
		return computetypes.ErrNoHandler.Wrap(delivery.Pending.Circuit)
	}
}

// settleAnswer applies one answer verdict. The transitions are:
//   - wrong answer: event only, nothing changes
//   - correct, index already credited: event only (duplicate delivery)
//   - correct, new index: credit once; crossing question_count sets the
//     winner via compare-and-set
//   - quiz already completed: the callback is absorbed as an event
//
// Verdicts are delivered in arbitrary order; crediting is keyed by question
// index, so order never affects the outcome.
func (k Keeper) settleAnswer(ctx sdk.Context, delivery computetypes.ResultDelivery) error {
	quizID := delivery.Pending.QuizId
	questionIndex := delivery.Pending.QuestionIndex
	player := delivery.Pending.Requester

	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}

	isCorrect := extractVerdict(delivery.Output)

	emitVerdict := func(credited bool) {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAnswerVerified,
				sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quizID)),
				sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", questionIndex)),
				sdk.NewAttribute(types.AttributeKeyPlayer, player),
				sdk.NewAttribute(types.AttributeKeyIsCorrect, fmt.Sprintf("%t", isCorrect && credited)),
				sdk.NewAttribute(types.AttributeKeyProgress,
					fmt.Sprintf("%d/%d", quiz.CorrectAnswersCount, quiz.QuestionCount)),
			),
		)
	}

	verdictLabel := "wrong"
	if isCorrect {
		verdictLabel = "correct"
	}
	k.metrics.AnswersVerified.WithLabelValues(verdictLabel).Inc()

	// A completed quiz absorbs any further verdicts.
	if quiz.IsCompleted() {
		emitVerdict(false)
		return nil
	}

	if !isCorrect {
		emitVerdict(false)
		return nil
	}

	// Duplicate delivery of an already-credited index is a no-op.
	if k.hasAnsweredIndex(ctx, quizID, questionIndex) {
		emitVerdict(false)
		return nil
	}

	k.setAnsweredIndex(ctx, quizID, questionIndex)
	quiz.CorrectAnswersCount++
	emitVerdict(true)

	if quiz.CorrectAnswersCount == quiz.QuestionCount {
		if err := k.setWinner(ctx, &quiz, player); err != nil {
			return err
		}
	}
	k.SetQuizSet(ctx, quiz)
	return nil
}

// setWinner sets the quiz winner exactly once. The second caller loses.
func (k Keeper) setWinner(ctx sdk.Context, quiz *types.QuizSet, winner string) error {
	if quiz.Winner != "" {
		return types.ErrWinnerAlreadySet.Wrapf("quiz %d was won by %s", quiz.Id, quiz.Winner)
	}
	quiz.Winner = winner

	k.metrics.QuizzesCompleted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeQuizCompleted,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quiz.Id)),
			sdk.NewAttribute(types.AttributeKeyWinner, winner),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, quiz.RewardAmount.String()),
		),
	)
	return nil
}

// ForceComplete is the governance escape hatch for a quiz stranded active by
// a lost callback. It refuses to overwrite an existing winner.
func (k Keeper) ForceComplete(ctx sdk.Context, authority string, quizID uint64, winner string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}
	if !quiz.IsInitialized {
		return types.ErrQuizSetNotInitialized.Wrapf("quiz %d", quizID)
	}
	if err := k.setWinner(ctx, &quiz, winner); err != nil {
		return err
	}
	k.SetQuizSet(ctx, quiz)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeQuizForceCompleted,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quizID)),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
			sdk.NewAttribute(types.AttributeKeyWinner, winner),
		),
	)
	return nil
}

// extractVerdict decodes the evaluator's boolean output: a non-empty byte
// slice whose first byte is 1 means the answer matched.
func extractVerdict(output []byte) bool {
	return len(output) > 0 && output[0] == 1
}

func (k Keeper) hasAnsweredIndex(ctx sdk.Context, quizID uint64, questionIndex uint32) bool {
	store := k.getStore(ctx)
	return store.Has(types.AnsweredIndexKey(quizID, questionIndex))
}

func (k Keeper) setAnsweredIndex(ctx sdk.Context, quizID uint64, questionIndex uint32) {
	store := k.getStore(ctx)
	store.Set(types.AnsweredIndexKey(quizID, questionIndex), []byte{1})
}

// IterateAnsweredIndexes walks the credited markers of one quiz. The
// callback returns true to stop.
func (k Keeper) IterateAnsweredIndexes(ctx sdk.Context, quizID uint64, cb func(questionIndex uint32) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AnsweredIndexesByQuizPrefix(quizID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		// prefix(1) + quiz id(8) + question index(4)
		idx := key[len(key)-4:]
		questionIndex := uint32(idx[0])<<24 | uint32(idx[1])<<16 | uint32(idx[2])<<8 | uint32(idx[3])
		if cb(questionIndex) {
			break
		}
	}
}

// CountAnsweredIndexes returns the number of credited markers of one quiz.
func (k Keeper) CountAnsweredIndexes(ctx sdk.Context, quizID uint64) uint32 {
	var count uint32
	k.IterateAnsweredIndexes(ctx, quizID, func(uint32) bool {
		count++
		return false
	})
	return count
}
