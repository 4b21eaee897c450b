package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	computetypes "github.com/hoot-chain/hoot/x/compute/types"
	"github.com/hoot-chain/hoot/x/quiz/types"
)

// SubmitAnswer queues a player's answer for confidential validation. The
// quiz itself does not change here; settlement happens when the verdict
// comes back through the gateway.
func (k Keeper) SubmitAnswer(ctx sdk.Context, player string, quizID uint64, questionIndex uint32, answer string) (uint64, error) {
	params := k.GetParams(ctx)
	if err := types.ValidateText(answer, params.MaxAnswerLength); err != nil {
		return 0, err
	}

	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return 0, types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}
	if !quiz.IsInitialized {
		return 0, types.ErrQuizSetNotInitialized.Wrapf("quiz %d", quizID)
	}
	if quiz.IsCompleted() {
		return 0, types.ErrQuizCompleted.Wrapf("quiz %d was won by %s", quizID, quiz.Winner)
	}
	if questionIndex == 0 || questionIndex > quiz.QuestionCount {
		return 0, types.ErrInvalidQuestionIndex.Wrapf(
			"index %d, quiz has %d questions", questionIndex, quiz.QuestionCount)
	}
	block, found := k.GetQuestionBlock(ctx, quizID, questionIndex)
	if !found {
		return 0, types.ErrQuestionBlockNotFound.Wrapf("quiz %d, index %d", quizID, questionIndex)
	}

	// Fixed-width payload so answer length leaks nothing beyond the cap.
	payload := make([]byte, params.MaxAnswerLength)
	copy(payload, answer)

	computationID, err := k.computeKeeper.Queue(ctx, computetypes.QueueRequest{
		Circuit:       types.CircuitValidateAnswer,
		QuizId:        quizID,
		QuestionIndex: questionIndex,
		Requester:     player,
		Payload:       payload,
		Nonce:         block.Nonce,
	})
	if err != nil {
		return 0, err
	}

	k.metrics.AnswersSubmitted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAnswerSubmitted,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quizID)),
			sdk.NewAttribute(types.AttributeKeyQuestionIndex, fmt.Sprintf("%d", questionIndex)),
			sdk.NewAttribute(types.AttributeKeyPlayer, player),
			sdk.NewAttribute(types.AttributeKeyComputationID, fmt.Sprintf("%d", computationID)),
		),
	)
	return computationID, nil
}
