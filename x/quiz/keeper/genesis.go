package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// InitGenesis initializes the quiz module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("quiz: invalid genesis: %v", err))
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, topic := range genState.Topics {
		k.SetTopic(ctx, topic)
	}
	for _, quiz := range genState.QuizSets {
		k.SetQuizSet(ctx, quiz)
		k.setQuizIDByAuthority(ctx, quiz.Authority, quiz.UniqueId, quiz.Id)
	}
	for _, block := range genState.QuestionBlocks {
		k.SetQuestionBlock(ctx, block)
	}
	for _, idx := range genState.AnsweredIndexes {
		k.setAnsweredIndex(ctx, idx.QuizId, idx.QuestionIndex)
	}
	k.setNextQuizID(ctx, genState.NextQuizId)

	// The module account must exist so the vault can hold escrowed rewards.
	k.accountKeeper.GetModuleAccount(ctx, types.ModuleName)
}

// ExportGenesis exports the quiz module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:     k.GetParams(ctx),
		NextQuizId: k.peekNextQuizID(ctx),
	}
	k.IterateTopics(ctx, func(topic types.Topic) bool {
		genState.Topics = append(genState.Topics, topic)
		return false
	})
	k.IterateQuizSets(ctx, func(quiz types.QuizSet) bool {
		genState.QuizSets = append(genState.QuizSets, quiz)
		k.IterateAnsweredIndexes(ctx, quiz.Id, func(questionIndex uint32) bool {
			genState.AnsweredIndexes = append(genState.AnsweredIndexes, types.AnsweredIndex{
				QuizId:        quiz.Id,
				QuestionIndex: questionIndex,
			})
			return false
		})
		return false
	})
	k.IterateAllQuestionBlocks(ctx, func(block types.QuestionBlock) bool {
		genState.QuestionBlocks = append(genState.QuestionBlocks, block)
		return false
	})
	return genState
}
