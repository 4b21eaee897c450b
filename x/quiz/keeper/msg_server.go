package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the quiz MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateTopic handles topic creation.
func (k msgServer) CreateTopic(goCtx context.Context, msg *types.MsgCreateTopic) (*types.MsgCreateTopicResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.CreateTopic(ctx, msg.Owner, msg.Name, msg.MinRewardAmount, msg.MinQuestionCount); err != nil {
		return nil, err
	}
	return &types.MsgCreateTopicResponse{}, nil
}

// UpdateTopic handles ownership transfer and active toggling.
func (k msgServer) UpdateTopic(goCtx context.Context, msg *types.MsgUpdateTopic) (*types.MsgUpdateTopicResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateTopic(ctx, msg.Owner, msg.Name, msg.NewOwner, msg.Active); err != nil {
		return nil, err
	}
	return &types.MsgUpdateTopicResponse{}, nil
}

// CreateQuizSet handles quiz set creation and vault funding.
func (k msgServer) CreateQuizSet(goCtx context.Context, msg *types.MsgCreateQuizSet) (*types.MsgCreateQuizSetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	quizID, err := k.Keeper.CreateQuizSet(ctx, authority, msg.Topic, msg.Name, msg.QuestionCount, msg.RewardAmount, msg.UniqueId)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateQuizSetResponse{QuizId: quizID}, nil
}

// AddQuestionBlock handles question ciphertext storage.
func (k msgServer) AddQuestionBlock(goCtx context.Context, msg *types.MsgAddQuestionBlock) (*types.MsgAddQuestionBlockResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	block := types.QuestionBlock{
		QuizId:          msg.QuizId,
		QuestionIndex:   msg.QuestionIndex,
		EncryptedX:      msg.EncryptedX,
		EncryptedY:      msg.EncryptedY,
		EvaluatorPubkey: msg.EvaluatorPubkey,
		Nonce:           msg.Nonce,
	}
	if err := k.Keeper.AddQuestionBlock(ctx, msg.Authority, block); err != nil {
		return nil, err
	}
	return &types.MsgAddQuestionBlockResponse{}, nil
}

// SubmitAnswer handles answer submission.
func (k msgServer) SubmitAnswer(goCtx context.Context, msg *types.MsgSubmitAnswer) (*types.MsgSubmitAnswerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	computationID, err := k.Keeper.SubmitAnswer(ctx, msg.Player, msg.QuizId, msg.QuestionIndex, msg.Answer)
	if err != nil {
		return nil, err
	}
	return &types.MsgSubmitAnswerResponse{ComputationId: computationID}, nil
}

// ClaimReward handles the winner's payout.
func (k msgServer) ClaimReward(goCtx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := k.Keeper.ClaimReward(ctx, claimer, msg.QuizId); err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardResponse{}, nil
}

// ForceComplete handles the governance escape hatch.
func (k msgServer) ForceComplete(goCtx context.Context, msg *types.MsgForceComplete) (*types.MsgForceCompleteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.ForceComplete(ctx, msg.Authority, msg.QuizId, msg.Winner); err != nil {
		return nil, err
	}
	return &types.MsgForceCompleteResponse{}, nil
}

// EncryptQuestion handles off-chain encryption requests.
func (k msgServer) EncryptQuestion(goCtx context.Context, msg *types.MsgEncryptQuestion) (*types.MsgEncryptQuestionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	computationID, err := k.Keeper.EncryptQuestion(ctx, msg.Authority, msg.QuizId, msg.QuestionIndex, msg.QuestionText, msg.Nonce)
	if err != nil {
		return nil, err
	}
	return &types.MsgEncryptQuestionResponse{ComputationId: computationID}, nil
}

// DecryptQuestion handles off-chain decryption requests.
func (k msgServer) DecryptQuestion(goCtx context.Context, msg *types.MsgDecryptQuestion) (*types.MsgDecryptQuestionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	computationID, err := k.Keeper.DecryptQuestion(ctx, msg.Authority, msg.QuizId, msg.QuestionIndex)
	if err != nil {
		return nil, err
	}
	return &types.MsgDecryptQuestionResponse{ComputationId: computationID}, nil
}

// UpdateParams handles authority-gated parameter updates.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateParams(ctx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
