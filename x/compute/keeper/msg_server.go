package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the compute MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// DeliverResult handles the evaluator cluster callback.
func (k msgServer) DeliverResult(goCtx context.Context, msg *types.MsgDeliverResult) (*types.MsgDeliverResultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.DeliverResult(ctx, msg.Evaluator, msg.ComputationId, msg.Success, msg.Output); err != nil {
		return nil, err
	}
	return &types.MsgDeliverResultResponse{}, nil
}

// RegisterEvaluator handles authority-gated evaluator registration.
func (k msgServer) RegisterEvaluator(goCtx context.Context, msg *types.MsgRegisterEvaluator) (*types.MsgRegisterEvaluatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.RegisterEvaluator(ctx, msg.Authority, msg.EvaluatorAddress, msg.Moniker); err != nil {
		return nil, err
	}
	return &types.MsgRegisterEvaluatorResponse{}, nil
}

// SetEvaluatorStatus handles authority-gated evaluator activation toggles.
func (k msgServer) SetEvaluatorStatus(goCtx context.Context, msg *types.MsgSetEvaluatorStatus) (*types.MsgSetEvaluatorStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetEvaluatorStatus(ctx, msg.Authority, msg.EvaluatorAddress, msg.Active); err != nil {
		return nil, err
	}
	return &types.MsgSetEvaluatorStatusResponse{}, nil
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
