package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgDeliverResult      = "deliver_result"
	TypeMsgRegisterEvaluator  = "register_evaluator"
	TypeMsgSetEvaluatorStatus = "set_evaluator_status"
	TypeMsgUpdateParams       = "update_params"
)

// MsgDeliverResult is the evaluator cluster's callback for a queued
// computation. Success carries the circuit output; failure carries nothing
// and aborts the computation.
type MsgDeliverResult struct {
	Evaluator     string `json:"evaluator"`
	ComputationId uint64 `json:"computation_id"`
	Success       bool   `json:"success"`
	Output        []byte `json:"output,omitempty"`
}

func NewMsgDeliverResult(evaluator string, computationID uint64, success bool, output []byte) *MsgDeliverResult {
	return &MsgDeliverResult{
		Evaluator:     evaluator,
		ComputationId: computationID,
		Success:       success,
		Output:        output,
	}
}

func (msg *MsgDeliverResult) Route() string { return RouterKey }
func (msg *MsgDeliverResult) Type() string  { return TypeMsgDeliverResult }

func (msg *MsgDeliverResult) GetSigners() []sdk.AccAddress {
	evaluator, err := sdk.AccAddressFromBech32(msg.Evaluator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{evaluator}
}

func (msg *MsgDeliverResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Evaluator); err != nil {
		return ErrInvalidAddress.Wrapf("evaluator: %s", err)
	}
	if msg.Success && len(msg.Output) == 0 {
		return ErrInvalidArgument.Wrap("successful result must carry output")
	}
	if !msg.Success && len(msg.Output) != 0 {
		return ErrInvalidArgument.Wrap("aborted result must not carry output")
	}
	return nil
}

type MsgDeliverResultResponse struct{}

// MsgRegisterEvaluator adds a cluster member to the evaluator registry.
// Only the chain authority may register evaluators.
type MsgRegisterEvaluator struct {
	Authority        string `json:"authority"`
	EvaluatorAddress string `json:"evaluator_address"`
	Moniker          string `json:"moniker"`
}

func NewMsgRegisterEvaluator(authority, evaluatorAddress, moniker string) *MsgRegisterEvaluator {
	return &MsgRegisterEvaluator{
		Authority:        authority,
		EvaluatorAddress: evaluatorAddress,
		Moniker:          moniker,
	}
}

func (msg *MsgRegisterEvaluator) Route() string { return RouterKey }
func (msg *MsgRegisterEvaluator) Type() string  { return TypeMsgRegisterEvaluator }

func (msg *MsgRegisterEvaluator) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgRegisterEvaluator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.EvaluatorAddress); err != nil {
		return ErrInvalidAddress.Wrapf("evaluator: %s", err)
	}
	if msg.Moniker == "" {
		return ErrInvalidArgument.Wrap("moniker cannot be empty")
	}
	return nil
}

type MsgRegisterEvaluatorResponse struct{}

// MsgSetEvaluatorStatus activates or deactivates a registered evaluator.
type MsgSetEvaluatorStatus struct {
	Authority        string `json:"authority"`
	EvaluatorAddress string `json:"evaluator_address"`
	Active           bool   `json:"active"`
}

func NewMsgSetEvaluatorStatus(authority, evaluatorAddress string, active bool) *MsgSetEvaluatorStatus {
	return &MsgSetEvaluatorStatus{
		Authority:        authority,
		EvaluatorAddress: evaluatorAddress,
		Active:           active,
	}
}

func (msg *MsgSetEvaluatorStatus) Route() string { return RouterKey }
func (msg *MsgSetEvaluatorStatus) Type() string  { return TypeMsgSetEvaluatorStatus }

func (msg *MsgSetEvaluatorStatus) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetEvaluatorStatus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.EvaluatorAddress); err != nil {
		return ErrInvalidAddress.Wrapf("evaluator: %s", err)
	}
	return nil
}

type MsgSetEvaluatorStatusResponse struct{}

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg *MsgUpdateParams) Route() string { return RouterKey }
func (msg *MsgUpdateParams) Type() string  { return TypeMsgUpdateParams }

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if err := msg.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	return nil
}

type MsgUpdateParamsResponse struct{}
