package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the compute module messages with the
// legacy amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeliverResult{}, "hoot/compute/DeliverResult", nil)
	cdc.RegisterConcrete(&MsgRegisterEvaluator{}, "hoot/compute/RegisterEvaluator", nil)
	cdc.RegisterConcrete(&MsgSetEvaluatorStatus{}, "hoot/compute/SetEvaluatorStatus", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "hoot/compute/UpdateParams", nil)
}

// RegisterInterfaces registers the compute module messages with the
// interface registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDeliverResult{},
		&MsgRegisterEvaluator{},
		&MsgSetEvaluatorStatus{},
		&MsgUpdateParams{},
	)
	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}
