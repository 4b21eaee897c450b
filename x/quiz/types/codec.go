package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the quiz module messages with the
// legacy amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateTopic{}, "hoot/quiz/CreateTopic", nil)
	cdc.RegisterConcrete(&MsgUpdateTopic{}, "hoot/quiz/UpdateTopic", nil)
	cdc.RegisterConcrete(&MsgCreateQuizSet{}, "hoot/quiz/CreateQuizSet", nil)
	cdc.RegisterConcrete(&MsgAddQuestionBlock{}, "hoot/quiz/AddQuestionBlock", nil)
	cdc.RegisterConcrete(&MsgSubmitAnswer{}, "hoot/quiz/SubmitAnswer", nil)
	cdc.RegisterConcrete(&MsgClaimReward{}, "hoot/quiz/ClaimReward", nil)
	cdc.RegisterConcrete(&MsgForceComplete{}, "hoot/quiz/ForceComplete", nil)
	cdc.RegisterConcrete(&MsgEncryptQuestion{}, "hoot/quiz/EncryptQuestion", nil)
	cdc.RegisterConcrete(&MsgDecryptQuestion{}, "hoot/quiz/DecryptQuestion", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "hoot/quiz/UpdateParams", nil)
}

// RegisterInterfaces registers the quiz module messages with the interface
// registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateTopic{},
		&MsgUpdateTopic{},
		&MsgCreateQuizSet{},
		&MsgAddQuestionBlock{},
		&MsgSubmitAnswer{},
		&MsgClaimReward{},
		&MsgForceComplete{},
		&MsgEncryptQuestion{},
		&MsgDecryptQuestion{},
		&MsgUpdateParams{},
	)
	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}
