package types

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/gogoproto/proto"
)

// The chain does not use generated protobuf code. Message types satisfy
// proto.Message (and the gogoproto Marshaler/Unmarshaler fast paths) by hand,
// with JSON as the wire encoding. Type URLs are fixed by the registrations in
// init below.

func init() {
	proto.RegisterType(&MsgCreateTopic{}, "hoot.quiz.v1.MsgCreateTopic")
	proto.RegisterType(&MsgCreateTopicResponse{}, "hoot.quiz.v1.MsgCreateTopicResponse")
	proto.RegisterType(&MsgUpdateTopic{}, "hoot.quiz.v1.MsgUpdateTopic")
	proto.RegisterType(&MsgUpdateTopicResponse{}, "hoot.quiz.v1.MsgUpdateTopicResponse")
	proto.RegisterType(&MsgCreateQuizSet{}, "hoot.quiz.v1.MsgCreateQuizSet")
	proto.RegisterType(&MsgCreateQuizSetResponse{}, "hoot.quiz.v1.MsgCreateQuizSetResponse")
	proto.RegisterType(&MsgAddQuestionBlock{}, "hoot.quiz.v1.MsgAddQuestionBlock")
	proto.RegisterType(&MsgAddQuestionBlockResponse{}, "hoot.quiz.v1.MsgAddQuestionBlockResponse")
	proto.RegisterType(&MsgSubmitAnswer{}, "hoot.quiz.v1.MsgSubmitAnswer")
	proto.RegisterType(&MsgSubmitAnswerResponse{}, "hoot.quiz.v1.MsgSubmitAnswerResponse")
	proto.RegisterType(&MsgClaimReward{}, "hoot.quiz.v1.MsgClaimReward")
	proto.RegisterType(&MsgClaimRewardResponse{}, "hoot.quiz.v1.MsgClaimRewardResponse")
	proto.RegisterType(&MsgForceComplete{}, "hoot.quiz.v1.MsgForceComplete")
	proto.RegisterType(&MsgForceCompleteResponse{}, "hoot.quiz.v1.MsgForceCompleteResponse")
	proto.RegisterType(&MsgEncryptQuestion{}, "hoot.quiz.v1.MsgEncryptQuestion")
	proto.RegisterType(&MsgEncryptQuestionResponse{}, "hoot.quiz.v1.MsgEncryptQuestionResponse")
	proto.RegisterType(&MsgDecryptQuestion{}, "hoot.quiz.v1.MsgDecryptQuestion")
	proto.RegisterType(&MsgDecryptQuestionResponse{}, "hoot.quiz.v1.MsgDecryptQuestionResponse")
	proto.RegisterType(&MsgUpdateParams{}, "hoot.quiz.v1.MsgUpdateParams")
	proto.RegisterType(&MsgUpdateParamsResponse{}, "hoot.quiz.v1.MsgUpdateParamsResponse")
}

func (m *MsgCreateTopic) Reset()                  { *m = MsgCreateTopic{} }
func (m *MsgCreateTopic) String() string          { return jsonString(m) }
func (*MsgCreateTopic) ProtoMessage()             {}
func (m *MsgCreateTopic) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgCreateTopic) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateTopic) Size() int               { return jsonSize(m) }

func (m *MsgCreateTopicResponse) Reset()                  { *m = MsgCreateTopicResponse{} }
func (m *MsgCreateTopicResponse) String() string          { return jsonString(m) }
func (*MsgCreateTopicResponse) ProtoMessage()             {}
func (m *MsgCreateTopicResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgCreateTopicResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateTopicResponse) Size() int               { return jsonSize(m) }

func (m *MsgUpdateTopic) Reset()                  { *m = MsgUpdateTopic{} }
func (m *MsgUpdateTopic) String() string          { return jsonString(m) }
func (*MsgUpdateTopic) ProtoMessage()             {}
func (m *MsgUpdateTopic) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgUpdateTopic) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateTopic) Size() int               { return jsonSize(m) }

func (m *MsgUpdateTopicResponse) Reset()                  { *m = MsgUpdateTopicResponse{} }
func (m *MsgUpdateTopicResponse) String() string          { return jsonString(m) }
func (*MsgUpdateTopicResponse) ProtoMessage()             {}
func (m *MsgUpdateTopicResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgUpdateTopicResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateTopicResponse) Size() int               { return jsonSize(m) }

func (m *MsgCreateQuizSet) Reset()                  { *m = MsgCreateQuizSet{} }
func (m *MsgCreateQuizSet) String() string          { return jsonString(m) }
func (*MsgCreateQuizSet) ProtoMessage()             {}
func (m *MsgCreateQuizSet) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgCreateQuizSet) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateQuizSet) Size() int               { return jsonSize(m) }

func (m *MsgCreateQuizSetResponse) Reset()                  { *m = MsgCreateQuizSetResponse{} }
func (m *MsgCreateQuizSetResponse) String() string          { return jsonString(m) }
func (*MsgCreateQuizSetResponse) ProtoMessage()             {}
func (m *MsgCreateQuizSetResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgCreateQuizSetResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateQuizSetResponse) Size() int               { return jsonSize(m) }

func (m *MsgAddQuestionBlock) Reset()                  { *m = MsgAddQuestionBlock{} }
func (m *MsgAddQuestionBlock) String() string          { return jsonString(m) }
func (*MsgAddQuestionBlock) ProtoMessage()             {}
func (m *MsgAddQuestionBlock) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgAddQuestionBlock) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAddQuestionBlock) Size() int               { return jsonSize(m) }

func (m *MsgAddQuestionBlockResponse) Reset()                  { *m = MsgAddQuestionBlockResponse{} }
func (m *MsgAddQuestionBlockResponse) String() string          { return jsonString(m) }
func (*MsgAddQuestionBlockResponse) ProtoMessage()             {}
func (m *MsgAddQuestionBlockResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgAddQuestionBlockResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAddQuestionBlockResponse) Size() int               { return jsonSize(m) }

func (m *MsgSubmitAnswer) Reset()                  { *m = MsgSubmitAnswer{} }
func (m *MsgSubmitAnswer) String() string          { return jsonString(m) }
func (*MsgSubmitAnswer) ProtoMessage()             {}
func (m *MsgSubmitAnswer) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSubmitAnswer) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitAnswer) Size() int               { return jsonSize(m) }

func (m *MsgSubmitAnswerResponse) Reset()                  { *m = MsgSubmitAnswerResponse{} }
func (m *MsgSubmitAnswerResponse) String() string          { return jsonString(m) }
func (*MsgSubmitAnswerResponse) ProtoMessage()             {}
func (m *MsgSubmitAnswerResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSubmitAnswerResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitAnswerResponse) Size() int               { return jsonSize(m) }

func (m *MsgClaimReward) Reset()                  { *m = MsgClaimReward{} }
func (m *MsgClaimReward) String() string          { return jsonString(m) }
func (*MsgClaimReward) ProtoMessage()             {}
func (m *MsgClaimReward) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgClaimReward) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgClaimReward) Size() int               { return jsonSize(m) }

func (m *MsgClaimRewardResponse) Reset()                  { *m = MsgClaimRewardResponse{} }
func (m *MsgClaimRewardResponse) String() string          { return jsonString(m) }
func (*MsgClaimRewardResponse) ProtoMessage()             {}
func (m *MsgClaimRewardResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgClaimRewardResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgClaimRewardResponse) Size() int               { return jsonSize(m) }

func (m *MsgForceComplete) Reset()                  { *m = MsgForceComplete{} }
func (m *MsgForceComplete) String() string          { return jsonString(m) }
func (*MsgForceComplete) ProtoMessage()             {}
func (m *MsgForceComplete) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgForceComplete) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgForceComplete) Size() int               { return jsonSize(m) }

func (m *MsgForceCompleteResponse) Reset()                  { *m = MsgForceCompleteResponse{} }
func (m *MsgForceCompleteResponse) String() string          { return jsonString(m) }
func (*MsgForceCompleteResponse) ProtoMessage()             {}
func (m *MsgForceCompleteResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgForceCompleteResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgForceCompleteResponse) Size() int               { return jsonSize(m) }

func (m *MsgEncryptQuestion) Reset()                  { *m = MsgEncryptQuestion{} }
func (m *MsgEncryptQuestion) String() string          { return jsonString(m) }
func (*MsgEncryptQuestion) ProtoMessage()             {}
func (m *MsgEncryptQuestion) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgEncryptQuestion) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgEncryptQuestion) Size() int               { return jsonSize(m) }

func (m *MsgEncryptQuestionResponse) Reset()                  { *m = MsgEncryptQuestionResponse{} }
func (m *MsgEncryptQuestionResponse) String() string          { return jsonString(m) }
func (*MsgEncryptQuestionResponse) ProtoMessage()             {}
func (m *MsgEncryptQuestionResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgEncryptQuestionResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgEncryptQuestionResponse) Size() int               { return jsonSize(m) }

func (m *MsgDecryptQuestion) Reset()                  { *m = MsgDecryptQuestion{} }
func (m *MsgDecryptQuestion) String() string          { return jsonString(m) }
func (*MsgDecryptQuestion) ProtoMessage()             {}
func (m *MsgDecryptQuestion) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgDecryptQuestion) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgDecryptQuestion) Size() int               { return jsonSize(m) }

func (m *MsgDecryptQuestionResponse) Reset()                  { *m = MsgDecryptQuestionResponse{} }
func (m *MsgDecryptQuestionResponse) String() string          { return jsonString(m) }
func (*MsgDecryptQuestionResponse) ProtoMessage()             {}
func (m *MsgDecryptQuestionResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgDecryptQuestionResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgDecryptQuestionResponse) Size() int               { return jsonSize(m) }

func (m *MsgUpdateParams) Reset()                  { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string          { return jsonString(m) }
func (*MsgUpdateParams) ProtoMessage()             {}
func (m *MsgUpdateParams) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgUpdateParams) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateParams) Size() int               { return jsonSize(m) }

func (m *MsgUpdateParamsResponse) Reset()                  { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string          { return jsonString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()             {}
func (m *MsgUpdateParamsResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgUpdateParamsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateParamsResponse) Size() int               { return jsonSize(m) }

func jsonString(v interface{}) string {
	bz, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%T<marshal error: %v>", v, err)
	}
	return string(bz)
}

func jsonSize(v interface{}) int {
	bz, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(bz)
}
