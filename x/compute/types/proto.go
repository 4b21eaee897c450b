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
	proto.RegisterType(&MsgDeliverResult{}, "hoot.compute.v1.MsgDeliverResult")
	proto.RegisterType(&MsgDeliverResultResponse{}, "hoot.compute.v1.MsgDeliverResultResponse")
	proto.RegisterType(&MsgRegisterEvaluator{}, "hoot.compute.v1.MsgRegisterEvaluator")
	proto.RegisterType(&MsgRegisterEvaluatorResponse{}, "hoot.compute.v1.MsgRegisterEvaluatorResponse")
	proto.RegisterType(&MsgSetEvaluatorStatus{}, "hoot.compute.v1.MsgSetEvaluatorStatus")
	proto.RegisterType(&MsgSetEvaluatorStatusResponse{}, "hoot.compute.v1.MsgSetEvaluatorStatusResponse")
	proto.RegisterType(&MsgUpdateParams{}, "hoot.compute.v1.MsgUpdateParams")
	proto.RegisterType(&MsgUpdateParamsResponse{}, "hoot.compute.v1.MsgUpdateParamsResponse")
}

func (m *MsgDeliverResult) Reset()                  { *m = MsgDeliverResult{} }
func (m *MsgDeliverResult) String() string          { return jsonString(m) }
func (*MsgDeliverResult) ProtoMessage()             {}
func (m *MsgDeliverResult) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgDeliverResult) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgDeliverResult) Size() int               { return jsonSize(m) }

func (m *MsgDeliverResultResponse) Reset()                  { *m = MsgDeliverResultResponse{} }
func (m *MsgDeliverResultResponse) String() string          { return jsonString(m) }
func (*MsgDeliverResultResponse) ProtoMessage()             {}
func (m *MsgDeliverResultResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgDeliverResultResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgDeliverResultResponse) Size() int               { return jsonSize(m) }

func (m *MsgRegisterEvaluator) Reset()                  { *m = MsgRegisterEvaluator{} }
func (m *MsgRegisterEvaluator) String() string          { return jsonString(m) }
func (*MsgRegisterEvaluator) ProtoMessage()             {}
func (m *MsgRegisterEvaluator) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgRegisterEvaluator) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRegisterEvaluator) Size() int               { return jsonSize(m) }

func (m *MsgRegisterEvaluatorResponse) Reset()                  { *m = MsgRegisterEvaluatorResponse{} }
func (m *MsgRegisterEvaluatorResponse) String() string          { return jsonString(m) }
func (*MsgRegisterEvaluatorResponse) ProtoMessage()             {}
func (m *MsgRegisterEvaluatorResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgRegisterEvaluatorResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRegisterEvaluatorResponse) Size() int               { return jsonSize(m) }

func (m *MsgSetEvaluatorStatus) Reset()                  { *m = MsgSetEvaluatorStatus{} }
func (m *MsgSetEvaluatorStatus) String() string          { return jsonString(m) }
func (*MsgSetEvaluatorStatus) ProtoMessage()             {}
func (m *MsgSetEvaluatorStatus) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSetEvaluatorStatus) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSetEvaluatorStatus) Size() int               { return jsonSize(m) }

func (m *MsgSetEvaluatorStatusResponse) Reset()                  { *m = MsgSetEvaluatorStatusResponse{} }
func (m *MsgSetEvaluatorStatusResponse) String() string          { return jsonString(m) }
func (*MsgSetEvaluatorStatusResponse) ProtoMessage()             {}
func (m *MsgSetEvaluatorStatusResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSetEvaluatorStatusResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSetEvaluatorStatusResponse) Size() int               { return jsonSize(m) }

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
