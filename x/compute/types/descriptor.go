package types

import (
	"bytes"
	"compress/gzip"

	"github.com/cosmos/gogoproto/proto"
	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The hand-written Msg service desc in tx.go points at
// "hoot/compute/v1/tx.proto" as its Metadata. msgservice.RegisterMsgServiceDesc
// resolves that name through the gogoproto file registry to enumerate the
// service's request/response type names, so a matching descriptor must be
// registered even though no generated code exists. The messages carry no
// fields here; only their names are consulted.
func init() {
	file := &descriptorpb.FileDescriptorProto{
		Name:    protov2.String("hoot/compute/v1/tx.proto"),
		Package: protov2.String("hoot.compute.v1"),
		Syntax:  protov2.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: protov2.String("MsgDeliverResult")},
			{Name: protov2.String("MsgDeliverResultResponse")},
			{Name: protov2.String("MsgRegisterEvaluator")},
			{Name: protov2.String("MsgRegisterEvaluatorResponse")},
			{Name: protov2.String("MsgSetEvaluatorStatus")},
			{Name: protov2.String("MsgSetEvaluatorStatusResponse")},
			{Name: protov2.String("MsgUpdateParams")},
			{Name: protov2.String("MsgUpdateParamsResponse")},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: protov2.String("Msg"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       protov2.String("DeliverResult"),
						InputType:  protov2.String(".hoot.compute.v1.MsgDeliverResult"),
						OutputType: protov2.String(".hoot.compute.v1.MsgDeliverResultResponse"),
					},
					{
						Name:       protov2.String("RegisterEvaluator"),
						InputType:  protov2.String(".hoot.compute.v1.MsgRegisterEvaluator"),
						OutputType: protov2.String(".hoot.compute.v1.MsgRegisterEvaluatorResponse"),
					},
					{
						Name:       protov2.String("SetEvaluatorStatus"),
						InputType:  protov2.String(".hoot.compute.v1.MsgSetEvaluatorStatus"),
						OutputType: protov2.String(".hoot.compute.v1.MsgSetEvaluatorStatusResponse"),
					},
					{
						Name:       protov2.String("UpdateParams"),
						InputType:  protov2.String(".hoot.compute.v1.MsgUpdateParams"),
						OutputType: protov2.String(".hoot.compute.v1.MsgUpdateParamsResponse"),
					},
				},
			},
		},
	}

	bz, err := protov2.Marshal(file)
	if err != nil {
		panic(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	proto.RegisterFile("hoot/compute/v1/tx.proto", buf.Bytes())
}
