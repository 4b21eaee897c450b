package types

import (
	"crypto/sha256"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PendingComputation is the gateway's record of work handed to the evaluator
// cluster. It exists from queue time until the callback consumes it; absence
// of the record is what makes delivery exactly-once.
type PendingComputation struct {
	Id             uint64 `json:"id"`
	IdentityHash   []byte `json:"identity_hash"`
	Circuit        string `json:"circuit"`
	QuizId         uint64 `json:"quiz_id"`
	QuestionIndex  uint32 `json:"question_index"`
	Requester      string `json:"requester"`
	PayloadLen     uint32 `json:"payload_len"`
	QueuedAtHeight int64  `json:"queued_at_height"`
}

// Evaluator is a registry entry for a cluster member allowed to deliver
// computation results. Registration is authority-gated.
type Evaluator struct {
	Address   string `json:"address"`
	Moniker   string `json:"moniker"`
	Active    bool   `json:"active"`
	Delivered uint64 `json:"delivered"`
	Aborted   uint64 `json:"aborted"`
}

// QueueRequest is the keeper-to-keeper payload for queueing a computation.
type QueueRequest struct {
	Circuit       string
	QuizId        uint64
	QuestionIndex uint32
	Requester     string
	Payload       []byte
	Nonce         []byte
}

// IdentityHash derives the request identity from the logical content of the
// request, not from the payload bytes. Two queue calls with the same identity
// are the same request; the gateway returns the existing id instead of
// queueing twice.
func (r QueueRequest) IdentityHash() []byte {
	h := sha256.New()
	h.Write([]byte(r.Circuit))
	var idBz [8]byte
	binary.BigEndian.PutUint64(idBz[:], r.QuizId)
	h.Write(idBz[:])
	var idxBz [4]byte
	binary.BigEndian.PutUint32(idxBz[:], r.QuestionIndex)
	h.Write(idxBz[:])
	h.Write([]byte(r.Requester))
	h.Write(r.Nonce)
	return h.Sum(nil)
}

// Validate checks a queue request before it is accepted.
func (r QueueRequest) Validate(maxPayloadBytes uint32) error {
	if r.Circuit == "" {
		return ErrInvalidArgument.Wrap("circuit name cannot be empty")
	}
	if r.Requester == "" {
		return ErrInvalidArgument.Wrap("requester cannot be empty")
	}
	if len(r.Payload) == 0 {
		return ErrInvalidArgument.Wrap("payload cannot be empty")
	}
	if uint32(len(r.Payload)) > maxPayloadBytes {
		return ErrPayloadTooLarge.Wrapf("%d bytes, max %d", len(r.Payload), maxPayloadBytes)
	}
	return nil
}

// ResultDelivery carries a successful computation result to the handler
// registered for the pending record's circuit.
type ResultDelivery struct {
	Pending PendingComputation
	Output  []byte
}

// ResultHandler consumes successful computation results for one circuit.
// Handlers are registered at app wiring time; a delivery for a circuit with
// no handler fails closed and the pending record survives.
type ResultHandler interface {
	HandleComputationResult(ctx sdk.Context, delivery ResultDelivery) error
}
