package types

// Event types emitted by x/compute
const (
	EventTypeComputationQueued    = "computation_queued"
	EventTypeComputationDelivered = "computation_delivered"
	EventTypeComputationAborted   = "computation_aborted"
	EventTypeEvaluatorRegistered  = "evaluator_registered"
	EventTypeEvaluatorStatusSet   = "evaluator_status_set"
)

// Event attribute keys
const (
	AttributeKeyComputationID = "computation_id"
	AttributeKeyCircuit       = "circuit"
	AttributeKeyQuizID        = "quiz_id"
	AttributeKeyQuestionIndex = "question_index"
	AttributeKeyRequester     = "requester"
	AttributeKeyEvaluator     = "evaluator"
	AttributeKeyMoniker       = "moniker"
	AttributeKeyActive        = "active"
	AttributeKeyOutputLen     = "output_len"
)
