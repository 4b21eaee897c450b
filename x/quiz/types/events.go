package types

// Event types emitted by x/quiz
const (
	EventTypeTopicCreated       = "topic_created"
	EventTypeTopicUpdated       = "topic_updated"
	EventTypeQuizSetCreated     = "quiz_set_created"
	EventTypeQuestionBlockAdded = "question_block_added"
	EventTypeQuizInitialized    = "quiz_initialized"
	EventTypeAnswerSubmitted    = "answer_submitted"
	EventTypeAnswerVerified     = "answer_verified"
	EventTypeQuizCompleted      = "quiz_completed"
	EventTypeQuizForceCompleted = "quiz_force_completed"
	EventTypeRewardClaimed      = "reward_claimed"
	EventTypeQuestionEncrypted  = "question_encrypted"
	EventTypeQuestionDecrypted  = "question_decrypted"
)

// Event attribute keys
const (
	AttributeKeyOwner         = "owner"
	AttributeKeyNewOwner      = "new_owner"
	AttributeKeyTopic         = "topic"
	AttributeKeyActive        = "active"
	AttributeKeyQuizID        = "quiz_id"
	AttributeKeyQuizName      = "quiz_name"
	AttributeKeyAuthority     = "authority"
	AttributeKeyQuestionCount = "question_count"
	AttributeKeyQuestionIndex = "question_index"
	AttributeKeyRewardAmount  = "reward_amount"
	AttributeKeyPlayer        = "player"
	AttributeKeyComputationID = "computation_id"
	AttributeKeyIsCorrect     = "is_correct"
	AttributeKeyProgress      = "progress"
	AttributeKeyWinner        = "winner"
	AttributeKeyClaimer       = "claimer"
)
