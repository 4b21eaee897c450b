package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// QuizStatus is the derived lifecycle phase of a quiz set. It is never stored;
// it is computed from the persisted fields so the state machine cannot drift
// from the data that defines it.
type QuizStatus string

const (
	// StatusOpen: created and funded, question blocks still being added.
	StatusOpen QuizStatus = "open"
	// StatusActive: fully initialized, answers are being accepted and settled.
	StatusActive QuizStatus = "active"
	// StatusCompleted: a winner is set, the reward is still in the vault.
	StatusCompleted QuizStatus = "completed"
	// StatusSettled: the winner has claimed the reward. Terminal.
	StatusSettled QuizStatus = "settled"
)

// Topic is a named category under which quiz sets are created. Topics carry
// policy minimums their quiz sets must satisfy and are never deleted, only
// deactivated or transferred.
type Topic struct {
	Owner            string   `json:"owner"`
	Name             string   `json:"name"`
	IsActive         bool     `json:"is_active"`
	MinRewardAmount  math.Int `json:"min_reward_amount"`
	MinQuestionCount uint32   `json:"min_question_count"`
	CreatedAt        int64    `json:"created_at"`
}

// QuizSet is the root record of one contest: its question inventory, its
// escrowed reward, and its settlement progress.
type QuizSet struct {
	Id                  uint64   `json:"id"`
	Authority           string   `json:"authority"`
	Topic               string   `json:"topic,omitempty"`
	Name                string   `json:"name"`
	QuestionCount       uint32   `json:"question_count"`
	IsInitialized       bool     `json:"is_initialized"`
	RewardAmount        math.Int `json:"reward_amount"`
	IsRewardClaimed     bool     `json:"is_reward_claimed"`
	Winner              string   `json:"winner,omitempty"`
	CorrectAnswersCount uint32   `json:"correct_answers_count"`
	UniqueId            uint32   `json:"unique_id"`
	CreatedAt           int64    `json:"created_at"`
}

// Status derives the lifecycle phase from the persisted fields.
func (q QuizSet) Status() QuizStatus {
	switch {
	case q.IsRewardClaimed:
		return StatusSettled
	case q.Winner != "":
		return StatusCompleted
	case q.IsInitialized:
		return StatusActive
	default:
		return StatusOpen
	}
}

// IsCompleted reports whether settlement has finished, i.e. a winner exists.
func (q QuizSet) IsCompleted() bool {
	return q.Winner != ""
}

// Validate checks internal consistency of a stored quiz set record.
func (q QuizSet) Validate() error {
	if q.Name == "" {
		return ErrEmptyName
	}
	if q.QuestionCount == 0 {
		return ErrInvalidQuestionCount.Wrap("question count is zero")
	}
	if q.RewardAmount.IsNil() || !q.RewardAmount.IsPositive() {
		return ErrInvalidRewardAmount
	}
	if q.CorrectAnswersCount > q.QuestionCount {
		return fmt.Errorf("correct answers count %d exceeds question count %d",
			q.CorrectAnswersCount, q.QuestionCount)
	}
	if q.Winner != "" && q.CorrectAnswersCount != q.QuestionCount {
		return fmt.Errorf("winner set with %d/%d answers credited",
			q.CorrectAnswersCount, q.QuestionCount)
	}
	if q.IsRewardClaimed && q.Winner == "" {
		return fmt.Errorf("reward claimed without a winner")
	}
	return nil
}

// QuestionBlock holds the ciphertext of one question. Plaintext never touches
// chain state; the evaluator cluster alone can open the payloads.
type QuestionBlock struct {
	QuizId          uint64 `json:"quiz_id"`
	QuestionIndex   uint32 `json:"question_index"`
	EncryptedX      []byte `json:"encrypted_x"`
	EncryptedY      []byte `json:"encrypted_y"`
	EvaluatorPubkey []byte `json:"evaluator_pubkey"`
	Nonce           []byte `json:"nonce"`
	CreatedAt       int64  `json:"created_at"`
}

// Payload size bounds for question blocks.
const (
	MaxCiphertextBytes    = 64
	EvaluatorPubkeyLen    = 32
	QuestionBlockNonceLen = 16
)

// Validate checks the fixed-size payload constraints of a question block.
func (b QuestionBlock) Validate() error {
	if b.QuestionIndex == 0 {
		return ErrInvalidQuestionIndex.Wrap("question index starts at 1")
	}
	if len(b.EncryptedX) == 0 || len(b.EncryptedX) > MaxCiphertextBytes {
		return ErrInvalidPayload.Wrapf("encrypted_x length %d, want 1..%d", len(b.EncryptedX), MaxCiphertextBytes)
	}
	if len(b.EncryptedY) == 0 || len(b.EncryptedY) > MaxCiphertextBytes {
		return ErrInvalidPayload.Wrapf("encrypted_y length %d, want 1..%d", len(b.EncryptedY), MaxCiphertextBytes)
	}
	if len(b.EvaluatorPubkey) != EvaluatorPubkeyLen {
		return ErrInvalidPayload.Wrapf("evaluator pubkey length %d, want %d", len(b.EvaluatorPubkey), EvaluatorPubkeyLen)
	}
	if len(b.Nonce) != QuestionBlockNonceLen {
		return ErrInvalidPayload.Wrapf("nonce length %d, want %d", len(b.Nonce), QuestionBlockNonceLen)
	}
	return nil
}
