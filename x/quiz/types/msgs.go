package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgCreateTopic      = "create_topic"
	TypeMsgUpdateTopic      = "update_topic"
	TypeMsgCreateQuizSet    = "create_quiz_set"
	TypeMsgAddQuestionBlock = "add_question_block"
	TypeMsgSubmitAnswer     = "submit_answer"
	TypeMsgClaimReward      = "claim_reward"
	TypeMsgForceComplete    = "force_complete"
	TypeMsgEncryptQuestion  = "encrypt_question"
	TypeMsgDecryptQuestion  = "decrypt_question"
	TypeMsgUpdateParams     = "update_params"
)

// MsgCreateTopic creates a named topic with policy minimums for the quiz
// sets filed under it.
type MsgCreateTopic struct {
	Owner            string   `json:"owner"`
	Name             string   `json:"name"`
	MinRewardAmount  math.Int `json:"min_reward_amount"`
	MinQuestionCount uint32   `json:"min_question_count"`
}

func NewMsgCreateTopic(owner, name string, minReward math.Int, minQuestions uint32) *MsgCreateTopic {
	return &MsgCreateTopic{
		Owner:            owner,
		Name:             name,
		MinRewardAmount:  minReward,
		MinQuestionCount: minQuestions,
	}
}

func (msg *MsgCreateTopic) Route() string { return RouterKey }
func (msg *MsgCreateTopic) Type() string  { return TypeMsgCreateTopic }

func (msg *MsgCreateTopic) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgCreateTopic) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if msg.Name == "" {
		return ErrEmptyName
	}
	if msg.MinRewardAmount.IsNil() || msg.MinRewardAmount.IsNegative() {
		return ErrInvalidRewardAmount.Wrap("topic minimum cannot be negative")
	}
	return nil
}

type MsgCreateTopicResponse struct{}

// MsgUpdateTopic transfers topic ownership and/or toggles the active flag.
// An empty NewOwner keeps the current owner.
type MsgUpdateTopic struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	NewOwner string `json:"new_owner,omitempty"`
	Active   bool   `json:"active"`
}

func NewMsgUpdateTopic(owner, name, newOwner string, active bool) *MsgUpdateTopic {
	return &MsgUpdateTopic{
		Owner:    owner,
		Name:     name,
		NewOwner: newOwner,
		Active:   active,
	}
}

func (msg *MsgUpdateTopic) Route() string { return RouterKey }
func (msg *MsgUpdateTopic) Type() string  { return TypeMsgUpdateTopic }

func (msg *MsgUpdateTopic) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (msg *MsgUpdateTopic) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	if msg.Name == "" {
		return ErrEmptyName
	}
	if msg.NewOwner != "" {
		if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
			return ErrInvalidAddress.Wrapf("new owner: %s", err)
		}
	}
	return nil
}

type MsgUpdateTopicResponse struct{}

// MsgCreateQuizSet creates a quiz set and funds its reward vault in the same
// transaction. UniqueId disambiguates multiple quiz sets per authority.
type MsgCreateQuizSet struct {
	Authority     string   `json:"authority"`
	Topic         string   `json:"topic,omitempty"`
	Name          string   `json:"name"`
	QuestionCount uint32   `json:"question_count"`
	RewardAmount  math.Int `json:"reward_amount"`
	UniqueId      uint32   `json:"unique_id"`
}

func NewMsgCreateQuizSet(authority, topic, name string, questionCount uint32, reward math.Int, uniqueID uint32) *MsgCreateQuizSet {
	return &MsgCreateQuizSet{
		Authority:     authority,
		Topic:         topic,
		Name:          name,
		QuestionCount: questionCount,
		RewardAmount:  reward,
		UniqueId:      uniqueID,
	}
}

func (msg *MsgCreateQuizSet) Route() string { return RouterKey }
func (msg *MsgCreateQuizSet) Type() string  { return TypeMsgCreateQuizSet }

func (msg *MsgCreateQuizSet) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgCreateQuizSet) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if msg.Name == "" {
		return ErrEmptyName
	}
	if msg.QuestionCount == 0 {
		return ErrInvalidQuestionCount.Wrap("at least one question required")
	}
	if msg.RewardAmount.IsNil() || !msg.RewardAmount.IsPositive() {
		return ErrInvalidRewardAmount
	}
	return nil
}

type MsgCreateQuizSetResponse struct {
	QuizId uint64 `json:"quiz_id"`
}

// MsgAddQuestionBlock stores the ciphertext of one question. Adding the last
// block initializes the quiz set permanently.
type MsgAddQuestionBlock struct {
	Authority       string `json:"authority"`
	QuizId          uint64 `json:"quiz_id"`
	QuestionIndex   uint32 `json:"question_index"`
	EncryptedX      []byte `json:"encrypted_x"`
	EncryptedY      []byte `json:"encrypted_y"`
	EvaluatorPubkey []byte `json:"evaluator_pubkey"`
	Nonce           []byte `json:"nonce"`
}

func (msg *MsgAddQuestionBlock) Route() string { return RouterKey }
func (msg *MsgAddQuestionBlock) Type() string  { return TypeMsgAddQuestionBlock }

func (msg *MsgAddQuestionBlock) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgAddQuestionBlock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	block := QuestionBlock{
		QuizId:          msg.QuizId,
		QuestionIndex:   msg.QuestionIndex,
		EncryptedX:      msg.EncryptedX,
		EncryptedY:      msg.EncryptedY,
		EvaluatorPubkey: msg.EvaluatorPubkey,
		Nonce:           msg.Nonce,
	}
	return block.Validate()
}

type MsgAddQuestionBlockResponse struct{}

// MsgSubmitAnswer queues the player's answer for confidential validation.
// Nothing about the quiz changes until the verdict comes back.
type MsgSubmitAnswer struct {
	Player        string `json:"player"`
	QuizId        uint64 `json:"quiz_id"`
	QuestionIndex uint32 `json:"question_index"`
	Answer        string `json:"answer"`
}

func NewMsgSubmitAnswer(player string, quizID uint64, questionIndex uint32, answer string) *MsgSubmitAnswer {
	return &MsgSubmitAnswer{
		Player:        player,
		QuizId:        quizID,
		QuestionIndex: questionIndex,
		Answer:        answer,
	}
}

func (msg *MsgSubmitAnswer) Route() string { return RouterKey }
func (msg *MsgSubmitAnswer) Type() string  { return TypeMsgSubmitAnswer }

func (msg *MsgSubmitAnswer) GetSigners() []sdk.AccAddress {
	player, err := sdk.AccAddressFromBech32(msg.Player)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{player}
}

func (msg *MsgSubmitAnswer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Player); err != nil {
		return ErrInvalidAddress.Wrapf("player: %s", err)
	}
	if msg.QuestionIndex == 0 {
		return ErrInvalidQuestionIndex.Wrap("question index starts at 1")
	}
	if msg.Answer == "" {
		return ErrTextTooLong.Wrap("answer cannot be empty")
	}
	return nil
}

type MsgSubmitAnswerResponse struct {
	ComputationId uint64 `json:"computation_id"`
}

// MsgClaimReward pays out the vault to the winner of a completed quiz.
type MsgClaimReward struct {
	Claimer string `json:"claimer"`
	QuizId  uint64 `json:"quiz_id"`
}

func NewMsgClaimReward(claimer string, quizID uint64) *MsgClaimReward {
	return &MsgClaimReward{Claimer: claimer, QuizId: quizID}
}

func (msg *MsgClaimReward) Route() string { return RouterKey }
func (msg *MsgClaimReward) Type() string  { return TypeMsgClaimReward }

func (msg *MsgClaimReward) GetSigners() []sdk.AccAddress {
	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{claimer}
}

func (msg *MsgClaimReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return ErrInvalidAddress.Wrapf("claimer: %s", err)
	}
	return nil
}

type MsgClaimRewardResponse struct{}

// MsgForceComplete is the governance escape hatch for a quiz stranded active
// by a lost callback. It sets the winner directly but never overwrites one.
type MsgForceComplete struct {
	Authority string `json:"authority"`
	QuizId    uint64 `json:"quiz_id"`
	Winner    string `json:"winner"`
}

func (msg *MsgForceComplete) Route() string { return RouterKey }
func (msg *MsgForceComplete) Type() string  { return TypeMsgForceComplete }

func (msg *MsgForceComplete) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgForceComplete) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Winner); err != nil {
		return ErrInvalidAddress.Wrapf("winner: %s", err)
	}
	return nil
}

type MsgForceCompleteResponse struct{}

// MsgEncryptQuestion asks the evaluator cluster to encrypt question material
// off chain. The plaintext rides in the computation payload only.
type MsgEncryptQuestion struct {
	Authority     string `json:"authority"`
	QuizId        uint64 `json:"quiz_id"`
	QuestionIndex uint32 `json:"question_index"`
	QuestionText  string `json:"question_text"`
	Nonce         []byte `json:"nonce"`
}

func (msg *MsgEncryptQuestion) Route() string { return RouterKey }
func (msg *MsgEncryptQuestion) Type() string  { return TypeMsgEncryptQuestion }

func (msg *MsgEncryptQuestion) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgEncryptQuestion) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if msg.QuestionIndex == 0 {
		return ErrInvalidQuestionIndex.Wrap("question index starts at 1")
	}
	if msg.QuestionText == "" {
		return ErrTextTooLong.Wrap("question text cannot be empty")
	}
	if len(msg.Nonce) != QuestionBlockNonceLen {
		return ErrInvalidPayload.Wrapf("nonce length %d, want %d", len(msg.Nonce), QuestionBlockNonceLen)
	}
	return nil
}

type MsgEncryptQuestionResponse struct {
	ComputationId uint64 `json:"computation_id"`
}

// MsgDecryptQuestion asks the evaluator cluster to open a stored question
// block for the quiz authority, off chain.
type MsgDecryptQuestion struct {
	Authority     string `json:"authority"`
	QuizId        uint64 `json:"quiz_id"`
	QuestionIndex uint32 `json:"question_index"`
}

func (msg *MsgDecryptQuestion) Route() string { return RouterKey }
func (msg *MsgDecryptQuestion) Type() string  { return TypeMsgDecryptQuestion }

func (msg *MsgDecryptQuestion) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgDecryptQuestion) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if msg.QuestionIndex == 0 {
		return ErrInvalidQuestionIndex.Wrap("question index starts at 1")
	}
	return nil
}

type MsgDecryptQuestionResponse struct {
	ComputationId uint64 `json:"computation_id"`
}

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
