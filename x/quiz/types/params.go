package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultMaxQuestionCount      uint32 = 50
	DefaultMaxNameLength         uint32 = 100
	DefaultMaxQuestionTextLength uint32 = 500
	DefaultMaxAnswerLength       uint32 = 200
	DefaultRewardDenom                  = "uhoot"
)

// Params defines the parameters for the quiz module.
type Params struct {
	MaxQuestionCount      uint32 `json:"max_question_count"`
	MaxNameLength         uint32 `json:"max_name_length"`
	MaxQuestionTextLength uint32 `json:"max_question_text_length"`
	MaxAnswerLength       uint32 `json:"max_answer_length"`
	RewardDenom           string `json:"reward_denom"`
}

// DefaultParams returns the default quiz module parameters.
func DefaultParams() Params {
	return Params{
		MaxQuestionCount:      DefaultMaxQuestionCount,
		MaxNameLength:         DefaultMaxNameLength,
		MaxQuestionTextLength: DefaultMaxQuestionTextLength,
		MaxAnswerLength:       DefaultMaxAnswerLength,
		RewardDenom:           DefaultRewardDenom,
	}
}

// Validate performs basic validation of quiz module parameters.
func (p Params) Validate() error {
	if p.MaxQuestionCount == 0 {
		return fmt.Errorf("max question count must be positive")
	}
	if p.MaxNameLength == 0 {
		return fmt.Errorf("max name length must be positive")
	}
	if p.MaxQuestionTextLength == 0 {
		return fmt.Errorf("max question text length must be positive")
	}
	if p.MaxAnswerLength == 0 {
		return fmt.Errorf("max answer length must be positive")
	}
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	return nil
}
