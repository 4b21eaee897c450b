package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/quiz module sentinel errors
var (
	ErrInvalidAddress           = sdkerrors.Register(ModuleName, 2, "invalid address")
	ErrEmptyName                = sdkerrors.Register(ModuleName, 3, "name cannot be empty")
	ErrNameTooLong              = sdkerrors.Register(ModuleName, 4, "name exceeds maximum length")
	ErrTextTooLong              = sdkerrors.Register(ModuleName, 5, "text exceeds maximum length")
	ErrInvalidQuestionCount     = sdkerrors.Register(ModuleName, 6, "question count out of bounds")
	ErrInvalidQuestionIndex     = sdkerrors.Register(ModuleName, 7, "question index out of bounds")
	ErrInvalidRewardAmount      = sdkerrors.Register(ModuleName, 8, "reward amount must be positive")
	ErrInvalidPayload           = sdkerrors.Register(ModuleName, 9, "invalid encrypted payload")
	ErrTopicNotFound            = sdkerrors.Register(ModuleName, 10, "topic not found")
	ErrTopicExists              = sdkerrors.Register(ModuleName, 11, "topic already exists")
	ErrTopicNotActive           = sdkerrors.Register(ModuleName, 12, "topic is not active")
	ErrNotTopicOwner            = sdkerrors.Register(ModuleName, 13, "signer is not the topic owner")
	ErrBelowTopicMinimum        = sdkerrors.Register(ModuleName, 14, "quiz set below topic policy minimums")
	ErrQuizSetNotFound          = sdkerrors.Register(ModuleName, 15, "quiz set not found")
	ErrQuizSetExists            = sdkerrors.Register(ModuleName, 16, "quiz set already exists for authority and unique id")
	ErrQuizSetAlreadyInitialized = sdkerrors.Register(ModuleName, 17, "quiz set already initialized")
	ErrQuizSetNotInitialized    = sdkerrors.Register(ModuleName, 18, "quiz set not initialized")
	ErrQuizCompleted            = sdkerrors.Register(ModuleName, 19, "quiz already completed")
	ErrQuizNotCompleted         = sdkerrors.Register(ModuleName, 20, "quiz not completed")
	ErrQuestionBlockExists      = sdkerrors.Register(ModuleName, 21, "question block already exists")
	ErrQuestionBlockNotFound    = sdkerrors.Register(ModuleName, 22, "question block not found")
	ErrUnauthorized             = sdkerrors.Register(ModuleName, 23, "unauthorized")
	ErrWinnerAlreadySet         = sdkerrors.Register(ModuleName, 24, "winner already set")
	ErrRewardAlreadyClaimed     = sdkerrors.Register(ModuleName, 25, "reward already claimed")
	ErrNotWinner                = sdkerrors.Register(ModuleName, 26, "claimer is not the winner")
	ErrInvalidParams            = sdkerrors.Register(ModuleName, 27, "invalid module parameters")
	ErrInvalidGenesis           = sdkerrors.Register(ModuleName, 28, "invalid genesis state")
)
