package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/compute module sentinel errors
var (
	ErrInvalidAddress      = sdkerrors.Register(ModuleName, 2, "invalid address")
	ErrInvalidArgument     = sdkerrors.Register(ModuleName, 3, "invalid argument")
	ErrPayloadTooLarge     = sdkerrors.Register(ModuleName, 4, "payload exceeds maximum size")
	ErrComputationNotFound = sdkerrors.Register(ModuleName, 5, "computation not found or already consumed")
	ErrAbortedComputation  = sdkerrors.Register(ModuleName, 6, "computation aborted by evaluator cluster")
	ErrNoHandler           = sdkerrors.Register(ModuleName, 7, "no result handler registered for circuit")
	ErrEvaluatorNotFound   = sdkerrors.Register(ModuleName, 8, "evaluator not registered")
	ErrEvaluatorExists     = sdkerrors.Register(ModuleName, 9, "evaluator already registered")
	ErrEvaluatorInactive   = sdkerrors.Register(ModuleName, 10, "evaluator is not active")
	ErrUnauthorized        = sdkerrors.Register(ModuleName, 11, "unauthorized")
	ErrInvalidParams       = sdkerrors.Register(ModuleName, 12, "invalid module parameters")
	ErrInvalidGenesis      = sdkerrors.Register(ModuleName, 13, "invalid genesis state")
)
