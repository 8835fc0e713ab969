package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Inference module sentinel errors

var (
	// Request creation errors
	ErrInvalidConsensusThreshold = sdkerrors.Register(ModuleName, 2, "consensus threshold below minimum")
	ErrInsufficientPayment       = sdkerrors.Register(ModuleName, 3, "payment below model price")
	ErrModelNotFound             = sdkerrors.Register(ModuleName, 4, "model price not registered")

	// Node errors
	ErrUnauthorized      = sdkerrors.Register(ModuleName, 10, "node not authorized")
	ErrInsufficientStake = sdkerrors.Register(ModuleName, 11, "insufficient stake")
	ErrNodeNotFound      = sdkerrors.Register(ModuleName, 12, "node not found")
	ErrNoReputation      = sdkerrors.Register(ModuleName, 13, "node has no reputation to slash")

	// Response gate errors
	ErrRequestNotFound   = sdkerrors.Register(ModuleName, 20, "inference request not found")
	ErrAlreadyFulfilled  = sdkerrors.Register(ModuleName, 21, "request already fulfilled")
	ErrRequestExpired    = sdkerrors.Register(ModuleName, 22, "request has expired")
	ErrWindowClosed      = sdkerrors.Register(ModuleName, 23, "response window closed")
	ErrInvalidProof      = sdkerrors.Register(ModuleName, 24, "proof verification failed")
	ErrInvalidSignature  = sdkerrors.Register(ModuleName, 25, "signature verification failed")
	ErrDuplicateResponse = sdkerrors.Register(ModuleName, 26, "node already responded to request")

	// Payout errors
	ErrTransfer        = sdkerrors.Register(ModuleName, 30, "token transfer failed")
	ErrNothingToClaim  = sdkerrors.Register(ModuleName, 31, "no reward credit to claim")
	ErrInvalidGenesis  = sdkerrors.Register(ModuleName, 32, "invalid genesis state")
	ErrValidationBasic = sdkerrors.Register(ModuleName, 33, "message validation failed")
)
