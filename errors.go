// errors.go: comprehensive error handling for Xanthus registry/list operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthus

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthus registry/list operations.
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidConfig            errors.ErrorCode = "XANTHUS_INVALID_CONFIG"
	ErrCodeInvalidMaxParticipants   errors.ErrorCode = "XANTHUS_INVALID_MAX_PARTICIPANTS"
	ErrCodeInvalidMaxHazardPointers errors.ErrorCode = "XANTHUS_INVALID_MAX_HAZARD_POINTERS"

	// Participant errors (2xxx)
	ErrCodeParticipantCapacityExceeded errors.ErrorCode = "XANTHUS_PARTICIPANT_CAPACITY_EXCEEDED"
	ErrCodeParticipantClosed           errors.ErrorCode = "XANTHUS_PARTICIPANT_CLOSED"

	// Hazard-pointer programming errors (3xxx) - invariant violations,
	// always fatal (panic), never returned to a caller.
	ErrCodeHazardSlotOutOfRange errors.ErrorCode = "XANTHUS_HAZARD_SLOT_OUT_OF_RANGE"
	ErrCodeRetiredSetOverflow   errors.ErrorCode = "XANTHUS_RETIRED_SET_OVERFLOW"
	ErrCodeUseAfterFree         errors.ErrorCode = "XANTHUS_USE_AFTER_FREE"
	ErrCodeAllocationFailed     errors.ErrorCode = "XANTHUS_ALLOCATION_FAILED"

	// Internal errors (5xxx)
	ErrCodeInternalError  errors.ErrorCode = "XANTHUS_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "XANTHUS_PANIC_RECOVERED"
)

// Common error messages.
const (
	msgInvalidMaxParticipants   = "invalid max participants: must be greater than 0"
	msgInvalidMaxHazardPointers = "invalid max hazard pointers: must be at least 4"
	msgParticipantCapacityExceeded = "participant capacity exceeded: no more threads can join this registry"
	msgParticipantClosed        = "cannot join: registry is closed"
	msgHazardSlotOutOfRange     = "hazard slot index out of range"
	msgRetiredSetOverflow       = "retired set overflow: protection contract violated"
	msgUseAfterFree             = "use-after-free detected: node magic word mismatch"
	msgAllocationFailed         = "node allocation failed"
	msgInternalError            = "internal xanthus error"
	msgPanicRecovered            = "panic recovered in xanthus operation"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidMaxParticipants creates an error for an invalid MaxParticipants config value.
func NewErrInvalidMaxParticipants(value int) error {
	return errors.NewWithContext(ErrCodeInvalidMaxParticipants, msgInvalidMaxParticipants, map[string]interface{}{
		"provided_value":   value,
		"minimum_required": 1,
	})
}

// NewErrInvalidMaxHazardPointers creates an error for an invalid MaxHazardPointers config value.
func NewErrInvalidMaxHazardPointers(value int) error {
	return errors.NewWithContext(ErrCodeInvalidMaxHazardPointers, msgInvalidMaxHazardPointers, map[string]interface{}{
		"provided_value":   value,
		"minimum_required": listHazardSlots,
	})
}

// =============================================================================
// PARTICIPANT ERRORS
// =============================================================================

// NewErrParticipantCapacityExceeded creates an error returned by
// Registry.Join when MaxParticipants would be exceeded.
func NewErrParticipantCapacityExceeded(maxParticipants int) error {
	return errors.NewWithContext(ErrCodeParticipantCapacityExceeded, msgParticipantCapacityExceeded, map[string]interface{}{
		"max_participants": maxParticipants,
	})
}

// NewErrParticipantClosed creates the error returned by Registry.Join
// when the Registry has already been closed.
func NewErrParticipantClosed() error {
	return errors.NewWithContext(ErrCodeParticipantClosed, msgParticipantClosed, map[string]interface{}{
		"closed": true,
	})
}

// =============================================================================
// PROGRAMMING ERRORS (fatal; these are always panicked, never returned)
// =============================================================================

// NewErrHazardSlotOutOfRange creates the error panicked when a caller
// requests a hazard slot index outside [0, MaxHazardPointers).
func NewErrHazardSlotOutOfRange(slot, max int) error {
	return errors.NewWithContext(ErrCodeHazardSlotOutOfRange, msgHazardSlotOutOfRange, map[string]interface{}{
		"slot": slot,
		"max":  max,
	})
}

// NewErrRetiredSetOverflow creates the error panicked when a
// participant's retired set exceeds its configured bound.
func NewErrRetiredSetOverflow(size, max int) error {
	return errors.NewWithContext(ErrCodeRetiredSetOverflow, msgRetiredSetOverflow, map[string]interface{}{
		"size": size,
		"max":  max,
	}).WithSeverity("critical")
}

// NewErrUseAfterFree creates the error panicked when a node's magic
// word no longer matches the expected sentinel value.
func NewErrUseAfterFree(key uint64, wantMagic, gotMagic uint32) error {
	return errors.NewWithContext(ErrCodeUseAfterFree, msgUseAfterFree, map[string]interface{}{
		"key":        key,
		"want_magic": wantMagic,
		"got_magic":  gotMagic,
	}).WithSeverity("critical")
}

// NewErrAllocationFailed creates the error panicked when node
// allocation fails (the reference design treats this as fatal).
func NewErrAllocationFailed(reason string) error {
	return errors.NewWithField(ErrCodeAllocationFailed, msgAllocationFailed, "reason", reason).
		WithSeverity("critical")
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered creates an error when a panic is recovered.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsParticipantCapacityExceeded checks if err is a participant-capacity error.
func IsParticipantCapacityExceeded(err error) bool {
	return errors.HasCode(err, ErrCodeParticipantCapacityExceeded)
}

// IsParticipantClosed checks if err reports a Join on a Registry that
// has already been closed.
func IsParticipantClosed(err error) bool {
	return errors.HasCode(err, ErrCodeParticipantClosed)
}

// IsUseAfterFree checks if err is a use-after-free invariant violation.
func IsUseAfterFree(err error) bool {
	return errors.HasCode(err, ErrCodeUseAfterFree)
}

// IsConfigError checks if err is a configuration error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidMaxParticipants ||
			code == ErrCodeInvalidMaxHazardPointers ||
			code == ErrCodeInvalidConfig
	}
	return false
}

// IsRetryable checks if the error can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xErr *errors.Error
	if goerrors.As(err, &xErr) {
		return xErr.Context
	}
	return nil
}
