// errors_test.go: error constructor and checker round-trip tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"errors"
	"testing"
)

func TestParticipantCapacityExceededRoundTrip(t *testing.T) {
	err := NewErrParticipantCapacityExceeded(128)
	if !IsParticipantCapacityExceeded(err) {
		t.Fatalf("expected IsParticipantCapacityExceeded to be true")
	}
	if GetErrorCode(err) != ErrCodeParticipantCapacityExceeded {
		t.Fatalf("unexpected error code: %v", GetErrorCode(err))
	}
	ctx := GetErrorContext(err)
	if ctx["max_participants"] != 128 {
		t.Fatalf("expected max_participants context, got %v", ctx)
	}
}

func TestParticipantClosedRoundTrip(t *testing.T) {
	err := NewErrParticipantClosed()
	if !IsParticipantClosed(err) {
		t.Fatalf("expected IsParticipantClosed to be true")
	}
	if IsParticipantCapacityExceeded(err) {
		t.Fatalf("participant-closed error should not match capacity-exceeded check")
	}
}

func TestUseAfterFreeRoundTrip(t *testing.T) {
	err := NewErrUseAfterFree(7, nodeMagic, nodeMagicFreed)
	if !IsUseAfterFree(err) {
		t.Fatalf("expected IsUseAfterFree to be true")
	}
	if IsRetryable(err) {
		// use-after-free is a programming-invariant violation, never retryable.
		t.Fatalf("use-after-free should not be retryable")
	}
	ctx := GetErrorContext(err)
	if ctx["key"] != uint64(7) {
		t.Fatalf("expected key in context, got %v", ctx)
	}
}

func TestRetiredSetOverflowRoundTrip(t *testing.T) {
	err := NewErrRetiredSetOverflow(10, 10)
	ctx := GetErrorContext(err)
	if ctx["size"] != 10 || ctx["max"] != 10 {
		t.Fatalf("unexpected context: %v", ctx)
	}
	if GetErrorCode(err) != ErrCodeRetiredSetOverflow {
		t.Fatalf("unexpected code: %v", GetErrorCode(err))
	}
}

func TestHazardSlotOutOfRangeRoundTrip(t *testing.T) {
	err := NewErrHazardSlotOutOfRange(9, 4)
	if GetErrorCode(err) != ErrCodeHazardSlotOutOfRange {
		t.Fatalf("unexpected code: %v", GetErrorCode(err))
	}
}

func TestAllocationFailedRoundTrip(t *testing.T) {
	err := NewErrAllocationFailed("pool exhausted")
	if GetErrorCode(err) != ErrCodeAllocationFailed {
		t.Fatalf("unexpected code: %v", GetErrorCode(err))
	}
}

func TestInternalErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrInternal("scan", cause)
	if GetErrorCode(err) != ErrCodeInternalError {
		t.Fatalf("unexpected code: %v", GetErrorCode(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error should unwrap to its cause")
	}
}

func TestPanicRecoveredRoundTrip(t *testing.T) {
	err := NewErrPanicRecovered("insert", "index out of range")
	if GetErrorCode(err) != ErrCodePanicRecovered {
		t.Fatalf("unexpected code: %v", GetErrorCode(err))
	}
}

func TestIsConfigErrorMatchesOnlyConfigCodes(t *testing.T) {
	if !IsConfigError(NewErrInvalidMaxParticipants(0)) {
		t.Fatalf("expected invalid-max-participants to be a config error")
	}
	if !IsConfigError(NewErrInvalidMaxHazardPointers(1)) {
		t.Fatalf("expected invalid-max-hazard-pointers to be a config error")
	}
	if IsConfigError(NewErrParticipantClosed()) {
		t.Fatalf("participant-closed is not a config error")
	}
	if IsConfigError(nil) {
		t.Fatalf("nil is not a config error")
	}
}

func TestGetErrorCodeAndContextHandleNil(t *testing.T) {
	if GetErrorCode(nil) != "" {
		t.Fatalf("expected empty code for nil error")
	}
	if GetErrorContext(nil) != nil {
		t.Fatalf("expected nil context for nil error")
	}
	if IsRetryable(nil) {
		t.Fatalf("nil error should not be retryable")
	}
}
