// config_test.go: Config.Validate defaulting tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestValidateAppliesDefaults(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.MaxParticipants != MaxParticipants {
		t.Fatalf("expected default MaxParticipants %d, got %d", MaxParticipants, c.MaxParticipants)
	}
	if c.MaxHazardPointers != MaxHazardPointers {
		t.Fatalf("expected default MaxHazardPointers %d, got %d", MaxHazardPointers, c.MaxHazardPointers)
	}
	if c.ScanThreshold != DefaultScanThreshold {
		t.Fatalf("expected default ScanThreshold %d, got %d", DefaultScanThreshold, c.ScanThreshold)
	}
	if c.Logger == nil {
		t.Fatalf("expected a default Logger")
	}
	if c.TimeProvider == nil {
		t.Fatalf("expected a default TimeProvider")
	}
	if c.MetricsCollector == nil {
		t.Fatalf("expected a default MetricsCollector")
	}
}

func TestValidatePreservesExplicitValues(t *testing.T) {
	c := Config{
		MaxParticipants:   8,
		MaxHazardPointers: 6,
		ScanThreshold:     32,
		RetiredSet:        RetiredSetTree,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.MaxParticipants != 8 || c.MaxHazardPointers != 6 || c.ScanThreshold != 32 {
		t.Fatalf("validate overwrote explicit values: %+v", c)
	}
	if c.RetiredSet != RetiredSetTree {
		t.Fatalf("validate should not touch RetiredSet")
	}
}

func TestValidateRaisesUndersizedHazardPointers(t *testing.T) {
	c := Config{MaxHazardPointers: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.MaxHazardPointers != MaxHazardPointers {
		t.Fatalf("expected MaxHazardPointers raised to default %d, got %d", MaxHazardPointers, c.MaxHazardPointers)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.MaxParticipants != MaxParticipants {
		t.Fatalf("DefaultConfig should already carry MaxParticipants")
	}
}

func TestSystemTimeProviderReturnsPositiveTime(t *testing.T) {
	var p systemTimeProvider
	if p.Now() <= 0 {
		t.Fatalf("expected a positive nanosecond timestamp")
	}
}
