// config.go: configuration for Xanthus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"github.com/agilira/go-timecache"
)

// RetiredSetKind selects the realization of the per-participant retired
// set (C3 in the design notes). Both are functionally equivalent;
// the choice only affects scan-cost profile.
type RetiredSetKind int

const (
	// RetiredSetArray uses a bounded array with linear compaction.
	// It is the default.
	RetiredSetArray RetiredSetKind = iota

	// RetiredSetTree uses a red-black tree keyed by node address. A
	// scan walks the tree's entries in address order and checks each
	// one against the hazard slots, the same direction as the array
	// realization; hazard values are not looked up in the tree.
	RetiredSetTree
)

// Config holds configuration parameters for a Registry and the lists
// built on top of it.
type Config struct {
	// MaxParticipants bounds how many times Registry.Join may succeed
	// over the Registry's lifetime; slots are never recycled. Must be
	// > 0. Default: MaxParticipants (128).
	MaxParticipants int

	// MaxHazardPointers is the number of hazard slots reserved per
	// participant. Must be >= 4, the reference design's registry size
	// for list use. Default: MaxHazardPointers (5).
	MaxHazardPointers int

	// ScanThreshold is the retired-set size (R) that triggers a scan
	// on retire. The reference design uses 0 (scan on every
	// retirement); production deployments typically raise this to
	// amortize scan cost across more retirements. See hot-reload.go
	// for live-tuning this value via Argus.
	ScanThreshold int

	// RetiredSet selects which retired-set realization NewRegistry
	// gives every participant, whichever list is built on the
	// Registry. Default: RetiredSetArray.
	RetiredSet RetiredSetKind

	// Logger is used for scan/retry diagnostics.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for metrics timestamps.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics.
	// If nil, NoOpMetricsCollector is used (zero overhead). Default:
	// NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies sensible
// defaults. Returns nil (no actual validation errors, only
// normalization).
//
// This method is automatically called by NewRegistry, so you typically
// don't need to call it manually.
//
// Default values applied:
//   - MaxParticipants: MaxParticipants (128) if <= 0
//   - MaxHazardPointers: MaxHazardPointers (5) if < 4
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.MaxParticipants <= 0 {
		c.MaxParticipants = MaxParticipants
	}

	if c.MaxHazardPointers < listHazardSlots {
		c.MaxHazardPointers = MaxHazardPointers
	}

	if c.ScanThreshold < 0 {
		c.ScanThreshold = DefaultScanThreshold
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxParticipants:   MaxParticipants,
		MaxHazardPointers: MaxHazardPointers,
		ScanThreshold:     DefaultScanThreshold,
		RetiredSet:        RetiredSetArray,
		Logger:            NoOpLogger{},
		TimeProvider:      &systemTimeProvider{},
		MetricsCollector:  NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides fast time access compared to time.Now() with zero
// allocations, which matters here only for metrics timestamps, never
// for the hot CAS path.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
