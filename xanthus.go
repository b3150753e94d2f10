// xanthus.go: version and compile-time constants
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

const (
	// Version of the Xanthus lock-free ordered-set library.
	Version = "v0.1.0-dev"

	// MaxParticipants is the compile-time bound on concurrently
	// registered participants (T_MAX in the hazard-pointer paper).
	MaxParticipants = 128

	// MaxHazardPointers is the default number of hazard slots per
	// participant (K in the hazard-pointer paper). The list algorithms
	// use the NEXT, CURR and PREV slots; START is reserved from the
	// reference slot layout.
	MaxHazardPointers = 5

	// DefaultScanThreshold is the retired-set size (R) that triggers a
	// scan. The reference design scans on every retirement.
	DefaultScanThreshold = 0

	// listHazardSlots is the number of hazard slots a Registry must
	// reserve for the list algorithms (the reference design constructs
	// its registry with 4).
	listHazardSlots = 4

	// cacheLinePad is the number of padding bytes after each
	// per-participant hazard row header (see hazardRow in hp.go).
	cacheLinePad = 128
)

// hazard slot indices, matching the reference design's slot layout.
const (
	hpNext = iota
	hpCurr
	hpPrev
	hpStart
)
