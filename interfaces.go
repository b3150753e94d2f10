// interfaces.go: public interfaces for Xanthus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

// Set represents an ordered set of uint64 keys. Both OrderedList and
// SimpleList implement it. All methods must be safe for concurrent use
// by multiple participants.
type Set interface {
	// Insert adds key to the set. Returns true if the key was not
	// already present.
	Insert(p *Participant, key uint64) bool

	// Delete removes key from the set. The key is guaranteed absent
	// whenever Delete returns true. Reporting under racing deleters is
	// variant-specific: OrderedList also returns true when another
	// deleter's mark already covered the key, SimpleList only when its
	// own mark landed.
	Delete(p *Participant, key uint64) bool

	// Contains reports whether key is currently a member of the set.
	Contains(p *Participant, key uint64) bool

	// Len returns the number of keys currently in the set. The walk
	// takes no hazard protection, so call it only at quiescence (no
	// concurrent mutation), as diagnostics and tests do.
	Len() int

	// Stats returns a snapshot of internal operation counters.
	Stats() SetStats

	// Close tears down the set's hazard-pointer registry, draining
	// every participant's retired set, and frees the sentinel nodes.
	Close() error
}

// SetStats reports internal counters useful for diagnosing contention
// and reclamation behavior. It is not part of the set's logical
// semantics.
type SetStats struct {
	// Inserts is the number of successful Insert calls.
	Inserts uint64

	// Deletes is the number of Delete calls whose own mark
	// linearized a removal.
	Deletes uint64

	// CASRetries is the number of times a CAS on prev_field or next
	// failed and the operation retried.
	CASRetries uint64

	// HelpedUnlinks is the number of marked nodes physically unlinked
	// by a traverser other than the deleter that marked them.
	HelpedUnlinks uint64

	// Scans is the number of hazard-pointer scans performed.
	Scans uint64

	// Reclaimed is the number of retired nodes actually freed.
	Reclaimed uint64

	// Size is the current number of keys in the set.
	Size int
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector collects operation metrics for a Registry/Set pair.
// Implementations must be safe for concurrent use and should be as
// close to free as possible when there is nothing interesting to
// report; NoOpMetricsCollector is the zero-overhead default.
type MetricsCollector interface {
	// RecordCASRetry is called each time a compare-and-swap on
	// prev_field or a node's next word fails and the caller retries.
	RecordCASRetry(op string)

	// RecordHelpedUnlink is called when a traversal physically
	// unlinks a run of marked nodes it did not itself mark.
	RecordHelpedUnlink(count int)

	// RecordScan is called after a hazard-pointer scan completes,
	// reporting how many retired addresses were examined and how many
	// were actually reclaimed.
	RecordScan(examined, reclaimed int, latencyNs int64)

	// RecordRetire is called each time an address is appended to a
	// participant's retired set.
	RecordRetire()
}

// NoOpMetricsCollector is a MetricsCollector that does nothing. Used as
// the default to avoid nil checks on every operation.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordCASRetry(op string)                            {}
func (NoOpMetricsCollector) RecordHelpedUnlink(count int)                        {}
func (NoOpMetricsCollector) RecordScan(examined, reclaimed int, latencyNs int64) {}
func (NoOpMetricsCollector) RecordRetire()                                       {}
