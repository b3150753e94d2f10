// Package xanthus provides a lock-free, ordered set of uint64 keys backed
// by a singly-linked sorted list whose memory is reclaimed through a
// hazard-pointer registry.
//
// # Overview
//
// Xanthus is a textbook non-blocking data structure: readers never take
// locks, writers publish single-word updates via compare-and-swap, and
// nodes unlinked from the list are not freed until no concurrent
// participant can still be dereferencing them. Its main features:
//
//   - Concurrency: Lock-free list operations using marked next-pointers
//   - Memory safety: Hazard-pointer protected reclamation (no ABA, no
//     use-after-free) without a stop-the-world GC pause for the list
//     itself
//   - Two independently-derived list algorithms sharing one registry
//   - Structured Errors: Rich error context with error codes
//   - Observability: OpenTelemetry integration (optional separate package)
//
// # Quick Start
//
//	import "github.com/agilira/xanthus"
//
//	func main() {
//	    reg := xanthus.NewRegistry(xanthus.DefaultConfig())
//	    defer reg.Close()
//
//	    list := xanthus.NewOrderedList(reg)
//
//	    p, err := reg.Join()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    list.Insert(p, 42)
//	    ok := list.Contains(p, 42) // true
//	    list.Delete(p, 42)
//	}
//
// A *Participant must be obtained once per goroutine via Registry.Join
// and reused for every subsequent list call from that goroutine — Go has
// no implicit thread-local storage, so the participant token is passed
// explicitly (see DESIGN.md for the rationale).
//
// # Concurrency Model
//
// Xanthus uses a lock-free design with atomic operations:
//
//   - find/insert/delete: CAS retry loop, lock-free overall (some
//     participant always makes progress)
//   - HP protect/clear: wait-free, O(K) per call
//   - HP retire/scan: wait-free, O(|retired| * T*K) per call (every
//     retired address is checked against every hazard slot)
//
// # Two list variants
//
// OrderedList implements the Harris-Michael "ordered find" algorithm:
// traversal helps unlink runs of logically-deleted (marked) nodes as it
// walks past them.
//
// SimpleList implements a plainer find/insert/delete split whose
// traversal unlinks one marked node at a time instead of whole runs.
// Both satisfy the same set semantics and are backed by the same
// Registry type; the Registry's Config.RetiredSet picks the
// array-backed or red-black-tree-backed retired set for whichever
// list uses it.
//
// # Memory reclamation
//
// A node retired from the list is not freed synchronously. The Registry
// scans all participants' hazard slots and only reclaims a retired node
// once it is certain no participant can still dereference it. See
// Registry.Retire and the package-level design notes in DESIGN.md for
// the exact contract.
//
// # Observability
//
// Built-in counters via Set.Stats() on either list (CAS retries,
// helped unlinks, scans performed, nodes reclaimed). Enterprise
// observability with OpenTelemetry (optional):
//
//	import xanthusotel "github.com/agilira/xanthus/otel"
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	metricsCollector, _ := xanthusotel.NewOTelMetricsCollector(provider)
//
//	reg := xanthus.NewRegistry(xanthus.Config{
//	    MetricsCollector: metricsCollector, // Optional, zero overhead if nil
//	})
//
// The core xanthus package has zero OTEL dependencies; xanthus/otel is a
// separate module.
//
// # Error Handling
//
// Programming-error invariant violations (retired-set overflow,
// hazard-slot index out of range, use-after-free detected via a node's
// magic word) panic with a structured *errors.Error from
// github.com/agilira/go-errors. Registry.Join does not panic: it returns
// a structured error when participant capacity is exhausted or the
// Registry is closed. Everything else
// (CAS retries, a changed prev_field, a node observed already marked)
// is handled internally by restarting and is never surfaced to the
// caller. See errors.go for the full set of error codes.
//
// # License
//
// See LICENSE file in the repository.
//
// Contributions welcome at https://github.com/agilira/xanthus
package xanthus
