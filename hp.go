// hp.go: hazard-pointer registry for safe memory reclamation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"sync/atomic"
)

// hazardRow holds one participant's hazard-pointer slots. The row
// struct (the slice header) is followed by cacheLinePad bytes of
// padding; the slots themselves live in a separate per-row allocation
// that is neither padded nor cache-line aligned, so two participants'
// slots may share a cache line.
type hazardRow struct {
	hp []atomic.Uintptr
	_  [cacheLinePad]byte
}

// Registry is the hazard-pointer manager shared by the list variants
// in this package (C2 in the design notes). A Registry owns a fixed
// number of participant slots, each with its own hazard-pointer row
// and retired set; Join hands out slots, Protect/ProtectRelease
// publish a hazard pointer, and Retire/scan reclaim memory once it is
// provably safe.
//
// The reference design keys all of this off an implicit thread-local
// id (tid()). Go has no equivalent, so every method here takes an
// explicit *Participant obtained from Join.
type Registry struct {
	cfg     Config
	deleter func(*node)

	nextSlot atomic.Int32
	rows     []hazardRow
	retired  []retiredSet

	// scanThreshold mirrors cfg.ScanThreshold but may be live-tuned via
	// HotConfig after construction; Retire always consults this value,
	// never cfg.ScanThreshold directly.
	scanThreshold atomic.Int64

	closed atomic.Bool

	casRetries    atomic.Uint64
	helpedUnlinks atomic.Uint64
	scans         atomic.Uint64
	reclaimed     atomic.Uint64
	retires       atomic.Uint64
}

// NewRegistry creates a Registry per cfg. Every node a scan determines
// is safe to reclaim is returned to the shared node pool via freeNode.
// cfg is validated (and defaulted) in place, mirroring Config.Validate's
// use elsewhere in this package.
func NewRegistry(cfg Config) *Registry {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	r := &Registry{
		cfg:     cfg,
		deleter: freeNode,
		rows:    make([]hazardRow, cfg.MaxParticipants),
		retired: make([]retiredSet, cfg.MaxParticipants),
	}
	for i := range r.rows {
		r.rows[i].hp = make([]atomic.Uintptr, cfg.MaxHazardPointers)
		if cfg.RetiredSet == RetiredSetTree {
			r.retired[i] = newRetiredTree()
		} else {
			r.retired[i] = newRetiredArray()
		}
	}
	r.scanThreshold.Store(int64(cfg.ScanThreshold))
	return r
}

// Join allocates a Participant slot for the calling goroutine. The
// returned Participant must be used only by the goroutine that called
// Join, and only until the Registry is closed.
func (r *Registry) Join() (*Participant, error) {
	if r.closed.Load() {
		return nil, NewErrParticipantClosed()
	}
	slot := r.nextSlot.Add(1) - 1
	if int(slot) >= r.cfg.MaxParticipants {
		return nil, NewErrParticipantCapacityExceeded(r.cfg.MaxParticipants)
	}
	return &Participant{slot: int(slot), reg: r}, nil
}

// Protect publishes ptr into participant p's hazard slot ihp, then
// returns ptr unchanged so call sites can write
// curr = toNode(withoutMark(reg.Protect(p, hpCurr, raw))) in one line,
// mirroring the reference design's list_hp_protect_ptr.
//
// Progress condition: wait-free, population-oblivious.
func (r *Registry) Protect(p *Participant, ihp int, ptr uintptr) uintptr {
	r.checkSlot(ihp)
	r.rows[p.slot].hp[ihp].Store(ptr)
	return ptr
}

// ProtectRelease is Protect with release-ordering semantics made
// explicit at the call site. Go's atomic.Uintptr.Store is already a
// sequentially consistent store, at least as strong as the C11
// release store the reference design asks for here, so this is
// functionally identical to Protect; it is kept as a distinct method
// to preserve the two call sites' distinct intent from the original
// algorithm (a fresh protect vs. republishing an already-validated
// pointer).
func (r *Registry) ProtectRelease(p *Participant, ihp int, ptr uintptr) uintptr {
	return r.Protect(p, ihp, ptr)
}

// Clear zeroes every hazard slot belonging to participant p.
//
// Progress condition: wait-free, bounded by MaxHazardPointers.
func (r *Registry) Clear(p *Participant) {
	row := &r.rows[p.slot]
	for i := range row.hp {
		row.hp[i].Store(0)
	}
}

// Retire records that ptr is logically unreachable and may be
// reclaimed once no participant's hazard slot still references it.
// When the participant's retired set reaches the registry's current
// scan threshold (live-tunable via HotConfig), a scan runs inline
// before Retire returns.
//
// Progress condition: wait-free; a scan checks each retired node
// against all MaxParticipants * MaxHazardPointers slots.
func (r *Registry) Retire(p *Participant, n *node) {
	r.retires.Add(1)
	r.cfg.MetricsCollector.RecordRetire()
	rs := r.retired[p.slot]
	if rs.size() >= r.cfg.MaxParticipants*r.cfg.MaxHazardPointers {
		panic(NewErrRetiredSetOverflow(rs.size(), r.cfg.MaxParticipants*r.cfg.MaxHazardPointers))
	}
	rs.add(n)
	if int64(rs.size()) < r.scanThreshold.Load() {
		return
	}
	r.scan(p)
}

// scan walks participant p's retired set and reclaims every node that
// is not currently protected by any participant's hazard pointers.
func (r *Registry) scan(p *Participant) {
	start := r.cfg.TimeProvider.Now()
	examined := 0
	reclaimed := 0

	rs := r.retired[p.slot]
	rs.scanAndReclaim(func(addr uintptr) bool {
		examined++
		return r.isProtected(addr)
	}, func(n *node) {
		reclaimed++
		r.deleter(n)
	})

	r.scans.Add(1)
	r.reclaimed.Add(uint64(reclaimed))
	r.cfg.Logger.Debug("hazard pointer scan", "examined", examined, "reclaimed", reclaimed)
	r.cfg.MetricsCollector.RecordScan(examined, reclaimed, r.cfg.TimeProvider.Now()-start)
}

// isProtected reports whether addr is currently published in any
// participant's hazard slots.
func (r *Registry) isProtected(addr uintptr) bool {
	for i := range r.rows {
		row := &r.rows[i]
		for j := len(row.hp) - 1; j >= 0; j-- {
			if row.hp[j].Load() == addr {
				return true
			}
		}
	}
	return false
}

// SetScanThreshold changes the retired-set size that triggers a scan.
// Safe to call while operations are in flight; raising it amortizes
// scan cost across more retirements, lowering it reclaims more
// eagerly. Correctness does not depend on the value. HotConfig calls
// this when a watched config file changes.
func (r *Registry) SetScanThreshold(n int) {
	r.scanThreshold.Store(int64(n))
}

// ScanThreshold returns the current scan-trigger threshold.
func (r *Registry) ScanThreshold() int {
	return int(r.scanThreshold.Load())
}

// recordCASRetry and recordHelpedUnlink forward to both the internal
// counters exposed via Stats and the optional MetricsCollector.
func (r *Registry) recordCASRetry(op string) {
	r.casRetries.Add(1)
	r.cfg.MetricsCollector.RecordCASRetry(op)
}

func (r *Registry) recordHelpedUnlink(count int) {
	if count == 0 {
		return
	}
	r.helpedUnlinks.Add(uint64(count))
	r.cfg.MetricsCollector.RecordHelpedUnlink(count)
}

func (r *Registry) checkSlot(ihp int) {
	if ihp < 0 || ihp >= r.cfg.MaxHazardPointers {
		panic(NewErrHazardSlotOutOfRange(ihp, r.cfg.MaxHazardPointers))
	}
}

// Close drains every participant's retired set, reclaiming all nodes
// unconditionally (no concurrent access is assumed to be in flight).
// After Close, Join returns an error and Protect/Retire on existing
// Participants must not be called.
func (r *Registry) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	for i := range r.retired {
		r.retired[i].drain(func(n *node) {
			r.reclaimed.Add(1)
			r.deleter(n)
		})
	}
	return nil
}
