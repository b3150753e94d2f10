// list_simple.go: lock-free ordered set, split find/insert/delete
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "sync/atomic"

// SimpleList is a lock-free ordered set of uint64 keys built on the
// same Registry/hazard-pointer machinery as OrderedList, but with a
// plainer traversal: find unlinks logically-deleted nodes one at a
// time as it encounters them, instead of snipping whole runs the way
// OrderedList's ordered find does, and Delete performs a single
// best-effort unlink CAS after marking, leaving any remaining physical
// removal to later traversals. The control flow is a re-derivation of
// the split-variant reference design, whose original find broke out of
// its walk early on a changed next pointer and could stop at the tail
// before comparing keys; both edges are replaced here with a plain
// restart and a sentinel-key comparison.
//
// It pairs naturally with Config.RetiredSet == RetiredSetTree, though
// it works with either retired-set realization.
//
// Keys 0 and ^uint64(0) are reserved sentinels, as in OrderedList.
type SimpleList struct {
	reg  *Registry
	head atomic.Uintptr
	tail atomic.Uintptr

	inserts atomic.Uint64
	deletes atomic.Uint64
}

// NewSimpleList creates an empty ordered set backed by reg.
func NewSimpleList(reg *Registry) *SimpleList {
	head := newNode(0)
	tail := newNode(^uint64(0))
	head.next.Store(toUintptr(tail))

	l := &SimpleList{reg: reg}
	l.head.Store(toUintptr(head))
	l.tail.Store(toUintptr(tail))
	return l
}

type simpleFindResult struct {
	prev *atomic.Uintptr
	curr *node
	next *node
}

// find walks from head to the first live node with key >= target,
// unlinking (and retiring) each marked node it meets along the way.
// The returned prev is the next-field that must be CAS'd to splice at
// curr; next is curr's successor as last observed. Every shared load
// is published into a hazard slot and then re-read from its source
// before the walk trusts it; any mismatch restarts from head.
func (l *SimpleList) find(p *Participant, target uint64) (bool, simpleFindResult) {
tryAgain:
	prev := &l.head
	curr := toNode(withoutMark(prev.Load()))
	l.reg.Protect(p, hpCurr, toUintptr(curr))
	if prev.Load() != toUintptr(curr) {
		goto tryAgain
	}

	for {
		nextRaw := curr.next.Load()
		next := toNode(withoutMark(nextRaw))
		l.reg.Protect(p, hpNext, toUintptr(next))

		// publish-then-recheck: if curr's next changed while the
		// hazard store landed, the protected value may already be
		// unlinked, so start over.
		if curr.next.Load() != nextRaw {
			goto tryAgain
		}
		if prev.Load() != toUintptr(curr) {
			goto tryAgain
		}

		if !isMarked(nextRaw) {
			if curr.key >= target {
				return curr.key == target, simpleFindResult{prev: prev, curr: curr, next: next}
			}
			prev = &curr.next
			l.reg.ProtectRelease(p, hpPrev, toUintptr(curr))
		} else {
			// curr is logically deleted; splice it out before moving
			// on, finishing the removal its deleter started.
			if !prev.CompareAndSwap(toUintptr(curr), toUintptr(next)) {
				l.reg.recordCASRetry("simple-find")
				goto tryAgain
			}
			l.reg.Retire(p, curr)
			l.reg.recordHelpedUnlink(1)
		}
		l.reg.ProtectRelease(p, hpCurr, toUintptr(next))
		curr = next
	}
}

// Insert adds key to the set. Returns true if key was not already
// present. The two reserved sentinel keys are rejected.
func (l *SimpleList) Insert(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	n := newNode(key)

	for {
		found, r := l.find(p, key)
		if found {
			freeNode(n)
			l.reg.Clear(p)
			return false
		}

		n.next.Store(toUintptr(r.curr))
		if r.prev.CompareAndSwap(toUintptr(r.curr), toUintptr(n)) {
			l.reg.Clear(p)
			l.inserts.Add(1)
			return true
		}
		l.reg.recordCASRetry("simple-insert")
	}
}

// Delete removes key from the set. Returns true if this call's mark CAS
// removed it. The mark is the linearization point; the unlink CAS that
// follows is a single best-effort attempt, and if it loses a race the
// marked node stays chained until a later find splices it out.
func (l *SimpleList) Delete(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	for {
		found, r := l.find(p, key)
		if !found {
			l.reg.Clear(p)
			return false
		}

		// mark using the exact successor find validated; if it moved
		// (new insert after curr, or a concurrent deleter won), re-find.
		if !r.curr.next.CompareAndSwap(toUintptr(r.next), withMark(toUintptr(r.next))) {
			l.reg.recordCASRetry("simple-delete")
			continue
		}

		if r.prev.CompareAndSwap(toUintptr(r.curr), toUintptr(r.next)) {
			l.reg.Retire(p, r.curr)
		}
		l.reg.Clear(p)
		l.deletes.Add(1)
		return true
	}
}

// Contains reports whether key is currently a member of the set.
func (l *SimpleList) Contains(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	found, _ := l.find(p, key)
	l.reg.Clear(p)
	return found
}

// Len walks the list counting logically-live nodes. It takes no hazard
// protection and so is only meaningful at quiescence (no concurrent
// mutation), like the reference design's final sweep.
func (l *SimpleList) Len() int {
	count := 0
	curr := toNode(withoutMark(toNode(l.head.Load()).next.Load()))
	for toUintptr(curr) != l.tail.Load() {
		nextRaw := curr.next.Load()
		if !isMarked(nextRaw) {
			count++
		}
		curr = toNode(withoutMark(nextRaw))
	}
	return count
}

// Stats returns a snapshot of operation counters for this list plus
// its backing Registry.
func (l *SimpleList) Stats() SetStats {
	return SetStats{
		Inserts:       l.inserts.Load(),
		Deletes:       l.deletes.Load(),
		CASRetries:    l.reg.casRetries.Load(),
		HelpedUnlinks: l.reg.helpedUnlinks.Load(),
		Scans:         l.reg.scans.Load(),
		Reclaimed:     l.reg.reclaimed.Load(),
		Size:          l.Len(),
	}
}

// Close walks the list freeing every node still chained from head —
// sentinels included — then tears down the backing Registry, which
// drains each participant's retired set. Requires quiescence; safe to
// call more than once.
func (l *SimpleList) Close() error {
	curr := toNode(l.head.Swap(0))
	for curr != nil {
		next := toNode(withoutMark(curr.next.Load()))
		freeNode(curr)
		curr = next
	}
	l.tail.Store(0)
	return l.reg.Close()
}

var _ Set = (*SimpleList)(nil)
