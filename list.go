// list.go: lock-free ordered set, Harris-Michael find with helping
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "sync/atomic"

// OrderedList is a lock-free ordered set of uint64 keys. Traversal
// (find) physically unlinks runs of logically-deleted nodes it walks
// past, helping any deleter whose CAS has not yet completed. It pairs
// naturally with Config.RetiredSet == RetiredSetArray, though it works
// with either retired-set realization since retiredSet only ever sees
// *node values.
//
// Grounded directly on the reference design's __list_find_ordered /
// list_insert_conti / list_delete_once.
//
// Keys 0 and ^uint64(0) are reserved for the head and tail sentinels
// (mirroring the reference design's head key of 0 and tail key of
// UINTPTR_MAX) and can never be observed as members of the set.
type OrderedList struct {
	reg  *Registry
	head atomic.Uintptr // *node, never marked
	tail atomic.Uintptr // *node, never marked

	inserts atomic.Uint64
	deletes atomic.Uint64
}

// NewOrderedList creates an empty ordered set backed by reg. reg may
// be shared with other lists; each gets its own head/tail sentinels.
func NewOrderedList(reg *Registry) *OrderedList {
	head := newNode(0)
	tail := newNode(^uint64(0))
	head.next.Store(toUintptr(tail))

	l := &OrderedList{reg: reg}
	l.head.Store(toUintptr(head))
	l.tail.Store(toUintptr(tail))
	return l
}

// findResult carries the three nodes __list_find_ordered returns via
// out-parameters in the reference design.
type findResult struct {
	prev *atomic.Uintptr
	curr *node
	next *node
}

// find locates the first live node with key >= target starting from
// start, returning whether a node with key == target was found. prev
// only advances past live nodes, so when the walk stops, any marked
// nodes it traversed form a contiguous run between *prev's last
// observed value (runStart) and curr; find then helps the deleters that
// marked them by CASing prev past the whole run and retiring each node
// in it. Whenever a CAS or validation observes a conflicting update,
// the walk restarts (goto try_again in the reference design).
func (l *OrderedList) find(p *Participant, target uint64, start *atomic.Uintptr) (bool, findResult) {
tryAgain:
	prev := start
	curr := toNode(withoutMark(prev.Load()))
	l.reg.Protect(p, hpCurr, toUintptr(curr))
	runStart := curr

	for {
		nextRaw := curr.next.Load()
		next := toNode(withoutMark(nextRaw))
		l.reg.Protect(p, hpNext, toUintptr(next))

		for {
			if !isMarked(nextRaw) {
				l.reg.ProtectRelease(p, hpPrev, toUintptr(curr))
				prev = &curr.next
				runStart = next
			}
			l.reg.ProtectRelease(p, hpCurr, toUintptr(next))
			curr = next
			if toUintptr(curr) == l.tail.Load() {
				break
			}
			nextRaw = curr.next.Load()
			next = toNode(withoutMark(nextRaw))
			l.reg.Protect(p, hpNext, toUintptr(next))
			if !isMarked(nextRaw) && curr.key >= target {
				break
			}
		}

		if runStart == curr {
			// no marked run between prev and curr; a plain load
			// verifies prev still points at curr.
			if prev.Load() == toUintptr(curr) {
				if toUintptr(curr) != l.tail.Load() && isMarked(curr.next.Load()) {
					goto tryAgain
				}
				return curr.key == target, findResult{prev: prev, curr: curr, next: next}
			}
		} else if prev.CompareAndSwap(toUintptr(runStart), toUintptr(curr)) {
			// the CAS snipped the marked run [runStart, curr) out of
			// the list in one step. This walker won the unlink, so it
			// alone retires the run's nodes; their next fields are
			// frozen (every mutation of a next word CASes from an
			// unmarked expected value), so following them here is safe
			// until each node is handed to Retire.
			unlinked := 0
			for n := runStart; n != curr; {
				succ := toNode(withoutMark(n.next.Load()))
				l.reg.Retire(p, n)
				n = succ
				unlinked++
			}
			l.reg.recordHelpedUnlink(unlinked)
			if toUintptr(curr) != l.tail.Load() && isMarked(curr.next.Load()) {
				goto tryAgain
			}
			return curr.key == target, findResult{prev: prev, curr: curr, next: next}
		} else {
			l.reg.recordCASRetry("find")
		}

		curr = toNode(withoutMark(prev.Load()))
		runStart = curr
		l.reg.ProtectRelease(p, hpCurr, toUintptr(curr))
		if prev.Load() != toUintptr(curr) {
			goto tryAgain
		}
		// outer loop continues, reloading next for the (possibly
		// helped-forward) curr — mirrors the reference design's
		// outer while(true) reloading next at its top.
	}
}

// reservedKey reports whether key collides with a sentinel. The C
// design never faced this: its keys were element addresses, which can
// be neither 0 nor the maximal word. With the full uint64 key space
// the two sentinel keys must be rejected up front, or a search for the
// maximal key would "find" the tail.
func reservedKey(key uint64) bool {
	return key == 0 || key == ^uint64(0)
}

// Insert adds key to the set. Returns true if key was not already
// present. The two reserved sentinel keys are rejected.
//
// A failed publish CAS restarts the whole operation from head. The
// reference design re-found from the failed prev field instead, but
// find's walk never key-checks the node its start field points at
// (correct only for the head sentinel), so a restart from prev can
// walk past a racing insert of this same key and admit a duplicate.
func (l *OrderedList) Insert(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	n := newNode(key)

	for {
		found, r := l.find(p, key, &l.head)
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
		l.reg.recordCASRetry("insert")
	}
}

// Delete removes key from the set. Returns true if the key was present:
// either this call's mark removed it, or a concurrent deleter's mark
// beat this call to the same node. The fetch-or that sets the mark bit
// is the linearization point; the unlink CAS after it is best-effort,
// with any traversal obliged to finish the physical removal of a node
// it observes marked (see find).
func (l *OrderedList) Delete(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	found, r := l.find(p, key, &l.head)
	if !found {
		l.reg.Clear(p)
		return false
	}

	prior := r.curr.next.Or(markBit)
	if isMarked(prior) {
		// another deleter linearized first; the key is gone either way.
		l.reg.Clear(p)
		return true
	}
	l.deletes.Add(1)

	// prior is the successor the instant the mark landed. Unlinking to
	// the find-returned next instead could discard a node inserted
	// after curr between find and the fetch-or.
	if r.prev.CompareAndSwap(toUintptr(r.curr), prior) {
		l.reg.Clear(p)
		l.reg.Retire(p, r.curr)
		return true
	}
	l.reg.recordCASRetry("delete")

	// prev moved under us; whichever walker next crosses the marked
	// node unlinks and retires it. One more find accelerates that.
	l.find(p, key, &l.head)
	l.reg.Clear(p)
	return true
}

// Contains reports whether key is currently a member of the set.
func (l *OrderedList) Contains(p *Participant, key uint64) bool {
	if reservedKey(key) {
		return false
	}
	found, _ := l.find(p, key, &l.head)
	l.reg.Clear(p)
	return found
}

// Len walks the list counting logically-live nodes (head and tail
// sentinels excluded). It takes no hazard protection and so is only
// meaningful at quiescence (no concurrent mutation).
func (l *OrderedList) Len() int {
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
func (l *OrderedList) Stats() SetStats {
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
// drains each participant's retired set. No list operation may be in
// flight; Close assumes the quiescence list_destroy does in the
// reference design. Safe to call more than once.
func (l *OrderedList) Close() error {
	curr := toNode(l.head.Swap(0))
	for curr != nil {
		next := toNode(withoutMark(curr.next.Load()))
		freeNode(curr)
		curr = next
	}
	l.tail.Store(0)
	return l.reg.Close()
}

var _ Set = (*OrderedList)(nil)
