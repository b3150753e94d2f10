// retired_array.go: bounded-array retired set with linear compaction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

// retiredSet accumulates nodes a participant has unlinked from a list
// but not yet proven safe to free, and reclaims them once a scan shows
// no hazard pointer still references them. Either list variant can be
// paired with either realization; Config.RetiredSet picks retiredArray
// or retiredTree (see retired_tree.go) for a Registry's participants.
type retiredSet interface {
	// add appends n to the set.
	add(n *node)

	// size reports the current number of retired-but-unreclaimed nodes.
	size() int

	// scanAndReclaim calls protected(addr) for each retired node's
	// address; when it returns false the node is removed from the set
	// and passed to reclaim.
	scanAndReclaim(protected func(addr uintptr) bool, reclaim func(n *node))

	// drain unconditionally reclaims every retired node, for use when
	// the owning Registry is being closed and no concurrent access to
	// the list is assumed.
	drain(reclaim func(n *node))
}

// retiredArray is a bounded array with linear compaction, the
// realization used by the reference design's retirelist_t: retirement
// appends, and a scan walks the slice once, removing reclaimed entries
// in place with a memmove-equivalent copy.
type retiredArray struct {
	list []*node
}

func newRetiredArray() *retiredArray {
	return &retiredArray{}
}

func (a *retiredArray) size() int {
	return len(a.list)
}

func (a *retiredArray) add(n *node) {
	a.list = append(a.list, n)
}

func (a *retiredArray) scanAndReclaim(protected func(uintptr) bool, reclaim func(*node)) {
	i := 0
	for i < len(a.list) {
		n := a.list[i]
		if protected(toUintptr(n)) {
			i++
			continue
		}
		reclaim(n)
		copy(a.list[i:], a.list[i+1:])
		a.list[len(a.list)-1] = nil
		a.list = a.list[:len(a.list)-1]
	}
}

func (a *retiredArray) drain(reclaim func(*node)) {
	for _, n := range a.list {
		reclaim(n)
	}
	a.list = nil
}
