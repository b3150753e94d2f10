// node.go: list node representation and pooled allocation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"sync"
	"sync/atomic"
)

// nodeMagic is the sentinel word a live node carries. freeNode checks
// it (see checkMagic) to catch a double free, and the debug build's
// finalizer (see node_debug.go) checks it to catch a node dropped
// without going through freeNode: a node returned to the pool has its
// magic overwritten with nodeMagicFreed.
const nodeMagic = uint32(0xDEADBEAF)

// nodeMagicFreed marks a node that has been reclaimed and returned to
// the pool. Any read of this value from a node a caller believes is
// still live is a use-after-free.
const nodeMagicFreed = uint32(0xFEEDFACE)

// node is a singly-linked sorted-list element. The Harris-Michael
// algorithm needs next to be a single atomically-updatable word that
// carries both the successor pointer and a one-bit logical-deletion
// marker; it is represented here as an atomic.Uintptr over a tagged
// pointer (see markedptr.go) rather than a typed *node field, since Go
// has no atomic compare-and-swap over pointer-plus-flag in one word.
//
// key orders the set; two sentinels bound traversal: the head carries
// key 0 and the tail key ^uint64(0), and both keys are rejected as
// ordinary members (see list.go).
type node struct {
	magic uint32
	_     [4]byte // pad to 8-byte alignment for the following word
	next  atomic.Uintptr
	key   uint64
}

// nodePool recycles node allocations. Nodes are only returned to the
// pool once a hazard-pointer scan has determined no participant can
// still be dereferencing them (see Registry.scan in hp.go) — at that
// point the strong *node reference held by the retired set is the last
// one, and dropping it via pool.Put lets the runtime's GC reclaim the
// backing memory whenever it next runs.
var nodePool sync.Pool

func newNode(key uint64) *node {
	n, _ := nodePool.Get().(*node)
	if n == nil {
		n = new(node)
	}
	n.magic = nodeMagic
	n.key = key
	n.next.Store(0)
	armFinalizer(n)
	return n
}

// freeNode returns n to the pool for reuse. Callers must hold the only
// remaining strong reference: n must already be physically unlinked
// from every list and have survived a hazard-pointer scan. The magic
// check catches double frees the same way the reference design's
// destroy-time assert does.
func freeNode(n *node) {
	if n == nil {
		return
	}
	checkMagic(n)
	n.magic = nodeMagicFreed
	nodePool.Put(n)
}

// checkMagic panics with a structured use-after-free error if n's
// magic word does not match nodeMagic. Called by freeNode before a
// node goes back to the pool, mirroring the reference design's
// destroy-time assert(magic == LIST_MAGIC); list traversals do not
// call it.
func checkMagic(n *node) {
	if n.magic != nodeMagic {
		panic(NewErrUseAfterFree(n.key, nodeMagic, n.magic))
	}
}
