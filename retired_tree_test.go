// retired_tree_test.go: red-black-tree retired set tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestRetiredTreeAddAndSize(t *testing.T) {
	rt := newRetiredTree()
	if rt.size() != 0 {
		t.Fatalf("new retiredTree should be empty")
	}
	for i := 0; i < 10; i++ {
		rt.add(newNode(uint64(i + 1)))
	}
	if rt.size() != 10 {
		t.Fatalf("expected size 10, got %d", rt.size())
	}
}

func TestRetiredTreeInorderIsKeySorted(t *testing.T) {
	rt := newRetiredTree()
	// insert out of order so a naive implementation couldn't cheat by
	// relying on insertion order.
	keys := []uint64{50, 10, 90, 30, 70, 20, 80, 40, 60, 5}
	for _, k := range keys {
		rt.add(newNode(k))
	}

	nodes := rt.inorder()
	if len(nodes) != len(keys) {
		t.Fatalf("expected %d nodes, got %d", len(keys), len(nodes))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].key > nodes[i].key {
			t.Fatalf("inorder walk is not sorted at index %d: %d > %d", i, nodes[i-1].key, nodes[i].key)
		}
	}
}

func TestRetiredTreeScanAndReclaimRemovesUnprotected(t *testing.T) {
	rt := newRetiredTree()
	var nodes []*node
	for i := 0; i < 6; i++ {
		n := newNode(uint64(i + 1))
		nodes = append(nodes, n)
		rt.add(n)
	}
	protected := map[uintptr]bool{
		toUintptr(nodes[1]): true,
		toUintptr(nodes[4]): true,
	}

	var reclaimed []*node
	rt.scanAndReclaim(func(addr uintptr) bool {
		return protected[addr]
	}, func(n *node) {
		reclaimed = append(reclaimed, n)
	})

	if rt.size() != 2 {
		t.Fatalf("expected 2 protected nodes to survive, got %d", rt.size())
	}
	if len(reclaimed) != 4 {
		t.Fatalf("expected 4 reclaimed nodes, got %d", len(reclaimed))
	}
	for _, rn := range rt.inorder() {
		if !protected[rn.key] {
			t.Fatalf("a non-protected node survived the scan")
		}
	}
}

func TestRetiredTreeRemoveMaintainsOrderAcrossManyDeletes(t *testing.T) {
	rt := newRetiredTree()
	var nodes []*node
	for i := 0; i < 50; i++ {
		n := newNode(uint64(i + 1))
		nodes = append(nodes, n)
		rt.add(n)
	}

	// reclaim every other node, verify the remainder stays sorted and
	// the tree's bookkeeping count stays accurate throughout.
	protected := make(map[uintptr]bool)
	for i, n := range nodes {
		if i%2 == 0 {
			protected[toUintptr(n)] = true
		}
	}

	rt.scanAndReclaim(func(addr uintptr) bool {
		return protected[addr]
	}, func(n *node) {})

	if rt.size() != 25 {
		t.Fatalf("expected 25 nodes left, got %d", rt.size())
	}
	got := rt.inorder()
	for i := 1; i < len(got); i++ {
		if got[i-1].key > got[i].key {
			t.Fatalf("tree not sorted after interleaved deletes")
		}
	}
}

func TestRetiredTreeDrainReclaimsEverythingAndResets(t *testing.T) {
	rt := newRetiredTree()
	for i := 0; i < 8; i++ {
		rt.add(newNode(uint64(i + 1)))
	}
	count := 0
	rt.drain(func(n *node) { count++ })
	if count != 8 {
		t.Fatalf("expected 8 reclaimed nodes, got %d", count)
	}
	if rt.size() != 0 {
		t.Fatalf("drain should reset size to 0")
	}
	if len(rt.inorder()) != 0 {
		t.Fatalf("drain should leave the tree empty")
	}
}
