// retired_array_test.go: bounded-array retired set tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestRetiredArrayAddAndSize(t *testing.T) {
	a := newRetiredArray()
	if a.size() != 0 {
		t.Fatalf("new retiredArray should be empty")
	}
	for i := 0; i < 3; i++ {
		a.add(newNode(uint64(i + 1)))
	}
	if a.size() != 3 {
		t.Fatalf("expected size 3, got %d", a.size())
	}
}

func TestRetiredArrayScanAndReclaimCompacts(t *testing.T) {
	a := newRetiredArray()
	protected := make(map[uintptr]bool)

	var nodes []*node
	for i := 0; i < 5; i++ {
		n := newNode(uint64(i + 1))
		nodes = append(nodes, n)
		a.add(n)
	}
	// protect the middle node only; everything else should reclaim.
	protected[toUintptr(nodes[2])] = true

	var reclaimed []*node
	a.scanAndReclaim(func(addr uintptr) bool {
		return protected[addr]
	}, func(n *node) {
		reclaimed = append(reclaimed, n)
	})

	if a.size() != 1 {
		t.Fatalf("expected 1 node left protected, got %d", a.size())
	}
	if toUintptr(a.list[0]) != toUintptr(nodes[2]) {
		t.Fatalf("wrong node survived the scan")
	}
	if len(reclaimed) != 4 {
		t.Fatalf("expected 4 reclaimed nodes, got %d", len(reclaimed))
	}
}

func TestRetiredArrayDrainReclaimsEverything(t *testing.T) {
	a := newRetiredArray()
	for i := 0; i < 4; i++ {
		a.add(newNode(uint64(i + 1)))
	}
	count := 0
	a.drain(func(n *node) { count++ })
	if count != 4 {
		t.Fatalf("expected drain to reclaim 4 nodes, got %d", count)
	}
	if a.size() != 0 {
		t.Fatalf("drain should leave the set empty")
	}
}
