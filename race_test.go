// race_test.go: goroutine fan-out stress test across both list variants
//
// Intended to be run with `go test -race`; exercises concurrent
// Insert/Delete/Contains against overlapping key ranges so that
// helped unlinks, CAS retries, and hazard-pointer scans all actually
// fire, not just the disjoint-key fast path.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"sync"
	"testing"
)

func stressSet(t *testing.T, newSet func(*Registry) Set, retiredSet RetiredSetKind) {
	t.Helper()

	const workers = 32
	const keySpace = 256
	const opsPerWorker = 512

	reg := NewRegistry(Config{
		MaxParticipants:   workers + 1,
		MaxHazardPointers: 5,
		ScanThreshold:     8,
		RetiredSet:        retiredSet,
	})
	defer reg.Close()

	set := newSet(reg)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := reg.Join()
			if err != nil {
				t.Errorf("join: %v", err)
				return
			}
			// a simple xorshift so each worker's access pattern is
			// deterministic but overlaps with every other worker's.
			state := uint64(w*2654435761 + 1)
			next := func() uint64 {
				state ^= state << 13
				state ^= state >> 7
				state ^= state << 17
				return state
			}
			for i := 0; i < opsPerWorker; i++ {
				key := next()%keySpace + 1 // avoid key 0
				switch i % 3 {
				case 0:
					set.Insert(p, key)
				case 1:
					set.Delete(p, key)
				default:
					set.Contains(p, key)
				}
			}
		}()
	}
	wg.Wait()

	// drain everything so Len settles at zero and no protected node
	// lingers unreclaimed.
	drainer, _ := reg.Join()
	for k := uint64(1); k <= keySpace; k++ {
		set.Delete(drainer, k)
	}
	if set.Len() != 0 {
		t.Fatalf("expected empty set after draining, got %d keys", set.Len())
	}
}

func TestOrderedListConcurrentStress(t *testing.T) {
	stressSet(t, func(reg *Registry) Set {
		return NewOrderedList(reg)
	}, RetiredSetArray)
}

func TestSimpleListConcurrentStress(t *testing.T) {
	stressSet(t, func(reg *Registry) Set {
		return NewSimpleList(reg)
	}, RetiredSetTree)
}
