// main.go: concurrent insert/delete stress driver for the xanthus lists
//
// Ports the reference design's pthread-based test() driver to a
// goroutine/WaitGroup harness: each worker owns a private key range;
// even-numbered workers insert theirs while odd-numbered workers delete
// theirs (keys nobody inserted) concurrently, then a final
// single-threaded pass deletes whatever is left.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	flashflags "github.com/agilira/flash-flags"

	"github.com/agilira/xanthus"
)

func main() {
	fs := flashflags.New("xanthusbench")
	threads := fs.Int("threads", 64, "number of concurrent worker goroutines")
	elements := fs.Int("elements", 128, "keys inserted/deleted per worker")
	variant := fs.String("variant", "ordered", "list variant to exercise: ordered|simple")
	retiredSet := fs.String("retired-set", "array", "retired-set realization: array|tree")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	nThreads := *threads
	nElements := *elements

	cfg := xanthus.DefaultConfig()
	if *retiredSet == "tree" {
		cfg.RetiredSet = xanthus.RetiredSetTree
	}
	reg := xanthus.NewRegistry(cfg)
	defer reg.Close()

	var set xanthus.Set
	switch *variant {
	case "simple":
		set = xanthus.NewSimpleList(reg)
	default:
		set = xanthus.NewOrderedList(reg)
	}

	keys := make([][]uint64, nThreads)
	for t := 0; t < nThreads; t++ {
		row := make([]uint64, nElements)
		for i := 0; i < nElements; i++ {
			// Keys are offset by 1 since key 0 is the reserved head
			// sentinel; t is folded into the high bits so every
			// worker's range is disjoint.
			row[i] = uint64(t)<<32 | uint64(i) + 1
		}
		keys[t] = row
	}

	start := time.Now()

	var wg sync.WaitGroup
	for t := 0; t < nThreads; t++ {
		t := t
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := reg.Join()
			if err != nil {
				fmt.Fprintf(os.Stderr, "worker %d: join: %v\n", t, err)
				return
			}
			if t%2 == 0 {
				for _, k := range keys[t] {
					set.Insert(p, k)
				}
			} else {
				for _, k := range keys[t] {
					set.Delete(p, k)
				}
			}
		}()
	}
	wg.Wait()

	p, err := reg.Join()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cleanup join:", err)
		os.Exit(1)
	}
	for _, row := range keys {
		for _, k := range row {
			set.Delete(p, k)
		}
	}

	elapsed := time.Since(start)
	stats := set.Stats()
	fmt.Printf("variant=%s threads=%d elements=%d elapsed=%s\n", *variant, nThreads, nElements, elapsed)
	fmt.Printf("inserts=%d deletes=%d cas_retries=%d helped_unlinks=%d scans=%d reclaimed=%d size=%d\n",
		stats.Inserts, stats.Deletes, stats.CASRetries, stats.HelpedUnlinks, stats.Scans, stats.Reclaimed, stats.Size)

	if stats.Size != 0 {
		fmt.Fprintf(os.Stderr, "%d keys survived the final sweep\n", stats.Size)
		os.Exit(1)
	}
	if err := set.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close:", err)
		os.Exit(1)
	}
}
