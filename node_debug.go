//go:build xanthus_debug

// node_debug.go: use-after-free detection via runtime finalizers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "runtime"

// armFinalizer installs a finalizer that reports a BUG if n is
// garbage-collected while still carrying the live magic word — meaning
// something dropped the last reference without going through
// freeNode, skipping the hazard-pointer protection contract. Only
// built with the xanthus_debug tag: finalizers add GC overhead and
// this check is for development, not production. A node recycled from
// the pool drops the finalizer armed on its previous use first, since
// the runtime refuses to set a second one.
func armFinalizer(n *node) {
	runtime.SetFinalizer(n, nil)
	runtime.SetFinalizer(n, func(n *node) {
		if n.magic == nodeMagic {
			panic(NewErrUseAfterFree(n.key, nodeMagicFreed, n.magic))
		}
	})
}
