//go:build !xanthus_debug

// node_release.go: no-op use-after-free detection for production builds
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

// armFinalizer is a no-op in release builds. See node_debug.go for the
// xanthus_debug variant.
func armFinalizer(n *node) {}
