// hot-reload_test.go: dynamic scan-threshold configuration tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestParseConfigReadsScanThreshold(t *testing.T) {
	hc := &HotConfig{config: DefaultConfig()}

	cfg := hc.parseConfig(map[string]interface{}{
		"registry": map[string]interface{}{"scan_threshold": 32},
	})
	if cfg.ScanThreshold != 32 {
		t.Fatalf("expected scan_threshold 32, got %d", cfg.ScanThreshold)
	}

	// flat layout, float64 value (JSON numbers decode as float64).
	cfg = hc.parseConfig(map[string]interface{}{"scan_threshold": float64(8)})
	if cfg.ScanThreshold != 8 {
		t.Fatalf("expected scan_threshold 8 from flat float64, got %d", cfg.ScanThreshold)
	}

	// out-of-range and missing values leave the previous setting.
	cfg = hc.parseConfig(map[string]interface{}{
		"registry": map[string]interface{}{"scan_threshold": -5},
	})
	if cfg.ScanThreshold != DefaultScanThreshold {
		t.Fatalf("negative threshold should be ignored, got %d", cfg.ScanThreshold)
	}
	cfg = hc.parseConfig(map[string]interface{}{"unrelated": true})
	if cfg.ScanThreshold != DefaultScanThreshold {
		t.Fatalf("unrelated config should not touch the threshold, got %d", cfg.ScanThreshold)
	}
}

func TestApplyChangesUpdatesLiveRegistry(t *testing.T) {
	reg := NewRegistry(Config{MaxParticipants: 1})
	defer reg.Close()
	hc := &HotConfig{reg: reg, config: reg.cfg}

	old := reg.cfg
	updated := old
	updated.ScanThreshold = 64
	hc.applyChanges(old, updated)

	if reg.ScanThreshold() != 64 {
		t.Fatalf("expected live threshold 64, got %d", reg.ScanThreshold())
	}
}

func TestSetScanThresholdControlsScanTiming(t *testing.T) {
	reg := NewRegistry(Config{MaxParticipants: 1, ScanThreshold: 1 << 20})
	defer reg.Close()
	p, _ := reg.Join()

	reg.Retire(p, newNode(1))
	if reg.scans.Load() != 0 {
		t.Fatalf("no scan expected while below threshold")
	}

	reg.SetScanThreshold(1)
	reg.Retire(p, newNode(2))
	if reg.scans.Load() == 0 {
		t.Fatalf("lowered threshold should have triggered a scan")
	}
	if reg.reclaimed.Load() != 2 {
		t.Fatalf("expected both unprotected nodes reclaimed, got %d", reg.reclaimed.Load())
	}
}
