// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig provides dynamic configuration reload capabilities using
// Argus. It watches a configuration file and updates a Registry's
// ScanThreshold (R in the hazard-pointer paper) without requiring the
// Registry, or any list built on it, to be reconstructed.
//
// Structural parameters — MaxParticipants, MaxHazardPointers,
// RetiredSet — cannot be hot-reloaded: they are fixed at NewRegistry
// time because they size the Registry's arrays.
type HotConfig struct {
	reg     *Registry
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations. If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a new hot-reloadable configuration wrapper
// around reg. It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	registry:
//	  scan_threshold: 32
//
// Supported configuration keys:
//   - registry.scan_threshold (int): retired-set size that triggers a scan
func NewHotConfig(reg *Registry, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = reg.cfg.Logger
	}

	hc := &HotConfig{
		reg:      reg,
		OnReload: opts.OnReload,
		config:   reg.cfg,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the current configuration (thread-safe).
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData)
	hc.config = newConfig
	hc.mu.Unlock()

	hc.applyChanges(oldConfig, newConfig)

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parseIntInRange extracts an integer within the specified range [min, max].
// Supports both int and float64 types (YAML/JSON may vary).
func parseIntInRange(value interface{}, min, max int) (int, bool) {
	switch v := value.(type) {
	case int:
		if v >= min && v <= max {
			return v, true
		}
	case float64:
		if int(v) >= min && int(v) <= max {
			return int(v), true
		}
	}
	return 0, false
}

// parseConfig extracts registry configuration from Argus config data.
func (hc *HotConfig) parseConfig(data map[string]interface{}) Config {
	config := hc.config

	section, ok := data["registry"].(map[string]interface{})
	if !ok {
		if _, has := data["scan_threshold"]; has {
			section = data
		} else {
			return config
		}
	}

	if threshold, ok := parseIntInRange(section["scan_threshold"], 0, 1<<20); ok {
		config.ScanThreshold = threshold
	}

	return config
}

// applyChanges applies the runtime-tunable fields of new to the live
// Registry. Only ScanThreshold is hot-reloadable; every other Config
// field sizes fixed-length arrays allocated in NewRegistry and so is
// left untouched here.
func (hc *HotConfig) applyChanges(old, new Config) {
	if new.ScanThreshold == old.ScanThreshold {
		return
	}
	hc.reg.SetScanThreshold(new.ScanThreshold)
}
