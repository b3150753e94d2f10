// Package otel provides OpenTelemetry integration for xanthus registry metrics.
//
// This package implements the xanthus.MetricsCollector interface using
// OpenTelemetry, enabling observability with automatic percentile
// calculation (p50, p95, p99) and multi-backend export (Prometheus,
// Jaeger, DataDog, Grafana).
//
// # Usage
//
//	import (
//	    "github.com/agilira/xanthus"
//	    xanthusotel "github.com/agilira/xanthus/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	metricsCollector, _ := xanthusotel.NewOTelMetricsCollector(provider)
//
//	reg := xanthus.NewRegistry(xanthus.Config{MetricsCollector: metricsCollector})
//
// # Metrics Exposed
//
//   - xanthus_scan_latency_ns: Histogram of hazard-pointer scan latencies
//   - xanthus_cas_retries_total: Counter of CAS retries, by operation
//   - xanthus_helped_unlinks_total: Counter of physically-unlinked marked nodes
//   - xanthus_retires_total: Counter of nodes retired
//   - xanthus_scans_total: Counter of hazard-pointer scans performed
//   - xanthus_reclaimed_total: Counter of nodes actually reclaimed
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthus.MetricsCollector using
// OpenTelemetry.
//
// Thread-safety: safe for concurrent use by multiple goroutines. The
// underlying OTEL instruments are thread-safe and lock-free.
type OTelMetricsCollector struct {
	scanLatency   metric.Int64Histogram
	casRetries    metric.Int64Counter
	helpedUnlinks metric.Int64Counter
	retires       metric.Int64Counter
	scans         metric.Int64Counter
	reclaimed     metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthus"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple Registry instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
// provider must not be nil.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/xanthus"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.scanLatency, err = meter.Int64Histogram(
		"xanthus_scan_latency_ns",
		metric.WithDescription("Latency of hazard-pointer scans in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.casRetries, err = meter.Int64Counter(
		"xanthus_cas_retries_total",
		metric.WithDescription("Total number of compare-and-swap retries, by operation"),
	)
	if err != nil {
		return nil, err
	}

	collector.helpedUnlinks, err = meter.Int64Counter(
		"xanthus_helped_unlinks_total",
		metric.WithDescription("Total number of physically-unlinked marked nodes"),
	)
	if err != nil {
		return nil, err
	}

	collector.retires, err = meter.Int64Counter(
		"xanthus_retires_total",
		metric.WithDescription("Total number of nodes added to a retired set"),
	)
	if err != nil {
		return nil, err
	}

	collector.scans, err = meter.Int64Counter(
		"xanthus_scans_total",
		metric.WithDescription("Total number of hazard-pointer scans performed"),
	)
	if err != nil {
		return nil, err
	}

	collector.reclaimed, err = meter.Int64Counter(
		"xanthus_reclaimed_total",
		metric.WithDescription("Total number of nodes reclaimed by a scan"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordCASRetry records a single failed-and-retried compare-and-swap
// for the named operation ("find", "insert", "delete", ...).
func (c *OTelMetricsCollector) RecordCASRetry(op string) {
	c.casRetries.Add(context.Background(), 1, metric.WithAttributes(attribute.String("op", op)))
}

// RecordHelpedUnlink records that a traversal physically unlinked a
// run of count logically-deleted nodes it did not itself mark.
func (c *OTelMetricsCollector) RecordHelpedUnlink(count int) {
	c.helpedUnlinks.Add(context.Background(), int64(count))
}

// RecordScan records a completed hazard-pointer scan: examined
// retired addresses, the subset actually reclaimed, and the scan's
// wall-clock latency.
func (c *OTelMetricsCollector) RecordScan(examined, reclaimed int, latencyNs int64) {
	ctx := context.Background()
	c.scanLatency.Record(ctx, latencyNs)
	c.scans.Add(ctx, 1)
	c.reclaimed.Add(ctx, int64(reclaimed))
}

// RecordRetire records that a node was appended to a participant's
// retired set.
func (c *OTelMetricsCollector) RecordRetire() {
	c.retires.Add(context.Background(), 1)
}

// Compile-time interface check.
var _ xanthus.MetricsCollector = (*OTelMetricsCollector)(nil)
