// Package otel provides OpenTelemetry integration for xanthus registry metrics.
//
// # Overview
//
// This package implements the xanthus.MetricsCollector interface using
// OpenTelemetry, enabling observability with automatic percentile
// calculation and multi-backend support (Prometheus, Jaeger, DataDog,
// Grafana).
//
// The package is a separate module to keep the xanthus core
// lightweight. Applications that don't need metrics collection don't
// pay for the OTEL dependencies.
//
// # Installation
//
//	go get github.com/agilira/xanthus/otel
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/xanthus"
//	    xanthusotel "github.com/agilira/xanthus/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	metricsCollector, err := xanthusotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := xanthus.NewRegistry(xanthus.Config{
//	    MetricsCollector: metricsCollector, // optional, zero overhead if nil
//	})
//
// # Metrics Exposed
//
// Histogram:
//   - xanthus_scan_latency_ns: hazard-pointer scan latency in nanoseconds
//
// Counters:
//   - xanthus_cas_retries_total (by "op" attribute: find/insert/delete,
//     and simple-find/simple-insert/simple-delete for SimpleList)
//   - xanthus_helped_unlinks_total
//   - xanthus_retires_total
//   - xanthus_scans_total
//   - xanthus_reclaimed_total
//
// # Prometheus Queries
//
// Scan latency p99 (last 5 minutes):
//
//	histogram_quantile(0.99, rate(xanthus_scan_latency_ns_bucket[5m]))
//
// CAS retry rate by operation:
//
//	sum by (op) (rate(xanthus_cas_retries_total[1m]))
//
// Reclaim efficiency (reclaimed per scan):
//
//	rate(xanthus_reclaimed_total[5m]) / rate(xanthus_scans_total[5m])
//
// # Architecture
//
//	┌───────────────────────────────┐
//	│   xanthus Registry (core)     │
//	│  • No OTEL dependencies       │
//	│  • MetricsCollector interface │
//	│  • NoOpMetricsCollector (def) │
//	└───────────────┬────────────────┘
//	                │ implements
//	                ▼
//	┌───────────────────────────────┐
//	│   xanthus/otel (this package) │
//	│  • OTelMetricsCollector       │
//	│  • OTEL SDK dependencies      │
//	└───────────────┬────────────────┘
//	                │ exports to
//	                ▼
//	       Prometheus / Jaeger / DataDog
//
// # Thread Safety
//
// All methods are thread-safe and use lock-free OTEL instruments.
//
// # License
//
// Same as xanthus core (see LICENSE in main repository).
package otel
