// Package observe adapts cell trace events to Prometheus metrics and
// OpenTelemetry traces. The core stays dependency-free; attach these
// with cell.WithHook (combine with cell.Hooks to use both).
package observe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cellkit-dev/cellkit/pkg/cell"
)

// MetricsConfig configures the Prometheus hook.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "cellkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus hook.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "cellkit",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for cell operations.
type metrics struct {
	setsTotal       *prometheus.CounterVec
	recomputesTotal *prometheus.CounterVec
	persistTotal    *prometheus.CounterVec
}

// The default-registry instance registers once; registering the same
// collectors twice panics in client_golang.
var (
	defaultMetrics     *metrics
	defaultMetricsOnce sync.Once
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		setsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sets_total",
			Help:        "Total Set/Update calls by cell; changed=false means the equality policy suppressed the write",
			ConstLabels: config.ConstLabels,
		}, []string{"cell", "changed"}),

		recomputesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "recomputes_total",
			Help:        "Total derived-cell recomputations by cell",
			ConstLabels: config.ConstLabels,
		}, []string{"cell", "changed"}),

		persistTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "persist_ops_total",
			Help:        "Total persistence operations by cell, op, and status",
			ConstLabels: config.ConstLabels,
		}, []string{"cell", "op", "status"}),
	}
}

// Prometheus returns a hook that counts cell operations.
//
// Metrics collected:
//   - cellkit_sets_total: Set/Update calls by cell and changed
//   - cellkit_recomputes_total: derived recomputations by cell and changed
//   - cellkit_persist_ops_total: hydrate/persist ops by cell, op, status
//
// With the default registry the collectors are created once, on the
// first call; namespace, subsystem, and const-label options on later
// calls are ignored and the first call's collectors are reused
// (registering the same metrics twice panics in client_golang). Pass
// WithRegistry to get independently configured collectors.
//
// Example:
//
//	count := cell.NewValue(0,
//	    cell.WithName[int]("count"),
//	    cell.WithHook[int](observe.Prometheus()),
//	)
func Prometheus(opts ...MetricsOption) cell.Hook {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	var m *metrics
	if config.Registry == prometheus.Registerer(prometheus.DefaultRegisterer) {
		defaultMetricsOnce.Do(func() {
			defaultMetrics = initMetrics(config)
		})
		m = defaultMetrics
	} else {
		m = initMetrics(config)
	}

	return func(ev cell.Event) {
		switch ev.Op {
		case cell.OpSet:
			m.setsTotal.WithLabelValues(ev.Cell, boolLabel(ev.Changed)).Inc()
		case cell.OpRecompute:
			m.recomputesTotal.WithLabelValues(ev.Cell, boolLabel(ev.Changed)).Inc()
		case cell.OpHydrate, cell.OpPersist:
			status := "ok"
			if ev.Err != nil {
				status = "error"
			}
			m.persistTotal.WithLabelValues(ev.Cell, ev.Op.String(), status).Inc()
		}
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
