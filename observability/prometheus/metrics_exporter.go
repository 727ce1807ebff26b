package prometheus

import (
	"errors"
	"fmt"
	"time"

	"github.com/Swind/go-native-thread/core"
	prom "github.com/prometheus/client_golang/prometheus"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	DurationBuckets []float64
}

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	threadsStartedTotal *prom.CounterVec
	threadRunSeconds    *prom.HistogramVec
	startFailuresTotal  *prom.CounterVec
	threadsRunning      prom.Gauge
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "nativethread"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	startedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "threads_started_total",
		Help:      "Total number of threads started.",
	}, []string{"thread", "priority"})
	runSecondsVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "thread_run_seconds",
		Help:      "Thread main-function runtime in seconds.",
		Buckets:   buckets,
	}, []string{"thread", "priority"})
	failureVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "start_failures_total",
		Help:      "Total number of failed Start calls.",
	}, []string{"thread", "reason"})
	runningGauge := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "threads_running",
		Help:      "Number of threads currently running.",
	})

	var err error
	if startedVec, err = registerCollector(reg, startedVec); err != nil {
		return nil, err
	}
	if runSecondsVec, err = registerCollector(reg, runSecondsVec); err != nil {
		return nil, err
	}
	if failureVec, err = registerCollector(reg, failureVec); err != nil {
		return nil, err
	}
	if runningGauge, err = registerCollector(reg, runningGauge); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		threadsStartedTotal: startedVec,
		threadRunSeconds:    runSecondsVec,
		startFailuresTotal:  failureVec,
		threadsRunning:      runningGauge,
	}, nil
}

// RecordThreadStarted records a successful Start.
func (m *MetricsExporter) RecordThreadStarted(name string, priority core.ThreadPriority) {
	if m == nil {
		return
	}
	m.threadsStartedTotal.WithLabelValues(normalizeLabel(name, "unknown"), priorityLabel(priority)).Inc()
	m.threadsRunning.Inc()
}

// RecordThreadFinished records a thread whose main function returned.
func (m *MetricsExporter) RecordThreadFinished(name string, priority core.ThreadPriority, runtime time.Duration) {
	if m == nil {
		return
	}
	m.threadRunSeconds.WithLabelValues(normalizeLabel(name, "unknown"), priorityLabel(priority)).Observe(runtime.Seconds())
	m.threadsRunning.Dec()
}

// RecordStartFailure records a Start call that returned false.
func (m *MetricsExporter) RecordStartFailure(name string, reason string) {
	if m == nil {
		return
	}
	m.startFailuresTotal.WithLabelValues(normalizeLabel(name, "unknown"), normalizeLabel(reason, "unknown")).Inc()
}

func normalizeLabel(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func priorityLabel(priority core.ThreadPriority) string {
	switch priority {
	case core.PriorityLow:
		return "low"
	case core.PriorityNormal:
		return "normal"
	case core.PriorityHigh:
		return "high"
	case core.PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
