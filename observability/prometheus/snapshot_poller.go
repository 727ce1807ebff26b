package prometheus

import (
	"context"
	"sync"
	"time"

	"github.com/Swind/go-native-thread/core"
	prom "github.com/prometheus/client_golang/prometheus"
)

// StatsProvider provides current lifecycle counter snapshots.
// core.Stats is the canonical provider.
type StatsProvider func() core.RegistryStats

// SnapshotPoller periodically exports core.Stats() snapshots into Prometheus gauges.
type SnapshotPoller struct {
	interval time.Duration
	provider StatsProvider

	started       prom.Gauge
	finished      prom.Gauge
	running       prom.Gauge
	startFailures prom.Gauge
	bound         prom.Gauge

	stateMu sync.Mutex
	polling bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
// A nil provider polls core.Stats.
func NewSnapshotPoller(reg prom.Registerer, interval time.Duration, provider StatsProvider) (*SnapshotPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}
	if provider == nil {
		provider = core.Stats
	}

	started := prom.NewGauge(prom.GaugeOpts{
		Namespace: "nativethread",
		Name:      "lifecycle_started",
		Help:      "Threads started since process start.",
	})
	finished := prom.NewGauge(prom.GaugeOpts{
		Namespace: "nativethread",
		Name:      "lifecycle_finished",
		Help:      "Threads finished since process start.",
	})
	running := prom.NewGauge(prom.GaugeOpts{
		Namespace: "nativethread",
		Name:      "lifecycle_running",
		Help:      "Threads currently between Start and Finished.",
	})
	startFailures := prom.NewGauge(prom.GaugeOpts{
		Namespace: "nativethread",
		Name:      "lifecycle_start_failures",
		Help:      "Start calls that returned false since process start.",
	})
	bound := prom.NewGauge(prom.GaugeOpts{
		Namespace: "nativethread",
		Name:      "registry_bound",
		Help:      "Goroutines currently bound to a thread identity.",
	})

	var err error
	if started, err = registerCollector(reg, started); err != nil {
		return nil, err
	}
	if finished, err = registerCollector(reg, finished); err != nil {
		return nil, err
	}
	if running, err = registerCollector(reg, running); err != nil {
		return nil, err
	}
	if startFailures, err = registerCollector(reg, startFailures); err != nil {
		return nil, err
	}
	if bound, err = registerCollector(reg, bound); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval:      interval,
		provider:      provider,
		started:       started,
		finished:      finished,
		running:       running,
		startFailures: startFailures,
		bound:         bound,
	}, nil
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.polling {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.polling = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.polling {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.polling = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.collectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collectOnce()
		}
	}
}

func (p *SnapshotPoller) collectOnce() {
	stats := p.provider()
	p.started.Set(float64(stats.Started))
	p.finished.Set(float64(stats.Finished))
	p.running.Set(float64(stats.Running))
	p.startFailures.Set(float64(stats.StartFailures))
	p.bound.Set(float64(stats.Bound))
}
