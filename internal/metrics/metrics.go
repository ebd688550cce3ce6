// Package metrics records wizard navigation as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/wizflow/pkg/navigator"
)

// Registry holds every wizflow metric.
var Registry = prometheus.NewRegistry()

var (
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wizflow",
			Subsystem: "navigator",
			Name:      "transitions_total",
			Help:      "Total number of navigation operations by outcome",
		},
		[]string{"wizard", "outcome"},
	)

	blockedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wizflow",
			Subsystem: "navigator",
			Name:      "blocked_total",
			Help:      "Total number of forward navigations blocked by validation, by step",
		},
		[]string{"wizard", "step"},
	)

	historyDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "wizflow",
			Subsystem: "navigator",
			Name:      "history_depth",
			Help:      "Number of steps in the navigation history",
		},
		[]string{"wizard"},
	)

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wizflow",
			Subsystem: "navigator",
			Name:      "step_duration_seconds",
			Help:      "Time spent on a step before navigating away from it",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4min
		},
		[]string{"wizard", "step"},
	)
)

func init() {
	Registry.MustRegister(
		transitionsTotal,
		blockedTotal,
		historyDepth,
		stepDuration,
	)
}

// Recorder observes one wizard's navigator.
type Recorder struct {
	wizard  string
	enabled bool
	depth   int
	entered time.Time
	now     func() time.Time
}

// NewRecorder returns a recorder for the named wizard. A disabled recorder
// observes nothing, so callers can wire it unconditionally.
func NewRecorder(wizard string, enabled bool) *Recorder {
	r := &Recorder{
		wizard:  wizard,
		enabled: enabled,
		depth:   1,
		now:     time.Now,
	}
	r.entered = r.now()
	if enabled {
		historyDepth.WithLabelValues(wizard).Set(1)
	}
	return r
}

// Observe implements navigator.Observer.
func (r *Recorder) Observe(from navigator.StepID, out navigator.Outcome) {
	if !r.enabled {
		return
	}

	transitionsTotal.WithLabelValues(r.wizard, out.Kind.String()).Inc()

	switch out.Kind {
	case navigator.Blocked:
		blockedTotal.WithLabelValues(r.wizard, string(from)).Inc()
	case navigator.Advanced:
		r.leave(from)
		r.depth++
	case navigator.Retreated:
		r.leave(from)
		r.depth--
	case navigator.Finished:
		r.leave(from)
	}

	historyDepth.WithLabelValues(r.wizard).Set(float64(r.depth))
}

func (r *Recorder) leave(step navigator.StepID) {
	now := r.now()
	stepDuration.WithLabelValues(r.wizard, string(step)).Observe(now.Sub(r.entered).Seconds())
	r.entered = now
}

// WriteTextfile writes all metrics in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
