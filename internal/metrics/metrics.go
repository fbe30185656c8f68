// Package metrics exposes the replay engine's operational counters and
// gauges as Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder wraps a dedicated prometheus.Registry (rather than the global
// default one) so multiple Recorders — e.g. one per test — never collide
// on metric registration.
type Recorder struct {
	Registry *prometheus.Registry

	StepsForward    prometheus.Counter
	StepsBackward   prometheus.Counter
	Appends         prometheus.Counter
	MalformedByKind *prometheus.CounterVec
	StateGap        prometheus.Gauge
	CheckpointOps   *prometheus.CounterVec
}

// New constructs a Recorder with every collector registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		Registry: reg,
		StepsForward: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "duelrewind",
			Name:      "steps_forward_total",
			Help:      "Number of successful forward interpretation steps.",
		}),
		StepsBackward: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "duelrewind",
			Name:      "steps_backward_total",
			Help:      "Number of successful backward interpretation steps.",
		}),
		Appends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "duelrewind",
			Name:      "appends_total",
			Help:      "Number of messages appended to the log.",
		}),
		MalformedByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duelrewind",
			Name:      "malformed_total",
			Help:      "Malformed-message handler failures by duel error kind.",
		}, []string{"kind"}),
		StateGap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "duelrewind",
			Name:      "state_gap",
			Help:      "Distance the cursor (state) sits behind the realtime watermark (processed).",
		}),
		CheckpointOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duelrewind",
			Name:      "checkpoint_ops_total",
			Help:      "Checkpoint store operations by op (save/periodic-save) and outcome.",
		}, []string{"op", "outcome"}),
	}
	reg.MustRegister(r.StepsForward, r.StepsBackward, r.Appends, r.MalformedByKind, r.StateGap, r.CheckpointOps)
	return r
}

// ObserveForward records a successful forward step.
func (r *Recorder) ObserveForward() {
	r.StepsForward.Inc()
}

// ObserveBackward records a successful backward step.
func (r *Recorder) ObserveBackward() {
	r.StepsBackward.Inc()
}

// ObserveAppend records a message enqueued onto the log.
func (r *Recorder) ObserveAppend() {
	r.Appends.Inc()
}

// ObserveMalformed records a handler failure under its duel error kind
// label (passed as a plain string so this package need not import
// internal/duel).
func (r *Recorder) ObserveMalformed(kind string) {
	r.MalformedByKind.WithLabelValues(kind).Inc()
}

// SetStateGap records how far the cursor (state) sits behind the realtime
// watermark (processed) after backward steps; zero when realtime.
func (r *Recorder) SetStateGap(processed, state int) {
	r.StateGap.Set(float64(processed - state))
}

// ObserveCheckpoint records the outcome of a checkpoint store operation.
func (r *Recorder) ObserveCheckpoint(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.CheckpointOps.WithLabelValues(op, outcome).Inc()
}
