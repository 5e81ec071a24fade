// Package metrics records operational counters and step timings for the
// collision loader behind a pluggable Backend. The default backend discards
// everything, so instrumented code never has to check whether metrics are
// configured.
package metrics

import "time"

// Metric names emitted by this package.
const (
	StepTotal           = "collisions_step_total"
	StepDurationSeconds = "collisions_step_duration_seconds"
	RecordsTotal        = "collisions_records_total"
	BatchesTotal        = "collisions_batches_total"
)

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend receives counter increments and duration observations.
type Backend interface {
	IncCounter(name string, delta float64, labels Labels)
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes buffered metrics, if the backend buffers.
	Flush() error
}

type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}
func (nopBackend) Flush() error                             { return nil }

var backend Backend = nopBackend{}

// SetBackend installs b. A nil b leaves the current backend in place. Call
// it before any goroutine starts recording.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the installed backend.
func Flush() error { return backend.Flush() }

// RecordStep counts one execution of step and observes its duration, with
// status "success" or "failure" depending on err.
func RecordStep(job, step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	lbls := Labels{"job": job, "step": step, "status": status}
	backend.IncCounter(StepTotal, 1, lbls)
	backend.ObserveHistogram(StepDurationSeconds, d.Seconds(), lbls)
}

// RecordRow adds delta to the record counter for kind ("decoded",
// "matched", "exported"). Non-positive deltas are dropped.
func RecordRow(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(RecordsTotal, float64(delta), Labels{"job": job, "kind": kind})
}

// RecordBatches adds delta to the export batch counter.
func RecordBatches(job string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter(BatchesTotal, float64(delta), Labels{"job": job})
}
