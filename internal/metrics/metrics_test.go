package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type histCall struct {
	name   string
	value  float64
	labels Labels
}

type fakeBackend struct {
	mu         sync.Mutex
	counters   []counterCall
	histograms []histCall
	flushes    int
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveHistogram(name string, value float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histograms = append(f.histograms, histCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return nil
}

func install(t *testing.T) *fakeBackend {
	t.Helper()
	orig := backend
	t.Cleanup(func() { backend = orig })
	fb := &fakeBackend{}
	backend = fb
	return fb
}

func TestRecordStep(t *testing.T) {
	fb := install(t)

	RecordStep("collisions", "extract", nil, 2*time.Second)
	RecordStep("collisions", "decode", errors.New("bad row"), 1500*time.Millisecond)

	if len(fb.counters) != 2 || len(fb.histograms) != 2 {
		t.Fatalf("calls: counters=%d histograms=%d", len(fb.counters), len(fb.histograms))
	}
	c0, c1 := fb.counters[0], fb.counters[1]
	if c0.name != StepTotal || c0.delta != 1 || c0.labels["step"] != "extract" || c0.labels["status"] != "success" {
		t.Fatalf("counter[0] = %#v", c0)
	}
	if c1.labels["status"] != "failure" || c1.labels["job"] != "collisions" {
		t.Fatalf("counter[1] = %#v", c1)
	}
	if h := fb.histograms[1]; h.name != StepDurationSeconds || h.value < 1.499 || h.value > 1.501 {
		t.Fatalf("hist[1] = %#v", h)
	}
}

func TestRecordRowAndBatches(t *testing.T) {
	fb := install(t)

	RecordRow("collisions", "decoded", 3)
	RecordRow("collisions", "decoded", 0)
	RecordRow("collisions", "exported", -2)
	RecordBatches("collisions", 2)
	RecordBatches("collisions", 0)

	if len(fb.counters) != 2 {
		t.Fatalf("expected 2 counter calls, got %d", len(fb.counters))
	}
	if c := fb.counters[0]; c.name != RecordsTotal || c.delta != 3 || c.labels["kind"] != "decoded" {
		t.Fatalf("counter[0] = %#v", c)
	}
	if c := fb.counters[1]; c.name != BatchesTotal || c.delta != 2 {
		t.Fatalf("counter[1] = %#v", c)
	}
}

func TestSetBackendAndFlush(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	SetBackend(fb)
	SetBackend(nil)
	if backend != fb {
		t.Fatal("SetBackend(nil) replaced the backend")
	}
	if err := Flush(); err != nil || fb.flushes != 1 {
		t.Fatalf("Flush: err=%v flushes=%d", err, fb.flushes)
	}
}
