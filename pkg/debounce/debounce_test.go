package debounce

import (
	"sync"
	"testing"
	"time"
)

const testWindow = 40 * time.Millisecond

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.values...)
}

func TestSettlesOnceToFinalValue(t *testing.T) {
	rec := &recorder{}
	d := New[string](testWindow, rec.record)

	// keystrokes faster than the window
	d.Set("t")
	time.Sleep(testWindow / 4)
	d.Set("tr")
	time.Sleep(testWindow / 4)
	d.Set("tri")

	if !d.Pending() {
		t.Fatalf("expected pending while window open")
	}
	if got := d.Settled(); got != "" {
		t.Fatalf("settled early to %q", got)
	}

	time.Sleep(2 * testWindow)

	if d.Pending() {
		t.Fatalf("still pending after quiet window")
	}
	if got := d.Settled(); got != "tri" {
		t.Fatalf("Settled() = %q, want %q", got, "tri")
	}
	values := rec.snapshot()
	if len(values) != 1 || values[0] != "tri" {
		t.Fatalf("settlement callbacks = %#v, want exactly one with final value", values)
	}
}

func TestIntermediateValueNeverObserved(t *testing.T) {
	rec := &recorder{}
	d := New[string](testWindow, rec.record)

	d.Set("misr")
	time.Sleep(2 * testWindow)
	d.Set("misra")
	time.Sleep(testWindow / 4)
	d.Set("misrata")
	time.Sleep(2 * testWindow)

	for _, v := range rec.snapshot() {
		if v == "misra" {
			t.Fatalf("observed intermediate keystroke %q", v)
		}
	}
	if got := d.Settled(); got != "misrata" {
		t.Fatalf("Settled() = %q, want %q", got, "misrata")
	}
}

func TestSetEqualToSettledClearsPending(t *testing.T) {
	d := New[string](testWindow, nil)

	d.Set("benghazi")
	time.Sleep(2 * testWindow)

	d.Set("benghazi x")
	if !d.Pending() {
		t.Fatalf("expected pending after divergence")
	}
	d.Set("benghazi")
	if d.Pending() {
		t.Fatalf("pending should clear when raw returns to settled value")
	}

	time.Sleep(2 * testWindow)
	if got := d.Settled(); got != "benghazi" {
		t.Fatalf("Settled() = %q, want %q", got, "benghazi")
	}
}

func TestStopCancelsPendingSettlement(t *testing.T) {
	rec := &recorder{}
	d := New[string](testWindow, rec.record)

	d.Set("tripoli")
	d.Stop()

	time.Sleep(2 * testWindow)

	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("settlement fired after Stop: %#v", got)
	}
	if d.Pending() {
		t.Fatalf("pending should be false after Stop")
	}

	// Set after Stop is a no-op
	d.Set("zawiya")
	time.Sleep(2 * testWindow)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("debouncer accepted input after Stop: %#v", got)
	}
}
