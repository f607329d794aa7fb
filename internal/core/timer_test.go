package core

import (
	"testing"
	"time"
)

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatalf("first call should tick")
	}
	if fs.ShouldStep() {
		t.Fatalf("no time passed, should not tick")
	}
	clock = clock.Add(4 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("ticked early")
	}
	clock = clock.Add(6 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("expected tick after a full interval")
	}

	clock = clock.Add(time.Second)
	ticks := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks != 2 {
		t.Fatalf("long stall produced %d ticks, want 2 (capped backlog)", ticks)
	}
}

func TestFixedStepReset(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = func() time.Time { return clock }
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatalf("reset controller ticked immediately")
	}
	clock = clock.Add(10 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("expected tick one interval after reset")
	}
}

func TestSetIntervalFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v", fs.Interval())
	}
}
