package sim

import (
	"sync"
	"testing"
	"time"
)

func TestLoopTicksUntilStopped(t *testing.T) {
	s := newTestSession(8, 8)
	s.Load(mustParse(t, "OOO"))
	l := NewLoop(s, time.Millisecond)
	defer l.Close()

	ticks := make(chan View, 16)
	l.OnTick(func(v View) {
		select {
		case ticks <- v:
		default:
		}
	})

	l.Start()
	deadline := time.After(2 * time.Second)
	for seen := 0; seen < 3; {
		select {
		case v := <-ticks:
			if !v.Running {
				t.Fatalf("tick reported a stopped session")
			}
			seen++
		case <-deadline:
			t.Fatalf("loop did not tick")
		}
	}

	l.Stop()
	stopped := l.View().Generation
	time.Sleep(20 * time.Millisecond)
	if got := l.View().Generation; got != stopped {
		t.Fatalf("generation moved from %d to %d after stop", stopped, got)
	}
	if l.Running() {
		t.Fatalf("loop still running")
	}
}

func TestLoopStaleCallbackIsIgnored(t *testing.T) {
	s := newTestSession(8, 8)
	s.Load(mustParse(t, "OOO"))
	l := NewLoop(s, time.Hour)
	defer l.Close()

	l.Start()
	l.mu.Lock()
	stale := l.epoch
	l.mu.Unlock()

	l.Stop()
	l.Start()
	l.tick(stale)
	if g := l.View().Generation; g != 0 {
		t.Fatalf("stale callback advanced to generation %d", g)
	}

	l.mu.Lock()
	current := l.epoch
	l.mu.Unlock()
	l.tick(current)
	if g := l.View().Generation; g != 1 {
		t.Fatalf("current callback left generation at %d", g)
	}
}

func TestLoopRepeatedStartKeepsOneTimer(t *testing.T) {
	s := newTestSession(4, 4)
	l := NewLoop(s, time.Hour)
	defer l.Close()

	l.Start()
	l.mu.Lock()
	first, epoch := l.timer, l.epoch
	l.mu.Unlock()

	l.Start()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != first || l.epoch != epoch {
		t.Fatalf("starting a running loop rescheduled the timer")
	}
}

func TestLoopDoSerializesWithTicks(t *testing.T) {
	s := newTestSession(30, 30)
	l := NewLoop(s, time.Millisecond)
	defer l.Close()
	l.Do(func(s *Session) { s.Randomize() })
	l.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Do(func(s *Session) { s.ToggleCell(j%30, i) })
			}
		}()
	}
	wg.Wait()

	v := l.Do(func(s *Session) { s.Stop() })
	if v.Running {
		t.Fatalf("Do(Stop) left the loop running")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		t.Fatalf("stopping through Do left a timer scheduled")
	}
}

func TestLoopDoStartSchedules(t *testing.T) {
	s := newTestSession(4, 4)
	l := NewLoop(s, time.Millisecond)
	defer l.Close()
	l.Do(func(s *Session) { s.Start() })
	l.mu.Lock()
	scheduled := l.timer != nil
	l.mu.Unlock()
	if !scheduled {
		t.Fatalf("starting through Do did not schedule a tick")
	}
}
