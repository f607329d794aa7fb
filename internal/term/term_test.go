package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/sim"
	"lifegrid/pkg/life"
)

type harness struct {
	screen tcell.SimulationScreen
	loop   *sim.Loop
	done   chan error
	cancel context.CancelFunc
}

func start(t *testing.T, rows, cols int, manualStep bool) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(cols*2, rows+1)

	s := sim.NewSession(sim.Options{Rows: rows, Cols: cols, Density: life.DefaultDensity, Seed: 1})
	loop := sim.NewLoop(s, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{screen: screen, loop: loop, done: make(chan error, 1), cancel: cancel}
	go func() { h.done <- New(screen, loop, manualStep).Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-h.done
		screen.Fini()
	})
	return h
}

func (h *harness) waitFor(t *testing.T, what string, cond func(sim.View) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond(h.loop.View()) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func (h *harness) click(row, col int) {
	h.screen.InjectMouse(col*2, row, tcell.Button1, tcell.ModNone)
	h.screen.InjectMouse(col*2, row, tcell.ButtonNone, tcell.ModNone)
}

func TestClickTogglesCell(t *testing.T) {
	h := start(t, 4, 5, false)
	h.click(1, 3)
	h.waitFor(t, "cell (1,3) alive", func(v sim.View) bool { return v.Grid.Alive(1, 3) })
	h.click(1, 3)
	h.waitFor(t, "cell (1,3) dead", func(v sim.View) bool { return v.Grid.Population() == 0 })
}

func TestHeldButtonTogglesOnce(t *testing.T) {
	h := start(t, 4, 5, false)
	h.screen.InjectMouse(0, 0, tcell.Button1, tcell.ModNone)
	h.screen.InjectMouse(1, 0, tcell.Button1, tcell.ModNone)
	h.screen.InjectMouse(1, 0, tcell.ButtonNone, tcell.ModNone)
	h.click(3, 4)
	h.waitFor(t, "second click", func(v sim.View) bool { return v.Grid.Alive(3, 4) })
	if !h.loop.View().Grid.Alive(0, 0) {
		t.Fatalf("held button toggled the cell twice")
	}
}

func TestKeys(t *testing.T) {
	h := start(t, 10, 10, true)

	h.screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	h.waitFor(t, "random board", func(v sim.View) bool { return v.Grid.Population() > 0 })

	h.screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	h.waitFor(t, "manual step", func(v sim.View) bool { return v.Generation == 1 && !v.Running })

	h.screen.InjectKey(tcell.KeyRune, 'C', tcell.ModNone)
	h.waitFor(t, "clear", func(v sim.View) bool { return v.Grid.Population() == 0 && v.Generation == 0 })

	h.screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	h.waitFor(t, "start", func(v sim.View) bool { return v.Running })
	h.screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	h.waitFor(t, "stop", func(v sim.View) bool { return !v.Running })
}

func TestQuitKeyEndsRun(t *testing.T) {
	h := start(t, 3, 3, false)
	h.screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	h.waitFor(t, "start", func(v sim.View) bool { return v.Running })
	h.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-h.done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		h.done <- nil
	case <-time.After(2 * time.Second):
		t.Fatalf("q did not end the run")
	}
	if h.loop.Running() {
		t.Fatalf("loop still running after quit")
	}
}

func TestStatusLine(t *testing.T) {
	u := New(nil, nil, true)
	line := u.statusLine(sim.View{Grid: life.Empty(2, 2), Generation: 4, Running: true})
	for _, want := range []string{"gen 4", "alive 0", "active", "[space] stop", "[r] random", "[c] clear", "[n] step", "[q] quit"} {
		if !strings.Contains(line, want) {
			t.Fatalf("status line %q missing %q", line, want)
		}
	}
}

func TestDump(t *testing.T) {
	s := sim.NewSession(sim.Options{Rows: 3, Cols: 3})
	s.ToggleCell(1, 0)
	s.ToggleCell(1, 1)
	s.ToggleCell(1, 2)
	var out bytes.Buffer
	if err := Dump(&out, s, 2); err != nil {
		t.Fatalf("dump: %v", err)
	}
	frames := strings.Split(out.String(), "\n\n")
	if len(frames) != 3 {
		t.Fatalf("got %d frames:\n%s", len(frames), out.String())
	}
	if !strings.Contains(frames[1], "Gen: 1") || !strings.Contains(frames[2], "oscillating (period 2)") {
		t.Fatalf("unexpected frames:\n%s", out.String())
	}
}
