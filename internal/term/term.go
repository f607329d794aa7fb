// Package term runs a Life session in a terminal with tcell. The board is
// drawn two columns per cell; clicking a cell toggles it.
package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/sim"
	"lifegrid/internal/ui"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// quit is posted to wake the event loop when the context ends.
type quit struct{}

// UI draws a Loop onto a tcell screen and feeds it key and mouse input.
type UI struct {
	screen  tcell.Screen
	loop    *sim.Loop
	actions []ui.Action
	buttons tcell.ButtonMask
}

// New returns a UI for screen. The screen must already be initialised.
func New(screen tcell.Screen, loop *sim.Loop, manualStep bool) *UI {
	return &UI{screen: screen, loop: loop, actions: ui.Actions(manualStep)}
}

// Run processes events until the user quits, the screen is finalised or ctx
// ends. The loop is stopped before Run returns.
func (u *UI) Run(ctx context.Context) error {
	defer u.loop.Close()
	u.screen.EnableMouse()
	u.screen.HideCursor()

	u.loop.OnTick(func(v sim.View) {
		// drawing happens on the event goroutine only
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(v))
	})
	defer u.loop.OnTick(nil)

	stop := context.AfterFunc(ctx, func() {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(quit{}))
	})
	defer stop()

	u.draw(u.loop.View())
	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			switch data := ev.Data().(type) {
			case quit:
				return nil
			case sim.View:
				u.draw(data)
			}
		case *tcell.EventResize:
			u.screen.Sync()
			u.draw(u.loop.View())
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
			u.handleKey(ev)
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	a, ok := ui.ActionForKey(u.actions, toLower(ev.Rune()))
	if !ok {
		return
	}
	u.draw(u.loop.Do(func(s *sim.Session) { a.Apply(s) }))
}

// handleMouse toggles a cell on the press edge of the primary button only;
// tcell repeats the button state on every motion event.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
	u.buttons = ev.Buttons()
	if !pressed {
		return
	}
	x, y := ev.Position()
	row, col := y, x/2
	u.draw(u.loop.Do(func(s *sim.Session) { s.ToggleCell(row, col) }))
}

func (u *UI) draw(v sim.View) {
	g := v.Grid
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			style := deadStyle
			if g.Alive(r, c) {
				style = aliveStyle
			}
			u.screen.SetContent(c*2, r, ' ', nil, style)
			u.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}

	width, _ := u.screen.Size()
	line := u.statusLine(v)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		u.screen.SetContent(x, g.Rows(), ch, nil, statusStyle)
	}
	u.screen.Show()
}

func (u *UI) statusLine(v sim.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d  alive %d  %s |", v.Generation, v.Grid.Population(), v.Status)
	for _, a := range u.actions {
		key := string(a.Key)
		if a.Key == ' ' {
			key = "space"
		}
		label := a.Name
		if a.Name == "start" && v.Running {
			label = "stop"
		}
		fmt.Fprintf(&b, " [%s] %s", key, label)
	}
	b.WriteString(" [q] quit")
	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
