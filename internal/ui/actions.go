package ui

import (
	"image"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// Action is one user control shared by the toolbar buttons and the key
// bindings of every frontend.
type Action struct {
	Name  string
	Key   rune
	label func(core.Sim) string
	apply func(core.Sim)
}

// Label returns the text shown on the control for the current state.
func (a Action) Label(s core.Sim) string {
	if a.label != nil {
		return a.label(s)
	}
	return a.Name
}

// Apply performs the action against s.
func (a Action) Apply(s core.Sim) { a.apply(s) }

// Actions returns the controls in toolbar order. The manual step control is
// only present when manualStep is set.
func Actions(manualStep bool) []Action {
	actions := []Action{
		{
			Name: "start",
			Key:  ' ',
			label: func(s core.Sim) string {
				if s.Running() {
					return "stop"
				}
				return "start"
			},
			apply: func(s core.Sim) { s.Toggle() },
		},
		{Name: "random", Key: 'r', apply: func(s core.Sim) { s.Randomize() }},
		{Name: "clear", Key: 'c', apply: func(s core.Sim) { s.Clear() }},
	}
	if manualStep {
		actions = append(actions, Action{Name: "step", Key: 'n', apply: func(s core.Sim) { s.StepOnce() }})
	}
	return actions
}

// ActionForKey returns the action bound to key, if any.
func ActionForKey(actions []Action, key rune) (Action, bool) {
	for _, a := range actions {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}

// CellAt maps a pixel position on the board to a cell. ok is false outside
// the board.
func CellAt(x, y, scale int, size life.Size) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= size.Rows || col >= size.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// layoutButtons places n equally sized buttons left to right inside a strip
// of the given width.
func layoutButtons(n, width int) []image.Rectangle {
	rects := make([]image.Rectangle, n)
	if n == 0 {
		return rects
	}
	w := (width - panelPadding*2 - buttonGap*(n-1)) / n
	w = min(max(w, minButtonWidth), maxButtonWidth)
	for i := range rects {
		x := panelPadding + i*(w+buttonGap)
		rects[i] = image.Rect(x, panelPadding, x+w, panelPadding+buttonHeight)
	}
	return rects
}

// hitButton returns the index of the rect containing (x, y), or -1.
func hitButton(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 8
	buttonGap      = 6
	buttonHeight   = 24
	minButtonWidth = 48
	maxButtonWidth = 96
	statusBaseline = panelPadding + buttonHeight + 20

	// ToolbarHeight is the height of the strip drawn under the board.
	ToolbarHeight = statusBaseline + panelPadding
)
