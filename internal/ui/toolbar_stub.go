//go:build !ebiten

package ui

import "lifegrid/internal/core"

// Toolbar is a no-op placeholder for headless builds.
type Toolbar struct{}

// NewToolbar returns nil in the headless build.
func NewToolbar(core.Sim, int, []Action) *Toolbar { return nil }

// Update is a no-op in the headless build.
func (t *Toolbar) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (t *Toolbar) Draw(any) {}
