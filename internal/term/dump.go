package term

import (
	"io"

	"github.com/pkg/errors"

	"lifegrid/internal/render"
	"lifegrid/internal/sim"
)

// Dump writes the current board and the next n generations of s to w as
// text, without a screen.
func Dump(w io.Writer, s *sim.Session, n int) error {
	if err := render.WriteText(w, s.View()); err != nil {
		return errors.Wrap(err, "[Dump] generation 0")
	}
	for i := 1; i <= n; i++ {
		s.StepOnce()
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrapf(err, "[Dump] generation %d", i)
		}
		if err := render.WriteText(w, s.View()); err != nil {
			return errors.Wrapf(err, "[Dump] generation %d", i)
		}
	}
	return nil
}
