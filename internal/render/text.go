package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"lifegrid/internal/sim"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// WriteText renders a session view as a status line followed by the board,
// two characters per cell.
func WriteText(w io.Writer, v sim.View) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Gen: %d | Living: %d | Status: %s\n", v.Generation, v.Grid.Population(), v.Status)
	for r := 0; r < v.Grid.Rows(); r++ {
		for c := 0; c < v.Grid.Cols(); c++ {
			if v.Grid.Alive(r, c) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[WriteText] flush")
}
