package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultTermWidth is used when terminal width cannot be determined (piped
// output, or a writer that isn't backed by a file descriptor).
const defaultTermWidth = 100

// TerminalWidth reports the column width of the terminal backing w, or
// defaultTermWidth if w isn't a TTY or the size can't be read.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
