package value

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the Display-format of each value, space-joined, followed
// by a newline, to w. This is the runtime's only I/O primitive besides
// the CLI's own program-file read (spec §5).
func Print(w io.Writer, values ...Value) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Display(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
