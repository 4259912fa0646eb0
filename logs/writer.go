package logs

import (
	"io"
	"os"
)

// Writer is where diagnostics go. stdout is reserved for the command
// stream, so this must never point there.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
