package commands

import (
	"encoding/json"
	"io"
)

// Flusher is implemented by buffered writers that can deliver pending
// bytes downstream on demand.
type Flusher interface {
	Flush() error
}

// Encode writes cmd to w as one JSON value on one line. The value and its
// trailing newline go out in a single Write, so a reader never sees a
// partial line between writes, and each line decodes on its own. When w
// buffers, it is flushed before Encode returns; the host is typically
// reading live.
func Encode(w io.Writer, cmd Command) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return err
	}
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
