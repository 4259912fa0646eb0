package commands

import (
	"encoding/json"
	"fmt"
)

// Command kinds understood by the terminal-automation host.
const (
	KindSendKeys     = "sendKeys"
	KindInput        = "input"
	KindResize       = "resize"
	KindTakeSnapshot = "takeSnapshot"
)

type Command struct {
	Type    string
	Keys    []string
	Payload string
	Cols    int
	Rows    int
}

// SendKeys types the given key tokens into the host terminal. A token is
// either a named key ("Enter") or literal text to be typed verbatim; the
// host decides which, no validation happens here.
func SendKeys(keys ...string) Command {
	if keys == nil {
		keys = []string{}
	}
	return Command{
		Type: KindSendKeys,
		Keys: keys,
	}
}

// Input feeds raw bytes to the host pty, bypassing key-name translation.
func Input(payload string) Command {
	return Command{
		Type:    KindInput,
		Payload: payload,
	}
}

func Resize(cols int, rows int) Command {
	return Command{
		Type: KindResize,
		Cols: cols,
		Rows: rows,
	}
}

func TakeSnapshot() Command {
	return Command{
		Type: KindTakeSnapshot,
	}
}

// IsZero reports whether c carries no command at all, as opposed to a
// command of an unknown kind.
func (c Command) IsZero() bool {
	return c.Type == ""
}

// MarshalJSON emits the fixed per-kind envelope. Field order and spacing
// never vary, so marshaling the same Command twice yields identical bytes.
func (c Command) MarshalJSON() ([]byte, error) {
	switch c.Type {

	case KindSendKeys:
		keys := c.Keys
		if keys == nil {
			keys = []string{}
		}
		return json.Marshal(struct {
			Type string   `json:"type"`
			Keys []string `json:"keys"`
		}{c.Type, keys})

	case KindInput:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Payload string `json:"payload"`
		}{c.Type, c.Payload})

	case KindResize:
		return json.Marshal(struct {
			Type string `json:"type"`
			Cols int    `json:"cols"`
			Rows int    `json:"rows"`
		}{c.Type, c.Cols, c.Rows})

	case KindTakeSnapshot:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{c.Type})

	}
	return nil, fmt.Errorf("unknown command type: %q", c.Type)
}
