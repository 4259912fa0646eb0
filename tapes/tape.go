package tapes

import (
	"time"

	"github.com/reusee/termtape/commands"
)

type Step struct {
	// Note is announced on the diagnostic channel before the command
	// is sent. Empty means silent.
	Note string
	// Command is what goes to the host. A zero Command sends nothing,
	// the step is a pure pause.
	Command commands.Command
	// Delay is how long to wait after the command is sent.
	Delay time.Duration
}

type Tape struct {
	Name  string
	Steps []*Step
}

// Duration is the minimum wall time a full playback takes.
func (t *Tape) Duration() time.Duration {
	var total time.Duration
	for _, step := range t.Steps {
		total += step.Delay
	}
	return total
}
