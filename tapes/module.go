package tapes

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/termtape/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output is the command stream the host reads. Diagnostics never go
// here.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Player(
	output Output,
	logger logs.Logger,
) *Player {
	return &Player{
		Output: output,
		Logger: logger,
	}
}
