package tapeconfigs

import (
	"time"

	"github.com/reusee/termtape/cmds"
	"github.com/reusee/termtape/configs"
	"github.com/reusee/termtape/tapes"
	"github.com/reusee/termtape/vars"
)

// StepDelay is the default pause after each command for tapes that do
// not set their own.
type StepDelay time.Duration

var stepDelayFlag = cmds.Var[time.Duration]("-step-delay")

func (Module) StepDelay(
	loader configs.Loader,
) StepDelay {
	return StepDelay(vars.FirstNonZero(
		*stepDelayFlag,
		time.Duration(configs.First[float64](loader, "stepDelay")*float64(time.Second)),
		tapes.DefaultStepDelay,
	))
}
