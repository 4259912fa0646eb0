package tapeconfigs

import (
	"time"

	"github.com/reusee/termtape/cmds"
	"github.com/reusee/termtape/configs"
	"github.com/reusee/termtape/vars"
)

// StartDelay is an extra silent lead-in before any tape plays, giving
// the host time to settle. Zero by default.
type StartDelay time.Duration

var startDelayFlag = cmds.Var[time.Duration]("-start-delay")

func (Module) StartDelay(
	loader configs.Loader,
) StartDelay {
	return StartDelay(vars.FirstNonZero(
		*startDelayFlag,
		time.Duration(configs.First[float64](loader, "startDelay")*float64(time.Second)),
	))
}
