package tapeconfigs

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/reusee/termtape/cmds"
	"github.com/reusee/termtape/commands"
	"github.com/reusee/termtape/configs"
	"github.com/reusee/termtape/demos"
	"github.com/reusee/termtape/logs"
	"github.com/reusee/termtape/tapes"
	"github.com/reusee/termtape/vars"
)

//go:embed tape_schema.cue
var tapeSchema string

type stepConfig struct {
	Note     string        `json:"note"`
	Keys     []string      `json:"keys"`
	Input    string        `json:"input"`
	Resize   *resizeConfig `json:"resize"`
	Snapshot bool          `json:"snapshot"`
	Delay    *float64      `json:"delay"`
}

type resizeConfig struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

func (s stepConfig) step(defaultDelay time.Duration) (*tapes.Step, error) {
	step := &tapes.Step{
		Note: s.Note,
	}

	resize := vars.DerefOrZero(s.Resize)
	var kinds int
	if len(s.Keys) > 0 {
		kinds++
		step.Command = commands.SendKeys(s.Keys...)
	}
	if s.Input != "" {
		kinds++
		step.Command = commands.Input(s.Input)
	}
	if resize.Cols > 0 {
		kinds++
		step.Command = commands.Resize(resize.Cols, resize.Rows)
	}
	if s.Snapshot {
		kinds++
		step.Command = commands.TakeSnapshot()
	}
	if kinds > 1 {
		return nil, fmt.Errorf("more than one command in step")
	}

	switch {
	case s.Delay != nil:
		step.Delay = time.Duration(*s.Delay * float64(time.Second))
	case !step.Command.IsZero():
		step.Delay = defaultDelay
	}

	return step, nil
}

// TapeFromFile decodes a tape definition. Steps without an explicit
// delay get defaultDelay if they carry a command.
func TapeFromFile(path string, defaultDelay time.Duration) (*tapes.Tape, error) {
	loader := configs.NewLoader([]string{path}, tapeSchema)

	var name string
	if err := loader.AssignFirst("name", &name); err != nil &&
		!errors.Is(err, configs.ErrValueNotFound) {
		return nil, err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".cue")
	}

	var rawSteps []stepConfig
	if err := loader.AssignFirst("steps", &rawSteps); err != nil &&
		!errors.Is(err, configs.ErrValueNotFound) {
		return nil, err
	}

	tape := &tapes.Tape{
		Name: name,
	}
	for i, raw := range rawSteps {
		step, err := raw.step(defaultDelay)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		tape.Steps = append(tape.Steps, step)
	}
	return tape, nil
}

type ResolveTape func() (*tapes.Tape, error)

var tapeFiles = cmds.Collect[string]("-file")

// ResolveTape picks the tape to play: the -file definitions when given,
// concatenated in flag order, the built-in color demonstration
// otherwise.
func (Module) ResolveTape(
	stepDelay StepDelay,
	startDelay StartDelay,
	logger logs.Logger,
) ResolveTape {
	return func() (*tapes.Tape, error) {
		var tape *tapes.Tape
		if len(*tapeFiles) > 0 {
			var parts []*tapes.Tape
			for _, path := range *tapeFiles {
				part, err := TapeFromFile(path, time.Duration(stepDelay))
				if err != nil {
					return nil, err
				}
				logger.Info("tape file",
					"path", path,
					"steps", len(part.Steps),
				)
				parts = append(parts, part)
			}
			tape = tapes.Concat(parts...)
		} else {
			tape = demos.Colors()
		}

		if startDelay > 0 {
			tape.Steps = append(
				[]*tapes.Step{{Delay: time.Duration(startDelay)}},
				tape.Steps...,
			)
		}
		return tape, nil
	}
}
