package tapes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/reusee/termtape/commands"
	"github.com/reusee/termtape/logs"
)

type Player struct {
	Output io.Writer
	Logger logs.Logger
}

// Play sends the tape's commands to Output in order, one JSON line
// each, honoring every step's delay. Notes go to the logger only,
// never to Output. Cancellation is returned as ctx.Err().
func (p *Player) Play(ctx context.Context, tape *Tape) error {
	p.Logger.InfoContext(ctx, "playing tape",
		"name", tape.Name,
		"steps", len(tape.Steps),
		"duration", tape.Duration(),
	)

	for i, step := range tape.Steps {
		if step.Note != "" {
			ctx = logs.WithStage(ctx, logs.Stage(step.Note))
			p.Logger.InfoContext(ctx, step.Note)
		}

		if !step.Command.IsZero() {
			if err := commands.Encode(p.Output, step.Command); err != nil {
				return logs.WrapStage(ctx, wrap(fmt.Errorf("send command %d: %w", i, err)))
			}
			p.Logger.DebugContext(ctx, "command sent",
				"index", i,
				"type", step.Command.Type,
			)
		}

		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(step.Delay):
			}
		}
	}

	p.Logger.InfoContext(ctx, "tape finished",
		"name", tape.Name,
	)
	return nil
}
