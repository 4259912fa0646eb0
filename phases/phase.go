package phases

import (
	"context"
)

// Phase is one state of the process lifecycle. It returns the next
// phase, or nil to terminate.
type Phase func(ctx context.Context) (Phase, error)

type PhaseBuilder func(cont Phase) Phase

// Run drives phase until it terminates or fails.
func Run(ctx context.Context, phase Phase) error {
	for phase != nil {
		next, err := phase(ctx)
		if err != nil {
			return err
		}
		phase = next
	}
	return nil
}
