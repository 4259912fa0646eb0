package phases

import (
	"context"

	"github.com/reusee/termtape/logs"
)

type BuildIdle func() PhaseBuilder

// The idle phase parks the process so the host's terminal stays alive
// for inspection. It emits nothing and wakes only on cancellation,
// which it absorbs as a clean shutdown.
func (Module) BuildIdle(
	logger logs.Logger,
) BuildIdle {
	return func() PhaseBuilder {
		return func(cont Phase) Phase {
			return func(ctx context.Context) (Phase, error) {
				logger.InfoContext(ctx, "idle, interrupt to exit")
				<-ctx.Done()
				logger.Info("shutting down")
				return cont, nil
			}
		}
	}
}
