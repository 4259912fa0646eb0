package phases

import (
	"context"

	"github.com/reusee/termtape/tapes"
)

type BuildPlay func(player *tapes.Player, tape *tapes.Tape) PhaseBuilder

func (Module) BuildPlay() BuildPlay {
	return func(player *tapes.Player, tape *tapes.Tape) PhaseBuilder {
		return func(cont Phase) Phase {
			return func(ctx context.Context) (Phase, error) {
				if err := player.Play(ctx, tape); err != nil {
					return nil, err
				}
				return cont, nil
			}
		}
	}
}
