package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/termtape/demos"
	"github.com/reusee/termtape/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tape := demos.Colors()
		tap(t.Context(), "tape", map[string]any{
			"tape":     tape,
			"duration": tape.Duration(),
		})
	})
}
