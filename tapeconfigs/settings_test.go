package tapeconfigs

import (
	"io"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/termtape/configs"
	"github.com/reusee/termtape/logs"
	"github.com/reusee/termtape/modes"
	"github.com/reusee/termtape/tapes"
)

func settingsScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return io.Discard
		},
		func() configs.Loader {
			return configs.NewLoader(paths, schema)
		},
	)
}

func TestSettings(t *testing.T) {
	settingsScope(t, "fixture_settings.cue").Call(func(
		stepDelay StepDelay,
		startDelay StartDelay,
	) {
		if time.Duration(stepDelay) != 250*time.Millisecond {
			t.Fatalf("got %v", time.Duration(stepDelay))
		}
		if time.Duration(startDelay) != 2*time.Second {
			t.Fatalf("got %v", time.Duration(startDelay))
		}
	})
}

func TestSettingsDefaults(t *testing.T) {
	settingsScope(t).Call(func(
		stepDelay StepDelay,
		startDelay StartDelay,
	) {
		if time.Duration(stepDelay) != tapes.DefaultStepDelay {
			t.Fatalf("got %v", time.Duration(stepDelay))
		}
		if startDelay != 0 {
			t.Fatalf("got %v", time.Duration(startDelay))
		}
	})
}

func TestSettingsAcrossFiles(t *testing.T) {
	// each key is taken from the first file defining it
	settingsScope(t,
		"fixture_settings_step.cue",
		"fixture_settings_start.cue",
	).Call(func(
		stepDelay StepDelay,
		startDelay StartDelay,
	) {
		if time.Duration(stepDelay) != 250*time.Millisecond {
			t.Fatalf("got %v", time.Duration(stepDelay))
		}
		if time.Duration(startDelay) != time.Second {
			t.Fatalf("got %v", time.Duration(startDelay))
		}
	})
}
