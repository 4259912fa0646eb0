package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/termtape/cmds"
	"github.com/reusee/termtape/debugs"
	"github.com/reusee/termtape/logs"
	"github.com/reusee/termtape/modes"
	"github.com/reusee/termtape/phases"
	"github.com/reusee/termtape/tapeconfigs"
	"github.com/reusee/termtape/tapes"
)

var (
	onceFlag = cmds.Switch("-once")
	tapFlag  = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		player *tapes.Player,
		resolveTape tapeconfigs.ResolveTape,
		buildPlay phases.BuildPlay,
		buildIdle phases.BuildIdle,
		tap debugs.Tap,
	) {

		tape, err := resolveTape()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if *tapFlag {
			tap(ctx, "tape", map[string]any{
				"tape":     tape,
				"duration": tape.Duration(),
			})
		}

		// without -once, parking after playback keeps the host's
		// terminal open for inspection
		var cont phases.Phase
		if !*onceFlag {
			cont = buildIdle()(nil)
		}

		err = phases.Run(ctx, buildPlay(player, tape)(cont))
		if errors.Is(err, context.Canceled) {
			// interrupted playback is still a clean shutdown
			logger.Info("shutting down")
			err = nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	})
}
