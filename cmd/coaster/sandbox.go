package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vr-coaster/config"
	"github.com/lixenwraith/vr-coaster/engine"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/render"
)

func SandboxCmd(opts *options) *cobra.Command {
	var sound bool
	c := &cobra.Command{
		Use:   "sandbox",
		Short: "watch the ride from above and walk the avatar with the keyboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			w, player, err := newWorld(cfg, worldParts{flock: true, walker: true, sound: sound})
			if err != nil {
				return err
			}
			defer player.Stop()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			defer screen.Fini()

			return runSandbox(cmd.Context(), screen, w)
		},
	}
	c.Flags().BoolVar(&sound, "sound", false, "play the soundtrack")
	return c
}

// runSandbox ticks and draws on the clock goroutine; terminal events are handed over through a channel
func runSandbox(ctx context.Context, screen tcell.Screen, w *engine.World) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := render.NewSandbox(screen, w.Curve(), parameter.SandboxTrackSamples)
	keys := render.NewKeys()

	evCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	clock := engine.NewClock(parameter.TickDuration, func(dt float64) {
	drain:
		for {
			select {
			case ev := <-evCh:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if !keys.Handle(ev) {
						cancel()
						return
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}
		w.SetInput(keys.Input())
		w.Tick(dt)
		view.Draw(w.Snapshot())
	})
	clock.Run(ctx)
	return nil
}
