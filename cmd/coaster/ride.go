package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vr-coaster/config"
	"github.com/lixenwraith/vr-coaster/engine"
	"github.com/lixenwraith/vr-coaster/events"
	"github.com/lixenwraith/vr-coaster/parameter"
)

func RideCmd(opts *options) *cobra.Command {
	var seconds, every float64
	var realtime, sound bool
	c := &cobra.Command{
		Use:   "ride",
		Short: "ride the track headless and print the car state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			w, player, err := newWorld(cfg, worldParts{sound: sound})
			if err != nil {
				return err
			}
			defer player.Stop()

			out := cmd.OutOrStdout()
			w.Register(eventPrinter(out))

			ticks := int(seconds * parameter.TickRate)
			report := int(every * parameter.TickRate)
			if report < 1 {
				report = 1
			}
			tick := func(dt float64) {
				w.Tick(dt)
				if w.Frame()%int64(report) == 0 {
					printSnapshot(out, w.Snapshot())
				}
			}

			if !realtime {
				for i := 0; i < ticks; i++ {
					tick(1.0 / parameter.TickRate)
				}
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(seconds*float64(time.Second)))
			defer cancel()
			engine.NewClock(parameter.TickDuration, tick).Run(ctx)
			return nil
		},
	}
	c.Flags().Float64Var(&seconds, "seconds", 60, "simulated ride duration")
	c.Flags().Float64Var(&every, "every", 1, "seconds between state lines")
	c.Flags().BoolVar(&realtime, "realtime", false, "tick at wall clock rate")
	c.Flags().BoolVar(&sound, "sound", false, "play the soundtrack")
	return c
}

// eventPrinter echoes ride events as they are dispatched
func eventPrinter(out io.Writer) events.HandlerFunc[*engine.World] {
	return events.HandlerFunc[*engine.World]{
		Types: []events.EventType{events.EventPathCompleted, events.EventZoneEnter, events.EventZoneExit, events.EventSpeedReached},
		Fn: func(_ *engine.World, ev events.GameEvent) {
			switch pl := ev.Payload.(type) {
			case *events.ZonePayload:
				fmt.Fprintf(out, "%6d %s %s (%s) t=%.3f\n", ev.Frame, ev.Type, pl.Zone, pl.Tag, pl.Parameter)
			case *events.PathCompletedPayload:
				fmt.Fprintf(out, "%6d %s endpoint %d lap %d\n", ev.Frame, ev.Type, pl.Endpoint, pl.Lap)
			case *events.SpeedReachedPayload:
				fmt.Fprintf(out, "%6d %s %.2f (%s)\n", ev.Frame, ev.Type, pl.Speed, pl.Mode)
			}
		},
	}
}

func printSnapshot(out io.Writer, s engine.Snapshot) {
	fmt.Fprintf(out, "%6d t=%.4f speed=%6.2f mode=%-8s pos=(%7.2f %6.2f %7.2f) laps=%d\n",
		s.Frame, s.Parameter, s.Speed, s.Mode, s.Position[0], s.Position[1], s.Position[2], s.Laps)
}
