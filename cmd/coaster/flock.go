package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vr-coaster/config"
	"github.com/lixenwraith/vr-coaster/flock"
	"github.com/lixenwraith/vr-coaster/parameter"
)

func FlockCmd(opts *options) *cobra.Command {
	var seconds float64
	var count int
	c := &cobra.Command{
		Use:   "flock",
		Short: "step the boids flock and print its centroid and spread each second",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if count > 0 {
				cfg.Flock.Count = count
			}
			sim := flock.NewSimulator(cfg.FlockConfig(), cfg.FlockAgents())
			out := cmd.OutOrStdout()

			dt := 1.0 / parameter.TickRate
			ticks := int(seconds * parameter.TickRate)
			for i := 1; i <= ticks; i++ {
				sim.Step(dt)
				if i%parameter.TickRate == 0 {
					c, spread, speed := flockStats(sim.Agents())
					fmt.Fprintf(out, "%4ds centroid=(%6.2f %6.2f %6.2f) spread=%6.2f mean speed=%.3f\n",
						i/parameter.TickRate, c[0], c[1], c[2], spread, speed)
				}
			}
			return nil
		},
	}
	c.Flags().Float64Var(&seconds, "seconds", 10, "simulated duration")
	c.Flags().IntVar(&count, "count", 0, "agent count, 0 keeps the configured value")
	return c
}

// flockStats returns the centroid, the mean distance from it and the mean speed
func flockStats(agents []flock.Agent) (mgl64.Vec3, float64, float64) {
	if len(agents) == 0 {
		return mgl64.Vec3{}, 0, 0
	}
	var c mgl64.Vec3
	var speed float64
	for _, a := range agents {
		c = c.Add(a.Position)
		speed += a.Velocity.Len()
	}
	n := float64(len(agents))
	c = c.Mul(1 / n)
	var spread float64
	for _, a := range agents {
		spread += a.Position.Sub(c).Len()
	}
	return c, spread / n, speed / n
}

