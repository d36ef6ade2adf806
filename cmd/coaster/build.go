package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vr-coaster/config"
	"github.com/lixenwraith/vr-coaster/trackmesh"
)

func BuildCmd(opts *options) *cobra.Command {
	var out string
	var noBeams bool
	c := &cobra.Command{
		Use:   "build",
		Short: "generate rail meshes and cross-beams and export them as OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			summary, err := buildTrack(cfg, w, !noBeams && cfg.Track.Beams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "built %d rail samples, %d cross-beams\n", summary.Samples, summary.Beams)
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "track.obj", "OBJ output path, - for stdout")
	c.Flags().BoolVar(&noBeams, "no-beams", false, "skip cross-beam placement")
	return c
}

// buildSummary counts what one build produced
type buildSummary struct {
	Samples int
	Beams   int
}

// buildTrack runs one build into a fresh scene and writes the result
func buildTrack(cfg *config.Config, w io.Writer, beams bool) (*buildSummary, error) {
	spline, err := cfg.Curve()
	if err != nil {
		return nil, err
	}
	g := trackmesh.NewGraph()
	parent := g.Create("track", trackmesh.Root)

	b := trackmesh.NewBuilder(spline, g, nil, cfg.BuilderConfig())
	if err := b.Validate(); err != nil {
		return nil, err
	}
	track := &trackmesh.Track{Builder: b, Parent: parent, Rails: trackmesh.DefaultRails()}
	if beams {
		track.Beam = trackmesh.DefaultBeam()
	}
	track.BuildTrack()
	res := track.Last()
	if res == nil {
		return nil, fmt.Errorf("track build produced no geometry")
	}
	if err := trackmesh.WriteOBJ(w, g, parent); err != nil {
		return nil, fmt.Errorf("write obj: %w", err)
	}
	return &buildSummary{Samples: len(res.Params), Beams: len(res.Beams)}, nil
}
