package trackmesh

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Track is the editor-facing component: a builder bound to a parent and its prefabs
type Track struct {
	Builder *Builder
	Parent  ObjectID
	Rails   Rails
	Beam    *Profile

	last *Result
}

// BuildTrack regenerates the track, logging instead of failing
func (t *Track) BuildTrack() {
	if t.Builder == nil {
		log.Printf("trackmesh: BuildTrack called without a builder")
		return
	}
	res, err := t.Builder.Build(t.Parent, t.Rails, t.Beam)
	if err != nil {
		log.Printf("trackmesh: build failed: %v", err)
		return
	}
	t.last = res
	log.Printf("trackmesh: built %d rail samples and %d beams", len(res.Params), len(res.Beams))
}

// Last returns the most recent successful build, nil before the first
func (t *Track) Last() *Result { return t.last }

// DefaultRails returns tube rails offset by the gauge on either side of the curve
func DefaultRails() Rails {
	section := Disc(parameter.TrackRailRadius, parameter.TrackRailSides)
	left := vmath.IdentityPose()
	left.Position = mgl64.Vec3{-parameter.TrackRailGauge, 0, 0}
	right := vmath.IdentityPose()
	right.Position = mgl64.Vec3{parameter.TrackRailGauge, 0, 0}
	return Rails{
		Left:  Profile{Local: left, Mesh: section, Material: "rail_steel"},
		Right: Profile{Local: right, Mesh: section.Clone(), Material: "rail_steel"},
	}
}

// DefaultBeam returns a flat sleeper slung under the rails
func DefaultBeam() *Profile {
	local := vmath.IdentityPose()
	local.Position = mgl64.Vec3{0, parameter.TrackBeamDrop, 0}
	return &Profile{
		Local: local,
		Mesh: Box(mgl64.Vec3{
			parameter.TrackBeamHalfWidth,
			parameter.TrackBeamHalfHeight,
			parameter.TrackBeamHalfDepth,
		}),
		Material: "beam_wood",
	}
}
