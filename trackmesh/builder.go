// Package trackmesh generates rail and cross-beam geometry along a curve
package trackmesh

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/vmath"
)

var (
	ErrInvalidResolution = errors.New("trackmesh: resolution must be a positive number")
	ErrDegenerateCurve   = errors.New("trackmesh: curve has no length")
	ErrNoCurve           = errors.New("trackmesh: no curve attached")
	ErrNoScene           = errors.New("trackmesh: no scene attached")
)

// Profile is a prefab: a cross-section or beam mesh placed by a local transform relative to the curve frame
type Profile struct {
	Local    vmath.Pose
	Mesh     *Mesh
	Material string
}

// Rails pairs the two rail profiles
type Rails struct {
	Left, Right Profile
}

// Config controls sampling density and beam spacing
type Config struct {
	Resolution      float64
	BeamDistance    float64
	BeamStepDivisor int
}

func DefaultConfig() Config {
	return Config{
		Resolution:      parameter.TrackResolution,
		BeamDistance:    parameter.TrackBeamDistance,
		BeamStepDivisor: parameter.TrackBeamStepDivisor,
	}
}

// Result describes what one build produced
type Result struct {
	Params    []float64
	Left      []mgl64.Mat4
	Right     []mgl64.Mat4
	LeftRail  ObjectID
	RightRail ObjectID
	Beams     []ObjectID
	BeamPoses []vmath.Pose
}

// Builder turns a curve into rail meshes and beam objects under a parent
type Builder struct {
	curve    curve.Provider
	scene    Scene
	extruder Extruder
	cfg      Config
}

// NewBuilder wires the collaborators; a nil extruder selects SweepExtruder
func NewBuilder(c curve.Provider, s Scene, e Extruder, cfg Config) *Builder {
	if e == nil {
		e = SweepExtruder{}
	}
	if cfg.BeamStepDivisor < 1 {
		cfg.BeamStepDivisor = parameter.TrackBeamStepDivisor
	}
	return &Builder{curve: c, scene: s, extruder: e, cfg: cfg}
}

// SampleParams returns the rail sample parameters for a resolution
// Parameters are i*resolution, so the count depends only on resolution and loop
// A loop stops once the next step would land within two steps of the end and closes with a seam sample at 0
func SampleParams(resolution float64, loop bool) []float64 {
	const eps = parameter.TrackSeamEpsilon
	var ts []float64
	for i := 0; ; i++ {
		t := float64(i) * resolution
		if t > 1+eps {
			break
		}
		ts = append(ts, t)
		if loop && t+2*resolution >= 1-eps {
			ts = append(ts, 0)
			break
		}
	}
	return ts
}

// validResolution rejects steps that are not positive finite numbers or would exceed TrackMaxSamples
func validResolution(r float64) bool {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return false
	}
	return 1/r <= parameter.TrackMaxSamples
}

// Validate checks the curve and resolution before any scene mutation
func (b *Builder) Validate() error {
	r := b.cfg.Resolution
	if !validResolution(r) {
		return fmt.Errorf("resolution %v: %w", r, ErrInvalidResolution)
	}
	if b.curve == nil {
		return ErrNoCurve
	}
	if b.scene == nil {
		return ErrNoScene
	}
	if curve.Length(b.curve, 64) < parameter.TrackMinCurveLength {
		return ErrDegenerateCurve
	}
	return nil
}

// Frame returns the curve frame at t: origin on the curve, +Z along the tangent
func (b *Builder) Frame(t float64) mgl64.Mat4 {
	return vmath.Frame(b.curve.Point(t), vmath.LookRotation(b.curve.Tangent(t), vmath.Up))
}

// Polyline returns one rail's transforms for the given profile
func (b *Builder) Polyline(params []float64, local vmath.Pose) []mgl64.Mat4 {
	lm := local.Matrix()
	out := make([]mgl64.Mat4, len(params))
	for i, t := range params {
		out[i] = b.Frame(t).Mul4(lm)
	}
	return out
}

// Build replaces every child of parent with freshly generated rails and optional beams
func (b *Builder) Build(parent ObjectID, rails Rails, beam *Profile) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	b.clear(parent)

	params := SampleParams(b.cfg.Resolution, b.curve.IsLoop())
	res := &Result{
		Params: params,
		Left:   b.Polyline(params, rails.Left.Local),
		Right:  b.Polyline(params, rails.Right.Local),
	}

	res.LeftRail = b.rail(parent, parameter.TrackLeftRailName, rails.Left, res.Left)
	res.RightRail = b.rail(parent, parameter.TrackRightRailName, rails.Right, res.Right)

	if beam != nil {
		for _, pose := range b.BeamPoses(beam.Local) {
			id := b.scene.Create(parameter.TrackBeamName, parent)
			b.scene.SetPose(id, pose)
			b.scene.AttachMesh(id, beam.Mesh, beam.Material)
			res.Beams = append(res.Beams, id)
			res.BeamPoses = append(res.BeamPoses, pose)
		}
	}
	return res, nil
}

// clear destroys all children of parent, releasing generated rail meshes first
// Beam meshes are shared with their prefab and left alone
func (b *Builder) clear(parent ObjectID) {
	for _, id := range b.scene.Children(parent) {
		switch b.scene.Name(id) {
		case parameter.TrackLeftRailName, parameter.TrackRightRailName:
			b.scene.ReleaseMesh(id)
		}
		b.scene.Destroy(id)
	}
}

func (b *Builder) rail(parent ObjectID, name string, p Profile, path []mgl64.Mat4) ObjectID {
	id := b.scene.Create(name, parent)
	if p.Mesh == nil {
		log.Printf("trackmesh: %s has no cross-section mesh, rail left empty", name)
		return id
	}
	m := &Mesh{}
	b.extruder.Extrude(p.Mesh, m, path, false)
	b.scene.AttachMesh(id, m, p.Material)
	return id
}

// BeamPoses walks the curve in fine steps and places a beam each time the travelled distance reaches the spacing
// The beam's local position is applied along the frame axes and its local rotation composed after the frame
func (b *Builder) BeamPoses(local vmath.Pose) []vmath.Pose {
	if !validResolution(b.cfg.Resolution) || b.cfg.BeamDistance <= 0 {
		return nil
	}
	step := b.cfg.Resolution / float64(b.cfg.BeamStepDivisor)
	localRot := local.Rotation
	if localRot == (mgl64.Quat{}) {
		localRot = mgl64.QuatIdent()
	}
	scale := local.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}

	var out []vmath.Pose
	var dist float64
	for i := 0; ; i++ {
		t := float64(i) * step
		if t > 1+parameter.TrackSeamEpsilon {
			break
		}
		p := b.curve.Point(t)
		dist += p.Sub(b.curve.Point(t - step)).Len()
		if dist < b.cfg.BeamDistance {
			continue
		}
		rot := vmath.LookRotation(b.curve.Tangent(t), vmath.Up)
		pos := p.
			Add(vmath.AxisRight(rot).Mul(local.Position[0])).
			Add(vmath.AxisUp(rot).Mul(local.Position[1])).
			Add(vmath.AxisForward(rot).Mul(local.Position[2]))
		out = append(out, vmath.Pose{Position: pos, Rotation: rot.Mul(localRot), Scale: scale})
		dist -= b.cfg.BeamDistance
	}
	return out
}
