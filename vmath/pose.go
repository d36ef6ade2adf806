package vmath

import "github.com/go-gl/mathgl/mgl64"

// Pose is a local transform: translation, rotation and scale applied scale-first
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// IdentityPose has no offset, no rotation and unit scale
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix returns the TRS matrix of p
func (p Pose) Matrix() mgl64.Mat4 {
	scale := p.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	rot := p.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	return TRS(p.Position, rot, scale)
}

// TRS builds translate * rotate * scale
func TRS(pos mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// Frame builds a rigid transform from position and rotation
func Frame(pos mgl64.Vec3, rot mgl64.Quat) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).Mul4(rot.Mat4())
}

// MultiplyPoint transforms p by m including translation
func MultiplyPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Translation extracts the translation column of m
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}
