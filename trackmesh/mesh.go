package trackmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices  []mgl64.Vec3
	UVs       []mgl64.Vec2
	Triangles []int // Three indices per triangle
}

// Clear drops all geometry, keeping capacity
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.UVs = m.UVs[:0]
	m.Triangles = m.Triangles[:0]
}

// TriangleCount returns len(Triangles)/3
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Empty reports whether the mesh has no triangles
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Triangles) == 0
}

// Clone returns a deep copy
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	return &Mesh{
		Vertices:  append([]mgl64.Vec3(nil), m.Vertices...),
		UVs:       append([]mgl64.Vec2(nil), m.UVs...),
		Triangles: append([]int(nil), m.Triangles...),
	}
}

// Disc is a flat polygon in the XY plane, fanned from its centre
// Used as a rail cross-section extruded along +Z
func Disc(radius float64, sides int) *Mesh {
	if sides < 3 {
		sides = 3
	}
	m := &Mesh{
		Vertices: make([]mgl64.Vec3, 0, sides+1),
		UVs:      make([]mgl64.Vec2, 0, sides+1),
	}
	m.Vertices = append(m.Vertices, mgl64.Vec3{})
	m.UVs = append(m.UVs, mgl64.Vec2{0.5, 0.5})
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		x, y := math.Cos(a), math.Sin(a)
		m.Vertices = append(m.Vertices, mgl64.Vec3{x * radius, y * radius, 0})
		m.UVs = append(m.UVs, mgl64.Vec2{0.5 + x/2, 0.5 + y/2})
	}
	for i := 0; i < sides; i++ {
		next := (i+1)%sides + 1
		m.Triangles = append(m.Triangles, 0, next, i+1)
	}
	return m
}

// Box is an axis-aligned cuboid centred on the origin
func Box(half mgl64.Vec3) *Mesh {
	x, y, z := half[0], half[1], half[2]
	corners := []mgl64.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	faces := [][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}
	m := &Mesh{}
	for _, f := range faces {
		base := len(m.Vertices)
		for k, idx := range f {
			m.Vertices = append(m.Vertices, corners[idx])
			m.UVs = append(m.UVs, mgl64.Vec2{float64(k & 1), float64(k >> 1)})
		}
		m.Triangles = append(m.Triangles, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
