package trackmesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Extruder sweeps a cross-section mesh along a sequence of transforms into dst
type Extruder interface {
	Extrude(src, dst *Mesh, path []mgl64.Mat4, closed bool)
}

// edge is a boundary edge of the source mesh, oriented as in its triangle
type edge struct{ a, b int }

// boundaryEdges returns edges used by exactly one triangle, in triangle order
func boundaryEdges(m *Mesh) []edge {
	type key [2]int
	norm := func(a, b int) key {
		if a > b {
			a, b = b, a
		}
		return key{a, b}
	}

	uses := make(map[key]int, len(m.Triangles))
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		t := m.Triangles[i : i+3]
		uses[norm(t[0], t[1])]++
		uses[norm(t[1], t[2])]++
		uses[norm(t[2], t[0])]++
	}

	var out []edge
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		t := m.Triangles[i : i+3]
		for _, e := range []edge{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}} {
			if uses[norm(e.a, e.b)] == 1 {
				out = append(out, e)
			}
		}
	}
	return out
}

// SweepExtruder builds side walls from the source boundary and caps both ends of an open sweep
// A closed sweep joins the last ring to the first and has no caps
type SweepExtruder struct{}

func (SweepExtruder) Extrude(src, dst *Mesh, path []mgl64.Mat4, closed bool) {
	dst.Clear()
	if src == nil || len(path) == 0 {
		return
	}

	edges := boundaryEdges(src)
	rings := len(path)
	perRing := 2 * len(edges)

	for i, m := range path {
		u := 0.0
		if rings > 1 {
			u = float64(i) / float64(rings-1)
		}
		for _, e := range edges {
			dst.Vertices = append(dst.Vertices,
				vmath.MultiplyPoint(m, src.Vertices[e.a]),
				vmath.MultiplyPoint(m, src.Vertices[e.b]),
			)
			dst.UVs = append(dst.UVs, mgl64.Vec2{u, 0}, mgl64.Vec2{u, 1})
		}
	}

	segments := rings - 1
	if closed && rings > 2 {
		segments = rings
	}
	for s := 0; s < segments; s++ {
		r0 := s * perRing
		r1 := ((s + 1) % rings) * perRing
		for k := range edges {
			a0, b0 := r0+2*k, r0+2*k+1
			a1, b1 := r1+2*k, r1+2*k+1
			dst.Triangles = append(dst.Triangles, a0, b0, a1, b0, b1, a1)
		}
	}

	if closed && rings > 2 {
		return
	}

	// Start cap faces backward along the sweep, end cap keeps source winding
	start := len(dst.Vertices)
	dst.appendTransformed(src, path[0])
	for i := 0; i+2 < len(src.Triangles); i += 3 {
		t := src.Triangles[i : i+3]
		dst.Triangles = append(dst.Triangles, start+t[2], start+t[1], start+t[0])
	}
	end := len(dst.Vertices)
	dst.appendTransformed(src, path[rings-1])
	for i := 0; i+2 < len(src.Triangles); i += 3 {
		t := src.Triangles[i : i+3]
		dst.Triangles = append(dst.Triangles, end+t[0], end+t[1], end+t[2])
	}
}

func (m *Mesh) appendTransformed(src *Mesh, xf mgl64.Mat4) {
	for i, v := range src.Vertices {
		m.Vertices = append(m.Vertices, vmath.MultiplyPoint(xf, v))
		uv := mgl64.Vec2{}
		if i < len(src.UVs) {
			uv = src.UVs[i]
		}
		m.UVs = append(m.UVs, uv)
	}
}
