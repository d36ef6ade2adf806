package trackmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func straightPath(n int) []mgl64.Mat4 {
	path := make([]mgl64.Mat4, n)
	for i := range path {
		path[i] = mgl64.Translate3D(0, 0, float64(i))
	}
	return path
}

func TestBoundaryEdges(t *testing.T) {
	assert.Len(t, boundaryEdges(Disc(1, 6)), 6)
	// Box faces do not share vertices, so every face contributes its outline
	assert.Len(t, boundaryEdges(Box(mgl64.Vec3{1, 1, 1})), 24)

	tetra := &Mesh{
		Vertices:  []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Triangles: []int{0, 1, 2, 0, 3, 1, 1, 3, 2, 2, 3, 0},
	}
	assert.Empty(t, boundaryEdges(tetra), "closed mesh has no boundary")
}

func TestSweepExtruder_OpenHasCaps(t *testing.T) {
	src := Disc(1, 4)
	dst := &Mesh{}
	SweepExtruder{}.Extrude(src, dst, straightPath(3), false)

	assert.Len(t, dst.Vertices, 2*4*3+2*5)
	assert.Equal(t, 4*2*2+4*2, dst.TriangleCount())
	assert.Equal(t, len(dst.Vertices), len(dst.UVs))

	// End cap sits on the last ring
	last := dst.Vertices[len(dst.Vertices)-1]
	assert.Equal(t, 2.0, last[2])
	for _, idx := range dst.Triangles {
		assert.Less(t, idx, len(dst.Vertices))
	}
}

func TestSweepExtruder_ClosedJoinsEnds(t *testing.T) {
	dst := &Mesh{}
	SweepExtruder{}.Extrude(Disc(1, 4), dst, straightPath(3), true)
	assert.Len(t, dst.Vertices, 2*4*3)
	assert.Equal(t, 4*2*3, dst.TriangleCount())
}

func TestSweepExtruder_ReusesTarget(t *testing.T) {
	dst := &Mesh{}
	SweepExtruder{}.Extrude(Disc(1, 4), dst, straightPath(5), false)
	SweepExtruder{}.Extrude(Disc(1, 4), dst, straightPath(2), false)
	assert.Len(t, dst.Vertices, 2*4*2+2*5)

	SweepExtruder{}.Extrude(nil, dst, straightPath(2), false)
	assert.True(t, dst.Empty())
}
