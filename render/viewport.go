package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-coaster/parameter"
)

// Viewport maps the world XZ plane onto terminal cells, +Z up the screen
type Viewport struct {
	Center mgl64.Vec3
	Scale  float64 // World units per cell column
	Aspect float64 // Rows per column of equal world length
}

// NewViewport centres on the origin at the default scale
func NewViewport() Viewport {
	return Viewport{Scale: parameter.SandboxWorldUnitsPerCell, Aspect: parameter.SandboxCellAspect}
}

// Project returns the cell of p on a w by h screen, ok false when off screen
func (v Viewport) Project(p mgl64.Vec3, w, h int) (x, y int, ok bool) {
	fx := float64(w)/2 + (p[0]-v.Center[0])/v.Scale
	fy := float64(h)/2 - (p[2]-v.Center[2])/v.Scale*v.Aspect
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && y >= 0 && x < w && y < h
}

// Fit centres on points and picks the scale that keeps them inside a w by h area with a margin cell
func (v *Viewport) Fit(points []mgl64.Vec3, w, h int) {
	if len(points) == 0 || w < 3 || h < 3 {
		return
	}
	minX, maxX := points[0][0], points[0][0]
	minZ, maxZ := points[0][2], points[0][2]
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minZ, maxZ = math.Min(minZ, p[2]), math.Max(maxZ, p[2])
	}
	v.Center = mgl64.Vec3{(minX + maxX) / 2, 0, (minZ + maxZ) / 2}

	sx := (maxX - minX) / float64(w-2)
	sz := (maxZ - minZ) * v.Aspect / float64(h-2)
	v.Scale = math.Max(math.Max(sx, sz), 1e-6)
}
