package trackmesh

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/vr-coaster/vmath"
)

// WriteOBJ writes every mesh under root as a Wavefront OBJ object in world space
func WriteOBJ(w io.Writer, g *Graph, root ObjectID) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vr-coaster track\n")

	offset := 1
	var err error
	g.Walk(root, func(obj Object) {
		if err != nil || obj.Mesh.Empty() {
			return
		}
		world := g.WorldMatrix(obj.ID)
		name := strings.ReplaceAll(obj.Name, " ", "_")
		if _, err = fmt.Fprintf(bw, "o %s_%s\n", name, string(obj.ID)[:8]); err != nil {
			return
		}
		if obj.Material != "" {
			fmt.Fprintf(bw, "usemtl %s\n", obj.Material)
		}
		for _, v := range obj.Mesh.Vertices {
			p := vmath.MultiplyPoint(world, v)
			fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", p[0], p[1], p[2])
		}
		tris := obj.Mesh.Triangles
		for i := 0; i+2 < len(tris); i += 3 {
			fmt.Fprintf(bw, "f %d %d %d\n", tris[i]+offset, tris[i+1]+offset, tris[i+2]+offset)
		}
		offset += len(obj.Mesh.Vertices)
	})
	if err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}
