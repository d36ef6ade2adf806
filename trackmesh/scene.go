package trackmesh

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// ObjectID identifies a scene object; the zero value is the scene root
type ObjectID string

// Root is the implicit parent of top-level objects
const Root ObjectID = ""

// Scene is the object lifecycle the builder needs from its host
type Scene interface {
	Create(name string, parent ObjectID) ObjectID
	Destroy(id ObjectID)
	Children(parent ObjectID) []ObjectID
	Name(id ObjectID) string
	SetPose(id ObjectID, p vmath.Pose)
	AttachMesh(id ObjectID, m *Mesh, material string)
	ReleaseMesh(id ObjectID)
}

// Object is a node of the in-memory scene graph
type Object struct {
	ID       ObjectID
	Name     string
	Parent   ObjectID
	Local    vmath.Pose
	Mesh     *Mesh
	Material string
}

// Graph is an in-memory Scene
// Children keep creation order
type Graph struct {
	objects  map[ObjectID]*Object
	children map[ObjectID][]ObjectID
	released int
}

// NewGraph creates an empty scene
func NewGraph() *Graph {
	return &Graph{
		objects:  make(map[ObjectID]*Object),
		children: make(map[ObjectID][]ObjectID),
	}
}

// Create adds a named child under parent; an unknown parent attaches to the root
func (g *Graph) Create(name string, parent ObjectID) ObjectID {
	if parent != Root {
		if _, ok := g.objects[parent]; !ok {
			log.Printf("scene: parent %s not found, %q attached to root", parent, name)
			parent = Root
		}
	}
	id := ObjectID(uuid.NewString())
	g.objects[id] = &Object{
		ID:     id,
		Name:   name,
		Parent: parent,
		Local:  vmath.IdentityPose(),
	}
	g.children[parent] = append(g.children[parent], id)
	return id
}

// Destroy removes id and all of its descendants
func (g *Graph) Destroy(id ObjectID) {
	obj, ok := g.objects[id]
	if !ok {
		return
	}
	for _, c := range append([]ObjectID(nil), g.children[id]...) {
		g.Destroy(c)
	}
	delete(g.children, id)
	delete(g.objects, id)

	siblings := g.children[obj.Parent]
	for i, s := range siblings {
		if s == id {
			g.children[obj.Parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

// Children returns a copy of the direct children of parent
func (g *Graph) Children(parent ObjectID) []ObjectID {
	return append([]ObjectID(nil), g.children[parent]...)
}

func (g *Graph) Name(id ObjectID) string {
	if obj, ok := g.objects[id]; ok {
		return obj.Name
	}
	return ""
}

func (g *Graph) SetPose(id ObjectID, p vmath.Pose) {
	if obj, ok := g.objects[id]; ok {
		obj.Local = p
	}
}

func (g *Graph) AttachMesh(id ObjectID, m *Mesh, material string) {
	if obj, ok := g.objects[id]; ok {
		obj.Mesh = m
		obj.Material = material
	}
}

// ReleaseMesh frees the geometry owned by id
func (g *Graph) ReleaseMesh(id ObjectID) {
	obj, ok := g.objects[id]
	if !ok || obj.Mesh == nil {
		return
	}
	obj.Mesh.Clear()
	obj.Mesh = nil
	g.released++
}

// Object returns a copy of the node
func (g *Graph) Object(id ObjectID) (Object, bool) {
	obj, ok := g.objects[id]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// WorldMatrix composes local poses from the root down to id
func (g *Graph) WorldMatrix(id ObjectID) mgl64.Mat4 {
	m := mgl64.Ident4()
	for id != Root {
		obj, ok := g.objects[id]
		if !ok {
			break
		}
		m = obj.Local.Matrix().Mul4(m)
		id = obj.Parent
	}
	return m
}

// Len returns the number of live objects
func (g *Graph) Len() int { return len(g.objects) }

// Released returns how many meshes have been freed through ReleaseMesh
func (g *Graph) Released() int { return g.released }

// Walk visits id and its descendants depth-first in creation order
func (g *Graph) Walk(id ObjectID, fn func(Object)) {
	if obj, ok := g.objects[id]; ok {
		fn(*obj)
	}
	for _, c := range g.children[id] {
		g.Walk(c, fn)
	}
}
