package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/scene"
)

// Edge is a line segment in an object's local space.
type Edge [2]mgl32.Vec3

// meshKey identifies a primitive tessellation. Groups are never keyed; each
// of their parts is.
type meshKey struct {
	kind      scene.ShapeKind
	dims      [5]float32
	segments  [2]int
	divisions int
}

func keyOf(s scene.Shape, maxSegments int) meshKey {
	return meshKey{
		kind:      s.Kind,
		dims:      [5]float32{s.Width, s.Height, s.Depth, s.Radius, s.Tube},
		segments:  clampSegments(s.Segments, maxSegments),
		divisions: s.Divisions,
	}
}

func clampSegments(seg [2]int, maxSegments int) [2]int {
	if maxSegments <= 0 {
		return seg
	}
	return [2]int{min(seg[0], maxSegments), min(seg[1], maxSegments)}
}

// Outline tessellates a primitive shape into wireframe edges. Planes and grids
// lie in the XZ plane; tori lie in the XY plane around the Z axis. Group
// shapes produce no edges of their own.
func Outline(s scene.Shape) []Edge {
	return outline(keyOf(s, 0))
}

func outline(k meshKey) []Edge {
	w, h, d, r, tube := k.dims[0], k.dims[1], k.dims[2], k.dims[3], k.dims[4]
	switch k.kind {
	case scene.ShapeBox:
		return boxEdges(w/2, h/2, d/2)
	case scene.ShapeSphere:
		return sphereEdges(r, k.segments[0], k.segments[1])
	case scene.ShapeTorus:
		return torusEdges(r, tube, k.segments[0], k.segments[1])
	case scene.ShapePlane:
		return planeEdges(w/2, d/2)
	case scene.ShapeGrid:
		return gridEdges(w, k.divisions)
	default:
		return nil
	}
}

func boxEdges(x, y, z float32) []Edge {
	c := [8]mgl32.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	edges := make([]Edge, 0, 12)
	for i := range 4 {
		j := (i + 1) % 4
		edges = append(edges,
			Edge{c[i], c[j]},
			Edge{c[i+4], c[j+4]},
			Edge{c[i], c[i+4]},
		)
	}
	return edges
}

// sphereEdges draws latitude rings and meridians.
func sphereEdges(r float32, widthSegments, heightSegments int) []Edge {
	point := func(i, j int) mgl32.Vec3 {
		phi := float32(i) / float32(widthSegments) * 2 * math32.Pi
		theta := float32(j) / float32(heightSegments) * math32.Pi
		return mgl32.Vec3{
			-r * math32.Cos(phi) * math32.Sin(theta),
			r * math32.Cos(theta),
			r * math32.Sin(phi) * math32.Sin(theta),
		}
	}

	edges := make([]Edge, 0, widthSegments*(2*heightSegments-1))
	for j := 1; j < heightSegments; j++ {
		for i := range widthSegments {
			edges = append(edges, Edge{point(i, j), point(i+1, j)})
		}
	}
	for i := range widthSegments {
		for j := range heightSegments {
			edges = append(edges, Edge{point(i, j), point(i, j+1)})
		}
	}
	return edges
}

func torusEdges(radius, tube float32, radialSegments, tubularSegments int) []Edge {
	point := func(i, j int) mgl32.Vec3 {
		v := float32(i) / float32(radialSegments) * 2 * math32.Pi
		u := float32(j) / float32(tubularSegments) * 2 * math32.Pi
		ring := radius + tube*math32.Cos(v)
		return mgl32.Vec3{ring * math32.Cos(u), ring * math32.Sin(u), tube * math32.Sin(v)}
	}

	edges := make([]Edge, 0, 2*radialSegments*tubularSegments)
	for i := range radialSegments {
		for j := range tubularSegments {
			p := point(i, j)
			edges = append(edges, Edge{p, point(i, j+1)}, Edge{p, point(i+1, j)})
		}
	}
	return edges
}

func planeEdges(x, z float32) []Edge {
	c := [4]mgl32.Vec3{{-x, 0, -z}, {x, 0, -z}, {x, 0, z}, {-x, 0, z}}
	return []Edge{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

func gridEdges(size float32, divisions int) []Edge {
	half := size / 2
	step := size / float32(divisions)
	edges := make([]Edge, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		edges = append(edges,
			Edge{{-half, 0, k}, {half, 0, k}},
			Edge{{k, 0, -half}, {k, 0, half}},
		)
	}
	return edges
}

// BoundingRadius returns the radius of a sphere around the local origin that
// contains every point of s.
func BoundingRadius(s scene.Shape) float32 {
	switch s.Kind {
	case scene.ShapeBox:
		return mgl32.Vec3{s.Width, s.Height, s.Depth}.Len() / 2
	case scene.ShapeSphere:
		return s.Radius
	case scene.ShapeTorus:
		return s.Radius + s.Tube
	case scene.ShapePlane:
		return mgl32.Vec2{s.Width, s.Depth}.Len() / 2
	case scene.ShapeGrid:
		return s.Width / 2 * math32.Sqrt(2)
	case scene.ShapeGroup:
		var r float32
		for _, part := range s.Parts {
			r = max(r, part.Offset.Len()+BoundingRadius(part.Shape))
		}
		return r
	default:
		return 0
	}
}

// meshCache memoises primitive tessellations. It is owned by one renderer
// and is not safe for concurrent use.
type meshCache struct {
	maxSegments int
	meshes      map[meshKey][]Edge
}

func newMeshCache(maxSegments int) *meshCache {
	return &meshCache{maxSegments: maxSegments, meshes: make(map[meshKey][]Edge)}
}

func (c *meshCache) get(s scene.Shape) []Edge {
	k := keyOf(s, c.maxSegments)
	edges, ok := c.meshes[k]
	if !ok {
		edges = outline(k)
		c.meshes[k] = edges
	}
	return edges
}

func (c *meshCache) len() int {
	return len(c.meshes)
}
