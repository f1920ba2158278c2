package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/scene"
)

// Segment is a projected line in surface pixels, origin top-left.
type Segment struct {
	From, To mgl32.Vec2
	Color    scene.Color
}

// Dot stands in for an object too small on screen to outline.
type Dot struct {
	At     mgl32.Vec2
	Radius float32
	Color  scene.Color
}

// DisplayList is everything needed to draw one frame on a 2D surface.
type DisplayList struct {
	Frame    uint64
	Width    int
	Height   int
	Backdrop scene.Backdrop
	Segments []Segment
	Dots     []Dot

	// Drawn counts objects that produced segments or a dot; Culled counts
	// objects entirely behind the camera or past the far plane.
	Drawn  int
	Culled int
}

func (d *DisplayList) reset(width, height int, backdrop scene.Backdrop) {
	d.Width = width
	d.Height = height
	d.Backdrop = backdrop
	d.Segments = d.Segments[:0]
	d.Dots = d.Dots[:0]
	d.Drawn = 0
	d.Culled = 0
}
