// Package render turns a scene into a flat list of coloured line segments
// that any 2D surface can stroke.
package render

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/scene"
)

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultMaxSegments = 32
	DefaultMinPixels   = 1.5
)

// Wireframe is a loop.Renderer that projects every object's outline with
// the camera's view-projection matrix. Objects whose bounding sphere covers
// less than MinPixels on screen are emitted as dots.
type Wireframe struct {
	width, height int
	minPixels     float32
	meshes        *meshCache
	logger        log.Log

	mu     sync.Mutex
	front  *DisplayList
	back   *DisplayList
	frames uint64
}

type Option func(*Wireframe)

// WithViewport sets the initial surface size in pixels.
func WithViewport(width, height int) Option {
	return func(w *Wireframe) { w.Resize(width, height) }
}

// WithMaxSegments caps the segment counts of spheres and tori. Zero keeps
// the shape's own counts.
func WithMaxSegments(n int) Option {
	return func(w *Wireframe) { w.meshes = newMeshCache(n) }
}

func WithMinPixels(px float32) Option {
	return func(w *Wireframe) { w.minPixels = px }
}

func WithLogger(logger log.Log) Option {
	return func(w *Wireframe) { w.logger = logger }
}

func New(opts ...Option) *Wireframe {
	w := &Wireframe{
		width:     DefaultWidth,
		height:    DefaultHeight,
		minPixels: DefaultMinPixels,
		meshes:    newMeshCache(DefaultMaxSegments),
		logger:    log.Nop(),
		front:     &DisplayList{},
		back:      &DisplayList{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Resize sets the surface size used by subsequent frames. Degenerate sizes
// are ignored.
func (w *Wireframe) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}

func (w *Wireframe) Viewport() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Frames returns how many frames have been rendered.
func (w *Wireframe) Frames() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// View calls fn with the most recently completed display list. The list
// must not be retained after fn returns.
func (w *Wireframe) View(fn func(*DisplayList)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.front)
}

// Render projects sc as seen from cam into the back buffer, then publishes
// it. Render must not be called concurrently with itself.
func (w *Wireframe) Render(sc *scene.Scene, cam scene.Camera) {
	width, height := w.Viewport()
	list := w.back
	list.reset(width, height, sc.Backdrop)

	p := projector{
		viewProj: cam.ViewProjection(),
		view:     cam.View(),
		near:     cam.Near,
		far:      cam.Far,
		width:    float32(width),
		height:   float32(height),
		focal:    float32(height) / 2 / math32.Tan(mgl32.DegToRad(cam.Fov)/2),
		list:     list,
	}

	cached := w.meshes.len()
	for obj := range sc.Objects() {
		w.renderObject(&p, obj, illumination(sc.Lights, obj.Position))
	}
	if n := w.meshes.len(); n != cached {
		w.logger.Debug("tessellated new meshes", log.Int("meshes", n), log.String("scene", sc.Name))
	}

	w.mu.Lock()
	w.frames++
	list.Frame = w.frames
	w.front, w.back = list, w.front
	w.mu.Unlock()
}

func (w *Wireframe) renderObject(p *projector, obj *scene.Object, light float32) {
	model := obj.Transform.Matrix()
	center := p.view.Mul4x1(model.Col(3))
	depth := -center.Z()
	radius := BoundingRadius(obj.Shape)

	if depth+radius <= p.near || depth-radius >= p.far {
		p.list.Culled++
		return
	}

	if depth > p.near && radius*p.focal/depth < w.minPixels {
		at, ok := p.toScreen(p.viewProj.Mul4x1(model.Col(3)))
		if ok && p.onScreen(at, 0) {
			p.list.Dots = append(p.list.Dots, Dot{
				At:     at,
				Radius: max(radius*p.focal/depth, 1),
				Color:  obj.Color.Scale(light),
			})
			p.list.Drawn++
		}
		return
	}

	before := len(p.list.Segments)
	mvp := p.viewProj.Mul4(model)
	if obj.Shape.Kind == scene.ShapeGroup {
		for _, part := range obj.Shape.Parts {
			color := part.Color
			if color == scene.Black {
				color = obj.Color
			}
			partMVP := mvp.Mul4(mgl32.Translate3D(part.Offset.X(), part.Offset.Y(), part.Offset.Z()))
			p.edges(partMVP, w.meshes.get(part.Shape), color.Scale(light))
		}
	} else {
		p.edges(mvp, w.meshes.get(obj.Shape), obj.Color.Scale(light))
	}
	if len(p.list.Segments) > before {
		p.list.Drawn++
	}
}

type projector struct {
	viewProj mgl32.Mat4
	view     mgl32.Mat4
	near     float32
	far      float32
	width    float32
	height   float32
	focal    float32
	list     *DisplayList
}

func (p *projector) edges(mvp mgl32.Mat4, edges []Edge, color scene.Color) {
	for _, e := range edges {
		a := mvp.Mul4x1(e[0].Vec4(1))
		b := mvp.Mul4x1(e[1].Vec4(1))
		a, b, ok := clipNear(a, b, p.near)
		if !ok {
			continue
		}
		from, _ := p.toScreen(a)
		to, _ := p.toScreen(b)
		if p.outside(from, to) {
			continue
		}
		p.list.Segments = append(p.list.Segments, Segment{From: from, To: to, Color: color})
	}
}

// clipNear trims a clip-space segment to the part with w >= near.
func clipNear(a, b mgl32.Vec4, near float32) (mgl32.Vec4, mgl32.Vec4, bool) {
	aw, bw := a.W(), b.W()
	switch {
	case aw < near && bw < near:
		return a, b, false
	case aw < near:
		a = lerp4(a, b, (near-aw)/(bw-aw))
	case bw < near:
		b = lerp4(b, a, (near-bw)/(aw-bw))
	}
	return a, b, true
}

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

// toScreen maps a clip-space point to surface pixels with y pointing down.
func (p *projector) toScreen(c mgl32.Vec4) (mgl32.Vec2, bool) {
	w := c.W()
	if w <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{
		(c.X()/w + 1) / 2 * p.width,
		(1 - c.Y()/w) / 2 * p.height,
	}, true
}

func (p *projector) onScreen(v mgl32.Vec2, margin float32) bool {
	return v.X() >= -margin && v.X() <= p.width+margin && v.Y() >= -margin && v.Y() <= p.height+margin
}

// outside reports whether both ends lie beyond the same viewport edge.
func (p *projector) outside(a, b mgl32.Vec2) bool {
	return (a.X() < 0 && b.X() < 0) ||
		(a.X() > p.width && b.X() > p.width) ||
		(a.Y() < 0 && b.Y() < 0) ||
		(a.Y() > p.height && b.Y() > p.height)
}

const (
	ambientWeight     = 0.4
	directionalWeight = 0.6
	// pointFalloff is the squared distance at which a point light delivers
	// half its intensity.
	pointFalloff = 400
)

// illumination returns the brightness factor in [0, 1] for a point lit by
// lights. Light colours do not tint. A scene without lights is fully lit.
func illumination(lights []scene.Light, at mgl32.Vec3) float32 {
	if len(lights) == 0 {
		return 1
	}
	var f float32
	for _, l := range lights {
		switch l.Kind {
		case scene.LightAmbient:
			f += l.Intensity * ambientWeight
		case scene.LightDirectional:
			f += l.Intensity * directionalWeight
		case scene.LightPoint:
			d2 := at.Sub(l.Position).LenSqr()
			f += l.Intensity / (1 + d2/pointFalloff)
		}
	}
	return mgl32.Clamp(f, 0, 1)
}
