package ebitenview

import (
	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sceneloop/loop"
)

const (
	DefaultOrbitSpeed = 0.005
	DefaultZoomStep   = 1.1
)

// pointer is the mouse state OrbitControls reads each frame.
type pointer interface {
	Cursor() (x, y int)
	Pressed() bool
	Wheel() float64
}

type ebitenPointer struct{}

func (ebitenPointer) Cursor() (int, int) { return ebiten.CursorPosition() }
func (ebitenPointer) Pressed() bool      { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

func (ebitenPointer) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// OrbitControls is a loop System that turns the scene camera around its
// target while the left mouse button is dragged and zooms on the wheel.
// It must be registered on a loop driven by a View.
type OrbitControls struct {
	// Speed is radians of orbit per pixel dragged.
	Speed float32
	// ZoomStep is the distance factor applied per wheel notch.
	ZoomStep float32
	// Captured reports whether another layer (the debug UI) owns the mouse.
	Captured func() bool

	input    pointer
	dragging bool
	lastX    int
	lastY    int
}

func NewOrbitControls() *OrbitControls {
	return &OrbitControls{
		Speed:    DefaultOrbitSpeed,
		ZoomStep: DefaultZoomStep,
		input:    ebitenPointer{},
	}
}

func (c *OrbitControls) Execute(frame *loop.Frame) {
	if c.Captured != nil && c.Captured() {
		c.dragging = false
		return
	}

	cam := &frame.Scene.Camera
	mx, my := c.input.Cursor()

	if c.input.Pressed() {
		if c.dragging {
			dx := float32(mx - c.lastX)
			dy := float32(my - c.lastY)
			if dx != 0 || dy != 0 {
				cam.Orbit(-dx*c.Speed, dy*c.Speed)
			}
		}
		c.dragging = true
		c.lastX, c.lastY = mx, my
	} else {
		c.dragging = false
	}

	if w := c.input.Wheel(); w != 0 {
		cam.Zoom(math32.Pow(c.ZoomStep, float32(-w)))
	}
}
