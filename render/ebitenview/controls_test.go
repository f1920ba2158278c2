package ebitenview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/scene"
	"github.com/stretchr/testify/assert"
)

type scriptedPointer struct {
	x, y    int
	pressed bool
	wheel   float64
}

func (p *scriptedPointer) Cursor() (int, int) { return p.x, p.y }
func (p *scriptedPointer) Pressed() bool      { return p.pressed }
func (p *scriptedPointer) Wheel() float64     { return p.wheel }

func newControlledLoop() (*loop.Loop, *OrbitControls, *scriptedPointer) {
	sc := scene.Build("orbit", []scene.ObjectSpec{{Name: "box", Shape: scene.Box(1, 1, 1)}})
	in := &scriptedPointer{}
	c := NewOrbitControls()
	c.input = in
	l := loop.New(sc)
	l.Register(c)
	return l, c, in
}

func TestOrbitControls(t *testing.T) {
	t.Run("hover without a press leaves the camera", func(t *testing.T) {
		l, _, in := newControlledLoop()
		start := l.Scene().Camera.Position

		in.x, in.y = 100, 100
		l.Once(1.0 / 60)
		in.x = 300
		l.Once(1.0 / 60)
		assert.Equal(t, start, l.Scene().Camera.Position)
	})

	t.Run("drag orbits at constant distance", func(t *testing.T) {
		l, c, in := newControlledLoop()
		cam := &l.Scene().Camera

		in.pressed = true
		in.x, in.y = 100, 100
		l.Once(1.0 / 60)
		assert.Equal(t, mgl32.Vec3{0, 0, 30}, cam.Position, "the first pressed frame only anchors the drag")

		in.x = 100 - int(mgl32.DegToRad(90)/c.Speed)
		l.Once(1.0 / 60)
		assert.InDelta(t, 30, cam.Position.X(), 0.2, "dragging left swings the camera to +X")
		assert.InDelta(t, 30, cam.Position.Len(), 1e-3)

		in.y = 140
		l.Once(1.0 / 60)
		assert.Greater(t, cam.Position.Y(), float32(0), "dragging down raises the camera")
	})

	t.Run("release ends the drag", func(t *testing.T) {
		l, _, in := newControlledLoop()
		in.pressed = true
		l.Once(1.0 / 60)
		in.pressed = false
		l.Once(1.0 / 60)

		in.x = 400
		in.pressed = true
		l.Once(1.0 / 60)
		assert.Equal(t, mgl32.Vec3{0, 0, 30}, l.Scene().Camera.Position, "a new press re-anchors")
	})

	t.Run("wheel zooms", func(t *testing.T) {
		l, c, in := newControlledLoop()
		in.wheel = 1
		l.Once(1.0 / 60)
		assert.InDelta(t, 30/c.ZoomStep, l.Scene().Camera.Position.Z(), 1e-3)

		in.wheel = -2
		l.Once(1.0 / 60)
		assert.InDelta(t, 30*c.ZoomStep, l.Scene().Camera.Position.Z(), 1e-3)
	})

	t.Run("captured mouse is ignored", func(t *testing.T) {
		l, c, in := newControlledLoop()
		c.Captured = func() bool { return true }
		in.pressed = true
		l.Once(1.0 / 60)
		in.x, in.wheel = 500, 3
		l.Once(1.0 / 60)
		assert.Equal(t, mgl32.Vec3{0, 0, 30}, l.Scene().Camera.Position)
	})
}
