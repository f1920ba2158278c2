package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps an orbiting camera just short of the poles, where the view
// direction would line up with Up.
const maxPitch = math32.Pi/2 - 0.01

// Camera is the viewpoint a Scene is rendered from.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	// Fov is the vertical field of view in degrees.
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultCamera returns a perspective camera 30 units back on +Z looking at
// the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 30},
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      75,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      1000,
	}
}

// Resize updates the aspect ratio to match a width x height surface.
// Degenerate sizes are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Orbit moves the camera around Target on a sphere of constant radius. dYaw
// turns around the world Y axis and dPitch raises the camera towards +Y,
// both in radians. Pitch is clamped short of straight up or down.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	offset := c.Position.Sub(c.Target)
	r := offset.Len()
	if r == 0 {
		return
	}

	yaw := math32.Atan2(offset.X(), offset.Z()) + dYaw
	pitch := math32.Asin(mgl32.Clamp(offset.Y()/r, -1, 1)) + dPitch
	pitch = mgl32.Clamp(pitch, -maxPitch, maxPitch)

	c.Position = c.Target.Add(mgl32.Vec3{
		r * math32.Cos(pitch) * math32.Sin(yaw),
		r * math32.Sin(pitch),
		r * math32.Cos(pitch) * math32.Cos(yaw),
	})
}

// Zoom scales the distance to Target by factor, keeping the direction. The
// distance stays within [10*Near, Far/2] so the target never crosses a
// clipping plane.
func (c *Camera) Zoom(factor float32) {
	offset := c.Position.Sub(c.Target)
	r := offset.Len()
	if r == 0 || factor <= 0 {
		return
	}
	next := mgl32.Clamp(r*factor, c.Near*10, c.Far/2)
	c.Position = c.Target.Add(offset.Mul(next / r))
}
