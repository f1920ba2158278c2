package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ObjectId identifies an object within its Scene. Ids start at 1 and are
// never reused by the same Scene; 0 means "no object".
type ObjectId uint32

// Role distinguishes objects driven by the frame loop from static decorations.
type Role uint8

const (
	// RoleAnimated objects carry a Motion and are mutated every frame.
	RoleAnimated Role = iota
	// RoleDecoration objects are rendered but never mutated.
	RoleDecoration
)

func (r Role) String() string {
	switch r {
	case RoleAnimated:
		return "animated"
	case RoleDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Euler is a rotation in radians applied in X, Y, Z order (pitch, yaw, roll).
type Euler struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of e and d.
func (e Euler) Add(d Euler) Euler {
	return Euler{X: e.X + d.X, Y: e.Y + d.Y, Z: e.Z + d.Z}
}

// Wrap folds every axis into [0, 2π).
func (e Euler) Wrap() Euler {
	return Euler{X: WrapAngle(e.X), Y: WrapAngle(e.Y), Z: WrapAngle(e.Z)}
}

// Matrix returns the homogeneous rotation matrix for e.
func (e Euler) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(e.X).
		Mul4(mgl32.HomogRotate3DY(e.Y)).
		Mul4(mgl32.HomogRotate3DZ(e.Z))
}

// WrapAngle folds a into [0, 2π). Angles already in range are returned as is.
func WrapAngle(a float32) float32 {
	const twoPi = 2 * math32.Pi
	if a >= 0 && a < twoPi {
		return a
	}
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Transform is the mutable placement of an object.
type Transform struct {
	Position mgl32.Vec3
	Rotation Euler
}

// Matrix returns the model matrix (translation after rotation).
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Matrix())
}

// Object is a single visible entity in a Scene.
type Object struct {
	Id   ObjectId
	Name string
	Role Role
	Transform
	Shape Shape
	Color Color

	// Motion is the animation rule applied by the frame loop. It is nil for
	// decorations; systems select objects by the dynamic type of Motion.
	Motion any
}
