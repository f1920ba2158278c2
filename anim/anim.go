// Package anim holds the per-frame animation rules and the loop systems
// that apply them. Every rule advances by a fixed step per frame, not per
// second, so a given number of frames always produces the same transform.
package anim

import (
	"fmt"

	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/scene"
)

// Spin rotates an object by Delta every frame.
type Spin struct {
	Delta scene.Euler
}

// Apply advances obj's rotation by one frame, keeping every axis in [0, 2π).
func (s Spin) Apply(obj *scene.Object) {
	obj.Rotation = obj.Rotation.Add(s.Delta).Wrap()
}

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// ParseAxis accepts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// Travel moves an object along Axis by Step every frame. Once the coordinate
// passes Forward (in the direction of Step) it jumps to Rear in the same
// frame, so objects loop without their coordinates growing without bound.
type Travel struct {
	Axis    Axis
	Step    float32
	Forward float32
	Rear    float32
}

// Apply advances obj by one frame and reports whether it wrapped to Rear.
func (t Travel) Apply(obj *scene.Object) bool {
	c := obj.Position[t.Axis] + t.Step
	wrapped := t.passed(c)
	if wrapped {
		c = t.Rear
	}
	obj.Position[t.Axis] = c
	return wrapped
}

func (t Travel) passed(c float32) bool {
	if t.Step >= 0 {
		return c > t.Forward
	}
	return c < t.Forward
}

// SpinSystem applies Spin rules.
type SpinSystem struct {
	Objects scene.Query[Spin]
}

func (s *SpinSystem) Execute(frame *loop.Frame) {
	for obj, spin := range s.Objects.Iter() {
		spin.Apply(obj)
	}
}

// TravelSystem applies Travel rules.
type TravelSystem struct {
	Objects scene.Query[Travel]

	// Wraps counts how many times an object has jumped back to Rear.
	Wraps int
}

func (s *TravelSystem) Execute(frame *loop.Frame) {
	for obj, travel := range s.Objects.Iter() {
		if travel.Apply(obj) {
			s.Wraps++
		}
	}
}

// Register adds every system in this package to l.
func Register(l *loop.Loop) {
	l.Register(&SpinSystem{})
	l.Register(&TravelSystem{})
}
