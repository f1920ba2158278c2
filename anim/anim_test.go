package anim_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/anim"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinOneFrame(t *testing.T) {
	s := scene.Build("spin", []scene.ObjectSpec{
		{Name: "torus", Shape: scene.Torus(10, 3, 16, 100), Motion: anim.Spin{Delta: scene.Euler{X: 0.01}}},
	})
	l := loop.New(s)
	anim.Register(l)

	l.Once(1.0 / 60)

	torus := s.Find("torus")
	assert.Equal(t, float32(0.01), torus.Rotation.X)
	assert.Equal(t, float32(0), torus.Rotation.Y)
	assert.Equal(t, float32(0), torus.Rotation.Z)
}

func TestSpinIsDeterministic(t *testing.T) {
	delta := scene.Euler{X: 0.01, Y: 0.005, Z: 0.01}
	start := scene.Euler{X: 0.3, Y: 0, Z: 6.2}

	for _, k := range []int{0, 1, 10, 700, 2000} {
		obj := &scene.Object{Transform: scene.Transform{Rotation: start}}
		spin := anim.Spin{Delta: delta}
		for range k {
			spin.Apply(obj)
		}

		want := func(theta0, d float32) float64 {
			return math.Mod(float64(theta0)+float64(k)*float64(d), 2*math.Pi)
		}
		assert.InDelta(t, want(start.X, delta.X), obj.Rotation.X, 1e-3, "k=%d", k)
		assert.InDelta(t, want(start.Y, delta.Y), obj.Rotation.Y, 1e-3, "k=%d", k)
		assert.InDelta(t, want(start.Z, delta.Z), obj.Rotation.Z, 1e-3, "k=%d", k)

		for _, a := range []float32{obj.Rotation.X, obj.Rotation.Y, obj.Rotation.Z} {
			assert.GreaterOrEqual(t, a, float32(0))
			assert.Less(t, a, float32(2*math.Pi))
		}
	}
}

func TestTravel(t *testing.T) {
	lane := anim.Travel{Axis: anim.AxisZ, Step: 0.1, Forward: 50, Rear: -50}

	tests := []struct {
		name    string
		start   float32
		want    float32
		wrapped bool
	}{
		{"advances below the bound", 49, 49.1, false},
		{"lands exactly on the bound", 49.9, 50, false},
		{"wraps past the bound", 50.05, -50, true},
		{"rear restarts the loop", -50, -49.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &scene.Object{Transform: scene.Transform{Position: mgl32.Vec3{3, 0, tt.start}}}
			wrapped := lane.Apply(obj)

			assert.Equal(t, tt.wrapped, wrapped)
			assert.InDelta(t, tt.want, obj.Position.Z(), 1e-4)
			assert.Equal(t, float32(3), obj.Position.X(), "other axes are untouched")
		})
	}
}

func TestTravelBackwards(t *testing.T) {
	reverse := anim.Travel{Axis: anim.AxisX, Step: -0.5, Forward: -20, Rear: 25}

	obj := &scene.Object{Transform: scene.Transform{Position: mgl32.Vec3{-19.8, 0, 0}}}
	assert.True(t, reverse.Apply(obj))
	assert.Equal(t, float32(25), obj.Position.X())

	assert.False(t, reverse.Apply(obj))
	assert.Equal(t, float32(24.5), obj.Position.X())
}

func TestTravelStaysBounded(t *testing.T) {
	s := scene.Build("cars", scene.Lane{
		Count:    5,
		Spacing:  mgl32.Vec3{0, 0, -10},
		Template: scene.ObjectSpec{Name: "car", Shape: scene.Box(2, 1, 4), Motion: anim.Travel{Axis: anim.AxisZ, Step: 0.1, Forward: 50, Rear: -50}},
	}.Specs())

	l := loop.New(s)
	travel := &anim.TravelSystem{}
	l.Register(travel)

	l.Step(5000, 1.0/60)

	for obj := range s.Objects() {
		assert.GreaterOrEqual(t, obj.Position.Z(), float32(-50))
		assert.LessOrEqual(t, obj.Position.Z(), float32(50))
	}
	assert.Positive(t, travel.Wraps)
}

func TestParseAxis(t *testing.T) {
	axis, err := anim.ParseAxis("Z")
	require.NoError(t, err)
	assert.Equal(t, anim.AxisZ, axis)
	assert.Equal(t, "z", axis.String())

	_, err = anim.ParseAxis("w")
	assert.Error(t, err)
}

func TestSystemsOnlyTouchTheirRules(t *testing.T) {
	s := scene.Build("mixed", []scene.ObjectSpec{
		{Name: "spinner", Motion: anim.Spin{Delta: scene.Euler{Y: 0.5}}},
		{Name: "car", Motion: anim.Travel{Axis: anim.AxisZ, Step: 1, Forward: 10, Rear: -10}},
	}, scene.Decorations{
		Statics: []scene.ObjectSpec{{Name: "road", Shape: scene.Plane(10, 100)}},
	})

	l := loop.New(s)
	anim.Register(l)
	l.Step(2, 0)

	assert.Equal(t, float32(1), s.Find("spinner").Rotation.Y)
	assert.Equal(t, float32(0), s.Find("spinner").Position.Z())
	assert.Equal(t, float32(2), s.Find("car").Position.Z())
	assert.Equal(t, scene.Euler{}, s.Find("car").Rotation)
	assert.Equal(t, scene.Transform{}, s.Find("road").Transform)
}
