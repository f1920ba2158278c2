package scene_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDecorations() scene.Decorations {
	return scene.Decorations{
		Statics: []scene.ObjectSpec{
			{Name: "grid", Shape: scene.Grid(200, 50), Color: 0x888888},
		},
		Lights: []scene.Light{
			scene.AmbientLight(scene.White, 1),
			scene.PointLight(scene.White, 1, mgl32.Vec3{5, 5, 5}),
		},
	}
}

func TestBuildCountsObjects(t *testing.T) {
	for _, n := range []int{0, 1, 5, 64, 65, 300} {
		lane := scene.Lane{
			Count:    n,
			Spacing:  mgl32.Vec3{0, 0, -10},
			Template: scene.ObjectSpec{Name: "car", Shape: scene.Box(4, 1, 2), Motion: testSlide{Step: 0.1}},
		}

		s := scene.Build("lane", lane.Specs(), testDecorations())

		assert.Equal(t, n, s.Count(scene.RoleAnimated), "n=%d", n)
		assert.Equal(t, 1, s.Count(scene.RoleDecoration), "n=%d", n)
		assert.Equal(t, n+1, s.Len(), "n=%d", n)
		assert.Len(t, s.Lights, 2)
	}
}

func TestLaneSpacing(t *testing.T) {
	lane := scene.Lane{
		Count:    5,
		Spacing:  mgl32.Vec3{0, 0, -10},
		Template: scene.ObjectSpec{Name: "car", Shape: scene.Box(1, 1, 1)},
	}

	specs := lane.Specs()
	require.Len(t, specs, 5)

	zs := make([]float32, 0, len(specs))
	for _, spec := range specs {
		zs = append(zs, spec.Position.Z())
		assert.Equal(t, float32(0), spec.Position.X())
		assert.Equal(t, float32(0), spec.Position.Y())
	}
	assert.Equal(t, []float32{0, -10, -20, -30, -40}, zs)
	assert.Equal(t, "car-0", specs[0].Name)
	assert.Equal(t, "car-4", specs[4].Name)
}

func TestLaneOrigin(t *testing.T) {
	lane := scene.Lane{Count: 3, Origin: mgl32.Vec3{2, 0, 1}, Spacing: mgl32.Vec3{1, 0, 0}}
	specs := lane.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, mgl32.Vec3{4, 0, 1}, specs[2].Position)
	assert.Equal(t, "", specs[2].Name)
}

func TestScatterBounds(t *testing.T) {
	scatter := scene.Scatter{
		Count:    200,
		Spread:   100,
		Template: scene.ObjectSpec{Name: "star", Shape: scene.Sphere(0.25, 24, 24), Color: scene.White},
	}

	specs := scatter.Specs(rand.New(rand.NewPCG(1, 2)))
	require.Len(t, specs, 200)

	for _, spec := range specs {
		for axis := range 3 {
			v := spec.Position[axis]
			assert.GreaterOrEqual(t, v, float32(-50))
			assert.LessOrEqual(t, v, float32(50))
		}
	}
}

func TestScatterIsReproducible(t *testing.T) {
	scatter := scene.Scatter{Count: 50, Spread: 10}

	a := scatter.Specs(rand.New(rand.NewPCG(7, 7)))
	b := scatter.Specs(rand.New(rand.NewPCG(7, 7)))
	c := scatter.Specs(rand.New(rand.NewPCG(8, 8)))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestScatterEmpty(t *testing.T) {
	assert.Empty(t, scene.Scatter{Count: 0, Spread: 100}.Specs(rand.New(rand.NewPCG(1, 1))))
	assert.Empty(t, scene.Lane{Count: -1}.Specs())
}

func TestBuildIsIdempotent(t *testing.T) {
	build := func(seed uint64) *scene.Scene {
		rng := rand.New(rand.NewPCG(seed, seed))
		stars := scene.Scatter{Count: 20, Spread: 100, Template: scene.ObjectSpec{Shape: scene.Sphere(0.25, 8, 8)}}
		decor := testDecorations()
		decor.Statics = append(decor.Statics, stars.Specs(rng)...)

		specs := []scene.ObjectSpec{
			{Name: "torus", Shape: scene.Torus(10, 3, 16, 100), Color: 0xFF6347, Motion: testSpin{}},
		}
		return scene.Build("idempotent", specs, decor)
	}

	a, b := build(42), build(42)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Id, b.Id)

	c := build(43)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "randomized decorations differ across seeds")

	a.Find("torus").Rotation.X += 0.01
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint(), "transforms are part of the fingerprint")
}

func TestFingerprintDelimitsStrings(t *testing.T) {
	// b shifts a's zero words one slot into the name and moves the image
	// path bytes into the backdrop color, so the raw byte streams match
	// unless string lengths are hashed.
	a := scene.New("a")
	a.Add(scene.Object{Name: "n"})
	a.Backdrop = scene.Backdrop{ImagePath: "pppp"}

	b := scene.New("b")
	b.Add(scene.Object{Name: "n\x00\x00\x00\x00"})
	b.Backdrop = scene.Backdrop{Color: 0x70707070}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestDecorationsNeverAnimate(t *testing.T) {
	b := scene.NewBuilder("decor")
	err := b.Decorate(scene.Decorations{
		Statics: []scene.ObjectSpec{{Name: "road", Shape: scene.Plane(10, 100), Motion: testSlide{Step: 1}}},
	})
	require.NoError(t, err)

	road := b.Scene().Find("road")
	require.NotNil(t, road)
	assert.Equal(t, scene.RoleDecoration, road.Role)
	assert.Nil(t, road.Motion)
}

func TestDecorateCameraAndBackdrop(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = mgl32.Vec3{0, 15, 60}
	backdrop := scene.Backdrop{Color: 0x101020, ImagePath: "space.jpg"}

	s := scene.Build("decor", nil, scene.Decorations{Camera: &cam, Backdrop: &backdrop})

	assert.Equal(t, cam, s.Camera)
	assert.Equal(t, backdrop, s.Backdrop)
	assert.Equal(t, 0, s.Len())
}

func TestBuilderRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape scene.Shape
	}{
		{"negative box", scene.Box(-1, 1, 1)},
		{"coarse sphere", scene.Sphere(1, 2, 1)},
		{"empty grid", scene.Grid(10, 0)},
		{"nested group", scene.Group(scene.Part{Shape: scene.Group()})},
		{"unknown kind", scene.Shape{Kind: scene.ShapeKind(99)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := scene.NewBuilder("invalid")
			_, err := b.Add(scene.ObjectSpec{Name: tt.name, Shape: tt.shape})
			assert.True(t, errors.Is(err, scene.ErrInvalidShape), "got %v", err)
			assert.Equal(t, 0, b.Scene().Len())
		})
	}

	assert.Panics(t, func() {
		scene.Build("invalid", []scene.ObjectSpec{{Shape: scene.Box(-1, 0, 0)}})
	})
}

func TestParseShapeKind(t *testing.T) {
	kind, err := scene.ParseShapeKind("torus")
	require.NoError(t, err)
	assert.Equal(t, scene.ShapeTorus, kind)
	assert.Equal(t, "torus", kind.String())

	_, err = scene.ParseShapeKind("cone")
	assert.ErrorIs(t, err, scene.ErrInvalidShape)
}

func TestCollectStats(t *testing.T) {
	lane := scene.Lane{Count: 3, Template: scene.ObjectSpec{Shape: scene.Box(1, 1, 1), Motion: testSlide{}}}
	s := scene.Build("stats", lane.Specs(), testDecorations())

	stats := s.CollectStats()
	assert.Equal(t, 4, stats.ObjectCount)
	assert.Equal(t, 3, stats.AnimatedCount)
	assert.Equal(t, 1, stats.DecorationCount)
	assert.Equal(t, 2, stats.LightCount)
	assert.Equal(t, []scene.ShapeStats{
		{Kind: scene.ShapeBox, Count: 3},
		{Kind: scene.ShapeGrid, Count: 1},
	}, stats.ShapeBreakdown)
}
