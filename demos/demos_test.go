package demos_test

import (
	"fmt"
	"testing"

	"github.com/plus3/sceneloop/anim"
	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/demos"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorus(t *testing.T) {
	cfg := config.Default().Torus
	sc, err := demos.Torus(cfg, demos.NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, 1, sc.Count(scene.RoleAnimated))
	assert.Equal(t, 200+2, sc.Count(scene.RoleDecoration), "stars, grid and light helper")
	assert.Len(t, sc.Lights, 2)
	assert.Equal(t, float32(30), sc.Camera.Position.Z())
	assert.Equal(t, cfg.Backdrop, sc.Backdrop.ImagePath)

	torus := sc.Find("torus")
	require.NotNil(t, torus)
	assert.Equal(t, scene.Color(0xFF6347), torus.Color)
	assert.Equal(t, anim.Spin{Delta: scene.Euler{X: 0.01, Y: 0.005, Z: 0.01}}, torus.Motion)

	for i := range cfg.Stars {
		star := sc.Find(fmt.Sprintf("star-%d", i))
		require.NotNil(t, star)
		assert.Nil(t, star.Motion)
		for axis := range 3 {
			assert.GreaterOrEqual(t, star.Position[axis], float32(-50))
			assert.LessOrEqual(t, star.Position[axis], float32(50))
		}
	}
}

func TestTorusOptionalDecorations(t *testing.T) {
	cfg := config.Default().Torus
	cfg.Stars = 0
	cfg.Grid = false
	cfg.LightHelper = false

	sc, err := demos.Torus(cfg, demos.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, 1, sc.Len())
}

func TestTorusIsReproducible(t *testing.T) {
	cfg := config.Default().Torus

	a, err := demos.Torus(cfg, demos.NewRand(7))
	require.NoError(t, err)
	b, err := demos.Torus(cfg, demos.NewRand(7))
	require.NoError(t, err)
	c, err := demos.Torus(cfg, demos.NewRand(8))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Id, b.Id, "every build is its own instance")
}

func TestCars(t *testing.T) {
	cfg := config.Default().Cars
	sc, err := demos.Cars(cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, sc.Count(scene.RoleAnimated))
	assert.Equal(t, 1, sc.Count(scene.RoleDecoration))

	for i, z := range []float32{0, -10, -20, -30, -40} {
		car := sc.Find(fmt.Sprintf("car-%d", i))
		require.NotNil(t, car)
		assert.Equal(t, z, car.Position.Z())
		assert.Equal(t, scene.Color(cfg.Colors[i]), car.Color)
		assert.Equal(t, scene.ShapeGroup, car.Shape.Kind)
	}
}

func TestCarsDrive(t *testing.T) {
	cfg := config.Default().Cars
	sc, err := demos.Cars(cfg)
	require.NoError(t, err)

	l := loop.New(sc)
	anim.Register(l)
	l.Once(1.0 / 60)

	assert.InDelta(t, 0.1, sc.Find("car-0").Position.Z(), 1e-6)
	assert.InDelta(t, -39.9, sc.Find("car-4").Position.Z(), 1e-4)
	assert.Equal(t, float32(0), sc.Find("road").Position.Z(), "decorations stay put")
}

func TestCarsEdgeCases(t *testing.T) {
	t.Run("no cars", func(t *testing.T) {
		cfg := config.Default().Cars
		cfg.Count = 0
		sc, err := demos.Cars(cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, sc.Count(scene.RoleAnimated))
		assert.Equal(t, 1, sc.Len())
	})

	t.Run("colors cycle", func(t *testing.T) {
		cfg := config.Default().Cars
		cfg.Count = 3
		cfg.Colors = []config.Color{0x111111, 0x222222}
		sc, err := demos.Cars(cfg)
		require.NoError(t, err)
		assert.Equal(t, scene.Color(0x111111), sc.Find("car-2").Color)
	})

	t.Run("no colors", func(t *testing.T) {
		cfg := config.Default().Cars
		cfg.Colors = nil
		sc, err := demos.Cars(cfg)
		require.NoError(t, err)
		assert.Equal(t, scene.White, sc.Find("car-0").Color)
	})

	t.Run("bad axis", func(t *testing.T) {
		cfg := config.Default().Cars
		cfg.Axis = "w"
		_, err := demos.Cars(cfg)
		assert.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	cfg := config.Default()

	for _, name := range config.Demos {
		t.Run(name, func(t *testing.T) {
			cfg.Demo = name
			sc, err := demos.Build(cfg, demos.NewRand(cfg.Seed))
			require.NoError(t, err)
			assert.Equal(t, name, sc.Name)
		})
	}

	cfg.Demo = "boat"
	_, err := demos.Build(cfg, demos.NewRand(cfg.Seed))
	assert.ErrorIs(t, err, config.ErrUnknownDemo)
}

func TestCarModelIsValid(t *testing.T) {
	require.NoError(t, demos.Car().Validate())
	assert.Len(t, demos.Car().Parts, 6)
}
