package demos

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/anim"
	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/scene"
)

var torusLightPosition = mgl32.Vec3{5, 5, 5}

// Torus builds a torus spinning on three axes in front of a starfield.
// Stars are the only random part of the scene and are drawn from rng.
func Torus(cfg config.Torus, rng *rand.Rand) (*scene.Scene, error) {
	torus := scene.ObjectSpec{
		Name:   "torus",
		Shape:  scene.Torus(10, 3, 16, 100),
		Color:  scene.Color(cfg.Color),
		Motion: anim.Spin{Delta: scene.Euler(cfg.Spin)},
	}

	stars := scene.Scatter{
		Count:  cfg.Stars,
		Spread: cfg.StarSpread,
		Template: scene.ObjectSpec{
			Name:  "star",
			Shape: scene.Sphere(0.25, 24, 24),
			Color: scene.White,
		},
	}.Specs(rng)

	statics := stars
	if cfg.Grid {
		statics = append(statics, scene.ObjectSpec{
			Name:  "grid",
			Shape: scene.Grid(200, 50),
			Color: 0x888888,
		})
	}
	if cfg.LightHelper {
		statics = append(statics, scene.ObjectSpec{
			Name:     "light-helper",
			Shape:    scene.Sphere(1, 4, 2),
			Color:    scene.White,
			Position: torusLightPosition,
		})
	}

	camera := scene.DefaultCamera()
	return build("torus", []scene.ObjectSpec{torus}, scene.Decorations{
		Statics: statics,
		Lights: []scene.Light{
			scene.PointLight(scene.White, 1, torusLightPosition),
			scene.AmbientLight(scene.White, 1),
		},
		Backdrop: &scene.Backdrop{Color: scene.Black, ImagePath: cfg.Backdrop},
		Camera:   &camera,
	})
}
