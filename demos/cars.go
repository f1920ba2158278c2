package demos

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/anim"
	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/scene"
)

const (
	tireColor  scene.Color = 0x222222
	glassColor scene.Color = 0x99CCFF
	roadColor  scene.Color = 0x555555
)

// Car returns the car model: a body, a cabin and four wheels. The body takes
// the color of the object it is attached to.
func Car() scene.Shape {
	wheel := func(x, z float32) scene.Part {
		return scene.Part{Shape: scene.Box(0.4, 0.8, 0.8), Offset: mgl32.Vec3{x, 0.4, z}, Color: tireColor}
	}
	return scene.Group(
		scene.Part{Shape: scene.Box(2, 0.8, 4), Offset: mgl32.Vec3{0, 0.8, 0}},
		scene.Part{Shape: scene.Box(1.6, 0.7, 2), Offset: mgl32.Vec3{0, 1.55, -0.2}, Color: glassColor},
		wheel(-1.1, 1.3),
		wheel(1.1, 1.3),
		wheel(-1.1, -1.3),
		wheel(1.1, -1.3),
	)
}

// Cars builds a row of cars driving along a road. Each car advances by Step
// every frame and jumps back to Rear once it passes Forward.
func Cars(cfg config.Cars) (*scene.Scene, error) {
	axis, err := anim.ParseAxis(cfg.Axis)
	if err != nil {
		return nil, err
	}

	var spacing mgl32.Vec3
	spacing[axis] = cfg.Spacing

	cars := scene.Lane{
		Count:   cfg.Count,
		Spacing: spacing,
		Template: scene.ObjectSpec{
			Name:  "car",
			Shape: Car(),
			Motion: anim.Travel{
				Axis:    axis,
				Step:    cfg.Step,
				Forward: cfg.Forward,
				Rear:    cfg.Rear,
			},
		},
	}.Specs()
	for i := range cars {
		cars[i].Color = carColor(cfg.Colors, i)
	}

	length := math32.Abs(cfg.Forward-cfg.Rear) + 20
	road := scene.Plane(12, length)
	if axis == anim.AxisX {
		road = scene.Plane(length, 12)
	}

	var roadCentre mgl32.Vec3
	roadCentre[axis] = (cfg.Forward + cfg.Rear) / 2

	camera := scene.DefaultCamera()
	camera.Position = mgl32.Vec3{0, 15, 60}

	return build("cars", cars, scene.Decorations{
		Statics: []scene.ObjectSpec{
			{Name: "road", Shape: road, Color: roadColor, Position: roadCentre},
		},
		Lights: []scene.Light{
			scene.AmbientLight(scene.White, 0.6),
			scene.DirectionalLight(scene.White, 0.8, mgl32.Vec3{10, 20, 10}),
		},
		Backdrop: &scene.Backdrop{Color: 0x87CEEB},
		Camera:   &camera,
	})
}

func carColor(colors []config.Color, i int) scene.Color {
	if len(colors) == 0 {
		return scene.White
	}
	return scene.Color(colors[i%len(colors)])
}
