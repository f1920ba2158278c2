// Package demos defines the scenes sceneloop can show. Each demo is built
// once through the scene Builder; after that only the loop touches it.
package demos

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/scene"
)

// NewRand returns the random source demos draw from. Equal seeds give equal
// scenes.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Build creates the scene cfg.Demo names.
func Build(cfg *config.Config, rng *rand.Rand) (*scene.Scene, error) {
	switch cfg.Demo {
	case config.DemoTorus:
		return Torus(cfg.Torus, rng)
	case config.DemoCars:
		return Cars(cfg.Cars)
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownDemo, cfg.Demo)
	}
}

func build(name string, specs []scene.ObjectSpec, decorations scene.Decorations) (*scene.Scene, error) {
	b := scene.NewBuilder(name)
	if err := b.AddAll(specs); err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	if err := b.Decorate(decorations); err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return b.Scene(), nil
}

func vec(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
