package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Lane places Count copies of Template at Origin + i*Spacing.
type Lane struct {
	Count    int
	Origin   mgl32.Vec3
	Spacing  mgl32.Vec3
	Template ObjectSpec
}

// Specs expands the lane into one spec per instance. A non-positive Count
// yields no specs.
func (l Lane) Specs() []ObjectSpec {
	if l.Count <= 0 {
		return nil
	}

	specs := make([]ObjectSpec, l.Count)
	for i := range l.Count {
		spec := l.Template
		spec.Name = instanceName(l.Template.Name, i)
		spec.Position = l.Origin.Add(l.Spacing.Mul(float32(i)))
		specs[i] = spec
	}
	return specs
}

// Scatter places Count copies of Template uniformly at random inside a cube
// of side Spread centred on the origin.
type Scatter struct {
	Count    int
	Spread   float32
	Template ObjectSpec
}

// Specs expands the scatter using rng as the only source of randomness, so
// equal seeds give equal layouts.
func (s Scatter) Specs(rng *rand.Rand) []ObjectSpec {
	if s.Count <= 0 {
		return nil
	}

	specs := make([]ObjectSpec, s.Count)
	for i := range s.Count {
		spec := s.Template
		spec.Name = instanceName(s.Template.Name, i)
		spec.Position = mgl32.Vec3{
			SpreadFloat(rng, s.Spread),
			SpreadFloat(rng, s.Spread),
			SpreadFloat(rng, s.Spread),
		}
		specs[i] = spec
	}
	return specs
}

// SpreadFloat returns a uniform value in [-spread/2, spread/2].
func SpreadFloat(rng *rand.Rand, spread float32) float32 {
	return spread * (0.5 - rng.Float32())
}

func instanceName(base string, i int) string {
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d", base, i)
}
