package scene

import "github.com/go-gl/mathgl/mgl32"

type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightPoint
	LightDirectional
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// Light illuminates a Scene. Position is ignored for ambient lights; for
// directional lights it is the direction the light shines from.
type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float32
	Position  mgl32.Vec3
}

func AmbientLight(c Color, intensity float32) Light {
	return Light{Kind: LightAmbient, Color: c, Intensity: intensity}
}

func PointLight(c Color, intensity float32, pos mgl32.Vec3) Light {
	return Light{Kind: LightPoint, Color: c, Intensity: intensity, Position: pos}
}

func DirectionalLight(c Color, intensity float32, from mgl32.Vec3) Light {
	return Light{Kind: LightDirectional, Color: c, Intensity: intensity, Position: from}
}

// Backdrop is what the surface is cleared to before objects are drawn.
// ImagePath is optional; views fall back to Color when it cannot be loaded.
type Backdrop struct {
	Color     Color
	ImagePath string
}
