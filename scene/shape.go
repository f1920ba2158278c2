package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidShape is returned when a shape descriptor cannot be built.
var ErrInvalidShape = errors.New("invalid shape")

// ShapeKind is the primitive a Shape describes.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeTorus
	ShapePlane
	ShapeGrid
	ShapeGroup
)

var shapeKindNames = [...]string{
	ShapeBox:    "box",
	ShapeSphere: "sphere",
	ShapeTorus:  "torus",
	ShapePlane:  "plane",
	ShapeGrid:   "grid",
	ShapeGroup:  "group",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// ParseShapeKind resolves a shape kind by name.
func ParseShapeKind(name string) (ShapeKind, error) {
	for k, n := range shapeKindNames {
		if n == name {
			return ShapeKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, name)
}

// Shape describes the geometry of an object. Which dimensions are meaningful
// depends on Kind:
//
//	box     Width, Height, Depth
//	sphere  Radius, Segments (width, height)
//	torus   Radius, Tube, Segments (radial, tubular)
//	plane   Width, Depth
//	grid    Width (size), Divisions
//	group   Parts
type Shape struct {
	Kind      ShapeKind
	Width     float32
	Height    float32
	Depth     float32
	Radius    float32
	Tube      float32
	Segments  [2]int
	Divisions int
	Parts     []Part
}

// Part is one member of a group shape, placed relative to the group origin.
type Part struct {
	Shape  Shape
	Offset mgl32.Vec3
	Color  Color
}

func Box(width, height, depth float32) Shape {
	return Shape{Kind: ShapeBox, Width: width, Height: height, Depth: depth}
}

func Sphere(radius float32, widthSegments, heightSegments int) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius, Segments: [2]int{widthSegments, heightSegments}}
}

func Torus(radius, tube float32, radialSegments, tubularSegments int) Shape {
	return Shape{Kind: ShapeTorus, Radius: radius, Tube: tube, Segments: [2]int{radialSegments, tubularSegments}}
}

func Plane(width, depth float32) Shape {
	return Shape{Kind: ShapePlane, Width: width, Depth: depth}
}

func Grid(size float32, divisions int) Shape {
	return Shape{Kind: ShapeGrid, Width: size, Divisions: divisions}
}

func Group(parts ...Part) Shape {
	return Shape{Kind: ShapeGroup, Parts: parts}
}

// Validate reports whether s can be tessellated. Groups may only contain
// primitives.
func (s Shape) Validate() error {
	return s.validate(false)
}

func (s Shape) validate(nested bool) error {
	negative := s.Width < 0 || s.Height < 0 || s.Depth < 0 || s.Radius < 0 || s.Tube < 0
	if negative {
		return fmt.Errorf("%w: %s has a negative dimension", ErrInvalidShape, s.Kind)
	}

	switch s.Kind {
	case ShapeBox, ShapePlane:
		return nil
	case ShapeSphere, ShapeTorus:
		if s.Segments[0] < 3 || s.Segments[1] < 2 {
			return fmt.Errorf("%w: %s needs at least 3x2 segments, got %v", ErrInvalidShape, s.Kind, s.Segments)
		}
		return nil
	case ShapeGrid:
		if s.Divisions < 1 {
			return fmt.Errorf("%w: grid needs at least one division", ErrInvalidShape)
		}
		return nil
	case ShapeGroup:
		if nested {
			return fmt.Errorf("%w: groups cannot be nested", ErrInvalidShape)
		}
		for i, part := range s.Parts {
			if err := part.Shape.validate(true); err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidShape, s.Kind)
	}
}
