package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjectSpec describes an object to be created by the Builder.
type ObjectSpec struct {
	Name     string
	Shape    Shape
	Color    Color
	Position mgl32.Vec3
	Rotation Euler
	Motion   any
}

// Decorations are the parts of a scene that render but never animate.
type Decorations struct {
	Statics  []ObjectSpec
	Lights   []Light
	Backdrop *Backdrop
	Camera   *Camera
}

// Builder assembles a Scene from object specs. The zero Builder is not
// usable; call NewBuilder.
type Builder struct {
	scene *Scene
}

func NewBuilder(name string) *Builder {
	return &Builder{scene: New(name)}
}

// Add validates spec and attaches it as an animated object.
func (b *Builder) Add(spec ObjectSpec) (ObjectId, error) {
	return b.add(spec, RoleAnimated)
}

// AddAll adds every spec in order, stopping at the first invalid one.
func (b *Builder) AddAll(specs []ObjectSpec) error {
	for i, spec := range specs {
		if _, err := b.Add(spec); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// Decorate attaches static objects, lights, backdrop and camera. Static
// objects never carry a motion, whatever their spec says.
func (b *Builder) Decorate(d Decorations) error {
	for i, spec := range d.Statics {
		spec.Motion = nil
		if _, err := b.add(spec, RoleDecoration); err != nil {
			return fmt.Errorf("decoration %d: %w", i, err)
		}
	}
	b.scene.AddLight(d.Lights...)
	if d.Backdrop != nil {
		b.scene.Backdrop = *d.Backdrop
	}
	if d.Camera != nil {
		b.scene.Camera = *d.Camera
	}
	return nil
}

// Scene returns the scene built so far.
func (b *Builder) Scene() *Scene {
	return b.scene
}

func (b *Builder) add(spec ObjectSpec, role Role) (ObjectId, error) {
	if err := spec.Shape.Validate(); err != nil {
		if spec.Name != "" {
			return 0, fmt.Errorf("%s: %w", spec.Name, err)
		}
		return 0, err
	}

	return b.scene.Add(Object{
		Name: spec.Name,
		Role: role,
		Transform: Transform{
			Position: spec.Position,
			Rotation: spec.Rotation,
		},
		Shape:  spec.Shape,
		Color:  spec.Color,
		Motion: spec.Motion,
	}), nil
}

// Build creates a scene from animated specs and decorations. It panics on an
// invalid spec; use Builder when specs come from user input.
func Build(name string, specs []ObjectSpec, decorations ...Decorations) *Scene {
	b := NewBuilder(name)
	if err := b.AddAll(specs); err != nil {
		panic("scene.Build: " + err.Error())
	}
	for _, d := range decorations {
		if err := b.Decorate(d); err != nil {
			panic("scene.Build: " + err.Error())
		}
	}
	return b.Scene()
}
