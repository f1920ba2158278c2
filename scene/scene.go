// Package scene holds the object model of an animated 3D scene: objects with
// shapes, colors and transforms, the camera and lights they are rendered
// with, and the builder that lays them out.
package scene

import (
	"iter"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
)

// Scene is an ordered collection of objects plus the camera, lights and
// backdrop used to render them. A Scene is not safe for concurrent use; the
// frame loop is its only mutator.
type Scene struct {
	Id       uuid.UUID
	Name     string
	Camera   Camera
	Lights   []Light
	Backdrop Backdrop

	objects objectStore
	index   *intmap.Map[ObjectId, int]
	nextId  ObjectId

	// version changes whenever objects are added, removed or change motion.
	version uint64
}

// New creates an empty scene with a fresh instance id and the default camera.
func New(name string) *Scene {
	return &Scene{
		Id:       uuid.New(),
		Name:     name,
		Camera:   DefaultCamera(),
		Backdrop: Backdrop{Color: Black},
		index:    intmap.New[ObjectId, int](256),
		nextId:   1,
	}
}

// Add attaches obj to the scene and returns its id. Any Id already set on
// obj is overwritten.
func (s *Scene) Add(obj Object) ObjectId {
	obj.Id = s.nextId
	s.nextId++

	slot := s.objects.append(obj)
	s.index.Put(obj.Id, slot)
	s.version++
	return obj.Id
}

// Get returns the live object with the given id, or nil.
func (s *Scene) Get(id ObjectId) *Object {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return s.objects.get(slot)
}

// Remove detaches the object with the given id. It reports whether the
// object existed.
func (s *Scene) Remove(id ObjectId) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}
	s.index.Del(id)
	s.objects.remove(slot)
	s.version++
	return true
}

// SetMotion replaces the motion rule of an object and updates its role to
// match: a nil rule makes it a decoration. It reports whether the object
// exists.
func (s *Scene) SetMotion(id ObjectId, motion any) bool {
	obj := s.Get(id)
	if obj == nil {
		return false
	}
	obj.Motion = motion
	if motion == nil {
		obj.Role = RoleDecoration
	} else {
		obj.Role = RoleAnimated
	}
	s.version++
	return true
}

// Compact closes gaps left by removals. Object ids are unaffected.
func (s *Scene) Compact() {
	moved := s.objects.compact()
	s.index.Clear()
	for _, slot := range moved {
		obj := s.objects.get(slot)
		s.index.Put(obj.Id, slot)
	}
	s.version++
}

// AddLight appends lights to the scene.
func (s *Scene) AddLight(lights ...Light) {
	s.Lights = append(s.Lights, lights...)
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return s.objects.live
}

// Count returns the number of live objects with the given role.
func (s *Scene) Count(role Role) int {
	n := 0
	for obj := range s.Objects() {
		if obj.Role == role {
			n++
		}
	}
	return n
}

// Version returns the scene version, bumped on every add, remove, compact
// or SetMotion.
func (s *Scene) Version() uint64 {
	return s.version
}

// Objects iterates live objects in insertion order. The yielded pointers
// may be mutated in place.
func (s *Scene) Objects() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for slot := range s.objects.slots() {
			if !yield(s.objects.get(slot)) {
				return
			}
		}
	}
}

// Find returns the first live object with the given name, or nil.
func (s *Scene) Find(name string) *Object {
	for obj := range s.Objects() {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}
