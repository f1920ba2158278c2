package scene

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Stats summarises the contents of a scene.
type Stats struct {
	ObjectCount     int
	AnimatedCount   int
	DecorationCount int
	LightCount      int
	Version         uint64
	ShapeBreakdown  []ShapeStats
}

// ShapeStats counts live objects of one shape kind.
type ShapeStats struct {
	Kind  ShapeKind
	Count int
}

// CollectStats walks the scene once and returns its summary.
func (s *Scene) CollectStats() *Stats {
	stats := &Stats{
		LightCount: len(s.Lights),
		Version:    s.version,
	}

	counts := make(map[ShapeKind]int)
	for obj := range s.Objects() {
		stats.ObjectCount++
		switch obj.Role {
		case RoleAnimated:
			stats.AnimatedCount++
		case RoleDecoration:
			stats.DecorationCount++
		}
		counts[obj.Shape.Kind]++
	}

	for kind, n := range counts {
		stats.ShapeBreakdown = append(stats.ShapeBreakdown, ShapeStats{Kind: kind, Count: n})
	}
	slices.SortFunc(stats.ShapeBreakdown, func(a, b ShapeStats) int {
		return int(a.Kind) - int(b.Kind)
	})
	return stats
}

// Fingerprint hashes every object's role, name, transform, shape and color
// in insertion order, together with the lights, backdrop and camera. Two
// scenes built from identical specs have equal fingerprints. The instance
// id and object ids are not included.
func (s *Scene) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [4]byte

	putFloat := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		h.Write(buf[:])
	}
	putInt := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	var putShape func(Shape)
	putShape = func(sh Shape) {
		putInt(uint32(sh.Kind))
		for _, f := range [...]float32{sh.Width, sh.Height, sh.Depth, sh.Radius, sh.Tube} {
			putFloat(f)
		}
		putInt(uint32(sh.Segments[0]))
		putInt(uint32(sh.Segments[1]))
		putInt(uint32(sh.Divisions))
		putInt(uint32(len(sh.Parts)))
		for _, p := range sh.Parts {
			putShape(p.Shape)
			putFloat(p.Offset.X())
			putFloat(p.Offset.Y())
			putFloat(p.Offset.Z())
			putInt(uint32(p.Color))
		}
	}

	for obj := range s.Objects() {
		putInt(uint32(obj.Role))
		putInt(uint32(len(obj.Name)))
		h.WriteString(obj.Name)
		putFloat(obj.Position.X())
		putFloat(obj.Position.Y())
		putFloat(obj.Position.Z())
		putFloat(obj.Rotation.X)
		putFloat(obj.Rotation.Y)
		putFloat(obj.Rotation.Z)
		putShape(obj.Shape)
		putInt(uint32(obj.Color))
	}

	for _, l := range s.Lights {
		putInt(uint32(l.Kind))
		putInt(uint32(l.Color))
		putFloat(l.Intensity)
		putFloat(l.Position.X())
		putFloat(l.Position.Y())
		putFloat(l.Position.Z())
	}

	putInt(uint32(s.Backdrop.Color))
	putInt(uint32(len(s.Backdrop.ImagePath)))
	h.WriteString(s.Backdrop.ImagePath)

	cam := s.Camera
	for _, f := range [...]float32{
		cam.Position.X(), cam.Position.Y(), cam.Position.Z(),
		cam.Target.X(), cam.Target.Y(), cam.Target.Z(),
		cam.Fov, cam.Aspect, cam.Near, cam.Far,
	} {
		putFloat(f)
	}

	return h.Sum64()
}
