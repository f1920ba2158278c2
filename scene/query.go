package scene

import "iter"

// Query selects the objects whose Motion has dynamic type T. The match list
// is rebuilt on every Execute because Motion can be changed in place through
// the pointers the scene hands out.
type Query[T any] struct {
	scene      *Scene
	matched    []*Object
	cacheValid bool
}

// NewQuery creates a query bound to s.
func NewQuery[T any](s *Scene) *Query[T] {
	q := &Query[T]{}
	q.Init(s)
	return q
}

// Init binds or rebinds the query to a scene. The frame loop calls it for
// every Query field of a registered system.
func (q *Query[T]) Init(s *Scene) {
	q.scene = s
	q.matched = nil
	q.cacheValid = false
}

// Execute refreshes the match list. The frame loop calls it before systems
// run each frame.
func (q *Query[T]) Execute() {
	q.matched = q.matched[:0]
	for obj := range q.scene.Objects() {
		if _, ok := obj.Motion.(T); ok {
			q.matched = append(q.matched, obj)
		}
	}
	q.cacheValid = true
}

// Iter yields each matching object with its motion rule.
// Panics if Execute has not been called.
func (q *Query[T]) Iter() iter.Seq2[*Object, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(*Object, T) bool) {
		for _, obj := range q.matched {
			motion, ok := obj.Motion.(T)
			if !ok {
				continue
			}
			if !yield(obj, motion) {
				return
			}
		}
	}
}

// Len returns the number of matches from the last Execute.
func (q *Query[T]) Len() int {
	return len(q.matched)
}
