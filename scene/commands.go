package scene

// Commands buffers structural changes requested while a frame is running.
// They are applied by Flush once every system has finished, so an object is
// never added or removed in the middle of an iteration.
type Commands struct {
	adds    []Object
	removes []ObjectId
	defers  []func()
}

func NewCommands() *Commands {
	return &Commands{}
}

// Add queues obj to be attached to the scene.
func (c *Commands) Add(obj Object) {
	c.adds = append(c.adds, obj)
}

// Remove queues the object with the given id for removal.
func (c *Commands) Remove(id ObjectId) {
	c.removes = append(c.removes, id)
}

// Defer queues fn to run after all structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether any command is queued.
func (c *Commands) Pending() bool {
	return len(c.adds)+len(c.removes)+len(c.defers) > 0
}

// Flush applies removals, then additions, then deferred functions, and
// resets the buffer.
func (c *Commands) Flush(s *Scene) {
	for _, id := range c.removes {
		s.Remove(id)
	}

	for _, obj := range c.adds {
		s.Add(obj)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
