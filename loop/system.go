package loop

import "github.com/plus3/sceneloop/scene"

// System mutates scene objects once per frame. Systems may declare
// scene.Query fields; the Loop binds them on Register and refreshes them
// before every frame. Any other fields persist between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what a System sees during one invocation of the loop.
type Frame struct {
	// Index counts frames from zero since the Loop was created.
	Index     uint64
	DeltaTime float64
	Scene     *scene.Scene
	Commands  *scene.Commands
}

// Renderer draws a scene against a camera. Render is called once per frame
// after all systems have run and commands have been flushed.
type Renderer interface {
	Render(sc *scene.Scene, cam scene.Camera)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(sc *scene.Scene, cam scene.Camera)

func (f RendererFunc) Render(sc *scene.Scene, cam scene.Camera) {
	f(sc, cam)
}
