// Package debugui provides Dear ImGui inspector windows for a running scene.
// Windows are registered as ImguiItems and drawn by ImguiSystem, which runs
// as an ordinary loop system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/render"
)

// ImguiItem holds a Dear ImGui render function that is called once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function until the frame's
// commands are flushed, so windows always see the scene after all systems
// have run. It must run inside the backend's BeginFrame/EndFrame pair.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

func (i *ImguiSystem) Add(items ...ImguiItem) {
	i.Items = append(i.Items, items...)
}

func (i *ImguiSystem) Execute(frame *loop.Frame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Attach registers an ImguiSystem carrying the standard inspector windows
// for l and r, and returns it so callers can add their own items.
func Attach(l *loop.Loop, r *render.Wireframe) *ImguiSystem {
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()
	browser := NewObjectBrowser(100)
	inspector := NewObjectInspector()

	system := &ImguiSystem{}
	system.Add(
		ImguiItem{Render: func() { perf.Render(l, r, timer.GetDeltaTime()) }},
		ImguiItem{Render: func() { browser.Render(l.Scene()) }},
		ImguiItem{Render: func() { inspector.Render(l.Scene(), browser.Selected()) }},
	)
	l.Register(system)
	return system
}
