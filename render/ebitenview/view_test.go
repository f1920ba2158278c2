package ebitenview

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/render"
	"github.com/plus3/sceneloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOverlay struct {
	calls []string
}

func (o *recordingOverlay) BeginFrame()              { o.calls = append(o.calls, "begin") }
func (o *recordingOverlay) EndFrame()                { o.calls = append(o.calls, "end") }
func (o *recordingOverlay) Draw(*ebiten.Image)       { o.calls = append(o.calls, "draw") }
func (o *recordingOverlay) Layout(width, height int) { o.calls = append(o.calls, "layout") }

func newTestView(opts ...Option) (*View, *loop.Loop, *render.Wireframe) {
	sc := scene.Build("view", []scene.ObjectSpec{{Name: "box", Shape: scene.Box(1, 1, 1)}})
	r := render.New()
	l := loop.New(sc, loop.WithRenderer(r))
	return New(l, r, opts...), l, r
}

func TestViewUpdate(t *testing.T) {
	t.Run("advances only while the loop runs", func(t *testing.T) {
		v, l, _ := newTestView()

		require.NoError(t, v.Update())
		assert.Equal(t, uint64(0), l.Frames())

		require.NoError(t, l.Start())
		require.NoError(t, v.Update())
		require.NoError(t, v.Update())
		assert.Equal(t, uint64(2), l.Frames())
		l.Stop()
	})

	t.Run("terminates once a started loop is stopped", func(t *testing.T) {
		v, l, _ := newTestView()
		require.NoError(t, l.Start())
		v.started = true

		require.NoError(t, v.Update())
		l.Stop()
		assert.ErrorIs(t, v.Update(), ebiten.Termination)
	})

	t.Run("overlay frame brackets the loop frame", func(t *testing.T) {
		overlay := &recordingOverlay{}
		v, l, _ := newTestView(WithOverlay(overlay))
		require.NoError(t, l.Start())
		defer l.Stop()

		v.Layout(640, 480)
		require.NoError(t, v.Update())
		assert.Equal(t, []string{"layout", "begin", "end"}, overlay.calls)
	})
}

func TestViewLayoutResizesOnUpdate(t *testing.T) {
	v, l, r := newTestView()

	w, h := v.Layout(800, 400)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)

	before := l.Scene().Camera.Aspect
	assert.Equal(t, before, l.Scene().Camera.Aspect, "layout alone does not touch the scene")

	require.NoError(t, v.Update())
	assert.Equal(t, float32(2), l.Scene().Camera.Aspect)
	rw, rh := r.Viewport()
	assert.Equal(t, 800, rw)
	assert.Equal(t, 400, rh)
}

func TestViewDefaults(t *testing.T) {
	v, _, _ := newTestView(WithTitle("cars"), WithSize(640, 360), WithLineWidth(2))
	assert.Equal(t, "cars", v.title)
	assert.Equal(t, 640, v.width)
	assert.Equal(t, 360, v.height)
	assert.Equal(t, float32(2), v.lineWidth)
	assert.Equal(t, ebiten.DefaultTPS, v.tps)

	plain, _, _ := newTestView()
	assert.Equal(t, "view", plain.title)
}
