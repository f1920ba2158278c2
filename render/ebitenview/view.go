// Package ebitenview shows a running loop in an ebiten window. ebiten's
// update tick is the refresh signal, its layout callback is the viewport
// resize signal, and the wireframe display list is stroked onto the screen.
package ebitenview

import (
	"context"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/render"
)

// Overlay is drawn on top of the scene. Its frame brackets the loop's frame
// so systems can issue immediate-mode UI calls.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type View struct {
	loop     *loop.Loop
	renderer *render.Wireframe
	overlay  Overlay
	logger   log.Log

	title     string
	width     int
	height    int
	tps       int
	lineWidth float32
	backdrop  *ebiten.Image

	mu      sync.Mutex
	pending [2]int
	applied [2]int
	started bool
}

type Option func(*View)

func WithOverlay(o Overlay) Option {
	return func(v *View) { v.overlay = o }
}

func WithTitle(title string) Option {
	return func(v *View) { v.title = title }
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(v *View) { v.width, v.height = width, height }
}

func WithLineWidth(w float32) Option {
	return func(v *View) { v.lineWidth = w }
}

func WithLogger(logger log.Log) Option {
	return func(v *View) { v.logger = logger }
}

func New(l *loop.Loop, r *render.Wireframe, opts ...Option) *View {
	v := &View{
		loop:      l,
		renderer:  r,
		logger:    log.Nop(),
		title:     l.Scene().Name,
		width:     render.DefaultWidth,
		height:    render.DefaultHeight,
		tps:       ebiten.DefaultTPS,
		lineWidth: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run opens the window and blocks until it is closed, the loop is stopped,
// or ctx is cancelled. The loop is started here and is idle on return.
func (v *View) Run(ctx context.Context) error {
	v.loadBackdrop()

	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(v.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := v.loop.Start(); err != nil {
		return err
	}
	defer v.loop.Stop()

	v.mu.Lock()
	v.started = true
	v.mu.Unlock()

	stop := context.AfterFunc(ctx, v.loop.Stop)
	defer stop()

	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (v *View) loadBackdrop() {
	path := v.loop.Scene().Backdrop.ImagePath
	if path == "" {
		return
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		v.logger.Warn("backdrop image unavailable, using color",
			log.String("path", path),
			log.Err(err),
		)
		return
	}
	v.backdrop = img
}

// Update advances the loop by one fixed tick. It ends the game once the loop
// has been stopped from elsewhere.
func (v *View) Update() error {
	v.applyResize()

	if v.overlay != nil {
		v.overlay.BeginFrame()
	}
	advanced := v.loop.Advance(1 / float64(v.tps))
	if v.overlay != nil {
		v.overlay.EndFrame()
	}

	v.mu.Lock()
	started := v.started
	v.mu.Unlock()
	if !advanced && started {
		return ebiten.Termination
	}
	return nil
}

// applyResize forwards the latest layout size to the camera and renderer on
// the frame goroutine.
func (v *View) applyResize() {
	v.mu.Lock()
	size := v.pending
	changed := size != v.applied
	v.applied = size
	v.mu.Unlock()

	if !changed {
		return
	}
	v.loop.Scene().Camera.Resize(size[0], size[1])
	v.renderer.Resize(size[0], size[1])
	v.logger.Debug("viewport resized", log.Int("width", size[0]), log.Int("height", size[1]))
}

func (v *View) Draw(screen *ebiten.Image) {
	v.renderer.View(func(list *render.DisplayList) {
		v.drawBackdrop(screen, list)

		for _, s := range list.Segments {
			vector.StrokeLine(screen, s.From.X(), s.From.Y(), s.To.X(), s.To.Y(), v.lineWidth, s.Color.RGBA(), true)
		}
		for _, d := range list.Dots {
			vector.DrawFilledCircle(screen, d.At.X(), d.At.Y(), d.Radius, d.Color.RGBA(), true)
		}
	})

	if v.overlay != nil {
		v.overlay.Draw(screen)
	}
}

func (v *View) drawBackdrop(screen *ebiten.Image, list *render.DisplayList) {
	if v.backdrop == nil {
		screen.Fill(list.Backdrop.Color.RGBA())
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := v.backdrop.Bounds().Dx(), v.backdrop.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	screen.DrawImage(v.backdrop, opts)
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.mu.Lock()
	v.pending = [2]int{outsideWidth, outsideHeight}
	v.mu.Unlock()

	if v.overlay != nil {
		v.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
