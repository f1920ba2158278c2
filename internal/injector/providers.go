// Package injector assembles an App from configuration. The provider graph
// is declared for google/wire; wire_gen.go holds the generated injector.
package injector

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/wire"
	"github.com/plus3/sceneloop/anim"
	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/demos"
	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/render"
	"github.com/plus3/sceneloop/scene"
)

// App owns everything a run needs. There is no package-level state.
type App struct {
	Config   *config.Config
	Logger   log.Log
	Scene    *scene.Scene
	Renderer *render.Wireframe
	Loop     *loop.Loop
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRand,
	ProvideScene,
	ProvideRenderer,
	ProvideLoop,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) (log.Log, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(level, cfg.Log.Encoding)
}

func ProvideRand(cfg *config.Config) *rand.Rand {
	return demos.NewRand(cfg.Seed)
}

func ProvideScene(cfg *config.Config, rng *rand.Rand, logger log.Log) (*scene.Scene, error) {
	sc, err := demos.Build(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	stats := sc.CollectStats()
	logger.Info("scene built",
		log.String("demo", cfg.Demo),
		log.Stringer("scene_id", sc.Id),
		log.Int("animated", stats.AnimatedCount),
		log.Int("decorations", stats.DecorationCount),
		log.Int("lights", stats.LightCount),
		log.Uint64("seed", cfg.Seed),
	)
	return sc, nil
}

func ProvideRenderer(cfg *config.Config, logger log.Log) *render.Wireframe {
	return render.New(
		render.WithViewport(cfg.Window.Width, cfg.Window.Height),
		render.WithMaxSegments(cfg.Render.MaxSegments),
		render.WithMinPixels(cfg.Render.MinPixels),
		render.WithLogger(logger.With(log.String("component", "render"))),
	)
}

// ProvideLoop creates the loop with every animation system registered.
func ProvideLoop(sc *scene.Scene, r *render.Wireframe, logger log.Log) *loop.Loop {
	sc.Camera.Resize(r.Viewport())
	l := loop.New(sc,
		loop.WithRenderer(r),
		loop.WithLogger(logger.With(log.String("component", "loop"))),
	)
	anim.Register(l)
	return l
}
