package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/sceneloop/config"
	"github.com/plus3/sceneloop/debugui"
	debugui_ebiten "github.com/plus3/sceneloop/debugui/ebiten"
	"github.com/plus3/sceneloop/internal/injector"
	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/render/ebitenview"
)

type flags struct {
	configPath string
	demo       string
	headless   bool
	duration   time.Duration
	frames     uint64
	seed       uint64
	debug      bool
	logLevel   string
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, map[string]bool, error) {
	f := &flags{}
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML configuration file.")
	fs.StringVar(&f.demo, "demo", config.DemoTorus, "Scene to show: torus or cars.")
	fs.BoolVar(&f.headless, "headless", false, "Run without a window and print a report.")
	fs.DurationVar(&f.duration, "duration", 0, "Stop a headless run after this long (0 = no limit).")
	fs.Uint64Var(&f.frames, "frames", 0, "Stop a headless run after this many frames (0 = no limit).")
	fs.Uint64Var(&f.seed, "seed", 1, "Seed for the scene's random layout.")
	fs.BoolVar(&f.debug, "debug", false, "Show the ImGui inspector windows.")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// apply overrides cfg with every flag given on the command line. Flags left
// at their defaults never override the file.
func (f *flags) apply(cfg *config.Config, set map[string]bool) error {
	if set["demo"] {
		cfg.Demo = f.demo
	}
	if set["headless"] {
		cfg.Headless.Enabled = f.headless
	}
	if set["duration"] {
		cfg.Headless.Duration = f.duration
	}
	if set["frames"] {
		cfg.Headless.Frames = f.frames
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["debug"] {
		cfg.Debug = f.debug
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	return cfg.Validate()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sceneloop: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, set, err := parseFlags(flag.NewFlagSet("sceneloop", flag.ExitOnError), args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := f.apply(cfg, set); err != nil {
		return err
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Headless.Enabled {
		report, err := runHeadless(ctx, app)
		if err != nil {
			app.Logger.Error("headless run failed", log.Err(err))
			return err
		}
		return report.Generate(os.Stdout)
	}

	if err := runWindow(ctx, app); err != nil {
		app.Logger.Error("window run failed", log.Err(err))
		return err
	}
	return nil
}

func runWindow(ctx context.Context, app *injector.App) error {
	cfg := app.Config
	opts := []ebitenview.Option{
		ebitenview.WithTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, cfg.Demo)),
		ebitenview.WithSize(cfg.Window.Width, cfg.Window.Height),
		ebitenview.WithLineWidth(cfg.Render.LineWidth),
		ebitenview.WithLogger(app.Logger.With(log.String("component", "view"))),
	}

	var controls *ebitenview.OrbitControls
	if cfg.Window.Orbit {
		controls = ebitenview.NewOrbitControls()
		app.Loop.Register(controls)
	}

	if cfg.Debug {
		backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		ui := debugui.Attach(app.Loop, app.Renderer)
		if controls != nil {
			controls.Captured = func() bool { return ui.InputState.WantCaptureMouse }
		}
		opts = append(opts, ebitenview.WithOverlay(backend))
	}

	app.Logger.Info("opening window",
		log.Int("width", cfg.Window.Width),
		log.Int("height", cfg.Window.Height),
		log.Any("debug", cfg.Debug),
	)
	return ebitenview.New(app.Loop, app.Renderer, opts...).Run(ctx)
}
