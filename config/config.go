// Package config describes how sceneloop runs: which demo, how it is shown,
// and the tunables of each demo. Files are YAML and are applied over Default,
// so a file only needs the keys it changes. Colors written as "#rrggbb" must
// be quoted, otherwise YAML reads them as comments.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/scene"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownDemo is returned when Demo names no known scene.
	ErrUnknownDemo = errors.New("unknown demo")
	// ErrEmptyColor is returned for a color key with no value, usually an
	// unquoted #rrggbb that YAML read as a comment.
	ErrEmptyColor = errors.New(`empty color: quote "#rrggbb" values`)
)

const (
	DemoTorus = "torus"
	DemoCars  = "cars"
)

// Demos lists every demo name in display order.
var Demos = []string{DemoTorus, DemoCars}

type Config struct {
	Demo     string   `yaml:"demo"`
	Seed     uint64   `yaml:"seed"`
	Debug    bool     `yaml:"debug"`
	Log      Log      `yaml:"log"`
	Window   Window   `yaml:"window"`
	Headless Headless `yaml:"headless"`
	Render   Render   `yaml:"render"`
	Torus    Torus    `yaml:"torus"`
	Cars     Cars     `yaml:"cars"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Orbit enables mouse orbit and zoom of the camera.
	Orbit bool `yaml:"orbit"`
}

// Headless controls runs without a window. A zero Frames or Duration means
// no limit on that axis; with both zero the run lasts until interrupted.
type Headless struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Frames   uint64        `yaml:"frames"`
	Duration time.Duration `yaml:"duration"`
}

type Render struct {
	MaxSegments int     `yaml:"max_segments"`
	MinPixels   float32 `yaml:"min_pixels"`
	LineWidth   float32 `yaml:"line_width"`
}

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type Torus struct {
	Color       Color   `yaml:"color"`
	Spin        Vec3    `yaml:"spin"`
	Stars       int     `yaml:"stars"`
	StarSpread  float32 `yaml:"star_spread"`
	Grid        bool    `yaml:"grid"`
	LightHelper bool    `yaml:"light_helper"`
	Backdrop    string  `yaml:"backdrop"`
}

type Cars struct {
	Count   int     `yaml:"count"`
	Spacing float32 `yaml:"spacing"`
	Step    float32 `yaml:"step"`
	Forward float32 `yaml:"forward"`
	Rear    float32 `yaml:"rear"`
	Axis    string  `yaml:"axis"`
	Colors  []Color `yaml:"colors"`
}

// Color is a scene color that reads "#rrggbb", "0xrrggbb" or an integer.
// The "#" form must be quoted in YAML.
type Color scene.Color

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := scene.ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return scene.Color(c).String(), nil
}

// Default returns the configuration that reproduces both demos as
// originally designed.
func Default() *Config {
	return &Config{
		Demo: DemoTorus,
		Seed: 1,
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
		Window: Window{
			Title:  "sceneloop",
			Width:  1280,
			Height: 720,
			Orbit:  true,
		},
		Headless: Headless{
			Interval: time.Second / 60,
		},
		Render: Render{
			MaxSegments: 32,
			MinPixels:   1.5,
			LineWidth:   1,
		},
		Torus: Torus{
			Color:       0xFF6347,
			Spin:        Vec3{X: 0.01, Y: 0.005, Z: 0.01},
			Stars:       200,
			StarSpread:  100,
			Grid:        true,
			LightHelper: true,
			Backdrop:    "public/pexels-krisof-1252890.jpg",
		},
		Cars: Cars{
			Count:   5,
			Spacing: -10,
			Step:    0.1,
			Forward: 50,
			Rear:    -50,
			Axis:    "z",
			Colors:  []Color{0x3366FF, 0xFF3333, 0x33CC66, 0xFFCC00, 0x9933FF},
		},
	}
}

// Load reads a YAML file over Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes r over Default and validates the result. An empty
// document leaves the defaults untouched.
func LoadYAML(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := checkColors(&doc); err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkColors rejects empty color values. An unquoted #rrggbb starts a YAML
// comment, and yaml.v3 decodes the resulting null as a zero (black) color
// without calling Color.UnmarshalYAML.
func checkColors(n *yaml.Node) error {
	empty := func(v *yaml.Node) bool {
		return v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null"
	}

	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkColors(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			switch {
			case key.Value == "color" && empty(val):
				return fmt.Errorf("line %d: %w", key.Line, ErrEmptyColor)
			case key.Value == "colors" && val.Kind == yaml.SequenceNode:
				for _, item := range val.Content {
					if empty(item) {
						return fmt.Errorf("line %d: %w", item.Line, ErrEmptyColor)
					}
				}
			}
			if err := checkColors(val); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !c.HasDemo(c.Demo) {
		return fmt.Errorf("%w %q (want one of %v)", ErrUnknownDemo, c.Demo, Demos)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("log encoding %q: want console or json", c.Log.Encoding)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Headless.Interval <= 0 {
		return fmt.Errorf("headless interval %s must be positive", c.Headless.Interval)
	}
	if c.Torus.Stars < 0 || c.Cars.Count < 0 {
		return errors.New("object counts cannot be negative")
	}
	if c.Torus.StarSpread < 0 {
		return fmt.Errorf("star spread %v cannot be negative", c.Torus.StarSpread)
	}
	if c.Cars.Step != 0 && !c.carsLoopForward() {
		return fmt.Errorf("cars: step %v never reaches forward bound %v from rear %v", c.Cars.Step, c.Cars.Forward, c.Cars.Rear)
	}
	return nil
}

// carsLoopForward reports whether Step moves from Rear towards Forward.
func (c *Config) carsLoopForward() bool {
	if c.Cars.Step > 0 {
		return c.Cars.Rear < c.Cars.Forward
	}
	return c.Cars.Rear > c.Cars.Forward
}

func (c *Config) HasDemo(name string) bool {
	for _, d := range Demos {
		if d == name {
			return true
		}
	}
	return false
}
