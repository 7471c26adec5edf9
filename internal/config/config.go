// Package config loads the editor settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"openstudio/internal/camera"
	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "openstudio.yaml"

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Selection SelectionConfig `yaml:"selection"`
	Spin      SpinConfig      `yaml:"spin"`
	City      CityConfig      `yaml:"city"`
}

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

// Vec3 is written as a three element list, e.g. [8, 8, 12].
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type CameraConfig struct {
	Fovy        float32 `yaml:"fovy"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Position    Vec3    `yaml:"position"`
	Target      Vec3    `yaml:"target"`
	FocusOffset Vec3    `yaml:"focus_offset"`
	OrbitSpeed  float32 `yaml:"orbit_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
	PanSpeed    float32 `yaml:"pan_speed"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

// Options converts the camera section for camera.New.
func (c CameraConfig) Options() camera.Options {
	return camera.Options{
		Position:    c.Position.Vector3(),
		Target:      c.Target.Vector3(),
		FocusOffset: c.FocusOffset.Vector3(),
		Fovy:        c.Fovy,
		Near:        c.Near,
		Far:         c.Far,
		OrbitSpeed:  c.OrbitSpeed,
		ZoomSpeed:   c.ZoomSpeed,
		PanSpeed:    c.PanSpeed,
		MinDistance: c.MinDistance,
		MaxDistance: c.MaxDistance,
	}
}

type SelectionConfig struct {
	HighlightColor string `yaml:"highlight_color"`
}

type SpinConfig struct {
	Rate       float32 `yaml:"rate"`        // radians per frame, or per 1/60 s when time scaled
	TimeScaled bool    `yaml:"time_scaled"` // scale the rate by frame time instead of frame count
}

type CityConfig struct {
	Buildings int    `yaml:"buildings"`
	Seed      uint64 `yaml:"seed"` // 0 picks a random seed
}

// Default returns the settings used when no file is present.
func Default() Config {
	cam := camera.DefaultOptions()
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Open Studio",
			FPS:    60,
		},
		Camera: CameraConfig{
			Fovy:        cam.Fovy,
			Near:        cam.Near,
			Far:         cam.Far,
			Position:    vec3(cam.Position),
			Target:      vec3(cam.Target),
			FocusOffset: vec3(cam.FocusOffset),
			OrbitSpeed:  cam.OrbitSpeed,
			ZoomSpeed:   cam.ZoomSpeed,
			PanSpeed:    cam.PanSpeed,
			MinDistance: cam.MinDistance,
			MaxDistance: cam.MaxDistance,
		},
		Selection: SelectionConfig{HighlightColor: "#ffd166"},
		Spin:      SpinConfig{Rate: 0.01},
		City:      CityConfig{Buildings: 120},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would leave the editor unusable.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		errs = append(errs, fmt.Errorf("camera fovy %v out of range (0, 180)", c.Camera.Fovy))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near %v and far %v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		errs = append(errs, fmt.Errorf("camera distance range [%v, %v] is invalid", c.Camera.MinDistance, c.Camera.MaxDistance))
	}
	if _, err := engine.ParseHexColor(c.Selection.HighlightColor); err != nil {
		errs = append(errs, fmt.Errorf("selection highlight: %w", err))
	}
	if c.City.Buildings < 0 {
		errs = append(errs, fmt.Errorf("city buildings %d must not be negative", c.City.Buildings))
	}
	return errors.Join(errs...)
}

// HighlightColor returns the parsed highlight color, or the default one if it does not parse.
func (c Config) HighlightColor() rl.Color {
	col, err := engine.ParseHexColor(c.Selection.HighlightColor)
	if err != nil {
		return engine.MustParseHexColor(Default().Selection.HighlightColor)
	}
	return col
}

func vec3(v rl.Vector3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
