// Package gallery assembles picture frame scenes: a table, a camera and
// a row of interactive frames, described by a YAML file.
package gallery

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a whole gallery scene.
type Config struct {
	Title    string          `yaml:"title"`
	Window   WindowConfig    `yaml:"window"`
	Camera   CameraConfig    `yaml:"camera"`
	Table    TableConfig     `yaml:"table"`
	Pictures []PictureConfig `yaml:"pictures"`
}

// WindowConfig sets the host window size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig places the viewpoint. The field of view is vertical, in
// degrees.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	LookAt   [3]float64 `yaml:"look_at"`
	FOV      float64    `yaml:"fov"`
}

// TableConfig describes the box the frames rest on.
type TableConfig struct {
	Position [3]float64 `yaml:"position"`
	Size     [3]float64 `yaml:"size"`
	Color    string     `yaml:"color"`
}

// PictureConfig describes one frame widget. Model and Image are file
// paths; an empty model uses the built-in frame geometry, an empty image
// a generated placeholder. Rotation is an XYZ Euler triple in degrees.
type PictureConfig struct {
	ID       string      `yaml:"id"`
	Image    string      `yaml:"image"`
	Model    string      `yaml:"model"`
	Scale    *ScaleSpec  `yaml:"scale"`
	Offset   *[3]float64 `yaml:"offset"`
	Inset    float64     `yaml:"inset"`
	Position [3]float64  `yaml:"position"`
	Rotation [3]float64  `yaml:"rotation"`
}

// ScaleSpec accepts either a single uniform factor or an [x, y] pair.
type ScaleSpec struct {
	X float64
	Y float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (spec *ScaleSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var uniform float64
		if err := value.Decode(&uniform); err != nil {
			return err
		}
		spec.X, spec.Y = uniform, uniform
		return nil
	case yaml.SequenceNode:
		var pair [2]float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		spec.X, spec.Y = pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("scale must be a number or an [x, y] pair")
	}
}

// Load reads a YAML gallery description, fills the defaults in and
// validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gallery: read %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("gallery: parse %s: %w", path, err)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("gallery: %s: %w", path, err)
	}

	return config, nil
}

func (config *Config) applyDefaults() {
	if config.Title == "" {
		config.Title = "tableau"
	}
	if config.Window.Width <= 0 {
		config.Window.Width = 960
	}
	if config.Window.Height <= 0 {
		config.Window.Height = 540
	}
	if config.Camera.FOV <= 0 {
		config.Camera.FOV = 60
	}
	if config.Camera.Position == ([3]float64{}) && config.Camera.LookAt == ([3]float64{}) {
		config.Camera.Position = [3]float64{0, 1.25, 1.7}
		config.Camera.LookAt = [3]float64{0, 0.85, 0}
	}
	if config.Table.Size == ([3]float64{}) {
		config.Table.Size = [3]float64{1.7, 0.08, 0.8}
	}
	if config.Table.Color == "" {
		config.Table.Color = "#8a6a4f"
	}
}

func (config *Config) validate() error {
	if _, err := parseHexColor(config.Table.Color); err != nil {
		return fmt.Errorf("table color: %w", err)
	}

	seen := make(map[string]bool, len(config.Pictures))
	for i, picture := range config.Pictures {
		if picture.ID == "" {
			return fmt.Errorf("picture %d: missing id", i)
		}
		if seen[picture.ID] {
			return fmt.Errorf("picture %d: duplicate id %q", i, picture.ID)
		}
		seen[picture.ID] = true
	}

	return nil
}

// parseHexColor reads a "#rrggbb" color.
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		high, okHigh := hexNibble(s[1+i*2])
		low, okLow := hexNibble(s[2+i*2])
		if !okHigh || !okLow {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		channels[i] = high<<4 | low
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
