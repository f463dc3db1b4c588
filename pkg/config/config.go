package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the render settings. Zero values mean "not set" and are
// filled from defaults, then from the optional YAML file, then overridden
// by command-line flags.
type Config struct {
	Scene           string `yaml:"scene"`
	Output          string `yaml:"output"`
	SamplesPerPixel int    `yaml:"samples"`
	MaxDepth        int    `yaml:"max_depth"`
	Workers         int    `yaml:"workers"`
	EarthMap        string `yaml:"earth_map"`
	Mesh            string `yaml:"mesh"`
	EdgeDetect      bool   `yaml:"edge_detect"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Scene:           "cornell",
		Output:          "output/render.jpg",
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         20,
		EarthMap:        "assets/earthmap.jpg",
		Mesh:            "assets/model.obj",
	}
}

// Load reads a YAML config file and merges it over the given base
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "read config %q", path)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, errors.Wrapf(err, "parse config %q", path)
	}
	return base.Merge(file), nil
}

// Merge overlays non-zero fields of other onto c
func (c Config) Merge(other Config) Config {
	if other.Scene != "" {
		c.Scene = other.Scene
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.SamplesPerPixel != 0 {
		c.SamplesPerPixel = other.SamplesPerPixel
	}
	if other.MaxDepth != 0 {
		c.MaxDepth = other.MaxDepth
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
	if other.EarthMap != "" {
		c.EarthMap = other.EarthMap
	}
	if other.Mesh != "" {
		c.Mesh = other.Mesh
	}
	if other.EdgeDetect {
		c.EdgeDetect = true
	}
	return c
}

// Validate checks the settings against the given image height
func (c Config) Validate(imageHeight int) error {
	if c.SamplesPerPixel <= 0 {
		return errors.Errorf("samples must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return errors.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if imageHeight%c.Workers != 0 {
		return errors.Errorf("workers (%d) must evenly divide image height (%d)", c.Workers, imageHeight)
	}
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}
