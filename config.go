package stilllife

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the ambient settings of the program: window geometry,
// where texture images live, and the debug log gate. The scene itself
// is not configurable; its placement constants are code.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	TextureDir string `yaml:"texture_dir"`
	Debug      bool   `yaml:"debug"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Window.Width = 1280
	cfg.Window.Height = 720
	cfg.Window.Title = "Still Life"
	cfg.TextureDir = "textures"
	return cfg
}

// LoadConfig reads a YAML config file. A missing file is not an error;
// defaults are returned. Fields absent from the file keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Window.Width <= 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Still Life"
	}
	if cfg.TextureDir == "" {
		cfg.TextureDir = "textures"
	}

	return cfg, nil
}

// ConfigModule loads the config file and installs it as a resource.
// It should be installed before any module that reads the config.
type ConfigModule struct {
	Path string
}

func (m ConfigModule) Install(app *App) {
	path := m.Path
	if path == "" {
		path = "stilllife.yaml"
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		app.Logger().Errorf("config: %v, using defaults", err)
		cfg = DefaultConfig()
	}
	app.AddResources(cfg)
}
