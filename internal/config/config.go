package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	. "github.com/cricklet/movehighlight/internal/helpers"
)

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RenderConfig struct {
	SquareSize int `yaml:"square_size"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`

	// FriendlyColor is the chess color that plays the friendly side.
	FriendlyColor string `yaml:"friendly_color"`
	ThreatWorkers int    `yaml:"threat_workers"`
}

func Default() Config {
	return Config{
		Server:        ServerConfig{Port: 8002, StaticDir: "static"},
		Log:           LogConfig{Level: "info", Format: "console"},
		Render:        RenderConfig{SquareSize: 64},
		FriendlyColor: "white",
		ThreatWorkers: 0,
	}
}

// Load reads path on top of the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, Error) {
	if strings.TrimSpace(path) == "" {
		return applyEnv(Default())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), Errorf("read config %v: %w", path, err)
	}
	cfg, parseErr := Parse(raw)
	if !IsNil(parseErr) {
		return cfg, Errorf("config %v: %w", path, parseErr)
	}
	return applyEnv(cfg)
}

func Parse(raw []byte) (Config, Error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, Errorf("parse yaml: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() Error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return Errorf("invalid port %v", c.Server.Port)
	}
	if c.Render.SquareSize < 8 || c.Render.SquareSize > 512 {
		return Errorf("invalid square size %v", c.Render.SquareSize)
	}
	switch strings.ToLower(c.FriendlyColor) {
	case "white", "black":
	default:
		return Errorf("invalid friendly color %q", c.FriendlyColor)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return Errorf("invalid log format %q", c.Log.Format)
	}
	return NilError
}

func applyEnv(cfg Config) (Config, Error) {
	if v := strings.TrimSpace(os.Getenv("MOVEHIGHLIGHT_PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, Errorf("MOVEHIGHLIGHT_PORT: %w", err)
		}
		cfg.Server.Port = n
	}
	if v := strings.TrimSpace(os.Getenv("MOVEHIGHLIGHT_SQUARE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, Errorf("MOVEHIGHLIGHT_SQUARE_SIZE: %w", err)
		}
		cfg.Render.SquareSize = n
	}
	if v := strings.TrimSpace(os.Getenv("MOVEHIGHLIGHT_FRIENDLY_COLOR")); v != "" {
		cfg.FriendlyColor = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	return cfg, cfg.Validate()
}
