package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds tunables for the copy loop. Resolution order:
// defaults, then the optional config file, then environment, then
// command-line flags (applied by the cmd layer).
type Config struct {
	// BlockSize is the per-read block in bytes.
	BlockSize int `yaml:"block_size"`
	// RenderEvery is the progress-redraw threshold in bytes.
	RenderEvery int64 `yaml:"render_every"`
}

// Defaults returns the built-in tuning: 64 KiB blocks, one redraw per
// MiB of transferred data.
func Defaults() Config {
	return Config{
		BlockSize:   64 * 1024,
		RenderEvery: 1 << 20,
	}
}

// Load returns the effective config from defaults, ~/.vcat.yaml (if
// present), and VCAT_* environment overrides.
func Load() Config {
	cfg := Defaults()
	if home, err := os.UserHomeDir(); err == nil {
		cfg = loadFile(cfg, filepath.Join(home, ".vcat.yaml"))
	}
	return applyEnv(cfg)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) Config {
	return applyEnv(loadFile(Defaults(), path))
}

// loadFile overlays settings from a YAML file onto cfg. A missing or
// unreadable file leaves cfg untouched: the config file is optional and
// must never block a copy.
func loadFile(cfg Config, path string) Config {
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	out := cfg
	if err := yaml.Unmarshal(b, &out); err != nil {
		return cfg
	}
	return sanitize(out)
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("VCAT_BLOCK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BlockSize = n
		}
	}
	if v := os.Getenv("VCAT_RENDER_EVERY"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RenderEvery = n
		}
	}
	return sanitize(cfg)
}

// sanitize clamps nonsense values back to defaults rather than letting
// a bad config produce a zero-length read buffer.
func sanitize(cfg Config) Config {
	def := Defaults()
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = def.BlockSize
	}
	if cfg.RenderEvery <= 0 {
		cfg.RenderEvery = def.RenderEvery
	}
	return cfg
}
