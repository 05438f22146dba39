package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgen/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file. Relative
// workbook paths are resolved against the project root of the file.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	resolvePaths(&cfg, ProjectRootFromConfigPath(path))
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Default returns the normalized built-in config used when no file exists.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

func resolvePaths(cfg *spec.Config, root string) {
	if root == "" {
		return
	}
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(root, cfg.Input)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(root, cfg.Output)
	}
}
