package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// toolConfig is the optional faithful.toml, discovered upward from the
// working directory. Flags always win over it.
type toolConfig struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // pretty|json
}

func findToolConfig(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, "faithful.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadToolConfig(startDir string) (*toolConfig, bool) {
	path, ok := findToolConfig(startDir)
	if !ok {
		return nil, false
	}
	var cfg toolConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		// битый конфиг игнорируем, работаем с дефолтами
		return nil, false
	}
	return &cfg, true
}

// defaultFormat returns the configured output format, or the given fallback.
func defaultFormat(fallback string) string {
	if cfg, ok := loadToolConfig("."); ok && cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return fallback
}
