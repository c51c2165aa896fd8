package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	Format      string
	Concurrency int
	Verbose     bool
}

func defaultConfig() config {
	return config{
		Format:      "vtt",
		Concurrency: 4,
	}
}

// config file key mapping to vttcue runtime defaults.
type fileConfig struct {
	Format      string `toml:"format"`
	Concurrency int    `toml:"concurrency"`
	Verbose     bool   `toml:"verbose"`
}

// loadConfig overlays an optional TOML config file on the built-in
// defaults. An empty path means no file: defaults only.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("format") {
		format := strings.ToLower(strings.TrimSpace(raw.Format))
		if format != "vtt" && format != "srt" {
			return config{}, fmt.Errorf(
				"load config: unsupported format %q (expected vtt or srt)",
				raw.Format,
			)
		}
		cfg.Format = format
	}
	if meta.IsDefined("concurrency") {
		if raw.Concurrency <= 0 {
			return config{}, fmt.Errorf(
				"load config: concurrency must be positive, got %d",
				raw.Concurrency,
			)
		}
		cfg.Concurrency = raw.Concurrency
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
