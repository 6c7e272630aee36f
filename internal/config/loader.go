package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".blockfall"

// Load resolves the configuration for a variant. An explicit customPath
// must load cleanly or Load fails. Otherwise the first usable candidate of
// ~/.blockfall/configs/<variant>.yaml, ./configs/<variant>.yaml, the
// embedded YAML and the compiled-in defaults wins.
func Load(variant, customPath string) (GameConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	filename := variant + ".yaml"
	for _, path := range searchPaths(filename) {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := Parse(data); err == nil {
			cfg.Source = "embedded:" + filename
			return cfg, nil
		}
	}
	return DefaultConfig(variant), nil
}

// searchPaths lists the on-disk locations tried for filename, user dir first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, AppDir, "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Marshal encodes a configuration as YAML. Used by the CLI to dump the
// effective configuration.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}
