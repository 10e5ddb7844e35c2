package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in Load results.
const SourceEmbedded = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.traffic/configs/traffic.yaml ->
// ./configs/traffic.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it sets. A custom path that cannot be read or parsed
// is an error; broken files elsewhere in the search path are skipped.
func Load(customPath string) (TrafficConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, path, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return Embedded(), SourceEmbedded, nil
}

// Embedded returns the embedded default configuration.
func Embedded() TrafficConfig {
	cfg, err := Parse(defaultTrafficYAML)
	if err != nil {
		return DefaultTrafficConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the hardcoded defaults.
func Parse(data []byte) (TrafficConfig, error) {
	cfg := DefaultTrafficConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg TrafficConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TrafficConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TrafficConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath("traffic.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "traffic.yaml"))
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".traffic", "configs", filename)
}
