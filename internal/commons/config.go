package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"garmentsync/internal/config"
)

// LoadConfig starts from the built-in defaults, overlays the YAML file at
// path (skipped when path is empty or the file does not exist) and finally
// applies environment overrides.
func LoadConfig(path string) (*config.Config, error) {
	cfg := config.Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
