package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"salesdash/internal/config"
)

// LoadConfig reads the YAML file at path on top of the defaults and then
// applies environment overrides.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *config.Config) error {
	switch cfg.Dataset.Source {
	case config.DatasetSourceFile, config.DatasetSourceMySQL:
	default:
		return fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive, got %d", cfg.Server.Port)
	}
	return nil
}
