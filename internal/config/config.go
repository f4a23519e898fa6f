package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses yaml values like "30s" or "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Server struct {
		Host    string   `yaml:"host"`
		Port    int      `yaml:"port"`
		Mode    string   `yaml:"mode"`
		Timeout Duration `yaml:"timeout"`
	} `yaml:"server"`

	Auth struct {
		DemoEmail        string   `yaml:"demo_email"`
		DemoPasswordHash string   `yaml:"demo_password_hash"`
		JWTSecret        string   `yaml:"jwt_secret"`
		TokenExpiry      Duration `yaml:"token_expiry"`
		LoginDelay       Duration `yaml:"login_delay"`
	} `yaml:"auth"`

	Activity struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"activity"`

	Demo struct {
		Seed     bool   `yaml:"seed"`
		SeedFile string `yaml:"seed_file"`
	} `yaml:"demo"`
}

func Load() (*Config, error) {
	configPaths := []string{
		"./configs/config.yaml",
		"../configs/config.yaml",
		"/etc/family-health/config.yaml",
	}

	for _, path := range configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		configFile, err := os.ReadFile(absPath)
		if err != nil {
			continue
		}

		var config Config
		if err := yaml.Unmarshal(configFile, &config); err != nil {
			return nil, err
		}

		applyEnvOverrides(&config)
		return &config, nil
	}

	return nil, fmt.Errorf("no configuration file found")
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("DEMO_PASSWORD_HASH"); v != "" {
		config.Auth.DemoPasswordHash = v
	}
}
