package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

const defaultValidateWorkers = 4

// StoreConfig selects where network documents are pushed to and pulled from.
// Connection details for redis and mongo come from the environment.
type StoreConfig struct {
	Backend    string `yaml:"backend" validate:"required,oneof=file redis mongo"`
	Root       string `yaml:"root"`
	Prefix     string `yaml:"prefix"`
	Collection string `yaml:"collection"`
}

type LoggingConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type ValidateConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Logging  LoggingConfig  `yaml:"logging"`
	Validate ValidateConfig `yaml:"validate"`
}

func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Root:    ".",
		},
		Logging: LoggingConfig{
			Format: "console",
			Level:  "info",
		},
		Validate: ValidateConfig{
			Workers: defaultValidateWorkers,
		},
	}
}

// Load reads and validates the YAML file at path. An empty path gives the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults, so omitted settings keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return Config{}, err
	}

	if cfg.Store.Backend == BackendFile && cfg.Store.Root == "" {
		cfg.Store.Root = "."
	}
	if cfg.Validate.Workers == 0 {
		cfg.Validate.Workers = defaultValidateWorkers
	}

	return cfg, nil
}
