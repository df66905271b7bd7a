// Package config loads the application configuration from a YAML file with
// environment variable overrides (MIXOLOGY_ prefix).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/craftbar/mixology/pkg/cache/inmemory"
	"github.com/craftbar/mixology/pkg/cache/redis"
)

type AppConfig struct {
	App       App             `yaml:"app"`
	APIServer APIServerConfig `yaml:"apiserver"`
	Storage   StorageConfig   `yaml:"storage"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type App struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type APIServerConfig struct {
	Host string     `yaml:"host"`
	Port int        `yaml:"port"`
	CORS CORSConfig `yaml:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

type StorageConfig struct {
	DataDir       string `yaml:"data_dir"`
	CocktailsFile string `yaml:"cocktails_file"`
	UsersFile     string `yaml:"users_file"`
}

// CocktailsPath returns the full path of the cocktails file.
func (s StorageConfig) CocktailsPath() string {
	return filepath.Join(s.DataDir, s.CocktailsFile)
}

// UsersPath returns the full path of the users file.
func (s StorageConfig) UsersPath() string {
	return filepath.Join(s.DataDir, s.UsersFile)
}

type CacheConfig struct {
	// Backend selects the cache implementation: "inmemory" or "redis".
	Backend  string          `yaml:"backend"`
	InMemory inmemory.Config `yaml:"inmemory"`
	Redis    redis.Config    `yaml:"redis"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads the config file at path, applies env overrides and
// decodes the merged settings. A missing file is not an error: defaults
// apply.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MIXOLOGY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// viper lowercases keys; round-trip through yaml to decode the merged
	// settings into the typed config
	merged, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged settings: %w", err)
	}

	cfg := &AppConfig{}
	if err := yaml.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mixology")
	v.SetDefault("app.environment", "local")

	v.SetDefault("apiserver.host", "0.0.0.0")
	v.SetDefault("apiserver.port", 8080)
	v.SetDefault("apiserver.cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("apiserver.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("apiserver.cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})

	v.SetDefault("storage.data_dir", "resources/data")
	v.SetDefault("storage.cocktails_file", "cocktails.json")
	v.SetDefault("storage.users_file", "users.json")

	v.SetDefault("cache.backend", "inmemory")
	v.SetDefault("cache.inmemory.default_expiration", 300)
	v.SetDefault("cache.inmemory.cleanup_interval", 600)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
