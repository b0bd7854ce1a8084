// Package config resolves CLI configuration from defaults, an optional YAML
// file under the gestao home directory, and environment variables, in that
// order of precedence (env wins).
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/errors"
)

const configFileName = "config.yaml"

// Config holds the runtime configuration.
type Config struct {
	// APIURL is the backend base URL.
	APIURL string `yaml:"api_url" env:"GESTAO_API_URL"`

	// TimeoutSeconds bounds every backend request.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"GESTAO_TIMEOUT"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level" env:"GESTAO_LOG_LEVEL"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" env:"GESTAO_LOG_FORMAT"`

	// Home is the directory holding config and credentials. Not settable
	// from the config file since the file lives inside it.
	Home string `yaml:"-" env:"GESTAO_HOME"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		APIURL:         api.DefaultBaseURL,
		TimeoutSeconds: int(api.DefaultTimeout / time.Second),
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConfigFile returns the config file location under the home directory.
func (c Config) ConfigFile() string {
	return filepath.Join(c.Home, configFileName)
}

// Load resolves the configuration. A missing config file is fine; a
// malformed one is an error.
func Load() (Config, error) {
	cfg := Default()

	home, err := resolveHome()
	if err != nil {
		return cfg, err
	}
	cfg.Home = home

	path := cfg.ConfigFile()
	data, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		// defaults apply
	case err != nil:
		return cfg, errors.NewConfigLoadError(path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.NewConfigParseError(path, err)
		}
	}

	// Environment wins over the file.
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.NewConfigLoadError("environment", err)
	}

	return cfg, nil
}

// resolveHome picks GESTAO_HOME when set, otherwise ~/.gestao.
func resolveHome() (string, error) {
	if dir := os.Getenv("GESTAO_HOME"); dir != "" {
		return dir, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigLoadError("home directory", err)
	}
	return filepath.Join(userHome, ".gestao"), nil
}
