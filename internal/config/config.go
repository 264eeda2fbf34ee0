// Package config loads the backend configuration.
//
// Values are layered: built-in defaults, then an optional YAML file
// referenced by the CONFIG_FILE environment variable, then environment
// variables. Environment variable names are the lower-cased keys,
// e.g. API_URL sets api_url.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrAPIURLMissing = errors.New("api_url must be set, e.g. with the API_URL environment variable")
	ErrAPIURLInvalid = errors.New("api_url must be a valid URL")
	ErrHorizon       = errors.New("period_horizon must be between 1 and 60")
)

type Config struct {
	APIURL           string `koanf:"api_url"`
	Port             int    `koanf:"port"`
	DataDir          string `koanf:"data_dir"`
	LogFormat        string `koanf:"log_format"` // "json" or "human"
	GinMode          string `koanf:"gin_mode"`
	CorsAllowOrigins string `koanf:"cors_allow_origins"` // Space separated list of origins
	EnablePprof      bool   `koanf:"enable_pprof"`
	PeriodHorizon    int    `koanf:"period_horizon"` // Number of periods offered per project
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Port:          8080,
		DataDir:       "data",
		LogFormat:     "json",
		GinMode:       "release",
		PeriodHorizon: 6,
	}
}

// Load reads the configuration.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("error loading default configuration: %w", err)
	}

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading configuration file %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("loaded configuration file")
	}

	err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ToLower(k), v
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading configuration from environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}

	return c, c.validate()
}

func (c Config) validate() error {
	if c.APIURL == "" {
		return ErrAPIURLMissing
	}

	if _, err := c.URL(); err != nil {
		return err
	}

	if c.PeriodHorizon < 1 || c.PeriodHorizon > 60 {
		return ErrHorizon
	}

	return nil
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrAPIURLInvalid, c.APIURL)
	}

	return u, nil
}

// Origins returns the allowed CORS origins.
func (c Config) Origins() []string {
	return strings.Fields(c.CorsAllowOrigins)
}
