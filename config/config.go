// Package config resolves presentation settings from defaults, an optional
// .env file and SNAKE_* environment variables. Command line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present; its absence is not an error
const DefaultEnvFile = ".env"

// Environment variable names
const (
	EnvDebug = "SNAKE_DEBUG"
	EnvColor = "SNAKE_COLOR"
	EnvASCII = "SNAKE_ASCII"
)

// Config holds settings that affect presentation only
type Config struct {
	Debug     bool   // write logs/snake.log
	ColorMode string // auto, truecolor, 256, mono
	ASCII     bool   // ASCII border instead of box drawing
}

// Default returns the built-in settings
func Default() Config {
	return Config{ColorMode: "auto"}
}

// Load resolves the configuration. An empty envFile means DefaultEnvFile,
// which may be missing; an explicitly named file must exist.
func Load(envFile string) (Config, error) {
	cfg := Default()

	path, optional := envFile, false
	if path == "" {
		path, optional = DefaultEnvFile, true
	}
	if err := godotenv.Load(path); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", path, err)
		}
	} else {
		log.Printf("config: loaded %s", path)
	}

	var err error
	if cfg.Debug, err = envBool(EnvDebug, cfg.Debug); err != nil {
		return cfg, err
	}
	if cfg.ASCII, err = envBool(EnvASCII, cfg.ASCII); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		cfg.ColorMode = v
	}

	return cfg, nil
}

func envBool(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", name, v, err)
	}
	return b, nil
}
