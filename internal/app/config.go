package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bankofai/agent-wallet/internal/store"
)

// Environment variables consulted when a flag is not given.
const (
	EnvPath     = "KEYSTORE_PATH"
	EnvPassword = "KEYSTORE_PASSWORD"
)

// DefaultLogLevel keeps the CLI quiet unless something is wrong.
const DefaultLogLevel = "warn"

// Config holds runtime wiring options for building the app.
type Config struct {
	Path     string // keystore file, e.g. ./.keystore.json
	Password string // empty means unencrypted
	LogLevel string // debug, info, warn, error
}

// Resolve fills empty fields from the environment, then from defaults.
func (c Config) Resolve() (Config, error) {
	if c.Path == "" {
		c.Path = os.Getenv(EnvPath)
	}
	if c.Path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve default keystore path: %w", err)
		}
		c.Path = filepath.Join(wd, store.DefaultFilename)
	}
	if c.Password == "" {
		c.Password = os.Getenv(EnvPassword)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c, nil
}
