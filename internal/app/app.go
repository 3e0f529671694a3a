package app

import (
	"go.uber.org/zap"

	"github.com/bankofai/agent-wallet/internal/logger"
	"github.com/bankofai/agent-wallet/internal/store"
)

// App bundles the resolved config with the logger and keystore built from it.
type App struct {
	Config   Config
	Log      *zap.Logger
	Keystore *store.FileStore
}

// New resolves cfg and constructs the dependency graph. Nothing touches the
// keystore file until a command uses it.
func New(cfg Config) (*App, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Log:      log,
		Keystore: store.NewFileStore(cfg.Path, cfg.Password, store.WithLogger(log)),
	}, nil
}

// StoreOptions returns the options used for one-shot FromFile/ToFile calls.
func (a *App) StoreOptions() []store.Option {
	return []store.Option{store.WithLogger(a.Log)}
}
