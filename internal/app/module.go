package app

import (
	"context"
	"strings"

	"github.com/matheus3301/tuikit/internal/bus"
	"github.com/matheus3301/tuikit/internal/config"
	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/keys"
	"github.com/matheus3301/tuikit/internal/lock"
	"github.com/matheus3301/tuikit/internal/logging"
	"github.com/matheus3301/tuikit/internal/paths"
	"github.com/matheus3301/tuikit/internal/status"
	"github.com/matheus3301/tuikit/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// keepActivations bounds the activation history kept between runs.
const keepActivations = 1000

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	Profile  string
	Document string // empty = DefaultDocument
}

// Module returns the fx module for the editor, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Document == "" {
		p.Document = DefaultDocument
	}
	return fx.Module("app",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideTheme,
			provideRegistry,
			NewEditor,
			provideWindow,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() (*config.Config, error) {
	return config.LoadOrDefault(paths.ConfigPath())
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return logging.New(paths.LogPath(p.Profile), p.Profile, level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := paths.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(paths.ProfileDir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore takes the lock so that the database is only opened by the
// process that holds the profile.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := paths.DBPath(p.Profile)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideTheme() *gui.Theme {
	return gui.DefaultTheme()
}

func provideRegistry(logger *zap.Logger) *keys.Registry {
	return keys.NewRegistry(logger.Named("keys"))
}

func provideWindow(cfg *config.Config, p Params, editor *Editor, registry *keys.Registry, b *bus.Bus, theme *gui.Theme, logger *zap.Logger) (*Window, error) {
	return NewWindow(cfg, p.Profile, editor, registry, b, theme, logger.Named("ui"))
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, p Params, cfg *config.Config, w *Window, editor *Editor, registry *keys.Registry, db *store.DB, lk *lock.Lock, b *bus.Bus, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := editor.Restore(); err != nil {
				logger.Warn("restore action state", zap.Error(err))
			}
			if err := editor.ApplyKeymap(cfg.Keymap); err != nil {
				logger.Warn("keymap not fully applied", zap.Error(err))
				editor.Flash().Set(err.Error(), flashLong)
			}
			if conflicts := registry.Conflicts(MainWindow); len(conflicts) > 0 {
				logger.Warn("conflicting shortcuts", zap.String("shortcuts", strings.Join(conflicts, ", ")))
			}
			if err := editor.Open(p.Document); err != nil {
				return err
			}
			if n, err := db.PruneActivations(keepActivations); err != nil {
				logger.Warn("prune activations", zap.Error(err))
			} else if n > 0 {
				logger.Info("activations pruned", zap.Int64("removed", n))
			}

			// Run the UI in background; closing it ends the app.
			go func() {
				if err := w.Run(); err != nil {
					logger.Error("ui error", zap.Error(err))
				}
				if err := sd.Shutdown(); err != nil {
					logger.Warn("shutdown", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			b.Close()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("editor stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
