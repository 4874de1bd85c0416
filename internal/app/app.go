package app

import (
	"fmt"
	"runtime"
	"time"

	"stretchwin/internal/config"
	"stretchwin/internal/infrastructure/errors"
	"stretchwin/internal/infrastructure/logging"
	"stretchwin/internal/platform"
	"stretchwin/internal/services"
	"stretchwin/internal/types"
)

// App struct represents the stretch command
type App struct {
	config *config.Config
	placer *services.WindowPlacer
	logger logging.Logger
}

// NewApp creates a new App for the given configuration using the platform's window API
func NewApp(cfg *config.Config) (*App, error) {
	return NewAppWithAPI(cfg, platform.NewWindowAPI(), nil)
}

// NewAppWithAPI creates a new App with dependency injection.
// A nil logger is built from cfg.LogLevel.
func NewAppWithAPI(cfg *config.Config, windowAPI platform.WindowAPI, logger logging.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewPlacementErrorWithContext("startup", err, errors.ErrCodeValidation,
			map[string]string{"environment": cfg.Environment})
	}
	if windowAPI == nil {
		return nil, errors.NewPlacementError("startup", fmt.Errorf("window API not initialized"), errors.ErrCodeValidation)
	}

	if logger == nil {
		level, _ := logging.ParseLevel(cfg.LogLevel) // validated above
		logger = logging.NewLevelLogger(level)
	}

	cfg = cfg.Clone()
	return &App{
		config: cfg,
		placer: services.NewWindowPlacer(windowAPI, cfg, logger),
		logger: logger,
	}, nil
}

// Execute is the command-invoked callback. It runs the whole placement on
// one OS thread, since window calls are tied to the calling thread.
func (a *App) Execute() (*types.PlacementResult, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	start := time.Now()
	result, err := a.placer.StretchEditorWindow()
	if err != nil {
		logging.LogError(a.logger, err, "stretch", map[string]interface{}{
			"scope":   a.config.Scope.String(),
			"dry_run": a.config.DryRun,
		})
		return result, err
	}

	logging.LogOperation(a.logger, "stretch", time.Since(start), map[string]interface{}{
		"scope":     a.config.Scope.String(),
		"dry_run":   result.DryRun,
		"placed":    len(result.Placed),
		"described": len(result.Described),
		"target":    result.Target.String(),
	})
	return result, nil
}

// GetConfig returns a copy of the configuration the app was built with
func (a *App) GetConfig() *config.Config {
	return a.config.Clone()
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}
