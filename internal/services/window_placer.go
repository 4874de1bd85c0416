package services

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"stretchwin/internal/config"
	"stretchwin/internal/infrastructure/errors"
	"stretchwin/internal/infrastructure/logging"
	"stretchwin/internal/platform"
	"stretchwin/internal/types"
)

// WindowPlacer stretches the editor's main window across the virtual screen, above the taskbar
type WindowPlacer struct {
	windowAPI  platform.WindowAPI
	scope      platform.ProcessScope
	signatures []types.Signature
	dryRun     bool
	logger     logging.Logger
}

// NewWindowPlacer creates a placer for one configuration. A nil cfg uses config.DefaultConfig.
func NewWindowPlacer(windowAPI platform.WindowAPI, cfg *config.Config, logger logging.Logger) *WindowPlacer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &WindowPlacer{
		windowAPI:  windowAPI,
		scope:      cfg.Scope,
		signatures: append([]types.Signature(nil), cfg.Signatures...),
		dryRun:     cfg.DryRun,
		logger:     logger,
	}
}

// StretchEditorWindow restores every eligible editor window and resizes it to
// the virtual screen minus the taskbar height, leaving its z-order untouched.
//
// Finding no eligible window is not an error. When a placement fails the
// remaining eligible windows are still attempted and the first failure is
// returned together with the result.
func (p *WindowPlacer) StretchEditorWindow() (*types.PlacementResult, error) {
	target, clamped, err := p.TargetRect()
	if err != nil {
		return nil, err
	}

	processes, err := p.windowAPI.EnumerateProcessWindows(p.scope)
	if err != nil {
		return nil, environmentError("EnumerateProcessWindows", err, map[string]string{"scope": p.scope.String()})
	}

	result := &types.PlacementResult{
		Target:  target,
		Clamped: clamped,
		DryRun:  p.dryRun,
	}

	var firstErr error
	for _, process := range processes {
		if !process.HasWindowTitle() {
			continue
		}

		description := process.Description()
		result.Described = append(result.Described, description)
		p.logger.Debug("Inspected window", "window", description, "pid", process.PID)

		if !types.MatchesAny(p.signatures, process) {
			continue
		}
		result.Eligible = append(result.Eligible, process)

		if p.dryRun {
			p.logger.Info("Dry run: window would be placed", "window", description, "target", target.String())
			continue
		}

		if err := p.place(process, target); err != nil {
			logging.LogError(p.logger, err, "SetWindowPlacement", map[string]interface{}{"window": description})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		result.Placed = append(result.Placed, process)
		p.logger.Info("Window placed", "window", description, "target", target.String())
	}

	if len(result.Eligible) == 0 {
		p.logger.Info("No eligible editor window found", "scope", p.scope.String(), "inspected", len(result.Described))
	}

	return result, firstErr
}

// TargetRect queries the taskbar and virtual screen and computes where the editor window goes
func (p *WindowPlacer) TargetRect() (types.Rect, bool, error) {
	taskbar, err := p.windowAPI.QueryTaskbarBounds()
	if err != nil {
		return types.Rect{}, false, environmentError("QueryTaskbarBounds", err, nil)
	}
	if taskbar.Bottom < taskbar.Top {
		return types.Rect{}, false, errors.NewPlacementErrorWithContext("QueryTaskbarBounds",
			fmt.Errorf("taskbar bottom %d is above its top %d", taskbar.Bottom, taskbar.Top),
			errors.ErrCodeEnvironmentQuery, nil)
	}

	screen, err := p.windowAPI.QueryScreenBounds()
	if err != nil {
		return types.Rect{}, false, environmentError("QueryScreenBounds", err, nil)
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		return types.Rect{}, false, errors.NewPlacementErrorWithContext("QueryScreenBounds",
			fmt.Errorf("virtual screen has no area"),
			errors.ErrCodeEnvironmentQuery,
			map[string]string{
				"width":  strconv.Itoa(screen.Width),
				"height": strconv.Itoa(screen.Height),
			})
	}

	target, clamped := types.ComputeTargetRect(screen, taskbar)
	if clamped {
		p.logger.Warn("Taskbar is taller than the virtual screen, target height clamped to zero",
			"screen_height", screen.Height, "taskbar_height", taskbar.Height())
	}

	return target, clamped, nil
}

func (p *WindowPlacer) place(process types.ProcessInfo, target types.Rect) error {
	err := p.windowAPI.SetWindowPlacement(platform.PlacementRequest{
		Handle:       process.WindowHandle,
		Rect:         target,
		RestoreFirst: true,
		Flags:        platform.FlagNoZOrder,
	})
	if err == nil {
		return nil
	}

	return classified("SetWindowPlacement", err, errors.ClassifyErrno(err), map[string]string{
		"process": process.Name,
		"pid":     strconv.FormatUint(uint64(process.PID), 10),
	})
}

// environmentError classifies an OS query failure
func environmentError(op string, err error, context map[string]string) error {
	return classified(op, err, errors.ErrCodeEnvironmentQuery, context)
}

// classified adds context to a PlacementError the binding already returned,
// or wraps any other error in a new one with code.
func classified(op string, err error, code errors.ErrorCode, context map[string]string) error {
	var placementErr *errors.PlacementError
	if !stderrors.As(err, &placementErr) {
		return errors.NewPlacementErrorWithContext(op, err, code, context)
	}

	if placementErr.Code == errors.ErrCodeUnknown {
		placementErr.Code = code
	}
	for k, v := range context {
		placementErr.WithContext(k, v)
	}
	return err
}
