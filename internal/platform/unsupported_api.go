//go:build !windows

package platform

import (
	"stretchwin/internal/infrastructure/errors"
	"stretchwin/internal/types"
)

// UnsupportedAPI implements WindowAPI on platforms without a window placement binding
type UnsupportedAPI struct{}

// NewWindowAPI creates a new WindowAPI instance for this platform
func NewWindowAPI() WindowAPI {
	return &UnsupportedAPI{}
}

func (u *UnsupportedAPI) QueryTaskbarBounds() (types.TaskbarGeometry, error) {
	return types.TaskbarGeometry{}, errors.NewPlacementError("QueryTaskbarBounds", errors.ErrUnsupportedPlatform, errors.ErrCodeUnsupported)
}

func (u *UnsupportedAPI) QueryScreenBounds() (types.ScreenBounds, error) {
	return types.ScreenBounds{}, errors.NewPlacementError("QueryScreenBounds", errors.ErrUnsupportedPlatform, errors.ErrCodeUnsupported)
}

func (u *UnsupportedAPI) EnumerateProcessWindows(scope ProcessScope) ([]types.ProcessInfo, error) {
	return nil, errors.NewPlacementError("EnumerateProcessWindows", errors.ErrUnsupportedPlatform, errors.ErrCodeUnsupported)
}

func (u *UnsupportedAPI) SetWindowPlacement(req PlacementRequest) error {
	return errors.NewPlacementError("SetWindowPlacement", errors.ErrUnsupportedPlatform, errors.ErrCodeUnsupported)
}
