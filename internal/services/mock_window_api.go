package services

import (
	"fmt"
	"sync"

	"stretchwin/internal/infrastructure/errors"
	"stretchwin/internal/platform"
	"stretchwin/internal/types"
)

// MockWindowAPI implements the WindowAPI interface for testing and records every call
type MockWindowAPI struct {
	mu                sync.RWMutex
	taskbar           types.TaskbarGeometry
	screen            types.ScreenBounds
	processes         []types.ProcessInfo
	scopes            []platform.ProcessScope
	placements        []platform.PlacementRequest
	shouldFailTaskbar bool
	shouldFailScreen  bool
	shouldFailEnum    bool
	placementErrors   map[types.WindowHandle]error
}

// NewMockWindowAPI creates a mock with a 1920x1080 screen and a 40px bottom taskbar
func NewMockWindowAPI() *MockWindowAPI {
	return &MockWindowAPI{
		taskbar:         types.TaskbarGeometry{Left: 0, Top: 1040, Right: 1920, Bottom: 1080},
		screen:          types.ScreenBounds{Left: 0, Top: 0, Width: 1920, Height: 1080},
		placementErrors: make(map[types.WindowHandle]error),
	}
}

// SetGeometry replaces the reported screen and taskbar
func (m *MockWindowAPI) SetGeometry(screen types.ScreenBounds, taskbar types.TaskbarGeometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = screen
	m.taskbar = taskbar
}

// SetProcesses replaces the reported process list
func (m *MockWindowAPI) SetProcesses(processes ...types.ProcessInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processes = append([]types.ProcessInfo(nil), processes...)
}

// SetFailureModes configures the mock to simulate environment query failures
func (m *MockWindowAPI) SetFailureModes(taskbar, screen, enum bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailTaskbar = taskbar
	m.shouldFailScreen = screen
	m.shouldFailEnum = enum
}

// FailPlacement makes SetWindowPlacement return err for the given window
func (m *MockWindowAPI) FailPlacement(handle types.WindowHandle, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.placementErrors[handle] = err
}

// Placements returns a copy of every placement request received, including failed ones
func (m *MockWindowAPI) Placements() []platform.PlacementRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]platform.PlacementRequest(nil), m.placements...)
}

// Scopes returns the scopes passed to EnumerateProcessWindows
func (m *MockWindowAPI) Scopes() []platform.ProcessScope {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]platform.ProcessScope(nil), m.scopes...)
}

// QueryTaskbarBounds implements WindowAPI interface
func (m *MockWindowAPI) QueryTaskbarBounds() (types.TaskbarGeometry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldFailTaskbar {
		return types.TaskbarGeometry{}, errors.NewPlacementError("QueryTaskbarBounds",
			fmt.Errorf("mock taskbar failure"), errors.ErrCodeEnvironmentQuery)
	}
	return m.taskbar, nil
}

// QueryScreenBounds implements WindowAPI interface
func (m *MockWindowAPI) QueryScreenBounds() (types.ScreenBounds, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldFailScreen {
		// Plain error: the placer must classify it itself
		return types.ScreenBounds{}, fmt.Errorf("mock screen failure")
	}
	return m.screen, nil
}

// EnumerateProcessWindows implements WindowAPI interface
func (m *MockWindowAPI) EnumerateProcessWindows(scope platform.ProcessScope) ([]types.ProcessInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scopes = append(m.scopes, scope)

	if m.shouldFailEnum {
		return nil, errors.NewPlacementError("EnumerateProcessWindows",
			fmt.Errorf("mock enumeration failure"), errors.ErrCodeEnvironmentQuery)
	}
	return append([]types.ProcessInfo(nil), m.processes...), nil
}

// SetWindowPlacement implements WindowAPI interface
func (m *MockWindowAPI) SetWindowPlacement(req platform.PlacementRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.placements = append(m.placements, req)

	if err, ok := m.placementErrors[req.Handle]; ok {
		return err
	}
	return nil
}
