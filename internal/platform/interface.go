package platform

import (
	"fmt"
	"strings"

	"stretchwin/internal/types"
)

// WindowAPI defines the OS capabilities needed to stretch a window
type WindowAPI interface {
	QueryTaskbarBounds() (types.TaskbarGeometry, error)
	QueryScreenBounds() (types.ScreenBounds, error)
	EnumerateProcessWindows(scope ProcessScope) ([]types.ProcessInfo, error)
	SetWindowPlacement(req PlacementRequest) error
}

// PlacementFlags mirror the SWP_* flags passed to SetWindowPos
type PlacementFlags uint32

const (
	FlagNoSize     PlacementFlags = 0x0001
	FlagNoMove     PlacementFlags = 0x0002
	FlagNoZOrder   PlacementFlags = 0x0004
	FlagNoActivate PlacementFlags = 0x0010
)

// Has reports whether all bits of f are set
func (p PlacementFlags) Has(f PlacementFlags) bool {
	return p&f == f
}

// PlacementRequest moves and resizes one window
type PlacementRequest struct {
	Handle types.WindowHandle
	Rect   types.Rect
	// RestoreFirst shows the window normally before positioning it;
	// a maximized window ignores direct placement otherwise.
	RestoreFirst bool
	Flags        PlacementFlags
}

// ProcessScope selects which processes are inspected
type ProcessScope int

const (
	// ScopeCurrentProcess inspects only the calling process
	ScopeCurrentProcess ProcessScope = iota
	// ScopeParentProcess inspects the process that launched this one
	ScopeParentProcess
	// ScopeAllProcesses inspects every running process
	ScopeAllProcesses
)

func (s ProcessScope) String() string {
	switch s {
	case ScopeCurrentProcess:
		return "self"
	case ScopeParentProcess:
		return "parent"
	case ScopeAllProcesses:
		return "all"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ParseProcessScope accepts "self", "parent" or "all"
func ParseProcessScope(s string) (ProcessScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self", "current":
		return ScopeCurrentProcess, nil
	case "parent":
		return ScopeParentProcess, nil
	case "all":
		return ScopeAllProcesses, nil
	default:
		return ScopeCurrentProcess, fmt.Errorf("unknown process scope %q (want self, parent or all)", s)
	}
}

// Valid reports whether s is one of the defined scopes
func (s ProcessScope) Valid() bool {
	return s >= ScopeCurrentProcess && s <= ScopeAllProcesses
}
