package types

// WindowHandle is an opaque OS window handle (an HWND on windows)
type WindowHandle uintptr

// ProcessInfo describes a running process and its main window
type ProcessInfo struct {
	PID          uint32       `json:"pid"`
	Name         string       `json:"name"` // executable name without extension
	WindowTitle  string       `json:"windowTitle"`
	WindowHandle WindowHandle `json:"-"`
}

// HasWindowTitle reports whether the process has a titled main window
func (p ProcessInfo) HasWindowTitle() bool {
	return p.WindowTitle != ""
}

// Description is the human-readable "name - title" form used in diagnostics
func (p ProcessInfo) Description() string {
	return p.Name + " - " + p.WindowTitle
}

// PlacementResult reports what one stretch invocation did
type PlacementResult struct {
	Target    Rect          `json:"target"`
	Clamped   bool          `json:"clamped"`
	DryRun    bool          `json:"dryRun"`
	Eligible  []ProcessInfo `json:"eligible"` // matched a signature, placed or not
	Placed    []ProcessInfo `json:"placed"`
	Described []string      `json:"described"`
}
