package types

import "fmt"

// Rect is a window position and size in virtual-screen coordinates
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// ScreenBounds is the virtual screen, the rectangle spanning all monitors
type ScreenBounds struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TaskbarGeometry is the taskbar rectangle in screen coordinates
type TaskbarGeometry struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Height returns Bottom - Top
func (t TaskbarGeometry) Height() int {
	return t.Bottom - t.Top
}

// ComputeTargetRect returns the virtual screen minus the taskbar height.
// A taskbar taller than the screen would produce a negative height; that
// height is clamped to zero and clamped is reported true.
func ComputeTargetRect(screen ScreenBounds, taskbar TaskbarGeometry) (rect Rect, clamped bool) {
	rect = Rect{
		X:      screen.Left,
		Y:      screen.Top,
		Width:  screen.Width,
		Height: screen.Height - taskbar.Height(),
	}
	if rect.Height < 0 {
		rect.Height = 0
		clamped = true
	}
	return rect, clamped
}
