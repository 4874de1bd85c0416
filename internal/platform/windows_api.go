//go:build windows

package platform

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"stretchwin/internal/infrastructure/errors"
	"stretchwin/internal/types"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	shell32                      = windows.NewLazySystemDLL("shell32.dll")
	procSHAppBarMessage          = shell32.NewProc("SHAppBarMessage")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procGetWindow                = user32.NewProc("GetWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

const (
	abmGetTaskbarPos = 0x00000005

	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCxVirtualScreen = 78
	smCyVirtualScreen = 79

	swShowNormal = 1
	gwOwner      = 4
)

// appBarData mirrors the shell APPBARDATA struct
type appBarData struct {
	cbSize           uint32
	hWnd             windows.HWND
	uCallbackMessage uint32
	uEdge            uint32
	rc               windows.Rect
	lParam           uintptr
}

// WindowsAPI implements WindowAPI for Windows platform
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewWindowAPI creates a new WindowAPI instance for Windows
func NewWindowAPI() WindowAPI {
	return NewWindowsAPI()
}

// QueryTaskbarBounds asks the shell for the taskbar rectangle
func (w *WindowsAPI) QueryTaskbarBounds() (types.TaskbarGeometry, error) {
	var data appBarData
	data.cbSize = uint32(unsafe.Sizeof(data))

	ret, _, callErr := procSHAppBarMessage.Call(abmGetTaskbarPos, uintptr(unsafe.Pointer(&data)))
	if ret == 0 {
		return types.TaskbarGeometry{}, errors.NewPlacementError("QueryTaskbarBounds",
			callFailure(callErr, "SHAppBarMessage(ABM_GETTASKBARPOS)"),
			errors.ErrCodeEnvironmentQuery)
	}

	return types.TaskbarGeometry{
		Left:   int(data.rc.Left),
		Top:    int(data.rc.Top),
		Right:  int(data.rc.Right),
		Bottom: int(data.rc.Bottom),
	}, nil
}

// QueryScreenBounds reads the virtual screen metrics spanning all monitors
func (w *WindowsAPI) QueryScreenBounds() (types.ScreenBounds, error) {
	bounds := types.ScreenBounds{
		Left:   systemMetric(smXVirtualScreen),
		Top:    systemMetric(smYVirtualScreen),
		Width:  systemMetric(smCxVirtualScreen),
		Height: systemMetric(smCyVirtualScreen),
	}

	// GetSystemMetrics reports failure as 0; only the extents can be checked
	if bounds.Width == 0 || bounds.Height == 0 {
		return types.ScreenBounds{}, errors.NewPlacementError("QueryScreenBounds",
			pkgerrors.New("GetSystemMetrics returned an empty virtual screen"),
			errors.ErrCodeEnvironmentQuery)
	}

	return bounds, nil
}

func systemMetric(index uintptr) int {
	ret, _, _ := procGetSystemMetrics.Call(index)
	return int(int32(ret))
}

// EnumerateProcessWindows lists the processes selected by scope together with their main windows
func (w *WindowsAPI) EnumerateProcessWindows(scope ProcessScope) ([]types.ProcessInfo, error) {
	entries, err := snapshotProcesses()
	if err != nil {
		return nil, errors.NewPlacementErrorWithContext("EnumerateProcessWindows", err,
			errors.ErrCodeEnvironmentQuery, map[string]string{"scope": scope.String()})
	}

	self := windows.GetCurrentProcessId()
	var pids []uint32
	switch scope {
	case ScopeCurrentProcess:
		pids = []uint32{self}
	case ScopeParentProcess:
		entry, ok := entries[self]
		if !ok {
			return nil, errors.NewPlacementErrorWithContext("EnumerateProcessWindows",
				pkgerrors.New("current process missing from process snapshot"),
				errors.ErrCodeEnvironmentQuery, map[string]string{"scope": scope.String()})
		}
		pids = []uint32{entry.parent}
	case ScopeAllProcesses:
		pids = make([]uint32, 0, len(entries))
		for pid := range entries {
			pids = append(pids, pid)
		}
	default:
		return nil, errors.NewPlacementError("EnumerateProcessWindows",
			pkgerrors.Errorf("unknown process scope %d", int(scope)),
			errors.ErrCodeValidation)
	}

	mainWindows, err := findMainWindows()
	if err != nil {
		return nil, errors.NewPlacementError("EnumerateProcessWindows", err, errors.ErrCodeEnvironmentQuery)
	}

	processes := make([]types.ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		entry, ok := entries[pid]
		if !ok {
			continue
		}
		info := types.ProcessInfo{PID: pid, Name: entry.name}
		if hwnd, ok := mainWindows[pid]; ok {
			info.WindowHandle = types.WindowHandle(hwnd)
			info.WindowTitle = windowText(hwnd)
		}
		processes = append(processes, info)
	}

	return processes, nil
}

// SetWindowPlacement restores the window if requested, then moves and resizes it
func (w *WindowsAPI) SetWindowPlacement(req PlacementRequest) error {
	context := map[string]string{
		"hwnd": "0x" + strconv.FormatUint(uint64(req.Handle), 16),
		"rect": req.Rect.String(),
	}
	if req.Handle == 0 {
		return errors.NewPlacementErrorWithContext("SetWindowPlacement",
			pkgerrors.New("window has no handle"), errors.ErrCodeInvalidHandle, context)
	}

	if req.RestoreFirst {
		// Return value is the previous visibility, not success
		procShowWindow.Call(uintptr(req.Handle), swShowNormal)
	}

	ret, _, callErr := procSetWindowPos.Call(
		uintptr(req.Handle),
		0, // hWndInsertAfter, ignored with SWP_NOZORDER
		uintptr(req.Rect.X),
		uintptr(req.Rect.Y),
		uintptr(req.Rect.Width),
		uintptr(req.Rect.Height),
		uintptr(req.Flags),
	)
	if ret == 0 {
		err := callFailure(callErr, "SetWindowPos")
		return errors.NewPlacementErrorWithContext("SetWindowPlacement", err, errors.ClassifyErrno(err), context)
	}

	return nil
}

// callFailure wraps the last error of a failed proc call; the errno may be
// zero when the API does not set one.
func callFailure(callErr error, call string) error {
	if errors.IsErrnoSet(callErr) {
		return pkgerrors.Wrap(callErr, call)
	}
	return pkgerrors.Errorf("%s failed", call)
}

type processEntry struct {
	name   string
	parent uint32
}

func snapshotProcesses() (map[uint32]processEntry, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "CreateToolhelp32Snapshot")
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snapshot, &entry); err != nil {
		return nil, pkgerrors.Wrap(err, "Process32First")
	}

	entries := make(map[uint32]processEntry)
	for {
		exe := windows.UTF16ToString(entry.ExeFile[:])
		entries[entry.ProcessID] = processEntry{
			name:   strings.TrimSuffix(exe, filepath.Ext(exe)),
			parent: entry.ParentProcessID,
		}

		if err := windows.Process32Next(snapshot, &entry); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				break
			}
			return nil, pkgerrors.Wrap(err, "Process32Next")
		}
	}

	return entries, nil
}

// EnumWindows callbacks are process-wide resources, so one callback is
// created once and collects into mainWindowsFound under enumMu.
var (
	enumMu           sync.Mutex
	mainWindowsFound map[uint32]windows.HWND
	enumCallback     = windows.NewCallback(collectMainWindow)
)

// findMainWindows maps each process id to its main window: the first
// visible top-level window with no owner, in z-order.
func findMainWindows() (map[uint32]windows.HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	mainWindowsFound = make(map[uint32]windows.HWND)
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return nil, pkgerrors.Wrap(err, "EnumWindows")
	}

	found := mainWindowsFound
	mainWindowsFound = nil
	return found, nil
}

func collectMainWindow(hwnd windows.HWND, _ uintptr) uintptr {
	if visible, _, _ := procIsWindowVisible.Call(uintptr(hwnd)); visible == 0 {
		return 1
	}
	if owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner); owner != 0 {
		return 1
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 1
	}
	if _, seen := mainWindowsFound[pid]; !seen {
		mainWindowsFound[pid] = hwnd
	}
	return 1 // continue enumeration
}

func windowText(hwnd windows.HWND) string {
	length, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if length == 0 {
		return ""
	}

	buffer := make([]uint16, length+1)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buffer[0])), uintptr(len(buffer)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buffer[:n])
}
