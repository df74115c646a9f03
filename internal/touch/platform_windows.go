//go:build windows

package touch

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/AllenDang/w32"
	"golang.org/x/sys/windows"
)

var (
	user32DLL   = windows.NewLazyDLL("user32.dll")
	kernel32DLL = windows.NewLazyDLL("kernel32.dll")

	findWindowExA         = user32DLL.NewProc("FindWindowExA")
	getPointerInfo        = user32DLL.NewProc("GetPointerInfo")
	getPointerTouchInfo   = user32DLL.NewProc("GetPointerTouchInfo")
	getPointerPenInfo     = user32DLL.NewProc("GetPointerPenInfo")
	registerTouchWindow   = user32DLL.NewProc("RegisterTouchWindow")
	unregisterTouchWindow = user32DLL.NewProc("UnregisterTouchWindow")
	getTouchInputInfo     = user32DLL.NewProc("GetTouchInputInfo")
	closeTouchInputHandle = user32DLL.NewProc("CloseTouchInputHandle")
	setPropA              = user32DLL.NewProc("SetPropA")
	removePropA           = user32DLL.NewProc("RemovePropA")
	setLastError          = kernel32DLL.NewProc("SetLastError")
)

// Every hooked window shares one callback; callbacks created by
// windows.NewCallback are never freed.
var (
	hookOnce     sync.Once
	hookCallback uintptr
	hookMu       sync.RWMutex
	hooks        = map[HWND]MessageHandler{}
)

func hookWndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	hookMu.RLock()
	h := hooks[HWND(hwnd)]
	hookMu.RUnlock()
	if h == nil {
		return w32.DefWindowProc(w32.HWND(hwnd), uint32(msg), wParam, lParam)
	}
	return h.HandleMessage(HWND(hwnd), uint32(msg), wParam, lParam)
}

// WindowsPlatform implements Platform on top of user32.
type WindowsPlatform struct{}

func NewWindowsPlatform() *WindowsPlatform {
	return &WindowsPlatform{}
}

func (*WindowsPlatform) SupportsPointerAPI() bool {
	return getPointerInfo.Find() == nil &&
		getPointerTouchInfo.Find() == nil &&
		getPointerPenInfo.Find() == nil
}

func (*WindowsPlatform) FindWindows(className string) []HWND {
	class, err := windows.BytePtrFromString(className)
	if err != nil {
		return nil
	}
	var found []HWND
	var after uintptr
	for {
		r, _, _ := findWindowExA.Call(0, after, uintptr(unsafe.Pointer(class)), 0)
		if r == 0 {
			return found
		}
		found = append(found, HWND(r))
		after = r
	}
}

func (*WindowsPlatform) Subclass(hwnd HWND, h MessageHandler) (WindowProc, error) {
	hookOnce.Do(func() {
		hookCallback = windows.NewCallback(hookWndProc)
	})

	hookMu.Lock()
	hooks[hwnd] = h
	hookMu.Unlock()

	setLastError.Call(0)
	prev := w32.SetWindowLongPtr(w32.HWND(hwnd), w32.GWLP_WNDPROC, hookCallback)
	if prev == 0 {
		if code := w32.GetLastError(); code != 0 {
			hookMu.Lock()
			delete(hooks, hwnd)
			hookMu.Unlock()
			return 0, fmt.Errorf("SetWindowLongPtr failed: %d", code)
		}
	}
	return WindowProc(prev), nil
}

func (*WindowsPlatform) Restore(hwnd HWND, original WindowProc) error {
	setLastError.Call(0)
	prev := w32.SetWindowLongPtr(w32.HWND(hwnd), w32.GWLP_WNDPROC, uintptr(original))

	hookMu.Lock()
	delete(hooks, hwnd)
	hookMu.Unlock()

	if prev == 0 {
		if code := w32.GetLastError(); code != 0 {
			return fmt.Errorf("SetWindowLongPtr failed: %d", code)
		}
	}
	return nil
}

func (*WindowsPlatform) CallWindowProc(original WindowProc, hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	return w32.CallWindowProc(uintptr(original), w32.HWND(hwnd), msg, wParam, lParam)
}

func (*WindowsPlatform) WindowRect(hwnd HWND) (RECT, bool) {
	r := w32.GetWindowRect(w32.HWND(hwnd))
	if r == nil {
		return RECT{}, false
	}
	return RECT{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, true
}

func (*WindowsPlatform) MonitorRect(hwnd HWND) (RECT, bool) {
	monitor := w32.MonitorFromWindow(w32.HWND(hwnd), w32.MONITOR_DEFAULTTONULL)
	if monitor == 0 {
		return RECT{}, false
	}
	var mi w32.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !w32.GetMonitorInfo(monitor, &mi) {
		return RECT{}, false
	}
	r := mi.RcMonitor
	return RECT{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, true
}

func (*WindowsPlatform) ScreenToClient(hwnd HWND, p POINT) POINT {
	x, y, ok := w32.ScreenToClient(w32.HWND(hwnd), int(p.X), int(p.Y))
	if !ok {
		return p
	}
	return POINT{X: int32(x), Y: int32(y)}
}

func (*WindowsPlatform) SetProp(hwnd HWND, name string, value uintptr) error {
	n, err := windows.BytePtrFromString(name)
	if err != nil {
		return err
	}
	r, _, callErr := setPropA.Call(uintptr(hwnd), uintptr(unsafe.Pointer(n)), value)
	if r == 0 {
		return fmt.Errorf("SetPropA %q: %w", name, callErr)
	}
	return nil
}

func (*WindowsPlatform) RemoveProp(hwnd HWND, name string) {
	n, err := windows.BytePtrFromString(name)
	if err != nil {
		return
	}
	removePropA.Call(uintptr(hwnd), uintptr(unsafe.Pointer(n)))
}

func (p *WindowsPlatform) PointerInfo(id uint32) (PointerInfo, bool) {
	var info PointerInfo
	if getPointerInfo.Find() != nil {
		return info, false
	}
	r, _, _ := getPointerInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
	return info, r != 0
}

func (p *WindowsPlatform) PointerTouchInfo(id uint32) (PointerTouchInfo, bool) {
	var info PointerTouchInfo
	if getPointerTouchInfo.Find() != nil {
		return info, false
	}
	r, _, _ := getPointerTouchInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
	return info, r != 0
}

func (p *WindowsPlatform) PointerPenInfo(id uint32) (PointerPenInfo, bool) {
	var info PointerPenInfo
	if getPointerPenInfo.Find() != nil {
		return info, false
	}
	r, _, _ := getPointerPenInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
	return info, r != 0
}

func (*WindowsPlatform) RegisterTouchWindow(hwnd HWND) error {
	r, _, err := registerTouchWindow.Call(uintptr(hwnd), 0)
	if r == 0 {
		return fmt.Errorf("RegisterTouchWindow: %w", err)
	}
	return nil
}

func (*WindowsPlatform) UnregisterTouchWindow(hwnd HWND) error {
	r, _, err := unregisterTouchWindow.Call(uintptr(hwnd))
	if r == 0 {
		return fmt.Errorf("UnregisterTouchWindow: %w", err)
	}
	return nil
}

func (*WindowsPlatform) TouchInputInfo(handle uintptr, count int) ([]TouchInput, bool) {
	if count <= 0 {
		return nil, false
	}
	inputs := make([]TouchInput, count)
	r, _, _ := getTouchInputInfo.Call(handle, uintptr(count),
		uintptr(unsafe.Pointer(&inputs[0])), unsafe.Sizeof(TouchInput{}))
	if r == 0 {
		return nil, false
	}
	return inputs, true
}

func (*WindowsPlatform) CloseTouchInputHandle(handle uintptr) {
	closeTouchInputHandle.Call(handle)
}
