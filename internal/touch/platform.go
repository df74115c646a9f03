package touch

// MessageHandler processes one window message and returns its LRESULT.
type MessageHandler interface {
	HandleMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr
}

type MessageHandlerFunc func(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr

func (f MessageHandlerFunc) HandleMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	return f(hwnd, msg, wParam, lParam)
}

// Windows is the window management surface used by the registry and the
// normalizer.
type Windows interface {
	// FindWindows lists top-level windows of a class in enumeration order.
	FindWindows(className string) []HWND
	// Subclass routes the window's messages to h and returns the procedure
	// it replaced.
	Subclass(hwnd HWND, h MessageHandler) (WindowProc, error)
	// Restore reinstalls a procedure previously returned by Subclass.
	Restore(hwnd HWND, original WindowProc) error
	CallWindowProc(original WindowProc, hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr

	WindowRect(hwnd HWND) (RECT, bool)
	MonitorRect(hwnd HWND) (RECT, bool)
	ScreenToClient(hwnd HWND, p POINT) POINT

	SetProp(hwnd HWND, name string, value uintptr) error
	RemoveProp(hwnd HWND, name string)
}

// PointerSource answers the Windows 8 pointer queries. A false result means
// the pointer is no longer known to the system.
type PointerSource interface {
	PointerInfo(id uint32) (PointerInfo, bool)
	PointerTouchInfo(id uint32) (PointerTouchInfo, bool)
	PointerPenInfo(id uint32) (PointerPenInfo, bool)
}

// TouchSource is the Windows 7 WM_TOUCH surface.
type TouchSource interface {
	RegisterTouchWindow(hwnd HWND) error
	UnregisterTouchWindow(hwnd HWND) error
	TouchInputInfo(handle uintptr, count int) ([]TouchInput, bool)
	CloseTouchInputHandle(handle uintptr)
}

type Platform interface {
	Windows
	PointerSource
	TouchSource

	// SupportsPointerAPI reports whether the pointer message API exists.
	SupportsPointerAPI() bool
}
