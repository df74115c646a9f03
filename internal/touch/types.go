package touch

type HANDLE uintptr
type HWND uintptr

// WindowProc is the address of a window procedure as returned by
// SetWindowLongPtr(GWLP_WNDPROC).
type WindowProc uintptr

type POINT struct {
	X, Y int32
}

type RECT struct {
	Left, Top, Right, Bottom int32
}

func (r RECT) Width() int32  { return r.Right - r.Left }
func (r RECT) Height() int32 { return r.Bottom - r.Top }

type PointerInfo struct {
	PointerType         PointerInputType
	PointerId           uint32
	FrameId             uint32
	PointerFlags        PointerFlags
	SourceDevice        HANDLE
	WindowTarget        HWND
	PixelLocation       POINT
	HimetricLocation    POINT
	PixelLocationRaw    POINT
	HimetricLocationRaw POINT
	Time                uint32
	HistoryCount        uint32
	InputData           int32
	KeyStates           uint32
	PerformanceCount    uint64
	ButtonChangeType    PointerButtonChangeType
}

type PointerTouchInfo struct {
	PointerInfo PointerInfo
	TouchFlags  TouchFlags
	TouchMask   TouchMask
	Contact     RECT
	ContactRaw  RECT
	Orientation uint32
	Pressure    uint32
}

type PointerPenInfo struct {
	PointerInfo PointerInfo
	PenFlags    PenFlags
	PenMask     PenMask
	Pressure    uint32
	Rotation    uint32
	TiltX       int32
	TiltY       int32
}

// TouchInput mirrors TOUCHINPUT.
type TouchInput struct {
	X         int32
	Y         int32
	Source    HANDLE
	ID        uint32
	Flags     TouchEventFlags
	Mask      uint32
	Time      uint32
	ExtraInfo uintptr
	ContactX  uint32
	ContactY  uint32
}
