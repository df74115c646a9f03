package touch

// Window messages handled by the hook.
const (
	WM_TOUCH                 uint32 = 0x0240
	WM_POINTERUPDATE         uint32 = 0x0245
	WM_POINTERDOWN           uint32 = 0x0246
	WM_POINTERUP             uint32 = 0x0247
	WM_POINTERENTER          uint32 = 0x0249
	WM_POINTERLEAVE          uint32 = 0x024A
	WM_POINTERCAPTURECHANGED uint32 = 0x024C
)

type PointerInputType uint32

const (
	PointerInputPointer  PointerInputType = 1
	PointerInputTouch    PointerInputType = 2
	PointerInputPen      PointerInputType = 3
	PointerInputMouse    PointerInputType = 4
	PointerInputTouchpad PointerInputType = 5
)

type PointerFlags uint32

const (
	PointerFlagNone           PointerFlags = 0x00000000
	PointerFlagNew            PointerFlags = 0x00000001
	PointerFlagInRange        PointerFlags = 0x00000002
	PointerFlagInContact      PointerFlags = 0x00000004
	PointerFlagFirstButton    PointerFlags = 0x00000010
	PointerFlagSecondButton   PointerFlags = 0x00000020
	PointerFlagThirdButton    PointerFlags = 0x00000040
	PointerFlagFourthButton   PointerFlags = 0x00000080
	PointerFlagFifthButton    PointerFlags = 0x00000100
	PointerFlagPrimary        PointerFlags = 0x00002000
	PointerFlagConfidence     PointerFlags = 0x00004000
	PointerFlagCanceled       PointerFlags = 0x00008000
	PointerFlagDown           PointerFlags = 0x00010000
	PointerFlagUpdate         PointerFlags = 0x00020000
	PointerFlagUp             PointerFlags = 0x00040000
	PointerFlagWheel          PointerFlags = 0x00080000
	PointerFlagHWheel         PointerFlags = 0x00100000
	PointerFlagCaptureChanged PointerFlags = 0x00200000
	PointerFlagHasTransform   PointerFlags = 0x00400000
)

type PointerButtonChangeType uint32

const (
	PointerChangeNone PointerButtonChangeType = iota
	PointerChangeFirstButtonDown
	PointerChangeFirstButtonUp
	PointerChangeSecondButtonDown
	PointerChangeSecondButtonUp
	PointerChangeThirdButtonDown
	PointerChangeThirdButtonUp
	PointerChangeFourthButtonDown
	PointerChangeFourthButtonUp
	PointerChangeFifthButtonDown
	PointerChangeFifthButtonUp
)

type TouchFlags uint32

const (
	TouchFlagNone TouchFlags = 0x00000000
)

type TouchMask uint32

const (
	TouchMaskNone        TouchMask = 0x00000000
	TouchMaskContactArea TouchMask = 0x00000001
	TouchMaskOrientation TouchMask = 0x00000002
	TouchMaskPressure    TouchMask = 0x00000004
)

type PenFlags uint32

const (
	PenFlagNone     PenFlags = 0x00000000
	PenFlagBarrel   PenFlags = 0x00000001
	PenFlagInverted PenFlags = 0x00000002
	PenFlagEraser   PenFlags = 0x00000004
)

type PenMask uint32

const (
	PenMaskNone     PenMask = 0x00000000
	PenMaskPressure PenMask = 0x00000001
	PenMaskRotation PenMask = 0x00000002
	PenMaskTiltX    PenMask = 0x00000004
	PenMaskTiltY    PenMask = 0x00000008
)

// TOUCHINPUT dwFlags bits used by the legacy path.
type TouchEventFlags uint32

const (
	TouchEventMove       TouchEventFlags = 0x0001
	TouchEventDown       TouchEventFlags = 0x0002
	TouchEventUp         TouchEventFlags = 0x0004
	TouchEventInRange    TouchEventFlags = 0x0008
	TouchEventPrimary    TouchEventFlags = 0x0010
	TouchEventNoCoalesce TouchEventFlags = 0x0020
	TouchEventPen        TouchEventFlags = 0x0040
	TouchEventPalm       TouchEventFlags = 0x0080
)

// TOUCHINPUT coordinates are in hundredths of a pixel.
const touchCoordScale = 100
