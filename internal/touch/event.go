package touch

import "fmt"

type EventKind uint32

const (
	EventEnter EventKind = iota + 1
	EventLeave
	EventDown
	EventUp
	EventUpdate
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventDown:
		return "down"
	case EventUp:
		return "up"
	case EventUpdate:
		return "update"
	case EventCancel:
		return "cancel"
	}
	return fmt.Sprintf("EventKind(%d)", uint32(k))
}

// kindForMessage maps a pointer window message to the event it reports.
func kindForMessage(msg uint32) (EventKind, bool) {
	switch msg {
	case WM_POINTERENTER:
		return EventEnter, true
	case WM_POINTERLEAVE:
		return EventLeave, true
	case WM_POINTERDOWN:
		return EventDown, true
	case WM_POINTERUP:
		return EventUp, true
	case WM_POINTERUPDATE:
		return EventUpdate, true
	case WM_POINTERCAPTURECHANGED:
		return EventCancel, true
	}
	return 0, false
}

type DeviceType uint32

const (
	DeviceMouse DeviceType = iota + 1
	DeviceTouch
	DevicePen
)

func (d DeviceType) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	}
	return fmt.Sprintf("DeviceType(%d)", uint32(d))
}

// Position is a point in logical screen space, origin bottom-left.
type Position struct {
	X, Y float64
}

// Payload carries the device specific part of an event. Tilt is only set
// for pens.
type Payload struct {
	PointerFlags   PointerFlags
	Flags          uint32
	Mask           uint32
	ChangedButtons PointerButtonChangeType
	Rotation       uint32
	Pressure       uint32
	TiltX          int32
	TiltY          int32
}

type PointerEvent struct {
	DisplayIndex int
	PointerID    uint32
	Kind         EventKind
	Device       DeviceType
	Position     Position
	Payload      Payload
}

// EventHandler receives decoded events synchronously on the window thread.
// It must return quickly: message delivery for the window is stalled until
// it does.
type EventHandler func(PointerEvent)
