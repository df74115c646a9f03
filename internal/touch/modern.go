package touch

import "log/slog"

// modernDecoder handles the WM_POINTER family. WM_TOUCH is consumed too so
// its input handle is always released.
type modernDecoder struct {
	windows Windows
	touch   TouchSource
	source  PointerSource
	emit    EventHandler
	log     *slog.Logger
}

func newModernDecoder(w Windows, touch TouchSource, src PointerSource, emit EventHandler, log *slog.Logger) *modernDecoder {
	return &modernDecoder{windows: w, touch: touch, source: src, emit: emit, log: log}
}

func (d *modernDecoder) API() API { return APIModern }

func (d *modernDecoder) Handles(msg uint32) bool {
	if msg == WM_TOUCH {
		return true
	}
	_, ok := kindForMessage(msg)
	return ok
}

func (d *modernDecoder) Attach(HWND) error { return nil }
func (d *modernDecoder) Detach(HWND)       {}

func (d *modernDecoder) Decode(active *Slot, msg uint32, wParam, lParam uintptr) {
	// The handler may tear the slot down while the message is decoded.
	slot := *active
	if msg == WM_TOUCH {
		d.touch.CloseTouchInputHandle(lParam)
		return
	}
	kind, ok := kindForMessage(msg)
	if !ok {
		return
	}

	pointerID := loword(wParam)
	info, ok := d.source.PointerInfo(pointerID)
	if !ok {
		return
	}
	if info.PointerFlags&PointerFlagCanceled != 0 {
		kind = EventCancel
	}

	ev := PointerEvent{
		DisplayIndex: slot.DisplayIndex,
		PointerID:    pointerID,
		Kind:         kind,
		Payload: Payload{
			PointerFlags:   info.PointerFlags,
			ChangedButtons: info.ButtonChangeType,
		},
	}

	switch info.PointerType {
	case PointerInputMouse:
		ev.Device = DeviceMouse
	case PointerInputTouch:
		ev.Device = DeviceTouch
		if ti, ok := d.source.PointerTouchInfo(pointerID); ok {
			ev.Payload.Flags = uint32(ti.TouchFlags)
			ev.Payload.Mask = uint32(ti.TouchMask)
			ev.Payload.Rotation = ti.Orientation
			ev.Payload.Pressure = ti.Pressure
		} else {
			d.log.Debug("[touch] pointer touch info unavailable", "pointer", pointerID)
		}
	case PointerInputPen:
		ev.Device = DevicePen
		if pi, ok := d.source.PointerPenInfo(pointerID); ok {
			ev.Payload.Flags = uint32(pi.PenFlags)
			ev.Payload.Mask = uint32(pi.PenMask)
			ev.Payload.Rotation = pi.Rotation
			ev.Payload.Pressure = pi.Pressure
			ev.Payload.TiltX = pi.TiltX
			ev.Payload.TiltY = pi.TiltY
		} else {
			d.log.Debug("[touch] pointer pen info unavailable", "pointer", pointerID)
		}
	default:
		d.log.Debug("[touch] unsupported pointer type dropped", "pointer", pointerID, "type", info.PointerType)
		return
	}

	p := d.windows.ScreenToClient(slot.Handle, info.PixelLocation)
	ev.Position = slot.Calibration.Apply(p, slot.ScreenHeight)
	d.emit(ev)
}
