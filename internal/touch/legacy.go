package touch

import (
	"fmt"
	"log/slog"
)

// legacyDecoder handles WM_TOUCH batches.
type legacyDecoder struct {
	windows Windows
	source  TouchSource
	emit    EventHandler
	log     *slog.Logger
}

func newLegacyDecoder(w Windows, src TouchSource, emit EventHandler, log *slog.Logger) *legacyDecoder {
	return &legacyDecoder{windows: w, source: src, emit: emit, log: log}
}

func (d *legacyDecoder) API() API { return APILegacy }

func (d *legacyDecoder) Handles(msg uint32) bool {
	return msg == WM_TOUCH
}

func (d *legacyDecoder) Attach(hwnd HWND) error {
	if err := d.source.RegisterTouchWindow(hwnd); err != nil {
		return fmt.Errorf("register touch window %#x: %w", uintptr(hwnd), err)
	}
	return nil
}

func (d *legacyDecoder) Detach(hwnd HWND) {
	if err := d.source.UnregisterTouchWindow(hwnd); err != nil {
		d.log.Debug("[touch] unregister touch window failed", "hwnd", hwnd, "error", err)
	}
}

func (d *legacyDecoder) Decode(active *Slot, msg uint32, wParam, lParam uintptr) {
	// The handler may tear the slot down while the message is decoded.
	slot := *active
	handle := lParam
	defer d.source.CloseTouchInputHandle(handle)

	count := int(loword(wParam))
	if count == 0 {
		return
	}
	inputs, ok := d.source.TouchInputInfo(handle, count)
	if !ok {
		d.log.Debug("[touch] touch input info unavailable", "display", slot.DisplayIndex, "count", count)
		return
	}

	for _, in := range inputs {
		ev := PointerEvent{
			DisplayIndex: slot.DisplayIndex,
			PointerID:    in.ID,
			Device:       DeviceTouch,
		}
		switch {
		case in.Flags&TouchEventDown != 0:
			ev.Kind = EventDown
			ev.Payload.ChangedButtons = PointerChangeFirstButtonDown
		case in.Flags&TouchEventUp != 0:
			ev.Kind = EventLeave
			ev.Payload.ChangedButtons = PointerChangeFirstButtonUp
		case in.Flags&TouchEventMove != 0:
			ev.Kind = EventUpdate
		default:
			d.log.Debug("[touch] touch point without down/up/move flag dropped", "id", in.ID, "flags", in.Flags)
			continue
		}

		p := d.windows.ScreenToClient(slot.Handle, POINT{X: in.X / touchCoordScale, Y: in.Y / touchCoordScale})
		ev.Position = slot.Calibration.Apply(p, slot.ScreenHeight)
		d.emit(ev)
	}
}
