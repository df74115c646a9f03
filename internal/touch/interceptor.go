package touch

// interceptor is the MessageHandler installed on every registered window.
// Messages the decoder recognizes are consumed; everything else goes to the
// procedure the window had before it was hooked.
type interceptor struct {
	registry *Registry
	decoder  Decoder
	windows  Windows
}

func (h *interceptor) HandleMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	slot := h.registry.Lookup(hwnd)
	if slot == nil {
		return 0
	}
	if h.decoder.Handles(msg) {
		h.decoder.Decode(slot, msg, wParam, lParam)
		return 0
	}
	return h.windows.CallWindowProc(slot.original, hwnd, msg, wParam, lParam)
}
