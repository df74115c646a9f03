package touch

import (
	"fmt"
	"strings"
)

// API selects which Windows input API feeds the hook.
type API int

const (
	APIAuto API = iota
	APIModern
	APILegacy
)

func (a API) String() string {
	switch a {
	case APIAuto:
		return "auto"
	case APIModern:
		return "modern"
	case APILegacy:
		return "legacy"
	}
	return fmt.Sprintf("API(%d)", int(a))
}

// ParseAPI accepts the config spellings, including the Windows version
// aliases win8 and win7.
func ParseAPI(s string) (API, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return APIAuto, nil
	case "modern", "pointer", "win8":
		return APIModern, nil
	case "legacy", "touch", "win7":
		return APILegacy, nil
	}
	return APIAuto, fmt.Errorf("unknown touch api %q", s)
}

// Decoder turns recognized window messages into PointerEvents. Exactly one
// implementation is active per System.
type Decoder interface {
	API() API
	// Handles reports whether msg is consumed by the decoder.
	Handles(msg uint32) bool
	Decode(slot *Slot, msg uint32, wParam, lParam uintptr)
	// Attach and Detach bracket the decoder's use of a window.
	Attach(hwnd HWND) error
	Detach(hwnd HWND)
}

func loword(v uintptr) uint32 {
	return uint32(v & 0xFFFF)
}
