package touch

import (
	"errors"
	"fmt"
	"log/slog"
)

// MaxDisplays is the number of windows that can be tracked at once.
const MaxDisplays = 3

var (
	ErrDisplayIndexOutOfRange = errors.New("display index out of range")
	ErrSlotActive             = errors.New("display slot already active")
	ErrSlotInactive           = errors.New("display slot not active")
	ErrWindowRegistered       = errors.New("window already registered")
	ErrInvalidHandle          = errors.New("invalid window handle")
)

// Slot binds a display index to a hooked window.
type Slot struct {
	DisplayIndex int
	Handle       HWND
	ScreenWidth  int
	ScreenHeight int
	Calibration  Calibration

	original WindowProc
}

func (s *Slot) Active() bool { return s.Handle != 0 }

// Registry is the fixed table of window slots. It is not safe for concurrent
// use: every method must run on the thread that pumps the windows' messages.
type Registry struct {
	slots   [MaxDisplays]Slot
	windows Windows
	decoder Decoder
	hook    MessageHandler
	log     *slog.Logger
}

func newRegistry(w Windows, decoder Decoder, log *slog.Logger) *Registry {
	r := &Registry{windows: w, decoder: decoder, log: log}
	for i := range r.slots {
		r.slots[i].DisplayIndex = i
	}
	return r
}

func (r *Registry) slot(displayIndex int) (*Slot, error) {
	if displayIndex < 0 || displayIndex >= MaxDisplays {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrDisplayIndexOutOfRange, displayIndex, MaxDisplays)
	}
	return &r.slots[displayIndex], nil
}

// Register hooks hwnd and binds it to displayIndex.
func (r *Registry) Register(hwnd HWND, displayIndex int) error {
	s, err := r.slot(displayIndex)
	if err != nil {
		r.log.Debug("[touch] register rejected", "display", displayIndex, "error", err)
		return err
	}
	if hwnd == 0 {
		r.log.Debug("[touch] register rejected", "display", displayIndex, "error", ErrInvalidHandle)
		return ErrInvalidHandle
	}
	if s.Active() {
		r.log.Debug("[touch] register rejected", "display", displayIndex, "error", ErrSlotActive)
		return fmt.Errorf("%w: %d", ErrSlotActive, displayIndex)
	}
	if other := r.Lookup(hwnd); other != nil {
		r.log.Debug("[touch] register rejected", "display", displayIndex, "hwnd", hwnd, "owner", other.DisplayIndex)
		return fmt.Errorf("%w: %#x on display %d", ErrWindowRegistered, uintptr(hwnd), other.DisplayIndex)
	}

	if err := r.decoder.Attach(hwnd); err != nil {
		r.log.Debug("[touch] decoder attach failed", "display", displayIndex, "error", err)
		return err
	}
	original, err := r.windows.Subclass(hwnd, r.hook)
	if err != nil {
		r.decoder.Detach(hwnd)
		r.log.Debug("[touch] subclass failed", "display", displayIndex, "error", err)
		return fmt.Errorf("hook window %#x: %w", uintptr(hwnd), err)
	}

	s.Handle = hwnd
	s.original = original
	s.Calibration = IdentityCalibration()
	r.log.Debug("[touch] window registered", "display", displayIndex, "hwnd", hwnd, "api", r.decoder.API())

	if s.ScreenWidth > 0 && s.ScreenHeight > 0 {
		r.Recalibrate(displayIndex, s.ScreenWidth, s.ScreenHeight)
	}
	return nil
}

// Lookup returns the active slot holding hwnd, or nil.
func (r *Registry) Lookup(hwnd HWND) *Slot {
	if hwnd == 0 {
		return nil
	}
	for i := range r.slots {
		if r.slots[i].Handle == hwnd {
			return &r.slots[i]
		}
	}
	return nil
}

// Teardown restores the window's original procedure and empties the slot.
// Empty slots are left alone.
func (r *Registry) Teardown(displayIndex int) error {
	s, err := r.slot(displayIndex)
	if err != nil {
		return err
	}
	if !s.Active() {
		return nil
	}

	if err := r.windows.Restore(s.Handle, s.original); err != nil {
		r.log.Debug("[touch] restore window procedure failed", "display", displayIndex, "error", err)
	}
	r.decoder.Detach(s.Handle)
	r.log.Debug("[touch] window released", "display", displayIndex, "hwnd", s.Handle)

	*s = Slot{DisplayIndex: displayIndex}
	return nil
}

// TeardownAll releases every active slot.
func (r *Registry) TeardownAll() {
	for i := range r.slots {
		_ = r.Teardown(i)
	}
}

// Recalibrate stores the logical screen size and recomputes the slot's
// calibration from the current window and monitor geometry. When the
// geometry is unavailable the previous calibration stays in effect.
func (r *Registry) Recalibrate(displayIndex, screenWidth, screenHeight int) error {
	s, err := r.slot(displayIndex)
	if err != nil {
		r.log.Debug("[touch] recalibrate rejected", "display", displayIndex, "error", err)
		return err
	}
	if !s.Active() {
		r.log.Debug("[touch] recalibrate rejected", "display", displayIndex, "error", ErrSlotInactive)
		return fmt.Errorf("%w: %d", ErrSlotInactive, displayIndex)
	}

	s.ScreenWidth = screenWidth
	s.ScreenHeight = screenHeight

	monitor, ok := r.windows.MonitorRect(s.Handle)
	if !ok {
		r.log.Debug("[touch] monitor info unavailable", "display", displayIndex)
		return nil
	}
	window, ok := r.windows.WindowRect(s.Handle)
	if !ok {
		r.log.Debug("[touch] window rect unavailable", "display", displayIndex)
		return nil
	}
	s.Calibration = Calibrate(window, monitor, screenWidth, screenHeight)
	r.log.Debug("[touch] calibrated", "display", displayIndex,
		"fullscreen", IsFullscreen(window, monitor),
		"scale", s.Calibration.ScaleX, "offsetX", s.Calibration.OffsetX, "offsetY", s.Calibration.OffsetY)
	return nil
}

// Active returns a copy of every active slot in display order.
func (r *Registry) Active() []Slot {
	var out []Slot
	for _, s := range r.slots {
		if s.Active() {
			out = append(out, s)
		}
	}
	return out
}
