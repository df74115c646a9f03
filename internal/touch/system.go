// Package touch hooks host-created windows and turns Windows touch and
// pointer messages into PointerEvents in the host's logical screen space.
//
// A System must be created, used and disposed on the thread that runs the
// hooked windows' message loop. Events are delivered synchronously from
// inside the window procedure.
package touch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// DefaultWindowClass is the class ActivateDisplay searches for when Options
// leaves WindowClass empty.
const DefaultWindowClass = "UnityWndClass"

var ErrNoWindow = errors.New("no unregistered window found")

type Options struct {
	API         API
	WindowClass string
	// Handler receives every decoded event.
	Handler EventHandler
	// Logger is the diagnostic sink. It is only written to when Debug is set.
	Logger *slog.Logger
	Debug  bool
}

type System struct {
	platform    Platform
	api         API
	windowClass string
	log         *slog.Logger
	decoder     Decoder
	registry    *Registry
}

// New selects the decoding path for the lifetime of the System.
func New(p Platform, opts Options) (*System, error) {
	if p == nil {
		return nil, errors.New("touch: nil platform")
	}
	if opts.Handler == nil {
		return nil, errors.New("touch: nil event handler")
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Debug {
		log = opts.Logger
		if log == nil {
			log = slog.Default()
		}
	}

	api := opts.API
	if api == APIAuto {
		api = APILegacy
		if p.SupportsPointerAPI() {
			api = APIModern
		}
	}

	s := &System{
		platform:    p,
		api:         api,
		windowClass: opts.WindowClass,
		log:         log,
	}
	if s.windowClass == "" {
		s.windowClass = DefaultWindowClass
	}

	switch api {
	case APIModern:
		s.decoder = newModernDecoder(p, p, p, opts.Handler, log)
	case APILegacy:
		s.decoder = newLegacyDecoder(p, p, opts.Handler, log)
	default:
		return nil, fmt.Errorf("touch: unsupported api %v", api)
	}

	s.registry = newRegistry(p, s.decoder, log)
	s.registry.hook = &interceptor{registry: s.registry, decoder: s.decoder, windows: p}
	log.Debug("[touch] initialized", "api", api, "class", s.windowClass)
	return s, nil
}

func (s *System) API() API { return s.api }

func (s *System) Registry() *Registry { return s.registry }

// ActivateDisplay hooks the first window of the configured class that is not
// tracked yet and calibrates it for a screenWidth x screenHeight logical
// screen.
func (s *System) ActivateDisplay(displayIndex, screenWidth, screenHeight int) error {
	hwnd := s.findNewWindow()
	if hwnd == 0 {
		s.log.Debug("[touch] activate display: no window", "display", displayIndex, "class", s.windowClass)
		return fmt.Errorf("%w of class %q", ErrNoWindow, s.windowClass)
	}
	if err := s.registry.Register(hwnd, displayIndex); err != nil {
		return err
	}
	return s.registry.Recalibrate(displayIndex, screenWidth, screenHeight)
}

func (s *System) findNewWindow() HWND {
	for _, hwnd := range s.platform.FindWindows(s.windowClass) {
		if s.registry.Lookup(hwnd) == nil {
			return hwnd
		}
	}
	return 0
}

// SetScreenParams recalibrates an active display.
func (s *System) SetScreenParams(displayIndex, screenWidth, screenHeight int) error {
	return s.registry.Recalibrate(displayIndex, screenWidth, screenHeight)
}

// SetWindowProperty attaches a window property to every tracked window.
func (s *System) SetWindowProperty(name string, value uintptr) {
	for _, slot := range s.registry.Active() {
		if err := s.platform.SetProp(slot.Handle, name, value); err != nil {
			s.log.Debug("[touch] set window property failed", "display", slot.DisplayIndex, "name", name, "error", err)
		}
	}
}

// RemoveWindowProperty detaches a window property from every tracked window.
func (s *System) RemoveWindowProperty(name string) {
	for _, slot := range s.registry.Active() {
		s.platform.RemoveProp(slot.Handle, name)
	}
}

// Dispose unhooks every tracked window. It may be called more than once.
func (s *System) Dispose() {
	s.registry.TeardownAll()
	s.log.Debug("[touch] disposed")
}
