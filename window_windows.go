package main

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/AllenDang/w32"
	"golang.org/x/sys/windows"

	"wintouch/internal/config"
	"wintouch/internal/touch"
)

const (
	wmSize          = 0x0005
	wmClose         = 0x0010
	wmDisplayChange = 0x007E
	wmApp           = 0x8000

	// wmRecalibrate is posted by the tray so recalibration runs on the
	// window thread.
	wmRecalibrate = wmApp + 1
)

func registerWindowClass(className string, instance w32.HINSTANCE) error {
	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	wc := w32.WNDCLASSEX{
		WndProc:   windows.NewCallback(hostWndProc),
		Instance:  instance,
		Cursor:    w32.LoadCursor(0, w32.MakeIntResource(w32.IDC_ARROW)),
		ClassName: name,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if w32.RegisterClassEx(&wc) == 0 {
		return fmt.Errorf("RegisterClassEx failed: %d", w32.GetLastError())
	}
	return nil
}

func createDisplayWindow(className string, d config.Display, instance w32.HINSTANCE) (w32.HWND, error) {
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, err
	}
	title := d.Title
	if title == "" {
		title = fmt.Sprintf("Display %d", d.Index)
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}

	var style uint = w32.WS_OVERLAPPEDWINDOW
	x, y, width, height := w32.CW_USEDEFAULT, w32.CW_USEDEFAULT, d.Width, d.Height
	if d.Fullscreen {
		style = w32.WS_POPUP
		x, y = 0, 0
		width = w32.GetSystemMetrics(w32.SM_CXSCREEN)
		height = w32.GetSystemMetrics(w32.SM_CYSCREEN)
	}

	hwnd := w32.CreateWindowEx(0, class, titlePtr, style, x, y, width, height, 0, 0, instance, nil)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx failed: %d", w32.GetLastError())
	}
	w32.ShowWindow(hwnd, w32.SW_SHOW)
	w32.UpdateWindow(hwnd)
	return hwnd, nil
}

// hostWndProc is the procedure the touch hook chains to for every message it
// does not consume.
func hostWndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	switch msg {
	case wmSize, wmDisplayChange, wmRecalibrate:
		recalibrate(touch.HWND(hwnd))
		if msg == wmRecalibrate {
			return 0
		}
	case wmClose:
		slog.Info("[host] window closed", "hwnd", hwnd)
		if slot := lookupSlot(touch.HWND(hwnd)); slot != nil {
			touchSystem.Registry().Teardown(slot.DisplayIndex)
		}
		w32.ShowWindow(w32.HWND(hwnd), w32.SW_HIDE)
		return 0
	}
	return w32.DefWindowProc(w32.HWND(hwnd), uint32(msg), wParam, lParam)
}

func lookupSlot(hwnd touch.HWND) *touch.Slot {
	if touchSystem == nil {
		return nil
	}
	return touchSystem.Registry().Lookup(hwnd)
}

func recalibrate(hwnd touch.HWND) {
	slot := lookupSlot(hwnd)
	if slot == nil {
		return
	}
	if err := touchSystem.SetScreenParams(slot.DisplayIndex, slot.ScreenWidth, slot.ScreenHeight); err != nil {
		slog.Warn("[host] recalibrate failed", "display", slot.DisplayIndex, "error", err)
	}
}

func postRecalibrate() {
	for _, hwnd := range hostWindows {
		w32.PostMessage(hwnd, wmRecalibrate, 0, 0)
	}
}
