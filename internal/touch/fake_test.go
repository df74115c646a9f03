package touch

import "errors"

// fakePlatform records every platform call made by the package.
type fakePlatform struct {
	pointerAPI bool
	windowList []HWND

	procs     map[HWND]WindowProc
	hooks     map[HWND]MessageHandler
	forwarded []uint32
	restored  map[HWND]int

	windowRects  map[HWND]RECT
	monitorRects map[HWND]RECT
	clientOrigin map[HWND]POINT

	props map[HWND]map[string]uintptr

	pointers     map[uint32]PointerInfo
	touchInfo    map[uint32]PointerTouchInfo
	penInfo      map[uint32]PointerPenInfo
	touchInputs  map[uintptr][]TouchInput
	touchWindows map[HWND]bool
	closed       map[uintptr]int

	subclassErr error
}

func newFakePlatform(windows ...HWND) *fakePlatform {
	f := &fakePlatform{
		pointerAPI:   true,
		windowList:   windows,
		procs:        map[HWND]WindowProc{},
		hooks:        map[HWND]MessageHandler{},
		restored:     map[HWND]int{},
		windowRects:  map[HWND]RECT{},
		monitorRects: map[HWND]RECT{},
		clientOrigin: map[HWND]POINT{},
		props:        map[HWND]map[string]uintptr{},
		pointers:     map[uint32]PointerInfo{},
		touchInfo:    map[uint32]PointerTouchInfo{},
		penInfo:      map[uint32]PointerPenInfo{},
		touchInputs:  map[uintptr][]TouchInput{},
		touchWindows: map[HWND]bool{},
		closed:       map[uintptr]int{},
	}
	for _, hwnd := range windows {
		f.procs[hwnd] = WindowProc(0x1000 + hwnd)
	}
	return f
}

// send delivers a message the way the window's current procedure would.
func (f *fakePlatform) send(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	if h, ok := f.hooks[hwnd]; ok {
		return h.HandleMessage(hwnd, msg, wParam, lParam)
	}
	return f.CallWindowProc(f.procs[hwnd], hwnd, msg, wParam, lParam)
}

func (f *fakePlatform) SupportsPointerAPI() bool { return f.pointerAPI }

func (f *fakePlatform) FindWindows(string) []HWND { return f.windowList }

func (f *fakePlatform) Subclass(hwnd HWND, h MessageHandler) (WindowProc, error) {
	if f.subclassErr != nil {
		return 0, f.subclassErr
	}
	f.hooks[hwnd] = h
	return f.procs[hwnd], nil
}

func (f *fakePlatform) Restore(hwnd HWND, original WindowProc) error {
	if _, ok := f.hooks[hwnd]; !ok {
		return errors.New("window not subclassed")
	}
	delete(f.hooks, hwnd)
	f.procs[hwnd] = original
	f.restored[hwnd]++
	return nil
}

func (f *fakePlatform) CallWindowProc(original WindowProc, hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	f.forwarded = append(f.forwarded, msg)
	return uintptr(original)
}

func (f *fakePlatform) WindowRect(hwnd HWND) (RECT, bool) {
	r, ok := f.windowRects[hwnd]
	return r, ok
}

func (f *fakePlatform) MonitorRect(hwnd HWND) (RECT, bool) {
	r, ok := f.monitorRects[hwnd]
	return r, ok
}

func (f *fakePlatform) ScreenToClient(hwnd HWND, p POINT) POINT {
	o := f.clientOrigin[hwnd]
	return POINT{X: p.X - o.X, Y: p.Y - o.Y}
}

func (f *fakePlatform) SetProp(hwnd HWND, name string, value uintptr) error {
	if f.props[hwnd] == nil {
		f.props[hwnd] = map[string]uintptr{}
	}
	f.props[hwnd][name] = value
	return nil
}

func (f *fakePlatform) RemoveProp(hwnd HWND, name string) {
	delete(f.props[hwnd], name)
}

func (f *fakePlatform) PointerInfo(id uint32) (PointerInfo, bool) {
	info, ok := f.pointers[id]
	return info, ok
}

func (f *fakePlatform) PointerTouchInfo(id uint32) (PointerTouchInfo, bool) {
	info, ok := f.touchInfo[id]
	return info, ok
}

func (f *fakePlatform) PointerPenInfo(id uint32) (PointerPenInfo, bool) {
	info, ok := f.penInfo[id]
	return info, ok
}

func (f *fakePlatform) RegisterTouchWindow(hwnd HWND) error {
	f.touchWindows[hwnd] = true
	return nil
}

func (f *fakePlatform) UnregisterTouchWindow(hwnd HWND) error {
	if !f.touchWindows[hwnd] {
		return errors.New("not registered for touch")
	}
	delete(f.touchWindows, hwnd)
	return nil
}

func (f *fakePlatform) TouchInputInfo(handle uintptr, count int) ([]TouchInput, bool) {
	inputs, ok := f.touchInputs[handle]
	if !ok || count > len(inputs) {
		return nil, false
	}
	return inputs[:count], true
}

func (f *fakePlatform) CloseTouchInputHandle(handle uintptr) {
	f.closed[handle]++
}

// recorder collects dispatched events.
type recorder struct {
	events []PointerEvent
}

func (r *recorder) handle(ev PointerEvent) {
	r.events = append(r.events, ev)
}
