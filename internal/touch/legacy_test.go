package touch

import "testing"

func activeLegacy(t *testing.T) (*System, *fakePlatform, *recorder) {
	t.Helper()
	sys, fp, rec := newTestSystem(t, APILegacy, 0x10)
	fp.clientOrigin[0x10] = POINT{X: 100, Y: 50}
	fp.windowRects[0x10] = RECT{Left: 100, Top: 50, Right: 900, Bottom: 650}
	fp.monitorRects[0x10] = RECT{Right: 1920, Bottom: 1080}
	if err := sys.ActivateDisplay(1, 800, 600); err != nil {
		t.Fatalf("ActivateDisplay: %v", err)
	}
	return sys, fp, rec
}

func TestLegacyDecoder_BatchInOrder(t *testing.T) {
	_, fp, rec := activeLegacy(t)
	const handle = 0xBEEF
	fp.touchInputs[handle] = []TouchInput{
		{ID: 7, X: 15000, Y: 25000, Flags: TouchEventDown | TouchEventPrimary},
		{ID: 8, X: 20050, Y: 10099, Flags: TouchEventMove},
		{ID: 9, X: 30000, Y: 40000, Flags: TouchEventUp},
	}

	if r := fp.send(0x10, WM_TOUCH, 3, handle); r != 0 {
		t.Fatalf("WM_TOUCH returned %d, want 0", r)
	}

	want := []struct {
		id      uint32
		kind    EventKind
		changed PointerButtonChangeType
		pos     Position
	}{
		{7, EventDown, PointerChangeFirstButtonDown, Position{X: 50, Y: 400}},
		{8, EventUpdate, PointerChangeNone, Position{X: 100, Y: 550}},
		{9, EventLeave, PointerChangeFirstButtonUp, Position{X: 200, Y: 250}},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("dispatched %d events, want %d", len(rec.events), len(want))
	}
	for i, w := range want {
		ev := rec.events[i]
		if ev.PointerID != w.id || ev.Kind != w.kind || ev.Payload.ChangedButtons != w.changed {
			t.Errorf("event %d = id %d %v changed %d, want id %d %v changed %d",
				i, ev.PointerID, ev.Kind, ev.Payload.ChangedButtons, w.id, w.kind, w.changed)
		}
		if ev.Device != DeviceTouch || ev.DisplayIndex != 1 {
			t.Errorf("event %d device/display = %v/%d", i, ev.Device, ev.DisplayIndex)
		}
		if !near(ev.Position.X, w.pos.X) || !near(ev.Position.Y, w.pos.Y) {
			t.Errorf("event %d position = %+v, want %+v", i, ev.Position, w.pos)
		}
	}
	if fp.closed[handle] != 1 {
		t.Fatalf("touch input handle closed %d times, want 1", fp.closed[handle])
	}
	if len(fp.forwarded) != 0 {
		t.Fatalf("WM_TOUCH forwarded to original procedure")
	}
}

func TestLegacyDecoder_FlagPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		flags TouchEventFlags
		want  EventKind
	}{
		{"down beats up and move", TouchEventDown | TouchEventUp | TouchEventMove, EventDown},
		{"up beats move", TouchEventUp | TouchEventMove, EventLeave},
		{"move", TouchEventMove | TouchEventInRange, EventUpdate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fp, rec := activeLegacy(t)
			fp.touchInputs[1] = []TouchInput{{ID: 1, Flags: tt.flags}}
			fp.send(0x10, WM_TOUCH, 1, 1)
			if len(rec.events) != 1 || rec.events[0].Kind != tt.want {
				t.Fatalf("events = %+v, want single %v", rec.events, tt.want)
			}
		})
	}
}

func TestLegacyDecoder_PointWithoutStateFlagIsDropped(t *testing.T) {
	_, fp, rec := activeLegacy(t)
	fp.touchInputs[1] = []TouchInput{
		{ID: 1, Flags: TouchEventInRange},
		{ID: 2, Flags: TouchEventMove},
	}
	fp.send(0x10, WM_TOUCH, 2, 1)
	if len(rec.events) != 1 || rec.events[0].PointerID != 2 {
		t.Fatalf("events = %+v, want only pointer 2", rec.events)
	}
	if fp.closed[1] != 1 {
		t.Fatalf("handle closed %d times, want 1", fp.closed[1])
	}
}

func TestLegacyDecoder_ReleasesHandleOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		wParam uintptr
	}{
		{"info unavailable", 4},
		{"empty batch", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fp, rec := activeLegacy(t)
			const handle = 0x77
			fp.send(0x10, WM_TOUCH, tt.wParam, handle)
			if len(rec.events) != 0 {
				t.Fatalf("dispatched %d events, want 0", len(rec.events))
			}
			if fp.closed[handle] != 1 {
				t.Fatalf("handle closed %d times, want 1", fp.closed[handle])
			}
		})
	}
}

func TestLegacyDecoder_CountUsesLowWord(t *testing.T) {
	_, fp, rec := activeLegacy(t)
	fp.touchInputs[5] = []TouchInput{{ID: 1, Flags: TouchEventDown}, {ID: 2, Flags: TouchEventDown}}
	fp.send(0x10, WM_TOUCH, 0xABCD0002, 5)
	if len(rec.events) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(rec.events))
	}
}

func TestLegacyInterceptor_IgnoresPointerMessages(t *testing.T) {
	_, fp, rec := activeLegacy(t)
	fp.pointers[1] = PointerInfo{PointerType: PointerInputTouch}
	fp.send(0x10, WM_POINTERDOWN, 1, 0)
	if len(rec.events) != 0 {
		t.Fatalf("legacy path decoded a pointer message")
	}
	if len(fp.forwarded) != 1 || fp.forwarded[0] != WM_POINTERDOWN {
		t.Fatalf("forwarded = %v, want [WM_POINTERDOWN]", fp.forwarded)
	}
}

func TestLegacyDecoder_TeardownFromHandlerFinishesBatch(t *testing.T) {
	fp := newFakePlatform(0x10)
	var sys *System
	var got []PointerEvent
	sys, err := New(fp, Options{API: APILegacy, Handler: func(ev PointerEvent) {
		got = append(got, ev)
		_ = sys.Registry().Teardown(ev.DisplayIndex)
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sys.ActivateDisplay(2, 800, 600); err != nil {
		t.Fatalf("ActivateDisplay: %v", err)
	}

	fp.touchInputs[1] = []TouchInput{{ID: 1, Flags: TouchEventDown}, {ID: 2, Flags: TouchEventDown}}
	fp.send(0x10, WM_TOUCH, 2, 1)

	if len(got) != 2 || got[1].DisplayIndex != 2 {
		t.Fatalf("events = %+v, want two on display 2", got)
	}
	if fp.closed[1] != 1 || fp.restored[0x10] != 1 {
		t.Fatalf("closed=%d restored=%d, want 1 and 1", fp.closed[1], fp.restored[0x10])
	}
}
