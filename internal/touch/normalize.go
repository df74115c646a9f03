package touch

import "math"

// Calibration maps client-space pixels into logical screen space.
type Calibration struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
}

func IdentityCalibration() Calibration {
	return Calibration{ScaleX: 1, ScaleY: 1}
}

// IsFullscreen reports whether window covers monitor exactly.
func IsFullscreen(window, monitor RECT) bool {
	return window.Left == monitor.Left &&
		window.Top == monitor.Top &&
		window.Right == monitor.Right &&
		window.Bottom == monitor.Bottom
}

// Calibrate computes the calibration for a window showing a logical screen of
// screenWidth x screenHeight. A fullscreen window gets a uniform scale and the
// logical screen is centered inside the monitor; a windowed one is identity.
func Calibrate(window, monitor RECT, screenWidth, screenHeight int) Calibration {
	if screenWidth <= 0 || screenHeight <= 0 {
		return IdentityCalibration()
	}
	nativeWidth := float64(monitor.Width())
	nativeHeight := float64(monitor.Height())
	if nativeWidth <= 0 || nativeHeight <= 0 || !IsFullscreen(window, monitor) {
		return IdentityCalibration()
	}

	sw, sh := float64(screenWidth), float64(screenHeight)
	scale := math.Max(sw/nativeWidth, sh/nativeHeight)
	return Calibration{
		OffsetX: (nativeWidth - sw/scale) * .5,
		OffsetY: (nativeHeight - sh/scale) * .5,
		ScaleX:  scale,
		ScaleY:  scale,
	}
}

// Apply converts a client-space point. The vertical axis is flipped.
func (c Calibration) Apply(p POINT, screenHeight int) Position {
	return Position{
		X: (float64(p.X) - c.OffsetX) * c.ScaleX,
		Y: float64(screenHeight) - (float64(p.Y)-c.OffsetY)*c.ScaleY,
	}
}
