package ui

import "lifepaint/internal/core"

// adjustTarget steps value in direction and clamps it to the control bounds.
// ok is false when the clamped value would not change.
func adjustTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.Max > ctrl.Min && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}

// panelPoint converts a screen x into panel space. ok is false when mx falls
// outside a panel of the given width anchored at offsetX.
func panelPoint(mx, offsetX, width int) (int, bool) {
	px := mx - offsetX
	if width <= 0 || px < 0 || px >= width {
		return 0, false
	}
	return px, true
}
