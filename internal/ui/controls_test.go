package ui

import (
	"testing"

	"lifepaint/internal/core"
)

func TestAdjustTargetClamps(t *testing.T) {
	ctrl := core.ParameterControl{Key: "throttle", Step: 1, Min: 1, Max: 120}

	if got, ok := adjustTarget(ctrl, 5, 1); !ok || got != 6 {
		t.Fatalf("step up = (%d,%v), want (6,true)", got, ok)
	}
	if _, ok := adjustTarget(ctrl, 1, -1); ok {
		t.Fatal("stepping below the minimum should be a no-op")
	}
	if _, ok := adjustTarget(ctrl, 120, 1); ok {
		t.Fatal("stepping above the maximum should be a no-op")
	}

	ctrl.Step = 0
	if got, _ := adjustTarget(ctrl, 10, -1); got != 9 {
		t.Fatalf("zero step should default to 1, got %d", got)
	}
}

func TestPanelPoint(t *testing.T) {
	if px, ok := panelPoint(1210, 1200, 220); !ok || px != 10 {
		t.Fatalf("panelPoint inside = (%d,%v), want (10,true)", px, ok)
	}
	if _, ok := panelPoint(1199, 1200, 220); ok {
		t.Fatal("a click on the board must not be consumed by the panel")
	}
	if _, ok := panelPoint(1420, 1200, 220); ok {
		t.Fatal("a click right of the panel must not be consumed")
	}
	if _, ok := panelPoint(5, 0, 0); ok {
		t.Fatal("a hidden panel consumes nothing")
	}
}
