package core

import "testing"

func TestFrameThrottleFiresOnMultiples(t *testing.T) {
	f := NewFrameThrottle(5)
	var fired []uint64
	for i := 0; i < 15; i++ {
		if f.Tick() {
			fired = append(fired, f.Frames())
		}
	}
	if len(fired) != 3 || fired[0] != 5 || fired[1] != 10 || fired[2] != 15 {
		t.Fatalf("fired on frames %v, want [5 10 15]", fired)
	}
}

func TestFrameThrottleDefaults(t *testing.T) {
	f := NewFrameThrottle(0)
	if f.Every() != DefaultThrottle {
		t.Fatalf("Every() = %d, want %d", f.Every(), DefaultThrottle)
	}
	f.SetEvery(1)
	if !f.Tick() {
		t.Fatal("divisor 1 should fire every frame")
	}
}
