package config

import "testing"

func TestHeldItemPosition(t *testing.T) {
	x, y := HeldItemPosition()
	if x != HeldItemMargin {
		t.Errorf("x = %v, want %v", x, HeldItemMargin)
	}
	if y != GameWindowHeight-HeldItemMargin {
		t.Errorf("y = %v, want %v", y, GameWindowHeight-HeldItemMargin)
	}
	if x < 0 || y > GameWindowHeight {
		t.Errorf("held item (%v, %v) outside the %dx%d window", x, y, GameWindowWidth, GameWindowHeight)
	}
}
