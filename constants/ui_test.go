package constants

import (
	"testing"
	"time"
)

// TestSpeedRampBounds verifies the speed ramp constants are consistent
func TestSpeedRampBounds(t *testing.T) {
	if MinTickInterval != 20*time.Millisecond {
		t.Errorf("Expected tick floor of 20ms, got %v", MinTickInterval)
	}
	if InitialTickInterval < MinTickInterval {
		t.Errorf("Initial interval %v below floor %v", InitialTickInterval, MinTickInterval)
	}
	if TickDecrement <= 0 {
		t.Errorf("Expected positive tick decrement, got %v", TickDecrement)
	}
}

// TestMenuOptionsOrder verifies menu labels map onto Game, Info, Exit in order
func TestMenuOptionsOrder(t *testing.T) {
	tests := []struct {
		index int
		label string
	}{
		{0, "Start"},
		{1, "Info"},
		{2, "Exit"},
	}

	if len(MenuOptions) != len(tests) {
		t.Fatalf("Expected %d menu options, got %d", len(tests), len(MenuOptions))
	}
	for _, tt := range tests {
		if MenuOptions[tt.index] != tt.label {
			t.Errorf("Option %d: expected %q, got %q", tt.index, tt.label, MenuOptions[tt.index])
		}
	}
}
