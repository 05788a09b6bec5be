package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameInterval is the pause between loop iterations (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// InitialTickInterval is the snake step interval at session start
	InitialTickInterval = 150 * time.Millisecond

	// TickDecrement is subtracted from the tick interval for every food eaten
	TickDecrement = 5 * time.Millisecond

	// MinTickInterval is the floor of the speed ramp
	MinTickInterval = 20 * time.Millisecond
)

// Snake spawn
const (
	// OriginX, OriginY is the fixed spawn cell of the snake head (play area coordinates)
	OriginX = 1
	OriginY = 1
)

// EventChannelSize bounds buffered terminal events between polls
const EventChannelSize = 100
