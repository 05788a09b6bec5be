package engine

// GameState is the session state machine of the game controller
type GameState uint8

const (
	StateRunning GameState = iota
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// AppState selects the active screen of the application
type AppState uint8

const (
	AppMenu AppState = iota
	AppGame
	AppInfo
	AppExit
)

func (s AppState) String() string {
	switch s {
	case AppMenu:
		return "menu"
	case AppGame:
		return "game"
	case AppInfo:
		return "info"
	case AppExit:
		return "exit"
	}
	return "unknown"
}

// Key is the input vocabulary shared by all screens
type Key uint8

const (
	KeyNone Key = iota // no input pending
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
	KeyQuit
	KeyAccept
	KeyUnknown
)

// Direction maps a directional key to a heading
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyRight:
		return DirRight, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	}
	return 0, false
}

// Stats accumulates results across sessions for the life of the process
type Stats struct {
	GamesPlayed int
	BestScore   int
	LastScore   int
}

// record folds a finished session into the stats
func (s *Stats) record(score int) {
	s.GamesPlayed++
	s.LastScore = score
	if score > s.BestScore {
		s.BestScore = score
	}
}
