// internal/playback/state.go
package playback

// State is the transport state derived from a session.
//
//	Stopped: no track, or the bound track played to its end
//	Playing: the element confirmed output started
//	Paused:  a track is bound but not playing
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == StatePlaying
}

// CanResume returns true if a toggle would request a start.
func (s State) CanResume() bool {
	return s == StatePaused || s == StateStopped
}
