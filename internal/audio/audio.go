// Package audio defines the seam between game logic and sound playback.
// The game fires named cues and never waits on them; actual playback
// lives outside this module.
package audio

import "github.com/charmbracelet/log"

// Cue names a sound effect keyed by game event.
type Cue string

const (
	CueCardFlip Cue = "card-flip"
	CueChip     Cue = "chip"
	CueWin      Cue = "win"
	CueLose     Cue = "lose"
	CueBust     Cue = "bust"
	CueStand    Cue = "stand"
)

// Player plays named cues. Implementations must not block.
type Player interface {
	Play(cue Cue)
}

// NopPlayer discards all cues. Used when sound is disabled.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}

// LogPlayer writes cues to the debug log instead of playing them.
type LogPlayer struct {
	Logger *log.Logger
}

func (p LogPlayer) Play(cue Cue) {
	p.Logger.Debug("audio cue", "cue", string(cue))
}
